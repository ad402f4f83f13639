// Package streamgen synthesizes internally consistent ledger event streams
// (deposits, withdrawals, disputes, resolves, chargebacks) for use as test
// input to a transaction-processing engine.
//
// The generator is stateful: it grows a client pool over time and tracks the
// set of currently open disputes, so every resolve or chargeback it emits
// references a transaction that was disputed earlier in the same stream and
// not yet consumed.
//
// Common usage pattern:
//
//	gen, err := streamgen.NewGenerator(streamgen.WithSeed(42))
//	if err != nil {
//		// handle error
//	}
//
//	records, err := gen.Generate(10000)
//	if err != nil {
//		// handle error
//	}
//
//	err = streamgen.WriteCSV(os.Stdout, records)
//
// The zero-seed default draws from OS entropy, so two runs produce different
// streams; supply a seed when fixtures must be reproducible.
package streamgen
