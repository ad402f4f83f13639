package streamgen

import (
	"errors"
	"math/rand/v2"
)

var ErrNegativeRecordCount = errors.New("record count must not be negative")
var ErrProbabilityOutOfRange = errors.New("probability must be in the range [0, 1]")
var ErrNilRandSource = errors.New("nil random source supplied")

const (
	defaultNewClientProbability  = 0.75
	defaultDisputeProbability    = 0.10
	defaultResolveProbability    = 0.10
	defaultChargebackProbability = 0.10

	// Amount bounds in ten-thousandths: [100.0000, 200.0000).
	amountLowerBound = 100 * amountScale
	amountUpperBound = 200 * amountScale

	logMsgStreamGenerated = "ledger stream generated"
	logMsgDisputeOpened   = "dispute opened"
	logMsgDisputeClosed   = "dispute closed"
	logAttrRecordCount    = "record_count"
	logAttrTransactions   = "transactions"
	logAttrMaxClientID    = "max_client_id"
	logAttrOpenDisputes   = "open_disputes"
	logAttrTxID           = "tx_id"
	logAttrOutcome        = "outcome"
)

// Generator produces a plausible, internally consistent ledger event stream.
//
// It owns the growing client pool and the set of currently open disputes; on
// each step it picks an acting client, emits a base transaction (deposit or
// withdrawal) and probabilistically emits dispute-lifecycle records that are
// consistent with everything emitted before.
//
// A Generator is single-threaded and carries state across steps; create a
// fresh instance for a fresh stream. It should only be constructed with
// NewGenerator.
type Generator struct {
	rand   *rand.Rand
	logger Logger

	newClientProbability  float64
	disputeProbability    float64
	resolveProbability    float64
	chargebackProbability float64

	clientCursor ClientIDUint
	maxClientID  ClientIDUint
	disputePool  []TransactionIDUint
}

// NewGenerator creates a Generator with optional configuration.
// Without WithSeed or WithRand the random source is seeded from OS entropy.
func NewGenerator(options ...Option) (*Generator, error) {
	g := &Generator{
		rand:                  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		newClientProbability:  defaultNewClientProbability,
		disputeProbability:    defaultDisputeProbability,
		resolveProbability:    defaultResolveProbability,
		chargebackProbability: defaultChargebackProbability,
	}

	for _, option := range options {
		if err := option(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Generate runs count steps and returns the emitted records in step order.
// Each step emits one base transaction whose transaction id equals the step
// index (dense, strictly increasing from 0), optionally followed by a
// dispute, a resolve and a chargeback, in that order.
//
// Disputes left open when the stream ends stay open; a downstream processor
// is expected to cope with unresolved disputes at end of input.
func (g *Generator) Generate(count int) (Records, error) {
	if count < 0 {
		return nil, ErrNegativeRecordCount
	}

	records := make(Records, 0, count)

	for txID := 0; txID < count; txID++ {
		records = append(records, g.step(TransactionIDUint(txID))...)
	}

	if g.logger != nil {
		g.logger.Info(logMsgStreamGenerated,
			logAttrRecordCount, len(records),
			logAttrTransactions, count,
			logAttrMaxClientID, g.maxClientID,
			logAttrOpenDisputes, len(g.disputePool),
		)
	}

	return records, nil
}

// OpenDisputes returns the number of disputes currently awaiting a resolve
// or chargeback.
func (g *Generator) OpenDisputes() int {
	return len(g.disputePool)
}

// MaxClientID returns the highest client id introduced so far.
func (g *Generator) MaxClientID() ClientIDUint {
	return g.maxClientID
}

func (g *Generator) step(txID TransactionIDUint) Records {
	records := make(Records, 0, 4)

	client := g.selectActingClient()
	records = append(records, g.buildBaseTransaction(client, txID))

	// Once in a while, open a dispute against this step's transaction. The
	// acting client may dispute its own transaction; no ownership check is
	// enforced here, that is the processor's concern.
	if g.rand.Float64() < g.disputeProbability {
		records = append(records, BuildDispute(client, txID))
		g.disputePool = append(g.disputePool, txID)

		if g.logger != nil {
			g.logger.Debug(logMsgDisputeOpened, logAttrTxID, txID, logAttrOpenDisputes, len(g.disputePool))
		}
	}

	// Occasionally close an open dispute. The resolve/chargeback is attributed
	// to the current step's acting client, not necessarily the client that
	// opened the dispute.
	if len(g.disputePool) > 0 && g.rand.Float64() < g.resolveProbability {
		records = append(records, BuildResolve(client, g.takeRandomDispute(RecordTypeResolve)))
	}

	if len(g.disputePool) > 0 && g.rand.Float64() < g.chargebackProbability {
		records = append(records, BuildChargeback(client, g.takeRandomDispute(RecordTypeChargeback)))
	}

	return records
}

// selectActingClient advances the client cursor with newClientProbability,
// otherwise rewinds it to a uniformly chosen existing client. The cursor is
// deliberately not monotonic: after a reuse, new clients continue from the
// reused id while maxClientID keeps the historical maximum.
//
// Quirk, kept on purpose: at step 0 the reuse branch resolves to client 0
// even though no client was ever introduced. Generated data treats client 0
// as implicitly existing from the start.
func (g *Generator) selectActingClient() ClientIDUint {
	if g.rand.Float64() < g.newClientProbability {
		g.maxClientID = max(g.maxClientID, g.clientCursor+1)
		g.clientCursor++
	} else {
		g.clientCursor = g.rand.Uint64N(g.maxClientID + 1)
	}

	return g.clientCursor
}

func (g *Generator) buildBaseTransaction(client ClientIDUint, txID TransactionIDUint) Record {
	amount := Amount(amountLowerBound + g.rand.Int64N(amountUpperBound-amountLowerBound))

	if g.rand.IntN(2) == 0 {
		return BuildDeposit(client, txID, amount)
	}

	return BuildWithdrawal(client, txID, amount)
}

// takeRandomDispute removes and returns a uniformly chosen entry from the
// dispute pool using swap-remove; pool order carries no meaning. Callers must
// check the pool is non-empty first.
func (g *Generator) takeRandomDispute(outcome RecordType) TransactionIDUint {
	idx := g.rand.IntN(len(g.disputePool))
	txID := g.disputePool[idx]

	lastIdx := len(g.disputePool) - 1
	g.disputePool[idx] = g.disputePool[lastIdx]
	g.disputePool = g.disputePool[:lastIdx]

	if g.logger != nil {
		g.logger.Debug(logMsgDisputeClosed,
			logAttrTxID, txID,
			logAttrOutcome, string(outcome),
			logAttrOpenDisputes, len(g.disputePool),
		)
	}

	return txID
}
