// Package postgressink loads generated ledger streams into PostgreSQL so a
// transaction-processing engine under test can read its input from a database
// instead of a CSV file.
//
// Key features:
//   - Multiple database adapter support (PGX, SQL, SQLX)
//   - Batched multi-row INSERT statements built with goqu
//   - Schema bootstrap for the target table
//   - Per-run metadata (run id, generator, seed) stored alongside each row
//
// Usage examples:
//
//	// Basic usage
//	db, _ := pgxpool.New(context.Background(), dsn)
//	sink, _ := postgressink.NewSinkFromPGXPool(db)
//
//	// With a custom table and batch size
//	sink, _ := postgressink.NewSinkFromPGXPool(
//		db,
//		postgressink.WithTableName("engine_input"),
//		postgressink.WithBatchSize(1000),
//	)
//
//	_ = sink.EnsureSchema(ctx)
//	err := sink.Store(ctx, records)
package postgressink
