// Package adapters provide database adapter implementations for the
// PostgreSQL ledger stream sink.
//
// This package implements the adapter pattern to support multiple PostgreSQL
// database libraries: pgx.Pool, sql.DB, and sqlx.DB. All adapters provide
// equivalent functionality through a common DBAdapter interface, allowing the
// sink to work seamlessly with any supported database connection type.
//
// The sink only ever executes statements (schema bootstrap and batched
// inserts), so the interface is Exec-only.
package adapters
