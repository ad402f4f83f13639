package postgressink

import (
	"github.com/google/uuid"

	"github.com/pawelbeza2/ledgergen/streamgen"
)

// Option defines a functional option for configuring a Sink.
type Option func(*Sink) error

// WithTableName sets the target table name for the Sink.
func WithTableName(tableName string) Option {
	return func(s *Sink) error {
		if tableName == "" {
			return ErrEmptyTableNameSupplied
		}

		s.tableName = tableName

		return nil
	}
}

// WithBatchSize sets how many records go into one INSERT statement.
func WithBatchSize(batchSize int) Option {
	return func(s *Sink) error {
		if batchSize < 1 {
			return ErrBatchSizeOutOfRange
		}

		s.batchSize = batchSize

		return nil
	}
}

// WithRunID overrides the run id attached to every stored row. By default
// each Sink generates a fresh UUIDv7 at construction time.
func WithRunID(runID uuid.UUID) Option {
	return func(s *Sink) error {
		s.runID = runID
		return nil
	}
}

// WithGeneratorSeed records the seed the stream was generated with in the
// per-row metadata, so a stored fixture can be regenerated later.
func WithGeneratorSeed(seed uint64) Option {
	return func(s *Sink) error {
		s.seed = &seed
		return nil
	}
}

// WithLogger sets the logger for the Sink.
// The logger will receive messages at different levels:
//
// Debug level: per-batch insert progress and SQL sizes (development use)
// Info level: totals and durations after Store completes (production-safe)
// Error level: failed statements and row-count mismatches.
func WithLogger(logger streamgen.Logger) Option {
	return func(s *Sink) error {
		s.logger = logger
		return nil
	}
}
