package postgressink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"

	"github.com/pawelbeza2/ledgergen/streamgen"
	"github.com/pawelbeza2/ledgergen/streamgen/postgressink/internal/adapters"
)

var ErrNilDatabaseConnection = errors.New("nil database connection supplied")
var ErrEmptyTableNameSupplied = errors.New("empty tableName supplied")
var ErrBatchSizeOutOfRange = errors.New("batch size must be at least 1")
var ErrBuildingQueryFailed = errors.New("building the database query failed")
var ErrUnexpectedRowCount = errors.New("unexpected number of rows affected by insert")

const (
	defaultTableName = "ledger_events"
	defaultBatchSize = 500

	dialectPostgres = "postgres"

	colRunID     = "run_id"
	colEventType = "event_type"
	colClientID  = "client_id"
	colTxID      = "tx_id"
	colAmount    = "amount"
	colMetadata  = "metadata"

	logMsgBuildInsertQueryFailed = "failed to build insert query"
	logMsgDBExecFailed           = "database execution failed during batch insert"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgRowCountMismatch       = "row count mismatch detected"
	logMsgBatchInserted          = "batch inserted"
	logMsgStreamStored           = "ledger stream stored"
	logAttrError                 = "error"
	logAttrTable                 = "table"
	logAttrRunID                 = "run_id"
	logAttrBatchSize             = "batch_size"
	logAttrRecordCount           = "record_count"
	logAttrExpectedRows          = "expected_rows"
	logAttrRowsAffected          = "rows_affected"
	logAttrDurationMS            = "duration_ms"
)

// sinkMetadata is stored as JSON alongside every row so a stream in the
// database can be traced back to the run (and seed) that produced it.
type sinkMetadata struct {
	RunID     string  `json:"RunID"`
	Generator string  `json:"Generator"`
	Seed      *uint64 `json:"Seed,omitempty"`
}

// Sink writes generated ledger streams into a PostgreSQL table.
// It leverages a database adapter and supports customizable logging, table
// name, batch size and run metadata.
type Sink struct {
	db        adapters.DBAdapter
	tableName string
	batchSize int
	runID     uuid.UUID
	seed      *uint64
	logger    streamgen.Logger
}

// NewSinkFromPGXPool creates a new Sink using a pgx Pool with optional configuration.
func NewSinkFromPGXPool(db *pgxpool.Pool, options ...Option) (Sink, error) {
	if db == nil {
		return Sink{}, ErrNilDatabaseConnection
	}

	return newSink(adapters.NewPGXAdapter(db), options...)
}

// NewSinkFromSQLDB creates a new Sink using a sql.DB with optional configuration.
func NewSinkFromSQLDB(db *sql.DB, options ...Option) (Sink, error) {
	if db == nil {
		return Sink{}, ErrNilDatabaseConnection
	}

	return newSink(adapters.NewSQLAdapter(db), options...)
}

// NewSinkFromSQLX creates a new Sink using a sqlx.DB with optional configuration.
func NewSinkFromSQLX(db *sqlx.DB, options ...Option) (Sink, error) {
	if db == nil {
		return Sink{}, ErrNilDatabaseConnection
	}

	return newSink(adapters.NewSQLXAdapter(db), options...)
}

func newSink(db adapters.DBAdapter, options ...Option) (Sink, error) {
	runID, err := uuid.NewV7()
	if err != nil {
		return Sink{}, err
	}

	s := Sink{
		db:        db,
		tableName: defaultTableName,
		batchSize: defaultBatchSize,
		runID:     runID,
	}

	for _, option := range options {
		if err := option(&s); err != nil {
			return Sink{}, err
		}
	}

	return s, nil
}

// RunID returns the run id attached to every row this Sink stores.
func (s Sink) RunID() uuid.UUID {
	return s.runID
}

// EnsureSchema creates the target table and its run-id index if they do not
// exist yet. Amount is nullable: dispute-lifecycle rows carry none.
func (s Sink) EnsureSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s (
			id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			run_id      UUID NOT NULL,
			event_type  TEXT NOT NULL,
			client_id   BIGINT NOT NULL,
			tx_id       BIGINT NOT NULL,
			amount      NUMERIC(19, 4),
			metadata    JSONB NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_run_id ON %[1]s (run_id);`,
		s.tableName)

	if _, err := s.db.Exec(ctx, ddl); err != nil {
		if s.logger != nil {
			s.logger.Error(logMsgDBExecFailed, logAttrError, err.Error(), logAttrTable, s.tableName)
		}

		return err
	}

	return nil
}

// Store inserts all records in batch-sized multi-row INSERT statements,
// preserving stream order. Every row carries the sink's run metadata.
func (s Sink) Store(ctx context.Context, records streamgen.Records) error {
	start := time.Now()

	metadataJSON, err := jsoniter.ConfigFastest.Marshal(sinkMetadata{
		RunID:     s.runID.String(),
		Generator: "ledgergen",
		Seed:      s.seed,
	})
	if err != nil {
		return err
	}

	for batchStart := 0; batchStart < len(records); batchStart += s.batchSize {
		batchEnd := min(batchStart+s.batchSize, len(records))

		if err := s.storeBatch(ctx, records[batchStart:batchEnd], metadataJSON); err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info(logMsgStreamStored,
			logAttrRecordCount, len(records),
			logAttrTable, s.tableName,
			logAttrRunID, s.runID.String(),
			logAttrDurationMS, time.Since(start).Milliseconds(),
		)
	}

	return nil
}

func (s Sink) storeBatch(ctx context.Context, batch streamgen.Records, metadataJSON []byte) error {
	sqlQuery, err := s.buildInsertQuery(batch, metadataJSON)
	if err != nil {
		return err
	}

	result, execErr := s.db.Exec(ctx, sqlQuery)
	if execErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrTable, s.tableName)
		}

		return execErr
	}

	rowsAffected, rowsErr := result.RowsAffected()
	if rowsErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgRowsAffectedFailed, logAttrError, rowsErr.Error())
		}

		return rowsErr
	}

	if rowsAffected != int64(len(batch)) {
		if s.logger != nil {
			s.logger.Error(logMsgRowCountMismatch,
				logAttrExpectedRows, len(batch),
				logAttrRowsAffected, rowsAffected,
			)
		}

		return ErrUnexpectedRowCount
	}

	if s.logger != nil {
		s.logger.Debug(logMsgBatchInserted, logAttrBatchSize, len(batch), logAttrTable, s.tableName)
	}

	return nil
}

func (s Sink) buildInsertQuery(batch streamgen.Records, metadataJSON []byte) (string, error) {
	rows := make([][]interface{}, 0, len(batch))

	for _, record := range batch {
		var amount any
		if record.HasAmount() {
			amount = record.Amount.String()
		}

		rows = append(rows, goqu.Vals{
			s.runID.String(),
			string(record.Type),
			int64(record.Client),
			int64(record.Tx),
			amount,
			string(metadataJSON),
		})
	}

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(s.tableName).
		Cols(colRunID, colEventType, colClientID, colTxID, colAmount, colMetadata).
		Vals(rows...)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgBuildInsertQueryFailed, logAttrError, toSQLErr.Error())
		}

		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}
