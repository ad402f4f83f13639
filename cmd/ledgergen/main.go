// Package main implements the ledgergen CLI: it synthesizes a ledger event
// stream and writes it as CSV, JSON lines, or straight into a PostgreSQL
// table for a transaction-processing engine under test to consume.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // database/sql driver for -db-driver=pq|sqlx

	"github.com/pawelbeza2/ledgergen/streamgen"
	"github.com/pawelbeza2/ledgergen/streamgen/postgressink"
)

const (
	defaultFormat   = formatCSV
	defaultDBDriver = dbDriverPGX

	formatCSV   = "csv"
	formatJSONL = "jsonl"

	dbDriverPGX  = "pgx"
	dbDriverPQ   = "pq"
	dbDriverSQLX = "sqlx"

	exitCodeOK      = 0
	exitCodeFailure = 1
	exitCodeUsage   = 2
)

type config struct {
	numRecords  int
	seed        uint64
	seedSet     bool
	format      string
	outputPath  string
	postgresDSN string
	dbDriver    string
	tableName   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "ledgergen: %v\n", err)
		}

		return exitCodeUsage
	}

	logger := newSlogLogger(stderr)

	generatorOptions := []streamgen.Option{streamgen.WithLogger(logger)}
	if cfg.seedSet {
		generatorOptions = append(generatorOptions, streamgen.WithSeed(cfg.seed))
	}

	generator, err := streamgen.NewGenerator(generatorOptions...)
	if err != nil {
		logger.Error("failed to create generator", "error", err.Error())
		return exitCodeFailure
	}

	records, err := generator.Generate(cfg.numRecords)
	if err != nil {
		logger.Error("failed to generate stream", "error", err.Error())
		return exitCodeFailure
	}

	if cfg.postgresDSN != "" {
		if err := storeToPostgres(context.Background(), cfg, records, logger); err != nil {
			logger.Error("failed to store stream in postgres", "error", err.Error())
			return exitCodeFailure
		}

		return exitCodeOK
	}

	if err := writeStream(cfg, records, stdout); err != nil {
		logger.Error("failed to write stream", "error", err.Error())
		return exitCodeFailure
	}

	return exitCodeOK
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("ledgergen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ledgergen [flags] <num-records>")
		fs.PrintDefaults()
	}

	fs.Uint64Var(&cfg.seed, "seed", 0, "Random seed; omit for a different stream on every run")
	fs.StringVar(&cfg.format, "format", defaultFormat, "Output format: csv or jsonl")
	fs.StringVar(&cfg.outputPath, "o", "", "Output file (default stdout)")
	fs.StringVar(&cfg.postgresDSN, "postgres", "", "PostgreSQL DSN; when set, the stream is stored in a table instead of printed")
	fs.StringVar(&cfg.dbDriver, "db-driver", defaultDBDriver, "Database adapter for -postgres: pgx, pq or sqlx")
	fs.StringVar(&cfg.tableName, "table", "", "Target table for -postgres (default ledger_events)")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.seedSet = true
		}
	})

	if fs.NArg() != 1 {
		fs.Usage()
		return config{}, fmt.Errorf("expected exactly 1 positional argument, got %d", fs.NArg())
	}

	numRecords, err := strconv.Atoi(fs.Arg(0))
	if err != nil || numRecords < 0 {
		fs.Usage()
		return config{}, fmt.Errorf("<num-records> must be a non-negative integer, got %q", fs.Arg(0))
	}
	cfg.numRecords = numRecords

	switch cfg.format {
	case formatCSV, formatJSONL:
	default:
		fs.Usage()
		return config{}, fmt.Errorf("unknown format %q", cfg.format)
	}

	switch cfg.dbDriver {
	case dbDriverPGX, dbDriverPQ, dbDriverSQLX:
	default:
		fs.Usage()
		return config{}, fmt.Errorf("unknown db driver %q", cfg.dbDriver)
	}

	return cfg, nil
}

func writeStream(cfg config, records streamgen.Records, stdout io.Writer) error {
	out := stdout

	if cfg.outputPath != "" {
		file, err := os.Create(cfg.outputPath)
		if err != nil {
			return err
		}
		defer file.Close() //nolint:errcheck

		out = file
	}

	if cfg.format == formatJSONL {
		return streamgen.WriteJSONL(out, records)
	}

	return streamgen.WriteCSV(out, records)
}

func storeToPostgres(ctx context.Context, cfg config, records streamgen.Records, logger streamgen.Logger) error {
	sinkOptions := []postgressink.Option{postgressink.WithLogger(logger)}
	if cfg.tableName != "" {
		sinkOptions = append(sinkOptions, postgressink.WithTableName(cfg.tableName))
	}
	if cfg.seedSet {
		sinkOptions = append(sinkOptions, postgressink.WithGeneratorSeed(cfg.seed))
	}

	var sink postgressink.Sink

	switch cfg.dbDriver {
	case dbDriverPGX:
		pool, err := pgxpool.New(ctx, cfg.postgresDSN)
		if err != nil {
			return err
		}
		defer pool.Close()

		if sink, err = postgressink.NewSinkFromPGXPool(pool, sinkOptions...); err != nil {
			return err
		}

	case dbDriverPQ:
		db, err := sql.Open("postgres", cfg.postgresDSN)
		if err != nil {
			return err
		}
		defer db.Close() //nolint:errcheck

		if sink, err = postgressink.NewSinkFromSQLDB(db, sinkOptions...); err != nil {
			return err
		}

	case dbDriverSQLX:
		db, err := sqlx.Open("postgres", cfg.postgresDSN)
		if err != nil {
			return err
		}
		defer db.Close() //nolint:errcheck

		if sink, err = postgressink.NewSinkFromSQLX(db, sinkOptions...); err != nil {
			return err
		}
	}

	if err := sink.EnsureSchema(ctx); err != nil {
		return err
	}

	return sink.Store(ctx, records)
}

// slogLogger implements streamgen.Logger on top of Go's standard log/slog
// package, writing to stderr so the stream on stdout stays clean.
type slogLogger struct {
	logger *slog.Logger
}

func newSlogLogger(w io.Writer) *slogLogger {
	return &slogLogger{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

// Debug logs a debug message.
func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message.
func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *slogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
