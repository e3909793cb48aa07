package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/d-okonkwo/loandocs/internal/common"
)

// Dialect selects placeholder style and schema flavor.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Open connects the archive store. A postgres:// DSN opens a pgx pool
// wrapped as *sql.DB; anything else is treated as a SQLite path
// (":memory:" works). The schema is bootstrapped on open.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*sql.DB, Dialect, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		db, err := openPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, "", err
		}
		if err := bootstrap(ctx, db, DialectPostgres); err != nil {
			_ = db.Close()
			return nil, "", err
		}
		return db, DialectPostgres, nil
	}

	dsn := cfg.DSN
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open sqlite: %w", err)
	}
	// One writer; modernc's driver does not tolerate concurrent
	// connections to an in-memory database.
	db.SetMaxOpenConns(1)
	if err := bootstrap(ctx, db, DialectSQLite); err != nil {
		_ = db.Close()
		return nil, "", err
	}
	logger.Info("archive store ready", "dialect", DialectSQLite)
	return db, DialectSQLite, nil
}

func openPostgres(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	logger.Info("connecting to database", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "loandocs"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}

	logger.Info("successfully connected to database")
	return stdlib.OpenDBFromPool(pool), nil
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS extraction_run (
	id               TEXT PRIMARY KEY,
	source_path      TEXT NOT NULL,
	source_format    TEXT NOT NULL,
	status           TEXT NOT NULL,
	document_type    TEXT NOT NULL DEFAULT '',
	governing_law    TEXT NOT NULL DEFAULT '',
	currency         TEXT NOT NULL DEFAULT '',
	principal_amount REAL,
	interest_rate    REAL,
	record_json      TEXT,
	error_message    TEXT NOT NULL DEFAULT '',
	created_at       TEXT NOT NULL,
	finished_at      TEXT
);`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS extraction_run (
	id               TEXT PRIMARY KEY,
	source_path      TEXT NOT NULL,
	source_format    TEXT NOT NULL,
	status           TEXT NOT NULL,
	document_type    TEXT NOT NULL DEFAULT '',
	governing_law    TEXT NOT NULL DEFAULT '',
	currency         TEXT NOT NULL DEFAULT '',
	principal_amount DOUBLE PRECISION,
	interest_rate    DOUBLE PRECISION,
	record_json      TEXT,
	error_message    TEXT NOT NULL DEFAULT '',
	created_at       TEXT NOT NULL,
	finished_at      TEXT
);`

func bootstrap(ctx context.Context, db *sql.DB, d Dialect) error {
	schema := schemaSQLite
	if d == DialectPostgres {
		schema = schemaPostgres
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}
	return nil
}

// rebind rewrites ? placeholders to $n for postgres.
func rebind(d Dialect, query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
