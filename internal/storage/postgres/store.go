package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/procurebot/internal/domain/errors"
	"github.com/polkiloo/procurebot/internal/domain/model"
)

// dbPool is the subset of pgxpool.Pool the store needs; it also matches
// the pgxmock pool interface used in tests.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Store keeps the tabular ledger in a single Postgres table, one database
// row per ledger position with the header seeded at position 1.
type Store struct {
	pool   dbPool
	logger *slog.Logger
}

// New creates the store, initializing schema and header row.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	store := &Store{pool: pool, logger: logger}
	if err := store.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) initSchema(ctx context.Context) error {
	const createTable = `CREATE TABLE IF NOT EXISTS ledger_rows (
            pos INT PRIMARY KEY,
            cells TEXT[] NOT NULL
        )`
	if _, err := s.pool.Exec(ctx, createTable); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	const seedHeader = `INSERT INTO ledger_rows (pos, cells) VALUES ($1, $2) ON CONFLICT (pos) DO NOTHING`
	if _, err := s.pool.Exec(ctx, seedHeader, model.HeaderRow, model.LedgerHeader); err != nil {
		return fmt.Errorf("seed header: %w", err)
	}

	return nil
}

// ReadAll returns every ledger row in physical order, header included.
func (s *Store) ReadAll(ctx context.Context) ([][]string, error) {
	const query = `SELECT cells FROM ledger_rows ORDER BY pos`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrUnavailable, err)
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() {
		var cells []string
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrUnavailable, err)
		}
		result = append(result, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrUnavailable, err)
	}
	return result, nil
}

// Append writes one row after the last occupied position.
func (s *Store) Append(ctx context.Context, row []string) error {
	const query = `INSERT INTO ledger_rows (pos, cells)
                   SELECT COALESCE(MAX(pos), 0) + 1, $1 FROM ledger_rows`
	if _, err := s.pool.Exec(ctx, query, row); err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrUnavailable, err)
	}
	return nil
}

// UpdateCell mutates a single cell in place. Row and column are 1-indexed.
func (s *Store) UpdateCell(ctx context.Context, row, col int, value string) error {
	const query = `UPDATE ledger_rows SET cells[$2] = $3 WHERE pos = $1`
	tag, err := s.pool.Exec(ctx, query, row, col, value)
	if err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// HealthCheck verifies database connectivity.
func (s *Store) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
