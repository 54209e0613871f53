package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/procurebot/internal/domain/errors"
	"github.com/polkiloo/procurebot/internal/domain/model"
)

func newMockStore(t *testing.T) (*Store, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := &Store{pool: mock, logger: logger}
	return store, mock
}

func TestNewParseError(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := New(context.Background(), ":://bad", logger); err == nil {
		t.Fatal("expected error for malformed dsn")
	}
}

func TestInitSchema(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS ledger_rows").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("INSERT INTO ledger_rows").WithArgs(model.HeaderRow, model.LedgerHeader).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))

	if err := store.initSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReadAll(t *testing.T) {
	store, mock := newMockStore(t)

	header := []string{"BestellNr", "Timestamp"}
	data := []string{"#001", "2025-03-17 09:30:15"}
	rows := pgxmockv3.NewRows([]string{"cells"}).AddRow(header).AddRow(data)
	mock.ExpectQuery("SELECT cells FROM ledger_rows ORDER BY pos").WillReturnRows(rows)

	result, err := store.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result))
	}
	if result[1][0] != "#001" {
		t.Fatalf("unexpected data row: %v", result[1])
	}
}

func TestReadAllUnavailable(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT cells FROM ledger_rows").WillReturnError(errors.New("boom"))

	if _, err := store.ReadAll(context.Background()); !errors.Is(err, domainErrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAppend(t *testing.T) {
	store, mock := newMockStore(t)
	row := []string{"#002", "2025-03-17 10:00:00", "Max", "100", "Toner", "2", "Normal", "Lager", "", ""}
	mock.ExpectExec("INSERT INTO ledger_rows").WithArgs(row).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))

	if err := store.Append(context.Background(), row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateCell(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("UPDATE ledger_rows SET").WithArgs(3, model.ColStatus, model.StatusCancelled).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	if err := store.UpdateCell(context.Background(), 3, model.ColStatus, model.StatusCancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateCellMissingRow(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("UPDATE ledger_rows SET").WithArgs(99, model.ColStatus, model.StatusCancelled).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	if err := store.UpdateCell(context.Background(), 99, model.ColStatus, model.StatusCancelled); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCellUnavailable(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("UPDATE ledger_rows SET").WithArgs(3, model.ColStatus, model.StatusCancelled).WillReturnError(errors.New("conn reset"))

	if err := store.UpdateCell(context.Background(), 3, model.ColStatus, model.StatusCancelled); !errors.Is(err, domainErrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectPing()

	if err := store.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
