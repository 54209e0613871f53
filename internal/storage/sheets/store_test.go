package sheets

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/polkiloo/procurebot/internal/domain/errors"
	"github.com/polkiloo/procurebot/internal/domain/model"
)

type fakeValues struct {
	rows      [][]string
	getErr    error
	appendErr error
	updateErr error

	appended [][]string
	updates  map[string]string
}

func (f *fakeValues) Get(context.Context) ([][]string, error) {
	return f.rows, f.getErr
}

func (f *fakeValues) Append(_ context.Context, row []string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, row)
	return nil
}

func (f *fakeValues) Update(_ context.Context, cellRange, value string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updates == nil {
		f.updates = map[string]string{}
	}
	f.updates[cellRange] = value
	return nil
}

func newTestStore(values *fakeValues) *Store {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return &Store{values: values, sheetName: "Anfragen", logger: logger}
}

func TestReadAll(t *testing.T) {
	store := newTestStore(&fakeValues{rows: [][]string{{"BestellNr"}, {"#001"}}})

	rows, err := store.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "#001" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestReadAllUnavailable(t *testing.T) {
	store := newTestStore(&fakeValues{getErr: errors.New("quota exceeded")})

	if _, err := store.ReadAll(context.Background()); !errors.Is(err, domainErrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAppend(t *testing.T) {
	values := &fakeValues{}
	store := newTestStore(values)

	row := []string{"#002", "2025-03-17 10:00:00"}
	if err := store.Append(context.Background(), row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values.appended) != 1 || values.appended[0][0] != "#002" {
		t.Fatalf("row not appended: %v", values.appended)
	}
}

func TestEnsureHeaderSeedsEmptyWorksheet(t *testing.T) {
	values := &fakeValues{}
	store := newTestStore(values)

	if err := store.ensureHeader(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values.appended) != 1 || values.appended[0][0] != model.LedgerHeader[0] {
		t.Fatalf("header not seeded: %v", values.appended)
	}
}

func TestEnsureHeaderKeepsExistingRows(t *testing.T) {
	values := &fakeValues{rows: [][]string{{"BestellNr"}, {"#001"}}}
	store := newTestStore(values)

	if err := store.ensureHeader(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values.appended) != 0 {
		t.Fatalf("populated worksheet must stay untouched, appended %v", values.appended)
	}
}

func TestEnsureHeaderUnavailable(t *testing.T) {
	store := newTestStore(&fakeValues{getErr: errors.New("quota exceeded")})

	if err := store.ensureHeader(context.Background()); !errors.Is(err, domainErrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestUpdateCellRange(t *testing.T) {
	values := &fakeValues{}
	store := newTestStore(values)

	if err := store.UpdateCell(context.Background(), 5, model.ColStatus, model.StatusCancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := values.updates["Anfragen!I5"]; got != model.StatusCancelled {
		t.Fatalf("expected STORNIERT at Anfragen!I5, got updates %v", values.updates)
	}

	if err := store.UpdateCell(context.Background(), 5, model.ColFulfilledAt, "2025-03-17 10:05"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := values.updates["Anfragen!J5"]; !ok {
		t.Fatalf("expected fulfilled_at at Anfragen!J5, got updates %v", values.updates)
	}
}

func TestUpdateCellOutOfRange(t *testing.T) {
	store := newTestStore(&fakeValues{})

	if err := store.UpdateCell(context.Background(), 5, 0, "x"); err == nil {
		t.Fatal("expected error for column 0")
	}
	if err := store.UpdateCell(context.Background(), 5, model.LedgerColumns+1, "x"); err == nil {
		t.Fatal("expected error for column past the ledger width")
	}
}

func TestUpdateCellUnavailable(t *testing.T) {
	store := newTestStore(&fakeValues{updateErr: errors.New("backend down")})

	if err := store.UpdateCell(context.Background(), 5, model.ColStatus, "x"); !errors.Is(err, domainErrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestColumnLetter(t *testing.T) {
	cases := []struct {
		col  int
		want string
	}{
		{model.ColOrderNumber, "A"},
		{model.ColStatus, "I"},
		{model.ColFulfilledAt, "J"},
	}
	for _, tc := range cases {
		if got := columnLetter(tc.col); got != tc.want {
			t.Fatalf("expected %s for column %d, got %s", tc.want, tc.col, got)
		}
	}
}
