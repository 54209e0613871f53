package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	domainErrors "github.com/polkiloo/procurebot/internal/domain/errors"
	"github.com/polkiloo/procurebot/internal/domain/model"
)

// valuesAPI is the slice of the Sheets values service the store uses,
// extracted so tests can substitute a fake.
type valuesAPI interface {
	Get(ctx context.Context) ([][]string, error)
	Append(ctx context.Context, row []string) error
	Update(ctx context.Context, cellRange string, value string) error
}

// Store keeps the ledger in a single Google Sheets worksheet.
type Store struct {
	values    valuesAPI
	sheetName string
	logger    *slog.Logger
}

// Options configure access to the spreadsheet.
type Options struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsFile string
	CredentialsJSON string
}

// New connects to the Sheets API with service account credentials.
// Credentials JSON from the environment wins over the file, matching
// cloud deployments where no file is mounted.
func New(ctx context.Context, opts Options, logger *slog.Logger) (*Store, error) {
	var clientOpt option.ClientOption
	if opts.CredentialsJSON != "" {
		clientOpt = option.WithCredentialsJSON([]byte(opts.CredentialsJSON))
	} else {
		clientOpt = option.WithCredentialsFile(opts.CredentialsFile)
	}

	svc, err := sheets.NewService(ctx, clientOpt, option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("connect sheets: %w", err)
	}

	s := &Store{
		values:    &sheetsValues{svc: svc, spreadsheetID: opts.SpreadsheetID, sheetName: opts.SheetName},
		sheetName: opts.SheetName,
		logger:    logger,
	}
	if err := s.ensureHeader(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// ensureHeader seeds the column header into an empty worksheet so the
// first real request never lands in the header row.
func (s *Store) ensureHeader(ctx context.Context) error {
	rows, err := s.ReadAll(ctx)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		return nil
	}
	s.logger.Info("seeding ledger header", slog.String("sheet", s.sheetName))
	return s.Append(ctx, model.LedgerHeader)
}

// ReadAll returns every worksheet row, header included.
func (s *Store) ReadAll(ctx context.Context) ([][]string, error) {
	rows, err := s.values.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrUnavailable, err)
	}
	return rows, nil
}

// Append adds one row after the last occupied row.
func (s *Store) Append(ctx context.Context, row []string) error {
	if err := s.values.Append(ctx, row); err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrUnavailable, err)
	}
	return nil
}

// UpdateCell mutates a single cell in place. Row and column are 1-indexed.
func (s *Store) UpdateCell(ctx context.Context, row, col int, value string) error {
	if col < 1 || col > model.LedgerColumns {
		return fmt.Errorf("column %d out of range", col)
	}
	cellRange := fmt.Sprintf("%s!%s%d", s.sheetName, columnLetter(col), row)
	if err := s.values.Update(ctx, cellRange, value); err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrUnavailable, err)
	}
	return nil
}

// HealthCheck verifies the worksheet is reachable.
func (s *Store) HealthCheck(ctx context.Context) error {
	_, err := s.values.Get(ctx)
	return err
}

func columnLetter(col int) string {
	return string(rune('A' + col - 1))
}

// sheetsValues adapts the generated Sheets client to valuesAPI.
type sheetsValues struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

func (v *sheetsValues) Get(ctx context.Context) ([][]string, error) {
	resp, err := v.svc.Spreadsheets.Values.Get(v.spreadsheetID, v.sheetName).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (v *sheetsValues) Append(ctx context.Context, row []string) error {
	cells := make([]interface{}, len(row))
	for i, c := range row {
		cells[i] = c
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{cells}}
	_, err := v.svc.Spreadsheets.Values.Append(v.spreadsheetID, v.sheetName, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}

func (v *sheetsValues) Update(ctx context.Context, cellRange string, value string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := v.svc.Spreadsheets.Values.Update(v.spreadsheetID, cellRange, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	return err
}
