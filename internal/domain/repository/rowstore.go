package repository

import "context"

// RowStore describes row-level access to the tabular ledger backing store.
// Rows include the header at position 1; data rows start at position 2.
type RowStore interface {
	ReadAll(ctx context.Context) ([][]string, error)
	Append(ctx context.Context, row []string) error
	UpdateCell(ctx context.Context, row, col int, value string) error
}
