package repository

import "context"

// OrderCounter reserves sequential order numbers atomically.
type OrderCounter interface {
	Next(ctx context.Context) (int, error)
}
