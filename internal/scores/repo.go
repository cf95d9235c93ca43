package scores

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a score record does not exist.
var ErrNotFound = errors.New("not found")

// Repo defines persistence operations for score records.
type Repo interface {
	Create(ctx context.Context, record Record) error
	GetByID(ctx context.Context, recordID string) (Record, error)
	List(ctx context.Context, limit, offset int) ([]Record, error)
}
