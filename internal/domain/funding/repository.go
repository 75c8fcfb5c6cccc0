package funding

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, s *Source) error
	GetBySourceID(ctx context.Context, sourceID string) (*Source, error)
	ListActive(ctx context.Context) ([]Source, error)
	// Debit subtracts amount from the source's balance. The write is guarded:
	// if the resulting balance would not stay positive, nothing changes and
	// ErrInsufficientBalance is returned.
	Debit(ctx context.Context, sourceID string, amount decimal.Decimal) error
}
