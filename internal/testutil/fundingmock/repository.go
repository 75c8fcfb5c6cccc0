package fundingmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "lendcore-backend/internal/domain/funding"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, s *domain.Source) error
	GetBySourceIDFn func(ctx context.Context, sourceID string) (*domain.Source, error)
	ListActiveFn    func(ctx context.Context) ([]domain.Source, error)
	DebitFn         func(ctx context.Context, sourceID string, amount decimal.Decimal) error
}

func (m *Repo) Create(ctx context.Context, s *domain.Source) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySourceID(ctx context.Context, sourceID string) (*domain.Source, error) {
	if m.GetBySourceIDFn != nil {
		return m.GetBySourceIDFn(ctx, sourceID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Source, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Debit(ctx context.Context, sourceID string, amount decimal.Decimal) error {
	if m.DebitFn != nil {
		return m.DebitFn(ctx, sourceID, amount)
	}
	return nil
}
