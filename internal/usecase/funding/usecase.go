package funding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"lendcore-backend/internal/domain/funding"
	"lendcore-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid funding source input")

type CreateSourceInput struct {
	Name    string
	Kind    string
	Balance decimal.Decimal
}

type SourceDTO struct {
	SourceID  string          `json:"source_id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type Usecase struct{ repo funding.Repository }

func NewUsecase(r funding.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, in CreateSourceInput) (*SourceDTO, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	kind := funding.Kind(in.Kind)
	switch kind {
	case funding.KindBank, funding.KindCash, funding.KindMobileMoney:
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, in.Kind)
	}
	if in.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance cannot be negative", ErrInvalidInput)
	}

	s := &funding.Source{
		SourceID: id.NewID32(),
		Name:     in.Name,
		Kind:     kind,
		Balance:  in.Balance,
		Status:   funding.SourceActive,
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

// ListActive returns the sources a disbursement may draw from.
func (u *Usecase) ListActive(ctx context.Context) ([]SourceDTO, error) {
	ss, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SourceDTO, 0, len(ss))
	for i := range ss {
		out = append(out, *toDTO(&ss[i]))
	}
	return out, nil
}

func toDTO(s *funding.Source) *SourceDTO {
	return &SourceDTO{
		SourceID:  s.SourceID,
		Name:      s.Name,
		Kind:      string(s.Kind),
		Balance:   s.Balance,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
}
