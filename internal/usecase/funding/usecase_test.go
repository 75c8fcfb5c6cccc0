package funding

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domain "lendcore-backend/internal/domain/funding"
	"lendcore-backend/internal/testutil/fundingmock"
)

func TestCreate_Success(t *testing.T) {
	var created *domain.Source
	repo := &fundingmock.Repo{
		CreateFn: func(ctx context.Context, s *domain.Source) error {
			created = s
			return nil
		},
	}
	uc := NewUsecase(repo)

	dto, err := uc.Create(context.Background(), CreateSourceInput{
		Name:    "MTN MoMo float",
		Kind:    "mobile_money",
		Balance: decimal.NewFromInt(5_000_000),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created == nil {
		t.Fatal("repo.Create never called")
	}
	if created.Status != domain.SourceActive {
		t.Fatalf("status = %s, want active", created.Status)
	}
	if len(dto.SourceID) != 32 {
		t.Fatalf("source id %q, want 32-char id", dto.SourceID)
	}
	if dto.Kind != "mobile_money" {
		t.Fatalf("kind = %s", dto.Kind)
	}
}

func TestCreate_Invalid(t *testing.T) {
	uc := NewUsecase(&fundingmock.Repo{})
	cases := []struct {
		name string
		in   CreateSourceInput
	}{
		{"empty name", CreateSourceInput{Kind: "bank", Balance: decimal.NewFromInt(100)}},
		{"unknown kind", CreateSourceInput{Name: "x", Kind: "crypto", Balance: decimal.NewFromInt(100)}},
		{"negative balance", CreateSourceInput{Name: "x", Kind: "cash", Balance: decimal.NewFromInt(-1)}},
	}
	for _, tc := range cases {
		if _, err := uc.Create(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", tc.name, err)
		}
	}
}

func TestListActive(t *testing.T) {
	repo := &fundingmock.Repo{
		ListActiveFn: func(context.Context) ([]domain.Source, error) {
			return []domain.Source{
				{SourceID: "a", Name: "Centenary", Kind: domain.KindBank, Status: domain.SourceActive},
				{SourceID: "b", Name: "Branch safe", Kind: domain.KindCash, Status: domain.SourceActive},
			}, nil
		},
	}
	out, err := NewUsecase(repo).ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Kind != "bank" || out[1].Kind != "cash" {
		t.Fatalf("kinds = %s/%s", out[0].Kind, out[1].Kind)
	}
}
