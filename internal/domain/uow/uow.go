package uow

import (
	"context"

	"lendcore-backend/internal/domain/client"
	"lendcore-backend/internal/domain/funding"
	"lendcore-backend/internal/domain/loan"
)

type Repos struct {
	Loans   loan.Repository
	Clients client.Repository
	Funding funding.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
