package lifecycle

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"lendcore-backend/internal/domain/funding"
	"lendcore-backend/internal/domain/loan"
	"lendcore-backend/internal/domain/uow"
)

// Usecase drives a loan through the approval pipeline. Every transition runs
// inside a unit of work with the loan row locked, and the status write is a
// compare-and-swap on the status read under that lock; status, lifecycle
// stamps and the ledger debit land together or not at all.
type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Advance moves the loan exactly one step forward along the pipeline.
// Reaching approved stamps the approval date; reaching disbursed requires a
// funding source able to cover the principal and debits it in the same
// transaction.
func (u *Usecase) Advance(ctx context.Context, in AdvanceInput) (*TransitionDTO, error) {
	if !in.Confirmed {
		return nil, ErrNotConfirmed
	}

	var dto *TransitionDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		to, ok := loan.Next(l.Status)
		if !ok {
			return loan.ErrInvalidTransition
		}
		from := l.Status
		now := time.Now().UTC()

		switch to {
		case loan.StatusApproved:
			l.ApprovedAt = &now
		case loan.StatusDisbursed:
			if err := u.disburse(ctx, r, l, in, now); err != nil {
				return err
			}
		}

		l.Status = to
		l.StatusUpdatedAt = now
		if err := r.Loans.UpdateStatus(ctx, l, from); err != nil {
			return err
		}

		dto = &TransitionDTO{
			LoanID:      l.LoanID,
			From:        from,
			To:          to,
			ApprovedAt:  l.ApprovedAt,
			DisbursedAt: l.DisbursedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// disburse validates the funding precondition and debits the source. Called
// with the loan row already locked.
func (u *Usecase) disburse(ctx context.Context, r uow.Repos, l *loan.Loan, in AdvanceInput, now time.Time) error {
	if in.FundingSourceID == "" {
		return funding.ErrNoFundingSource
	}
	src, err := r.Funding.GetBySourceID(ctx, in.FundingSourceID)
	if err != nil {
		// only a missing source maps to the precondition error; anything
		// else (connection loss etc.) must surface as-is
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, funding.ErrNotFound) {
			return funding.ErrNoFundingSource
		}
		return err
	}
	if src.Status != funding.SourceActive {
		return funding.ErrNoFundingSource
	}
	// The source must stay above zero after the debit.
	if src.Balance.LessThanOrEqual(l.Principal) {
		return funding.ErrInsufficientBalance
	}
	if err := r.Funding.Debit(ctx, src.SourceID, l.Principal); err != nil {
		return err
	}

	at := in.DisbursementDate
	if at.IsZero() {
		at = now
	} else {
		at = at.UTC()
	}
	l.DisbursedAt = &at
	sid := src.SourceID
	l.FundingSourceID = &sid
	return nil
}

// Reject moves the loan to the terminal rejected state and records why.
// Valid from any non-terminal state; irreversible.
func (u *Usecase) Reject(ctx context.Context, loanID, reason string) (*TransitionDTO, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrNoReason
	}

	var dto *TransitionDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if !loan.CanTransition(l.Status, loan.StatusRejected) {
			return loan.ErrInvalidTransition
		}
		from := l.Status
		now := time.Now().UTC()

		l.Status = loan.StatusRejected
		l.StatusUpdatedAt = now
		l.RejectionReason = &reason
		if err := r.Loans.UpdateStatus(ctx, l, from); err != nil {
			return err
		}

		dto = &TransitionDTO{LoanID: l.LoanID, From: from, To: loan.StatusRejected}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// BulkAdvance applies Advance independently to each loan. There is no
// atomicity across the batch: each item carries its own outcome.
func (u *Usecase) BulkAdvance(ctx context.Context, loanIDs []string, confirmed bool) []BulkItem {
	out := make([]BulkItem, 0, len(loanIDs))
	for _, id := range loanIDs {
		dto, err := u.Advance(ctx, AdvanceInput{LoanID: id, Confirmed: confirmed})
		out = append(out, BulkItem{LoanID: id, Transition: dto, Err: err})
	}
	return out
}

// BulkReject applies Reject independently to each loan with one shared reason.
func (u *Usecase) BulkReject(ctx context.Context, loanIDs []string, reason string) []BulkItem {
	out := make([]BulkItem, 0, len(loanIDs))
	for _, id := range loanIDs {
		dto, err := u.Reject(ctx, id, reason)
		out = append(out, BulkItem{LoanID: id, Transition: dto, Err: err})
	}
	return out
}
