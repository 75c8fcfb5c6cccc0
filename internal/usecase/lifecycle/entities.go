package lifecycle

import (
	"errors"
	"time"

	"lendcore-backend/internal/domain/loan"
)

var (
	// ErrNotConfirmed: transitions are human-in-the-loop checkpoints; the
	// caller must pass an explicit confirmation flag.
	ErrNotConfirmed = errors.New("transition requires explicit confirmation")
	ErrNoReason     = errors.New("rejection reason is required")
)

type AdvanceInput struct {
	LoanID    string
	Confirmed bool
	// FundingSourceID is required only for the approved → disbursed step.
	FundingSourceID string
	// DisbursementDate defaults to now when zero.
	DisbursementDate time.Time
}

type TransitionDTO struct {
	LoanID      string      `json:"loan_id"`
	From        loan.Status `json:"from"`
	To          loan.Status `json:"to"`
	ApprovedAt  *time.Time  `json:"approved_at,omitempty"`
	DisbursedAt *time.Time  `json:"disbursed_at,omitempty"`
}

// BulkItem is the per-loan outcome of a bulk operation. Err is nil on
// success; one loan's failure never blocks the rest of the batch.
type BulkItem struct {
	LoanID     string
	Transition *TransitionDTO
	Err        error
}
