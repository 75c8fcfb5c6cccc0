package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row for the duration of the enclosing
	// transaction (SELECT ... FOR UPDATE).
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// GetOpenLoanByClientID returns the client's most recent loan still in
	// the assessment pipeline (pending/under_review/need_approval), if any.
	GetOpenLoanByClientID(ctx context.Context, clientID string) (*Loan, error)
	List(ctx context.Context) ([]Loan, error)
	// UpdateStatus writes l's status and lifecycle stamps with a
	// compare-and-swap on expected: if the stored status is no longer
	// expected, nothing is written and ErrStatusConflict is returned.
	UpdateStatus(ctx context.Context, l *Loan, expected Status) error
	Save(ctx context.Context, l *Loan) error
}
