package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"lendcore-backend/internal/domain/client"
	"lendcore-backend/internal/domain/loan"
	"lendcore-backend/internal/domain/risk"
	"lendcore-backend/internal/domain/schedule"
	"lendcore-backend/pkg/id"
)

var (
	ErrInvalidInput = errors.New("invalid loan input")
	hundred         = decimal.NewFromInt(100)
)

type Usecase struct {
	loans    loan.Repository
	clients  client.Repository
	currency string
}

// NewUsecase: currency is the organization's disbursement currency, passed
// explicitly rather than read from ambient state.
func NewUsecase(loans loan.Repository, clients client.Repository, currency string) *Usecase {
	return &Usecase{loans: loans, clients: clients, currency: currency}
}

// Create originates a loan in pending status. The terms must compute to a
// valid schedule, and a client may hold only one application in the
// assessment pipeline at a time.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if len(in.ClientID) != 32 {
		return nil, fmt.Errorf("%w: client_id must be a 32-char id", ErrInvalidInput)
	}
	if in.Principal.LessThanOrEqual(decimal.Zero) || in.TenorMonths <= 0 {
		return nil, fmt.Errorf("%w: principal and tenor must be positive", ErrInvalidInput)
	}
	if in.AnnualRate.IsNegative() || in.AnnualRate.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: annual rate must be between 0 and 100", ErrInvalidInput)
	}
	method := loan.InterestMethod(in.InterestMethod)
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown interest method %q", ErrInvalidInput, in.InterestMethod)
	}

	cl, err := u.clients.GetByClientID(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, client.ErrNotFound
		}
		return nil, err
	}

	// Block if the client already has a loan in the assessment pipeline.
	open, err := u.loans.GetOpenLoanByClientID(ctx, in.ClientID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("client %s already has an open application: %s", in.ClientID, open.LoanID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	// The terms must yield a schedule before the loan exists.
	if _, err := schedule.Compute(in.Principal, in.AnnualRate, in.TenorMonths, scheduleMethod(method)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	freq := in.RepaymentFrequency
	if freq == "" {
		freq = "monthly"
	}
	now := time.Now().UTC()
	l := &loan.Loan{
		LoanID:             id.NewID32(),
		LoanNumber:         id.NewLoanNumber(now),
		ClientID:           in.ClientID,
		Principal:          in.Principal,
		AnnualRate:         in.AnnualRate,
		InterestMethod:     method,
		TenorMonths:        in.TenorMonths,
		RepaymentFrequency: freq,
		Status:             loan.StatusPending,
		StatusUpdatedAt:    now,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return u.toDTO(l, cl), nil
}

// Get returns the loan with its risk assessment recomputed from current data.
func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	cl, err := u.clients.GetByClientID(ctx, l.ClientID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return u.toDTO(l, cl), nil
}

// List returns all loans, each with a fresh risk assessment.
func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*client.Client, len(clients))
	for i := range clients {
		byID[clients[i].ClientID] = &clients[i]
	}

	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *u.toDTO(&ls[i], byID[ls[i].ClientID]))
	}
	return out, nil
}

// Schedule recomputes the repayment schedule from the loan's stored terms.
func (u *Usecase) Schedule(ctx context.Context, loanID string) (*ScheduleDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	res, err := schedule.Compute(l.Principal, l.AnnualRate, l.TenorMonths, scheduleMethod(l.InterestMethod))
	if err != nil {
		return nil, err
	}
	return &ScheduleDTO{LoanID: l.LoanID, Currency: u.currency, Quote: res}, nil
}

// Quote computes an ad hoc schedule without touching any loan record.
func (u *Usecase) Quote(in QuoteInput) (*ScheduleDTO, error) {
	method := loan.InterestMethod(in.InterestMethod)
	if !method.Valid() {
		return nil, schedule.ErrNotComputable
	}
	res, err := schedule.Compute(in.Principal, in.AnnualRate, in.TenorMonths, scheduleMethod(method))
	if err != nil {
		return nil, err
	}
	return &ScheduleDTO{Currency: u.currency, Quote: res}, nil
}

func (u *Usecase) toDTO(l *loan.Loan, cl *client.Client) *LoanDTO {
	in := risk.Input{
		Principal:         l.Principal,
		AnnualRatePercent: l.AnnualRate,
		TenorMonths:       l.TenorMonths,
	}
	if cl != nil {
		in.DateOfBirth = cl.DateOfBirth
		in.HasGuarantor = cl.HasGuarantor
		in.HasCollateral = cl.HasCollateral
	}
	score, level, credit := riskOf(risk.Classify(in))

	return &LoanDTO{
		LoanID:             l.LoanID,
		LoanNumber:         l.LoanNumber,
		ClientID:           l.ClientID,
		Principal:          l.Principal,
		AnnualRate:         l.AnnualRate,
		InterestMethod:     string(l.InterestMethod),
		TenorMonths:        l.TenorMonths,
		RepaymentFrequency: l.RepaymentFrequency,
		Currency:           u.currency,
		Status:             string(l.Status),
		ApprovedAt:         l.ApprovedAt,
		DisbursedAt:        l.DisbursedAt,
		FundingSourceID:    l.FundingSourceID,
		RejectionReason:    l.RejectionReason,
		CreatedAt:          l.CreatedAt,
		RiskScore:          score,
		RiskLevel:          level,
		CreditScore:        credit,
	}
}

func scheduleMethod(m loan.InterestMethod) schedule.Method {
	if m == loan.MethodReducingBalance {
		return schedule.MethodReducingBalance
	}
	return schedule.MethodFlat
}
