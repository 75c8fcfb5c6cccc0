package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"lendcore-backend/internal/domain/risk"
	"lendcore-backend/internal/domain/schedule"
)

type CreateLoanInput struct {
	ClientID           string
	Principal          decimal.Decimal
	AnnualRate         decimal.Decimal
	InterestMethod     string
	TenorMonths        int
	RepaymentFrequency string
}

type QuoteInput struct {
	Principal      decimal.Decimal
	AnnualRate     decimal.Decimal
	TenorMonths    int
	InterestMethod string
}

type LoanDTO struct {
	LoanID             string          `json:"loan_id"`
	LoanNumber         string          `json:"loan_number"`
	ClientID           string          `json:"client_id"`
	Principal          decimal.Decimal `json:"principal"`
	AnnualRate         decimal.Decimal `json:"annual_rate"`
	InterestMethod     string          `json:"interest_method"`
	TenorMonths        int             `json:"tenor_months"`
	RepaymentFrequency string          `json:"repayment_frequency"`
	Currency           string          `json:"currency"`
	Status             string          `json:"status"`
	ApprovedAt         *time.Time      `json:"approved_at,omitempty"`
	DisbursedAt        *time.Time      `json:"disbursed_at,omitempty"`
	FundingSourceID    *string         `json:"funding_source_id,omitempty"`
	RejectionReason    *string         `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`

	// Derived fresh on every read, never persisted.
	RiskScore   int    `json:"risk_score"`
	RiskLevel   string `json:"risk_level"`
	CreditScore int    `json:"credit_score"`
}

type ScheduleDTO struct {
	LoanID   string           `json:"loan_id,omitempty"`
	Currency string           `json:"currency"`
	Quote    *schedule.Result `json:"quote"`
}

func riskOf(a risk.Assessment) (int, string, int) {
	return a.Score, string(a.Level), a.CreditScore
}
