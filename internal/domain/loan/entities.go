package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("invalid loan status transition")
	// ErrStatusConflict means the loan's status changed between read and
	// write (lost the compare-and-swap). Retryable by the caller.
	ErrStatusConflict = errors.New("loan status changed concurrently")
)

type InterestMethod string

const (
	MethodFlat            InterestMethod = "flat"
	MethodReducingBalance InterestMethod = "reducing_balance"
)

func (m InterestMethod) Valid() bool {
	return m == MethodFlat || m == MethodReducingBalance
}

type Loan struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	LoanID string `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	// Human-readable number, e.g. LN-202608-104233
	LoanNumber string `gorm:"size:24;index" json:"loan_number"`
	ClientID   string `gorm:"size:32;index:idx_loans_client_active" json:"client_id"`

	Principal          decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	AnnualRate         decimal.Decimal `gorm:"type:decimal(6,2)" json:"annual_rate"`
	InterestMethod     InterestMethod  `gorm:"size:20;default:'flat'" json:"interest_method"`
	TenorMonths        int             `gorm:"column:tenor_months" json:"tenor_months"`
	RepaymentFrequency string          `gorm:"size:16;default:'monthly'" json:"repayment_frequency"`

	Status          Status     `gorm:"type:enum('pending','under_review','need_approval','approved','disbursed','active','in_arrears','rejected');default:'pending'" json:"status"`
	StatusUpdatedAt time.Time  `gorm:"autoCreateTime" json:"status_updated_at"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	DisbursedAt     *time.Time `gorm:"column:disbursed_at" json:"disbursed_at,omitempty"`
	FundingSourceID *string    `gorm:"size:32" json:"funding_source_id,omitempty"`
	RejectionReason *string    `gorm:"type:text" json:"rejection_reason,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
