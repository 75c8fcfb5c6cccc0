package funding

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("funding source not found")
	// ErrNoFundingSource blocks disbursement when no active source is
	// available or none was selected.
	ErrNoFundingSource = errors.New("no funding source available")
	// ErrInsufficientBalance blocks a debit that would leave the source at
	// zero or below.
	ErrInsufficientBalance = errors.New("funding source balance insufficient")
)

type Kind string

const (
	KindBank        Kind = "bank"
	KindCash        Kind = "cash"
	KindMobileMoney Kind = "mobile_money"
)

type SourceStatus string

const (
	SourceActive   SourceStatus = "active"
	SourceInactive SourceStatus = "inactive"
)

// Source is a bank, cash, or mobile-money account loans are disbursed from.
type Source struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	SourceID string          `gorm:"size:32;uniqueIndex:ux_funding_source_id_active" json:"source_id"`
	Name     string          `gorm:"size:80" json:"name"`
	Kind     Kind            `gorm:"size:16" json:"kind"`
	Balance  decimal.Decimal `gorm:"type:decimal(18,2)" json:"balance"`
	Status   SourceStatus    `gorm:"size:16;default:'active'" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Source) TableName() string { return "funding_sources" }
