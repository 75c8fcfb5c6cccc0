package client

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("client not found")

// Client carries borrower identity and the underwriting attributes the risk
// classifier reads. The engine never mutates a client.
type Client struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	ClientID string `gorm:"size:32;uniqueIndex:ux_clients_client_id_active" json:"client_id"`
	FullName string `gorm:"size:120" json:"full_name"`
	Phone    string `gorm:"size:32" json:"phone"`

	// Nullable: unknown date of birth skips the age factor in scoring.
	DateOfBirth   *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	HasGuarantor  bool       `json:"has_guarantor"`
	HasCollateral bool       `json:"has_collateral"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Client) TableName() string { return "clients" }
