package mysql

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	fundingDomain "lendcore-backend/internal/domain/funding"
)

type FundingRepository struct{ db *gorm.DB }

func NewFundingRepository(db *gorm.DB) *FundingRepository { return &FundingRepository{db: db} }

func (r *FundingRepository) Create(ctx context.Context, s *fundingDomain.Source) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *FundingRepository) GetBySourceID(ctx context.Context, sourceID string) (*fundingDomain.Source, error) {
	var out fundingDomain.Source
	res := r.db.WithContext(ctx).Where("source_id = ?", sourceID).First(&out)
	return &out, res.Error
}

func (r *FundingRepository) ListActive(ctx context.Context) ([]fundingDomain.Source, error) {
	var out []fundingDomain.Source
	res := r.db.WithContext(ctx).
		Where("status = ?", fundingDomain.SourceActive).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// Debit is guarded in SQL: the balance column only moves when the resulting
// balance stays positive, so concurrent debits cannot drive it to zero or
// below. Zero rows affected means the guard failed.
func (r *FundingRepository) Debit(ctx context.Context, sourceID string, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&fundingDomain.Source{}).
		Where("source_id = ? AND status = ? AND balance > ?", sourceID, fundingDomain.SourceActive, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fundingDomain.ErrInsufficientBalance
	}
	return nil
}
