package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
)

// StockHistoryRepository writes and reads the append-only stock ledger.
// There is no update or delete: ledger rows are immutable once written.
type StockHistoryRepository interface {
	CreateTx(tx *gorm.DB, h *model.StockHistory) error
	ListRecent(ctx context.Context, limit int) ([]model.StockHistory, error)
	ListByProduct(ctx context.Context, productID uint) ([]model.StockHistory, error)
}

type stockHistoryRepo struct{ db *gorm.DB }

func NewStockHistoryRepository(db *gorm.DB) StockHistoryRepository {
	return &stockHistoryRepo{db: db}
}

func (r *stockHistoryRepo) CreateTx(tx *gorm.DB, h *model.StockHistory) error {
	return tx.Create(h).Error
}

func (r *stockHistoryRepo) ListRecent(ctx context.Context, limit int) ([]model.StockHistory, error) {
	var history []model.StockHistory
	err := r.db.WithContext(ctx).Preload("Product").
		Order("created_at DESC").Limit(limit).Find(&history).Error
	return history, err
}

func (r *stockHistoryRepo) ListByProduct(ctx context.Context, productID uint) ([]model.StockHistory, error) {
	var history []model.StockHistory
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).
		Order("created_at DESC").Find(&history).Error
	return history, err
}
