package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
)

type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uint) (*model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	Recent(ctx context.Context, limit int) ([]model.Sale, error)
	DeleteTx(tx *gorm.DB, id uint) error

	// Aggregates for dashboard and reports
	TotalToday(ctx context.Context) (decimal.Decimal, error)
	TotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
	TotalAll(ctx context.Context) (decimal.Decimal, error)
	TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error)

	// DB exposes the DB for transaction creation in the service layer.
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uint) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items.Product").Preload("Customer").Preload("Creator").
		First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepo) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Customer").Preload("Creator").
		Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Recent(ctx context.Context, limit int) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Preload("Customer").
		Order("created_at DESC").Limit(limit).Find(&sales).Error
	return sales, err
}

// DeleteTx removes the sale header and its line items. The stock ledger is
// left untouched on purpose — see DESIGN.md, open question 1.
func (r *saleRepo) DeleteTx(tx *gorm.DB, id uint) error {
	if err := tx.Where("sale_id = ?", id).Delete(&model.SaleItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Sale{}, id).Error
}

func (r *saleRepo) TotalToday(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("SUM(total_amount)").
		Where("DATE(created_at) = CURRENT_DATE").
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *saleRepo) TotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("SUM(total_amount)").
		Where("created_at >= ?", since).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *saleRepo) TotalAll(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("SUM(total_amount)").Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *saleRepo) TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error) {
	var rows []dto.TopProduct
	err := r.db.WithContext(ctx).Model(&model.SaleItem{}).
		Select("product.name AS name, SUM(sale_item.quantity) AS total_sold, SUM(sale_item.subtotal) AS total_revenue").
		Joins("JOIN product ON product.id = sale_item.product_id").
		Group("product.id, product.name").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
