package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
)

type PurchaseRepository interface {
	CreateTx(tx *gorm.DB, po *model.PurchaseOrder) error
	FindByID(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	List(ctx context.Context) ([]model.PurchaseOrder, error)
	MarkReceivedTx(tx *gorm.DB, id uint) (bool, error)
	DeleteTx(tx *gorm.DB, id uint) error
	DB() *gorm.DB
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) DB() *gorm.DB { return r.db }

func (r *purchaseRepo) CreateTx(tx *gorm.DB, po *model.PurchaseOrder) error {
	return tx.Create(po).Error
}

func (r *purchaseRepo) FindByID(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Items.Product").Preload("Supplier").
		First(&po, id).Error
	if err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *purchaseRepo) List(ctx context.Context) ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Supplier").
		Order("order_date DESC").Find(&orders).Error
	return orders, err
}

// MarkReceivedTx flips a pending order to received. The status guard lives in
// the WHERE clause so concurrent receives race on the row update, not on a
// stale read; false means another transaction already claimed the order.
func (r *purchaseRepo) MarkReceivedTx(tx *gorm.DB, id uint) (bool, error) {
	res := tx.Model(&model.PurchaseOrder{}).
		Where("id = ? AND status = ?", id, model.PurchaseStatusPending).
		Update("status", model.PurchaseStatusReceived)
	return res.RowsAffected > 0, res.Error
}

func (r *purchaseRepo) DeleteTx(tx *gorm.DB, id uint) error {
	if err := tx.Where("purchase_order_id = ?", id).Delete(&model.PurchaseItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.PurchaseOrder{}, id).Error
}
