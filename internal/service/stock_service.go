package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/repository"
)

// StockService owns manual stock adjustments and ledger reads. Document
// driven stock changes (sales, purchase receipts) apply the same pairing —
// quantity write plus ledger row in one transaction — inside their own
// services.
type StockService interface {
	Adjust(ctx context.Context, userID, productID uint, req dto.AdjustStockForm) error
	History(ctx context.Context, limit int) ([]model.StockHistory, error)
	HistoryForProduct(ctx context.Context, productID uint) ([]model.StockHistory, error)
}

type stockService struct {
	products repository.ProductRepository
	history  repository.StockHistoryRepository
}

func NewStockService(products repository.ProductRepository, history repository.StockHistoryRepository) StockService {
	return &stockService{products: products, history: history}
}

// Adjust applies a signed manual correction. The product row is locked for
// the duration of the transaction. There is no floor check: a removal larger
// than the on-hand quantity yields a negative result, which is recorded
// as-is (DESIGN.md, open question 2).
func (s *stockService) Adjust(ctx context.Context, userID, productID uint, req dto.AdjustStockForm) error {
	reason := req.Reason
	if reason == "" {
		reason = model.ChangeTypeManual
	}

	return runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		p, err := s.products.FindByIDForUpdateTx(tx, productID)
		if err != nil {
			return ErrNotFound
		}

		change := req.Quantity
		if req.AdjustmentType != "add" {
			change = -req.Quantity
		}
		previous := p.Quantity
		next := previous + change

		if err := s.products.SetQuantityTx(tx, productID, next); err != nil {
			return err
		}

		uid := userID
		return s.history.CreateTx(tx, &model.StockHistory{
			ProductID:        productID,
			ChangeType:       reason,
			QuantityChange:   change,
			PreviousQuantity: previous,
			NewQuantity:      next,
			CreatedBy:        &uid,
		})
	})
}

func (s *stockService) History(ctx context.Context, limit int) ([]model.StockHistory, error) {
	return s.history.ListRecent(ctx, limit)
}

func (s *stockService) HistoryForProduct(ctx context.Context, productID uint) ([]model.StockHistory, error) {
	return s.history.ListByProduct(ctx, productID)
}
