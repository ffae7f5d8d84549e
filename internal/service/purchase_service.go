package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/repository"
)

var (
	ErrEmptyPurchase       = errors.New("Please add at least one product to the purchase order!")
	ErrAlreadyReceived     = errors.New("Purchase order already received!")
	ErrDeleteReceivedOrder = errors.New("Cannot delete received purchase order!")
)

type PurchaseService interface {
	Create(ctx context.Context, userID uint, in dto.CreatePurchaseInput) (*model.PurchaseOrder, error)
	Get(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	List(ctx context.Context) ([]model.PurchaseOrder, error)
	Receive(ctx context.Context, userID, id uint) error
	Delete(ctx context.Context, id uint) error
}

type purchaseService struct {
	purchases repository.PurchaseRepository
	products  repository.ProductRepository
	history   repository.StockHistoryRepository
}

func NewPurchaseService(
	purchases repository.PurchaseRepository,
	products repository.ProductRepository,
	history repository.StockHistoryRepository,
) PurchaseService {
	return &purchaseService{purchases: purchases, products: products, history: history}
}

// Create stores the order header and lines. Stock is not touched until the
// order is received.
func (s *purchaseService) Create(ctx context.Context, userID uint, in dto.CreatePurchaseInput) (*model.PurchaseOrder, error) {
	if len(in.Lines) == 0 {
		return nil, ErrEmptyPurchase
	}

	total := decimal.Zero
	uid := userID
	po := model.PurchaseOrder{
		SupplierID:       in.SupplierID,
		Status:           model.PurchaseStatusPending,
		OrderDate:        time.Now().UTC(),
		ExpectedDelivery: in.ExpectedDelivery,
		CreatedBy:        &uid,
	}
	for _, line := range in.Lines {
		subtotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(subtotal)
		po.Items = append(po.Items, model.PurchaseItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  subtotal,
		})
	}
	po.TotalAmount = total

	txErr := runTx(ctx, s.purchases.DB(), func(tx *gorm.DB) error {
		return s.purchases.CreateTx(tx, &po)
	})
	if txErr != nil {
		return nil, txErr
	}
	return &po, nil
}

func (s *purchaseService) Get(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	po, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return po, nil
}

func (s *purchaseService) List(ctx context.Context) ([]model.PurchaseOrder, error) {
	return s.purchases.List(ctx)
}

// Receive applies the order to stock exactly once. The status flip is a
// conditional update executed first inside the transaction, so of two
// concurrent receives only one claims the order and the other rolls back
// without touching stock. On first receipt every line increments its product
// and appends a "purchase" ledger row.
func (s *purchaseService) Receive(ctx context.Context, userID, id uint) error {
	po, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if po.Status == model.PurchaseStatusReceived {
		return ErrAlreadyReceived
	}

	return runTx(ctx, s.purchases.DB(), func(tx *gorm.DB) error {
		claimed, err := s.purchases.MarkReceivedTx(tx, id)
		if err != nil {
			return err
		}
		if !claimed {
			return ErrAlreadyReceived
		}

		uid := userID
		for _, item := range po.Items {
			p, err := s.products.FindByIDForUpdateTx(tx, item.ProductID)
			if err != nil {
				return err
			}
			previous := p.Quantity
			next := previous + item.Quantity
			if err := s.products.SetQuantityTx(tx, item.ProductID, next); err != nil {
				return err
			}
			orderRef := po.ID
			refType := model.ChangeTypePurchase
			if err := s.history.CreateTx(tx, &model.StockHistory{
				ProductID:        item.ProductID,
				ChangeType:       model.ChangeTypePurchase,
				QuantityChange:   item.Quantity,
				PreviousQuantity: previous,
				NewQuantity:      next,
				ReferenceID:      &orderRef,
				ReferenceType:    &refType,
				CreatedBy:        &uid,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete is permitted only while the order is still pending.
func (s *purchaseService) Delete(ctx context.Context, id uint) error {
	po, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if po.Status == model.PurchaseStatusReceived {
		return ErrDeleteReceivedOrder
	}
	return runTx(ctx, s.purchases.DB(), func(tx *gorm.DB) error {
		return s.purchases.DeleteTx(tx, id)
	})
}
