package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/repository"
)

// ErrEmptySale rejects a sale submitted without any line.
var ErrEmptySale = errors.New("Please add at least one product to the sale!")

// InsufficientStockError aborts a sale whose line exceeds the product's
// on-hand quantity. The message names the short product.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s!", e.ProductName)
}

type SaleService interface {
	Create(ctx context.Context, userID uint, in dto.CreateSaleInput) (*model.Sale, error)
	Get(ctx context.Context, id uint) (*model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	Delete(ctx context.Context, id uint) error
}

type saleService struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	history  repository.StockHistoryRepository
}

func NewSaleService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	history repository.StockHistoryRepository,
) SaleService {
	return &saleService{sales: sales, products: products, history: history}
}

// Create runs the whole sale as one transaction:
//
//  1. lock each line's product row (FOR UPDATE) in caller order
//  2. verify on-hand quantity covers the line; any shortage aborts the
//     entire sale and reports which product is short
//  3. insert the header and items
//  4. decrement each product and append its "sale" ledger row
//
// Either everything commits or nothing does — no partial sale, no decrement
// without its ledger row.
func (s *saleService) Create(ctx context.Context, userID uint, in dto.CreateSaleInput) (*model.Sale, error) {
	if len(in.Lines) == 0 {
		return nil, ErrEmptySale
	}

	var sale model.Sale
	txErr := runTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		type resolvedLine struct {
			product  *model.Product
			quantity int
			price    decimal.Decimal
			subtotal decimal.Decimal
		}

		resolved := make([]resolvedLine, 0, len(in.Lines))
		total := decimal.Zero

		for _, line := range in.Lines {
			p, err := s.products.FindByIDForUpdateTx(tx, line.ProductID)
			if err != nil {
				return ErrNotFound
			}
			if p.Quantity < line.Quantity {
				return &InsufficientStockError{ProductName: p.Name}
			}
			subtotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)
			resolved = append(resolved, resolvedLine{
				product:  p,
				quantity: line.Quantity,
				price:    line.UnitPrice,
				subtotal: subtotal,
			})
		}

		uid := userID
		sale = model.Sale{
			CustomerID:    in.CustomerID,
			TotalAmount:   total,
			PaymentMethod: in.PaymentMethod,
			Status:        "completed",
			CreatedBy:     &uid,
		}
		for _, r := range resolved {
			sale.Items = append(sale.Items, model.SaleItem{
				ProductID: r.product.ID,
				Quantity:  r.quantity,
				UnitPrice: r.price,
				Subtotal:  r.subtotal,
			})
		}
		if err := s.sales.CreateTx(tx, &sale); err != nil {
			return err
		}

		for _, r := range resolved {
			previous := r.product.Quantity
			next := previous - r.quantity
			if err := s.products.SetQuantityTx(tx, r.product.ID, next); err != nil {
				return err
			}
			saleRef := sale.ID
			refType := model.ChangeTypeSale
			if err := s.history.CreateTx(tx, &model.StockHistory{
				ProductID:        r.product.ID,
				ChangeType:       model.ChangeTypeSale,
				QuantityChange:   -r.quantity,
				PreviousQuantity: previous,
				NewQuantity:      next,
				ReferenceID:      &saleRef,
				ReferenceType:    &refType,
				CreatedBy:        &uid,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &sale, nil
}

func (s *saleService) Get(ctx context.Context, id uint) (*model.Sale, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return sale, nil
}

func (s *saleService) List(ctx context.Context) ([]model.Sale, error) {
	return s.sales.List(ctx)
}

// Delete removes the sale and restores each line's quantity by its recorded
// amount. No compensating ledger row is written for the restore — this
// mirrors the system's documented behavior and is the one known breach of
// the ledger-equals-quantity invariant (DESIGN.md, open question 1).
func (s *saleService) Delete(ctx context.Context, id uint) error {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}

	return runTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		for _, item := range sale.Items {
			p, err := s.products.FindByIDForUpdateTx(tx, item.ProductID)
			if err != nil {
				return err
			}
			if err := s.products.SetQuantityTx(tx, item.ProductID, p.Quantity+item.Quantity); err != nil {
				return err
			}
		}
		return s.sales.DeleteTx(tx, id)
	})
}
