package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/repository"
)

var (
	ErrProductSKUExists = errors.New("Product SKU already exists!")
	ErrInvalidPrice     = errors.New("Invalid unit price")
)

type ProductService interface {
	Create(ctx context.Context, userID uint, req dto.ProductForm) (*model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListInStock(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id uint, req dto.ProductForm) error
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	products repository.ProductRepository
	history  repository.StockHistoryRepository
}

func NewProductService(products repository.ProductRepository, history repository.StockHistoryRepository) ProductService {
	return &productService{products: products, history: history}
}

// Create inserts the product and, when it starts with stock on hand, the
// opening "initial_stock" ledger row — both in one transaction so the
// product never exists with an unexplained quantity.
func (s *productService) Create(ctx context.Context, userID uint, req dto.ProductForm) (*model.Product, error) {
	price, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return nil, ErrInvalidPrice
	}

	if req.SKU != "" {
		existing, err := s.products.FindBySKU(ctx, req.SKU)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrProductSKUExists
		}
	}

	p := &model.Product{
		Name:         req.Name,
		CategoryID:   req.CategoryID,
		UnitPrice:    price,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		SKU:          req.SKU,
	}
	if req.Description != "" {
		desc := req.Description
		p.Description = &desc
	}

	txErr := runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		if err := s.products.CreateTx(tx, p); err != nil {
			return err
		}
		if p.Quantity > 0 {
			uid := userID
			return s.history.CreateTx(tx, &model.StockHistory{
				ProductID:        p.ID,
				ChangeType:       model.ChangeTypeInitialStock,
				QuantityChange:   p.Quantity,
				PreviousQuantity: 0,
				NewQuantity:      p.Quantity,
				CreatedBy:        &uid,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return p, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) ListInStock(ctx context.Context) ([]model.Product, error) {
	return s.products.ListInStock(ctx)
}

// Update overwrites the editable fields. Quantity is deliberately not one of
// them: stock only moves through the ledger operations.
func (s *productService) Update(ctx context.Context, id uint, req dto.ProductForm) error {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}

	price, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return ErrInvalidPrice
	}

	if req.SKU != "" && req.SKU != p.SKU {
		existing, err := s.products.FindBySKU(ctx, req.SKU)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil && existing.ID != id {
			return ErrProductSKUExists
		}
	}

	p.Name = req.Name
	p.CategoryID = req.CategoryID
	p.UnitPrice = price
	p.ReorderLevel = req.ReorderLevel
	p.SKU = req.SKU
	if req.Description != "" {
		desc := req.Description
		p.Description = &desc
	} else {
		p.Description = nil
	}
	return s.products.Update(ctx, p)
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.products.Delete(ctx, id)
}
