package service

import (
	"context"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/repository"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.SupplierForm) (*model.Supplier, error)
	Get(ctx context.Context, id uint) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, id uint, req dto.SupplierForm) error
	Delete(ctx context.Context, id uint) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, req dto.SupplierForm) (*model.Supplier, error) {
	supplier := &model.Supplier{
		Name:          req.Name,
		ContactPerson: optional(req.ContactPerson),
		Email:         optional(req.Email),
		Phone:         optional(req.Phone),
		Address:       optional(req.Address),
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Get(ctx context.Context, id uint) (*model.Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *supplierService) List(ctx context.Context) ([]model.Supplier, error) {
	return s.repo.List(ctx)
}

func (s *supplierService) Update(ctx context.Context, id uint, req dto.SupplierForm) error {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	supplier.Name = req.Name
	supplier.ContactPerson = optional(req.ContactPerson)
	supplier.Email = optional(req.Email)
	supplier.Phone = optional(req.Phone)
	supplier.Address = optional(req.Address)
	return s.repo.Update(ctx, supplier)
}

// Delete removes the supplier unconditionally. Purchase orders keep their
// recorded supplier_id; views fall back to "Unknown" when it no longer
// resolves.
func (s *supplierService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// optional maps an empty form field to a NULL column.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
