package service

import (
	"context"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/repository"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.CustomerForm) (*model.Customer, error)
	Get(ctx context.Context, id uint) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, id uint, req dto.CustomerForm) error
	Delete(ctx context.Context, id uint) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, req dto.CustomerForm) (*model.Customer, error) {
	customer := &model.Customer{
		Name:    req.Name,
		Email:   optional(req.Email),
		Phone:   optional(req.Phone),
		Address: optional(req.Address),
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Get(ctx context.Context, id uint) (*model.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.repo.List(ctx)
}

func (s *customerService) Update(ctx context.Context, id uint, req dto.CustomerForm) error {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	customer.Name = req.Name
	customer.Email = optional(req.Email)
	customer.Phone = optional(req.Phone)
	customer.Address = optional(req.Address)
	return s.repo.Update(ctx, customer)
}

// Delete removes the customer unconditionally; past sales keep the recorded
// customer_id and render as "Walk-in Customer" when it no longer resolves.
func (s *customerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
