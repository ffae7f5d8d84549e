package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/repository"
)

// ErrNotFound is the service-level unknown-id error; handlers translate it
// into a 404 JSON body or a flash + redirect depending on the route kind.
var ErrNotFound = errors.New("record not found")

// User-facing category validation errors; their texts double as flash
// messages.
var (
	ErrCategoryExists      = errors.New("Category already exists!")
	ErrCategoryHasProducts = errors.New("Cannot delete category with existing products!")
)

type CategoryService interface {
	Create(ctx context.Context, req dto.CategoryForm) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id uint, req dto.CategoryForm) error
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req dto.CategoryForm) (*model.Category, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	c := &model.Category{Name: req.Name}
	if req.Description != "" {
		desc := req.Description
		c.Description = &desc
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, id uint, req dto.CategoryForm) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	c.Name = req.Name
	if req.Description != "" {
		desc := req.Description
		c.Description = &desc
	} else {
		c.Description = nil
	}
	return s.repo.Update(ctx, c)
}

// Delete removes a category. It is blocked while the category still owns
// products; both records are left untouched in that case.
func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	n, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCategoryHasProducts
	}
	return s.repo.Delete(ctx, id)
}
