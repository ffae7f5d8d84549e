package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
)

type stubSupplierRepo struct {
	suppliers map[uint]*model.Supplier
	nextID    uint
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uint]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	r.nextID++
	s.ID = r.nextID
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	list := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		list = append(list, *s)
	}
	return list, nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uint) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *s
	return &copy, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uint) error {
	delete(r.suppliers, id)
	return nil
}

func (r *stubSupplierRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.suppliers)), nil
}

type stubCustomerRepo struct {
	customers map[uint]*model.Customer
	nextID    uint
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uint]*model.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	r.nextID++
	c.ID = r.nextID
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	list := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		list = append(list, *c)
	}
	return list, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uint) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *c
	return &copy, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id uint) error {
	delete(r.customers, id)
	return nil
}

func (r *stubCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.customers)), nil
}

func TestDashboardAggregates(t *testing.T) {
	products := newStubProductRepo()
	categories := newStubCategoryRepo()
	suppliers := newStubSupplierRepo()
	customers := newStubCustomerRepo()
	sales := newStubSaleRepo()
	history := &stubHistoryRepo{}

	require.NoError(t, categories.Create(context.Background(), &model.Category{Name: "Electronics"}))
	laptop := seedProduct(products, "Laptop", "45000", 10)
	low := seedProduct(products, "Mouse", "500", 2)

	saleSvc := NewSaleService(sales, products, history)
	_, err := saleSvc.Create(context.Background(), 1, dto.CreateSaleInput{
		PaymentMethod: "cash",
		Lines: []dto.DocumentLine{
			{ProductID: laptop.ID, Quantity: 1, UnitPrice: laptop.UnitPrice},
		},
	})
	require.NoError(t, err)

	svc := NewReportService(products, categories, suppliers, customers, sales, history)
	data, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), data.TotalProducts)
	assert.Equal(t, int64(1), data.TotalCategories)
	assert.Equal(t, int64(0), data.TotalSuppliers)
	assert.True(t, data.TodaySales.Equal(decimal.NewFromInt(45000)))

	lowNames := make([]string, 0, len(data.LowStock))
	for _, p := range data.LowStock {
		lowNames = append(lowNames, p.Name)
	}
	assert.Contains(t, lowNames, low.Name)

	// 9 laptops at 45000 plus 2 mice at 500.
	assert.True(t, data.TotalValue.Equal(decimal.NewFromInt(406000)))
}

func TestSupplierDeleteLeavesOrdersBehind(t *testing.T) {
	suppliers := newStubSupplierRepo()
	svc := NewSupplierService(suppliers)

	s, err := svc.Create(context.Background(), dto.SupplierForm{Name: "Acme Traders"})
	require.NoError(t, err)

	products := newStubProductRepo()
	purchases := newStubPurchaseRepo()
	purchaseSvc := NewPurchaseService(purchases, products, &stubHistoryRepo{})
	laptop := seedProduct(products, "Laptop", "45000", 10)
	sid := s.ID
	po, err := purchaseSvc.Create(context.Background(), 1, dto.CreatePurchaseInput{
		SupplierID: &sid,
		Lines: []dto.DocumentLine{
			{ProductID: laptop.ID, Quantity: 5, UnitPrice: decimal.NewFromInt(40000)},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), s.ID))

	// The order survives with its recorded supplier id now dangling.
	stored, err := purchaseSvc.Get(context.Background(), po.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.SupplierID)
	assert.Equal(t, s.ID, *stored.SupplierID)
	_, err = svc.Get(context.Background(), s.ID)
	assert.Error(t, err)
}
