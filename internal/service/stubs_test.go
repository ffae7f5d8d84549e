package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
)

// In-memory repository stubs. DB() returns nil so runTx executes the
// transaction body directly, letting service logic run without a database.

// ── Products ─────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product)}
}

func (r *stubProductRepo) add(p *model.Product) *model.Product {
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = p
	return p
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.add(p)
	return nil
}

func (r *stubProductRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	r.add(p)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *p
	return &copy, nil
}

func (r *stubProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			copy := *p
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	list := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, *p)
	}
	return list, nil
}

func (r *stubProductRepo) ListInStock(_ context.Context) ([]model.Product, error) {
	var list []model.Product
	for _, p := range r.products {
		if p.Quantity > 0 {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) FindByIDForUpdateTx(_ *gorm.DB, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *p
	return &copy, nil
}

func (r *stubProductRepo) SetQuantityTx(_ *gorm.DB, id uint, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *stubProductRepo) LowStock(_ context.Context) ([]model.Product, error) {
	var list []model.Product
	for _, p := range r.products {
		if p.Quantity <= p.ReorderLevel {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) TotalValue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.products {
		total = total.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total, nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

// ── Stock history ────────────────────────────────────────────────────────────

type stubHistoryRepo struct {
	rows []model.StockHistory
}

func (r *stubHistoryRepo) CreateTx(_ *gorm.DB, h *model.StockHistory) error {
	h.ID = uint(len(r.rows) + 1)
	h.CreatedAt = time.Now()
	r.rows = append(r.rows, *h)
	return nil
}

func (r *stubHistoryRepo) ListRecent(_ context.Context, limit int) ([]model.StockHistory, error) {
	out := make([]model.StockHistory, 0, limit)
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.rows[i])
	}
	return out, nil
}

func (r *stubHistoryRepo) ListByProduct(_ context.Context, productID uint) ([]model.StockHistory, error) {
	var out []model.StockHistory
	for _, h := range r.rows {
		if h.ProductID == productID {
			out = append(out, h)
		}
	}
	return out, nil
}

// ── Sales ────────────────────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales  map[uint]*model.Sale
	nextID uint
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uint]*model.Sale)}
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	r.nextID++
	s.ID = r.nextID
	s.CreatedAt = time.Now()
	for i := range s.Items {
		s.Items[i].ID = uint(i + 1)
		s.Items[i].SaleID = s.ID
	}
	copy := *s
	r.sales[s.ID] = &copy
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uint) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *s
	return &copy, nil
}

func (r *stubSaleRepo) List(_ context.Context) ([]model.Sale, error) {
	list := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		list = append(list, *s)
	}
	return list, nil
}

func (r *stubSaleRepo) Recent(_ context.Context, limit int) ([]model.Sale, error) {
	list, _ := r.List(context.Background())
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *stubSaleRepo) DeleteTx(_ *gorm.DB, id uint) error {
	if _, ok := r.sales[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.sales, id)
	return nil
}

func (r *stubSaleRepo) TotalToday(_ context.Context) (decimal.Decimal, error) {
	return r.TotalAll(context.Background())
}

func (r *stubSaleRepo) TotalSince(_ context.Context, _ time.Time) (decimal.Decimal, error) {
	return r.TotalAll(context.Background())
}

func (r *stubSaleRepo) TotalAll(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range r.sales {
		total = total.Add(s.TotalAmount)
	}
	return total, nil
}

func (r *stubSaleRepo) TopProducts(_ context.Context, _ int) ([]dto.TopProduct, error) {
	return nil, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

// ── Purchase orders ──────────────────────────────────────────────────────────

type stubPurchaseRepo struct {
	orders map[uint]*model.PurchaseOrder
	nextID uint

	// runs just before the status flip, to interleave a competing writer
	beforeMarkReceived func()
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{orders: make(map[uint]*model.PurchaseOrder)}
}

func (r *stubPurchaseRepo) CreateTx(_ *gorm.DB, po *model.PurchaseOrder) error {
	r.nextID++
	po.ID = r.nextID
	for i := range po.Items {
		po.Items[i].ID = uint(i + 1)
		po.Items[i].PurchaseOrderID = po.ID
	}
	copy := *po
	r.orders[po.ID] = &copy
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uint) (*model.PurchaseOrder, error) {
	po, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *po
	return &copy, nil
}

func (r *stubPurchaseRepo) List(_ context.Context) ([]model.PurchaseOrder, error) {
	list := make([]model.PurchaseOrder, 0, len(r.orders))
	for _, po := range r.orders {
		list = append(list, *po)
	}
	return list, nil
}

func (r *stubPurchaseRepo) MarkReceivedTx(_ *gorm.DB, id uint) (bool, error) {
	if r.beforeMarkReceived != nil {
		r.beforeMarkReceived()
	}
	po, ok := r.orders[id]
	if !ok || po.Status != model.PurchaseStatusPending {
		return false, nil
	}
	po.Status = model.PurchaseStatusReceived
	return true, nil
}

func (r *stubPurchaseRepo) DeleteTx(_ *gorm.DB, id uint) error {
	if _, ok := r.orders[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *stubPurchaseRepo) DB() *gorm.DB { return nil }

// ── Categories ───────────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories    map[uint]*model.Category
	productCounts map[uint]int64
	nextID        uint
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{
		categories:    make(map[uint]*model.Category),
		productCounts: make(map[uint]int64),
	}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	r.nextID++
	c.ID = r.nextID
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	list := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		list = append(list, *c)
	}
	return list, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uint) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *c
	return &copy, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			copy := *c
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uint) error {
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) CountProducts(_ context.Context, id uint) (int64, error) {
	return r.productCounts[id], nil
}

func (r *stubCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

// ── Users ────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *u
	return &copy, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}
