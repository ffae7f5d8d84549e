package service

import (
	"context"
	"time"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/repository"
)

// ReportService produces the read-only aggregates behind the dashboard and
// reports pages. It never mutates anything.
type ReportService interface {
	Dashboard(ctx context.Context) (*dto.DashboardData, error)
	Reports(ctx context.Context) (*dto.ReportData, error)
}

type reportService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	customers  repository.CustomerRepository
	sales      repository.SaleRepository
	history    repository.StockHistoryRepository
}

func NewReportService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	customers repository.CustomerRepository,
	sales repository.SaleRepository,
	history repository.StockHistoryRepository,
) ReportService {
	return &reportService{
		products:   products,
		categories: categories,
		suppliers:  suppliers,
		customers:  customers,
		sales:      sales,
		history:    history,
	}
}

func (s *reportService) Dashboard(ctx context.Context) (*dto.DashboardData, error) {
	data := &dto.DashboardData{}
	var err error

	if data.TotalProducts, err = s.products.Count(ctx); err != nil {
		return nil, err
	}
	if data.TotalCategories, err = s.categories.Count(ctx); err != nil {
		return nil, err
	}
	if data.TotalSuppliers, err = s.suppliers.Count(ctx); err != nil {
		return nil, err
	}
	if data.TotalCustomers, err = s.customers.Count(ctx); err != nil {
		return nil, err
	}
	if data.LowStock, err = s.products.LowStock(ctx); err != nil {
		return nil, err
	}
	if data.RecentSales, err = s.sales.Recent(ctx, 5); err != nil {
		return nil, err
	}
	if data.TodaySales, err = s.sales.TotalToday(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if data.MonthSales, err = s.sales.TotalSince(ctx, firstOfMonth); err != nil {
		return nil, err
	}
	if data.TotalValue, err = s.products.TotalValue(ctx); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *reportService) Reports(ctx context.Context) (*dto.ReportData, error) {
	data := &dto.ReportData{}
	var err error

	now := time.Now().UTC()
	if data.TodaySales, err = s.sales.TotalToday(ctx); err != nil {
		return nil, err
	}
	if data.WeekSales, err = s.sales.TotalSince(ctx, now.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}
	if data.MonthSales, err = s.sales.TotalSince(ctx, now.AddDate(0, 0, -30)); err != nil {
		return nil, err
	}
	if data.TotalSales, err = s.sales.TotalAll(ctx); err != nil {
		return nil, err
	}
	if data.LowStock, err = s.products.LowStock(ctx); err != nil {
		return nil, err
	}
	if data.TopProducts, err = s.sales.TopProducts(ctx, 10); err != nil {
		return nil, err
	}
	if data.Recent, err = s.history.ListRecent(ctx, 10); err != nil {
		return nil, err
	}
	return data, nil
}
