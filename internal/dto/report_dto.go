package dto

import (
	"github.com/shopspring/decimal"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
)

// DashboardData feeds the dashboard summary view.
type DashboardData struct {
	TotalProducts   int64
	TotalCategories int64
	TotalSuppliers  int64
	TotalCustomers  int64
	LowStock        []model.Product
	RecentSales     []model.Sale
	TodaySales      decimal.Decimal
	MonthSales      decimal.Decimal
	TotalValue      decimal.Decimal
}

// TopProduct is one row of the top-sellers report, joined through sale items.
type TopProduct struct {
	Name         string
	TotalSold    int64
	TotalRevenue decimal.Decimal
}

// ReportData feeds the reports page.
type ReportData struct {
	TodaySales  decimal.Decimal
	WeekSales   decimal.Decimal
	MonthSales  decimal.Decimal
	TotalSales  decimal.Decimal
	LowStock    []model.Product
	TopProducts []TopProduct
	Recent      []model.StockHistory
}
