package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/repository"
)

// ExportService serializes report queries to downloadable xlsx streams.
// Column schemas are fixed per report type and must not change — downstream
// spreadsheets key on the headers.
type ExportService interface {
	ExportSales(ctx context.Context) (*bytes.Buffer, string, error)
	ExportProducts(ctx context.Context) (*bytes.Buffer, string, error)
	ExportInventory(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	history  repository.StockHistoryRepository
}

func NewExportService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	history repository.StockHistoryRepository,
) ExportService {
	return &exportService{sales: sales, products: products, history: history}
}

func (s *exportService) ExportSales(ctx context.Context) (*bytes.Buffer, string, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(sales))
	for _, sale := range sales {
		customerName := "Walk-in Customer"
		if sale.Customer != nil {
			customerName = sale.Customer.Name
		}
		creatorName := "Unknown"
		if sale.Creator != nil {
			creatorName = sale.Creator.Name
		}
		amount, _ := sale.TotalAmount.Float64()
		rows = append(rows, []interface{}{
			sale.ID,
			sale.CreatedAt.Format("2006-01-02 15:04"),
			customerName,
			amount,
			sale.PaymentMethod,
			sale.Status,
			creatorName,
		})
	}

	buf, err := buildSheet("Sales Report",
		[]string{"Sale ID", "Date", "Customer", "Total Amount", "Payment Method", "Status", "Created By"},
		rows)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("sales_report_%s.xlsx", time.Now().Format("20060102")), nil
}

func (s *exportService) ExportProducts(ctx context.Context) (*bytes.Buffer, string, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		categoryName := ""
		if p.Category != nil {
			categoryName = p.Category.Name
		}
		sku := p.SKU
		if sku == "" {
			sku = "N/A"
		}
		price, _ := p.UnitPrice.Float64()
		value, _ := p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity))).Float64()
		rows = append(rows, []interface{}{
			p.ID, p.Name, categoryName, sku, price, p.Quantity, p.ReorderLevel, value,
		})
	}

	buf, err := buildSheet("Products Report",
		[]string{"Product ID", "Name", "Category", "SKU", "Price", "Quantity", "Reorder Level", "Value"},
		rows)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("products_report_%s.xlsx", time.Now().Format("20060102")), nil
}

func (s *exportService) ExportInventory(ctx context.Context) (*bytes.Buffer, string, error) {
	history, err := s.history.ListRecent(ctx, 500)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(history))
	for _, h := range history {
		productName := ""
		if h.Product != nil {
			productName = h.Product.Name
		}
		reference := "Manual"
		if h.ReferenceType != nil && h.ReferenceID != nil {
			reference = fmt.Sprintf("%s#%d", *h.ReferenceType, *h.ReferenceID)
		}
		rows = append(rows, []interface{}{
			h.CreatedAt.Format("2006-01-02 15:04"),
			productName,
			h.ChangeType,
			h.QuantityChange,
			h.PreviousQuantity,
			h.NewQuantity,
			reference,
		})
	}

	buf, err := buildSheet("Inventory History",
		[]string{"Date", "Product", "Change Type", "Quantity Change", "Previous Qty", "New Qty", "Reference"},
		rows)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("inventory_history_%s.xlsx", time.Now().Format("20060102")), nil
}

// buildSheet writes a single-sheet workbook: one header row then data rows.
func buildSheet(sheetName string, headers []string, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}
