// cmd/seed — creates the default admin user plus sample catalog data.
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/config"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/infra"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	ctx := context.Background()

	if err := seedAdmin(ctx, db); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := seedCatalog(ctx, db); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}
	fmt.Println("database seeded")
}

func seedAdmin(ctx context.Context, db *gorm.DB) error {
	var existing model.User
	err := db.WithContext(ctx).Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		fmt.Println("admin user already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	if err != nil {
		return err
	}
	email := "admin@ims.com"
	admin := model.User{
		Username:     "admin",
		Name:         "Administrator",
		Email:        &email,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}
	fmt.Println("default admin user created: admin/admin123")
	return nil
}

func seedCatalog(ctx context.Context, db *gorm.DB) error {
	categories := []struct {
		name        string
		description string
	}{
		{"Electronics", "Electronic items and gadgets"},
		{"Furniture", "Office and home furniture"},
		{"Stationery", "Office supplies and stationery"},
		{"Food & Beverages", "Food items and drinks"},
	}
	for _, c := range categories {
		var existing model.Category
		err := db.WithContext(ctx).Where("name = ?", c.name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		desc := c.description
		if err := db.WithContext(ctx).Create(&model.Category{Name: c.name, Description: &desc}).Error; err != nil {
			return err
		}
	}

	var electronics model.Category
	if err := db.WithContext(ctx).Where("name = ?", "Electronics").First(&electronics).Error; err != nil {
		return err
	}

	products := []struct {
		name        string
		price       string
		quantity    int
		sku         string
		description string
	}{
		{"Laptop", "45000", 10, "ELEC001", "Business laptop"},
		{"Mouse", "500", 50, "ELEC002", "Wireless mouse"},
		{"Keyboard", "1500", 30, "ELEC003", "Mechanical keyboard"},
	}
	for _, p := range products {
		var existing model.Product
		err := db.WithContext(ctx).Where("sku = ?", p.sku).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			return err
		}
		desc := p.description
		product := model.Product{
			Name:         p.name,
			CategoryID:   electronics.ID,
			Description:  &desc,
			UnitPrice:    price,
			Quantity:     p.quantity,
			ReorderLevel: 10,
			SKU:          p.sku,
		}
		if err := db.WithContext(ctx).Create(&product).Error; err != nil {
			return err
		}
	}
	return nil
}
