package model

import "time"

// Category is a named product grouping. A category that still owns products
// cannot be deleted.
type Category struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;uniqueIndex;not null"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time

	Products []Product `gorm:"foreignKey:CategoryID"`
}

// TableName keeps the singular table name the schema was created with.
func (Category) TableName() string { return "category" }
