package model

import "time"

// Supplier is a contact record referenced by purchase orders. Deletion is
// unconditional; historical orders keep a dangling supplier reference that is
// resolved defensively at render time.
type Supplier struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:200;index;not null"`
	ContactPerson *string `gorm:"size:100"`
	Email         *string `gorm:"size:120"`
	Phone         *string `gorm:"size:20"`
	Address       *string `gorm:"type:text"`
	CreatedAt     time.Time
}

func (Supplier) TableName() string { return "supplier" }
