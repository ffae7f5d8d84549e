package model

import "time"

// Customer is a contact record referenced by sales.
type Customer struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:200;index;not null"`
	Email     *string `gorm:"size:120"`
	Phone     *string `gorm:"size:20"`
	Address   *string `gorm:"type:text"`
	CreatedAt time.Time
}

func (Customer) TableName() string { return "customer" }
