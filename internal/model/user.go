package model

import "time"

// User stores login credentials and audit attribution for documents.
// Role is recorded ("user" | "admin") but not consulted for authorization;
// it is reserved until product requirements settle on a permission model.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:80;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:120;not null"`
	Name         string `gorm:"size:120;not null"`
	Email        *string `gorm:"size:120"`
	Role         string `gorm:"size:50;not null;default:'user'"`
	CreatedAt    time.Time
}

// TableName keeps the singular table name the schema was created with.
func (User) TableName() string { return "user" }
