package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated on insert.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(32)"`
	Bio          string    `gorm:"type:text"`
	Photo        string    `gorm:"type:varchar(255)"`
	Resume       string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not provide one.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	m.ID = id

	return nil
}

// AllModels lists every model managed by auto-migration.
func AllModels() []any {
	return []any{&UserModel{}}
}
