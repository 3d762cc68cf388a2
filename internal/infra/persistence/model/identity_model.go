// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. IDs are UUIDv7 assigned by the application.
type IdentityModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_identities_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	SensitiveID  string    `gorm:"type:text;not null"` // cipher envelope, never raw digits
	RefreshToken *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}
