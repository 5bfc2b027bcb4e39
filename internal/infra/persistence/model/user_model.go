package model

import (
	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	Base
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(255);not null"`
	Role     string `gorm:"type:varchar(20);not null"`
	Verified bool   `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// VerificationModel mirrors the 'verifications' table. A user owns at most one row.
type VerificationModel struct {
	Base
	Code   string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	User   *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (VerificationModel) TableName() string {
	return "verifications"
}
