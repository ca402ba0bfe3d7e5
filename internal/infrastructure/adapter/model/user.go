package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID                      uint64  `gorm:"primaryKey;autoIncrement"`
	Username                string  `gorm:"uniqueIndex;not null;size:50"`
	Email                   string  `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash            string  `gorm:"not null;size:255"`
	FirstName               *string `gorm:"size:100"`
	LastName                *string `gorm:"size:100"`
	IsEmailVerified         bool    `gorm:"not null;default:false"`
	IsVerified              bool    `gorm:"not null;default:false"`
	IsAdmin                 bool    `gorm:"not null;default:false"`
	VerificationToken       *string `gorm:"index;size:128"`
	VerificationTokenExpiry *time.Time
	CreatedAt               time.Time `gorm:"not null"`
	UpdatedAt               time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Wallet represents the database model for wallets
type Wallet struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"uniqueIndex;not null"`
	Balance   int64     `gorm:"not null;default:0;check:chk_wallets_balance,balance >= 0"` // cents
	Currency  string    `gorm:"not null;size:3;default:USD"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}

// KYC represents the database model for KYC submissions
type KYC struct {
	ID              uint64  `gorm:"primaryKey;autoIncrement"`
	UserID          uint64  `gorm:"uniqueIndex;not null"`
	DocumentType    string  `gorm:"not null;size:50"`
	DocumentID      string  `gorm:"not null;size:100"`
	DocumentPath    string  `gorm:"size:500"`
	Status          string  `gorm:"not null;size:20;index"`
	RejectionReason *string `gorm:"type:text"`
	AdminNotes      *string `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for KYC
func (KYC) TableName() string {
	return "kyc"
}
