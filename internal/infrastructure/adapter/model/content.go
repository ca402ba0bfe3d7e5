package model

import (
	"time"
)

// Content represents an admin-managed page
type Content struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"not null;size:200"`
	Slug        string    `gorm:"uniqueIndex;not null;size:200"`
	Body        string    `gorm:"type:text"`
	IsPublished bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Content
func (Content) TableName() string {
	return "contents"
}

// Setting represents a typed key/value setting
type Setting struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Key       string    `gorm:"uniqueIndex;not null;size:100"`
	Value     string    `gorm:"type:text;not null"`
	Type      string    `gorm:"not null;size:20"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Setting
func (Setting) TableName() string {
	return "settings"
}
