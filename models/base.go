package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm tablolarda ortak alanlar.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"-"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
