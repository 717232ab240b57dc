package models

import "time"

// BaseModel is gorm.Model without soft deletion. Challenge, attempt and
// progress rows are removed for real so unique indexes and cascade
// constraints see the delete.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
