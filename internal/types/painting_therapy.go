package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaintingTherapy struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TherapyName  string         `gorm:"column:therapy_name;not null" json:"therapy_name"`
	APIEndpoint  string         `gorm:"column:api_endpoint;not null" json:"api_endpoint"`
	APIKey       string         `gorm:"column:api_key;not null" json:"-"`
	StyleOptions datatypes.JSON `gorm:"column:style_options" json:"style_options"`
	IsActive     bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null" json:"updated_at"`
}

func (PaintingTherapy) TableName() string { return "painting_therapy" }
