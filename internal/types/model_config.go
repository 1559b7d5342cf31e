package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ModelConfig holds the connection settings for a large-language-model
// provider used by the chat subsystem.
type ModelConfig struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ModelName   string         `gorm:"column:model_name;not null" json:"model_name"`
	APIEndpoint string         `gorm:"column:api_endpoint;not null" json:"api_endpoint"`
	APIKey      string         `gorm:"column:api_key;not null" json:"-"`
	Params      datatypes.JSON `gorm:"column:params" json:"params"`
	IsActive    bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
}

func (ModelConfig) TableName() string { return "model_config" }
