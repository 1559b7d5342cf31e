package types

import (
	"time"

	"github.com/google/uuid"
)

type RecognitionType int16

const (
	RecognitionText  RecognitionType = 1
	RecognitionVoice RecognitionType = 2
	RecognitionImage RecognitionType = 3
)

// EmotionRecognition is a per-modality recognition model config that fusion
// engines reference.
type EmotionRecognition struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	RecogName     string          `gorm:"column:recog_name;not null" json:"recog_name"`
	APIEndpoint   string          `gorm:"column:api_endpoint;not null" json:"api_endpoint"`
	APIKey        string          `gorm:"column:api_key;not null" json:"-"`
	SupportedType RecognitionType `gorm:"column:supported_type;not null;default:1" json:"supported_type"`
	IsActive      bool            `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (EmotionRecognition) TableName() string { return "emotion_recognition" }
