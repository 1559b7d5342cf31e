package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FusionStrategy string

const (
	FusionAverage   FusionStrategy = "avg"
	FusionAttention FusionStrategy = "attn"
	FusionRule      FusionStrategy = "rule"
)

// EmotionFusionEngine combines up to three per-modality recognition models
// into one emotion score. Weights need not sum to 1; they are caller-supplied.
type EmotionFusionEngine struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	EngineName     string              `gorm:"column:engine_name;not null" json:"engine_name"`
	VoiceModelID   *uuid.UUID          `gorm:"type:uuid" json:"voice_model_id,omitempty"`
	VoiceModel     *EmotionRecognition `gorm:"constraint:OnDelete:SET NULL;foreignKey:VoiceModelID;references:ID" json:"voice_model,omitempty"`
	VisionModelID  *uuid.UUID          `gorm:"type:uuid" json:"vision_model_id,omitempty"`
	VisionModel    *EmotionRecognition `gorm:"constraint:OnDelete:SET NULL;foreignKey:VisionModelID;references:ID" json:"vision_model,omitempty"`
	BioModelID     *uuid.UUID          `gorm:"type:uuid" json:"bio_model_id,omitempty"`
	BioModel       *EmotionRecognition `gorm:"constraint:OnDelete:SET NULL;foreignKey:BioModelID;references:ID" json:"bio_model,omitempty"`
	FusionStrategy FusionStrategy      `gorm:"column:fusion_strategy;not null;default:avg" json:"fusion_strategy"`
	Weights        datatypes.JSON      `gorm:"column:weights" json:"weights"`
	LatestAccuracy float64             `gorm:"column:latest_accuracy;type:numeric(5,4);not null;default:0" json:"latest_accuracy"`
	IsActive       bool                `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt      time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time           `gorm:"not null" json:"updated_at"`
}

func (EmotionFusionEngine) TableName() string { return "emotion_fusion_engine" }
