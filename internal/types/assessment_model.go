package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TrainingStatus int16

const (
	TrainingPending   TrainingStatus = 1
	TrainingRunning   TrainingStatus = 2
	TrainingCompleted TrainingStatus = 3
	TrainingFailed    TrainingStatus = 4
)

func (s TrainingStatus) String() string {
	switch s {
	case TrainingPending:
		return "pending"
	case TrainingRunning:
		return "training"
	case TrainingCompleted:
		return "completed"
	case TrainingFailed:
		return "failed"
	}
	return "unknown"
}

// AssessmentModel is a multi-modal psychological assessment model trained
// against a dataset. The three metrics are written only when a training run
// transitions to completed; everywhere else they are read-only.
type AssessmentModel struct {
	ID                uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	DatasetID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"dataset_id"`
	Dataset           *AssessmentDataset `gorm:"foreignKey:DatasetID;references:ID" json:"dataset,omitempty"`
	ModelName         string             `gorm:"column:model_name;not null" json:"model_name"`
	Backbone          string             `gorm:"column:backbone;not null;default:fusion-transformer" json:"backbone"`
	TrainingParams    datatypes.JSON     `gorm:"column:training_params" json:"training_params"`
	TrainingStatus    TrainingStatus     `gorm:"column:training_status;not null;default:1" json:"training_status"`
	EmotionMetric     float64            `gorm:"column:emotion_metric;type:numeric(5,4);not null;default:0" json:"emotion_metric"`
	PersonalityMetric float64            `gorm:"column:personality_metric;type:numeric(5,4);not null;default:0" json:"personality_metric"`
	StressMetric      float64            `gorm:"column:stress_metric;type:numeric(5,4);not null;default:0" json:"stress_metric"`
	LastTrainedTime   *time.Time         `gorm:"column:last_trained_time" json:"last_trained_time,omitempty"`
	CreatedAt         time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time          `gorm:"not null" json:"updated_at"`
}

func (AssessmentModel) TableName() string { return "assessment_model" }
