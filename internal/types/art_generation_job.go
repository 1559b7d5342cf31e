package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type JobStatus int16

const (
	JobPending   JobStatus = 1
	JobRunning   JobStatus = 2
	JobCompleted JobStatus = 3
	JobFailed    JobStatus = 4
)

func (s JobStatus) String() string {
	switch s {
	case JobPending:
		return "pending"
	case JobRunning:
		return "running"
	case JobCompleted:
		return "completed"
	case JobFailed:
		return "failed"
	}
	return "unknown"
}

// ArtGenerationJob is one image-generation run against a painting-therapy
// config. OutputURL is only ever written on completion.
type ArtGenerationJob struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	TherapyID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"therapy_id"`
	Therapy       *PaintingTherapy `gorm:"foreignKey:TherapyID;references:ID" json:"therapy,omitempty"`
	Prompt        string           `gorm:"column:prompt;not null" json:"prompt"`
	Style         string           `gorm:"column:style" json:"style"`
	GuidanceScale float64          `gorm:"column:guidance_scale;type:numeric(4,2);not null;default:7.5" json:"guidance_scale"`
	Status        JobStatus        `gorm:"column:status;not null;default:1" json:"status"`
	OutputURL     string           `gorm:"column:output_url" json:"output_url"`
	Metadata      datatypes.JSON   `gorm:"column:metadata" json:"metadata"`
	CreatedAt     time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"not null" json:"updated_at"`
}

func (ArtGenerationJob) TableName() string { return "art_generation_job" }
