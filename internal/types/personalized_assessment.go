package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StressLevel int16

const (
	StressLow    StressLevel = 1
	StressMedium StressLevel = 2
	StressHigh   StressLevel = 3
)

// Label is the human-readable stress tier embedded in report summaries.
func (s StressLevel) Label() string {
	switch s {
	case StressLow:
		return "low"
	case StressMedium:
		return "medium"
	case StressHigh:
		return "high"
	}
	return "unknown"
}

type ReportStatus int16

const (
	ReportDraft      ReportStatus = 1
	ReportGenerated  ReportStatus = 2
	ReportIntervened ReportStatus = 3
)

// PersonalizedAssessment is a per-user assessment report. SignalSnapshot keeps
// the raw input mapping the plan was derived from so a refresh without new
// signals reproduces the same report.
type PersonalizedAssessment struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	User               *User            `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	AssessmentModelID  *uuid.UUID       `gorm:"type:uuid" json:"assessment_model_id,omitempty"`
	AssessmentModel    *AssessmentModel `gorm:"constraint:OnDelete:SET NULL;foreignKey:AssessmentModelID;references:ID" json:"assessment_model,omitempty"`
	EmotionScore       float64          `gorm:"column:emotion_score;type:numeric(5,2);not null;default:0" json:"emotion_score"`
	PersonalityProfile datatypes.JSON   `gorm:"column:personality_profile" json:"personality_profile"`
	StressLevel        StressLevel      `gorm:"column:stress_level;not null;default:2" json:"stress_level"`
	Summary            string           `gorm:"column:summary" json:"summary"`
	Recommendations    datatypes.JSON   `gorm:"column:recommendations" json:"recommendations"`
	InterventionPlan   string           `gorm:"column:intervention_plan" json:"intervention_plan"`
	Status             ReportStatus     `gorm:"column:status;not null;default:1" json:"status"`
	SignalSnapshot     datatypes.JSON   `gorm:"column:signal_snapshot" json:"-"`
	CreatedAt          time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"not null" json:"updated_at"`
}

func (PersonalizedAssessment) TableName() string { return "personalized_assessment" }
