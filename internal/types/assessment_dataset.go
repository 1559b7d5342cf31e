package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AssessmentDataset struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	DatasetName string         `gorm:"column:dataset_name;not null" json:"dataset_name"`
	Description string         `gorm:"column:description" json:"description"`
	Modalities  datatypes.JSON `gorm:"column:modalities" json:"modalities"`
	SampleCount int            `gorm:"column:sample_count;not null;default:0" json:"sample_count"`
	LabelSchema datatypes.JSON `gorm:"column:label_schema" json:"label_schema"`
	StoragePath string         `gorm:"column:storage_path" json:"storage_path"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
}

func (AssessmentDataset) TableName() string { return "assessment_dataset" }
