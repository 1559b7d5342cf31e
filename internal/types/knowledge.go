package types

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeBase struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	KBName      string    `gorm:"column:kb_name;not null" json:"kb_name"`
	Description string    `gorm:"column:description" json:"description"`
	DocCount    int       `gorm:"column:doc_count;not null;default:0" json:"doc_count"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (KnowledgeBase) TableName() string { return "knowledge_base" }

type KnowledgeDoc struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	KBID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"kb_id"`
	KB         *KnowledgeBase `gorm:"constraint:OnDelete:CASCADE;foreignKey:KBID;references:ID" json:"kb,omitempty"`
	DocTitle   string         `gorm:"column:doc_title;not null" json:"doc_title"`
	Content    string         `gorm:"column:content;not null" json:"content"`
	Tags       string         `gorm:"column:tags" json:"tags"`
	HitCount   int            `gorm:"column:hit_count;not null;default:0" json:"hit_count"`
	AttachPath string         `gorm:"column:attach_path" json:"attach_path"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null" json:"updated_at"`
}

func (KnowledgeDoc) TableName() string { return "knowledge_doc" }
