package types

import (
	"time"

	"github.com/google/uuid"
)

type ChatRecord struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	User          *User         `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	KBRefID       *uuid.UUID    `gorm:"type:uuid" json:"kb_ref_id,omitempty"`
	KBRef         *KnowledgeDoc `gorm:"constraint:OnDelete:SET NULL;foreignKey:KBRefID;references:ID" json:"kb_ref,omitempty"`
	SessionID     string        `gorm:"column:session_id;not null;index" json:"session_id"`
	Question      string        `gorm:"column:question;not null" json:"question"`
	Answer        string        `gorm:"column:answer" json:"answer"`
	EmotionResult string        `gorm:"column:emotion_result" json:"emotion_result"`
	CreatedAt     time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null" json:"updated_at"`
}

func (ChatRecord) TableName() string { return "chat_record" }
