package types

import (
	"time"

	"github.com/google/uuid"
)

// UploadFile is the stored-file record kept by the (out-of-scope) upload
// subsystem. The workflow gateway only ever reads it.
type UploadFile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Filename  string    `gorm:"column:filename;not null" json:"filename"`
	Filepath  string    `gorm:"column:filepath;not null" json:"filepath"`
	FileURL   string    `gorm:"column:file_url" json:"file_url"`
	FileType  string    `gorm:"column:file_type" json:"file_type"`
	Filesize  int64     `gorm:"column:filesize;not null;default:0" json:"filesize"`
	IsUpload  bool      `gorm:"column:is_upload;not null;default:false" json:"is_upload"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UploadFile) TableName() string { return "upload_file" }
