package model

import "time"

const (
	FileTypeCSV   = "CSV"
	FileTypeExcel = "Excel"

	UploadStatusSuccess = "success"
	UploadStatusError   = "error"
)

// UploadHistory is an append-only audit record of one upload attempt.
// It is never updated or deleted after creation.
type UploadHistory struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	Filename      string    `json:"filename"`
	FileType      string    `json:"file_type"` // "CSV" or "Excel"
	StudentsCount int       `json:"students_count"`
	UploadDate    time.Time `json:"upload_date"`
	FileSize      int64     `json:"file_size"`
	Status        string    `json:"status"` // "success" or "error"
}
