package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"gradebook/internal/model"
	"gradebook/internal/normalizer"
)

const historyLimit = 10

type UploadService struct {
	db *gorm.DB
}

func NewUploadService(db *gorm.DB) *UploadService {
	return &UploadService{db: db}
}

// UploadMeta describes the received file, for the audit trail.
type UploadMeta struct {
	Filename string
	FileType string // model.FileTypeCSV or model.FileTypeExcel
	FileSize int64
}

// ProcessUpload parses and normalizes the uploaded buffer, replaces the
// entire student collection with the result, and appends one history entry
// recording the outcome. Exactly one entry is written per call: success with
// the row count, or error with a zero count. A failure to write the error
// entry itself is logged and swallowed so the original error is what the
// caller sees.
func (s *UploadService) ProcessUpload(meta UploadMeta, data []byte) ([]model.Student, error) {
	students, err := s.normalize(meta.FileType, data)
	if err == nil {
		err = s.replaceStudents(students)
	}
	if err == nil {
		err = s.recordHistory(meta, len(students), model.UploadStatusSuccess)
		if err == nil {
			return students, nil
		}
		err = fmt.Errorf("failed to record upload history: %w", err)
	}

	if histErr := s.recordHistory(meta, 0, model.UploadStatusError); histErr != nil {
		log.Println("Failed to record upload failure:", histErr)
	}
	return nil, err
}

func (s *UploadService) normalize(fileType string, data []byte) ([]model.Student, error) {
	var (
		rows []normalizer.Row
		err  error
	)
	switch fileType {
	case model.FileTypeExcel:
		rows, err = normalizer.ParseExcel(data)
	default:
		rows, err = normalizer.ParseCSV(data)
	}
	if err != nil {
		return nil, err
	}
	return normalizer.Normalize(rows)
}

// replaceStudents swaps the whole collection in one transaction, so readers
// never observe the window between delete and insert.
func (s *UploadService) replaceStudents(students []model.Student) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Student{}).Error; err != nil {
			return err
		}
		if len(students) == 0 {
			return nil
		}
		return tx.Create(&students).Error
	})
}

func (s *UploadService) recordHistory(meta UploadMeta, count int, status string) error {
	entry := model.UploadHistory{
		Filename:      meta.Filename,
		FileType:      meta.FileType,
		StudentsCount: count,
		UploadDate:    time.Now(),
		FileSize:      meta.FileSize,
		Status:        status,
	}
	return s.db.Create(&entry).Error
}

// RecentHistory returns the newest entries, capped at ten.
func (s *UploadService) RecentHistory() ([]model.UploadHistory, error) {
	var entries []model.UploadHistory
	err := s.db.Order("upload_date desc").Limit(historyLimit).Find(&entries).Error
	return entries, err
}
