package service

import (
	"errors"

	"gorm.io/gorm"

	"gradebook/internal/model"
	"gradebook/internal/normalizer"
)

type StudentService struct {
	db *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

// StudentPatch is a partial update. Percentage is deliberately absent: it is
// always recomputed server-side from the merged marks.
type StudentPatch struct {
	StudentName   *string  `json:"student_name"`
	TotalMarks    *float64 `json:"total_marks"`
	MarksObtained *float64 `json:"marks_obtained"`
}

func (s *StudentService) ListStudents() ([]model.Student, error) {
	var students []model.Student
	err := s.db.Order("created_at desc").Find(&students).Error
	return students, err
}

func (s *StudentService) UpdateStudent(id string, patch StudentPatch) (*model.Student, error) {
	var student model.Student
	if err := s.db.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if patch.StudentName != nil {
		student.StudentName = *patch.StudentName
	}
	if patch.TotalMarks != nil {
		student.TotalMarks = *patch.TotalMarks
	}
	if patch.MarksObtained != nil {
		student.MarksObtained = *patch.MarksObtained
	}
	if student.TotalMarks <= 0 {
		return nil, ErrInvalidMarks
	}
	student.Percentage = normalizer.Percentage(student.MarksObtained, student.TotalMarks)

	if err := s.db.Save(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *StudentService) DeleteStudent(id string) error {
	result := s.db.Delete(&model.Student{}, "student_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
