package model

import "time"

type Student struct {
	StudentID     string    `gorm:"primaryKey" json:"student_id"` // StudentID is the primary key
	StudentName   string    `json:"student_name"`
	TotalMarks    float64   `json:"total_marks"`
	MarksObtained float64   `json:"marks_obtained"`
	Percentage    float64   `json:"percentage"`
	CreatedAt     time.Time `json:"created_at"`
}
