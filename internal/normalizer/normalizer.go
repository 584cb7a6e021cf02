package normalizer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gradebook/internal/model"
)

// Row is one loosely-keyed record parsed from an uploaded file, keyed by the
// file's own header spellings.
type Row map[string]string

// Accepted header spellings per logical field, tried in priority order.
// First match wins; no fuzzy matching.
var (
	studentIDKeys     = []string{"Student_ID", "student_id", "Student ID", "StudentID", "ID"}
	studentNameKeys   = []string{"Student_Name", "student_name", "Student Name", "StudentName", "Name"}
	totalMarksKeys    = []string{"Total_Marks", "total_marks", "Total Marks", "TotalMarks"}
	marksObtainedKeys = []string{"Marks_Obtained", "marks_obtained", "Marks Obtained", "MarksObtained"}
)

func resolve(row Row, keys []string) (string, bool) {
	for _, key := range keys {
		if value, ok := row[key]; ok {
			value = strings.TrimSpace(value)
			if value != "" {
				return value, true
			}
		}
	}
	return "", false
}

func parseMarks(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// Normalize converts parsed rows into student records. Each row must carry a
// student id, a name and numeric marks under any accepted header spelling.
// Rows whose total marks are missing or not positive are rejected so that a
// non-finite percentage can never be computed.
func Normalize(rows []Row) ([]model.Student, error) {
	students := make([]model.Student, 0, len(rows))

	for i, row := range rows {
		// Header is row 1, so the first data row is row 2.
		rowNum := i + 2

		studentID, ok := resolve(row, studentIDKeys)
		if !ok {
			return nil, fmt.Errorf("row %d: missing student id", rowNum)
		}
		studentName, ok := resolve(row, studentNameKeys)
		if !ok {
			return nil, fmt.Errorf("row %d: missing student name", rowNum)
		}

		rawTotal, ok := resolve(row, totalMarksKeys)
		if !ok {
			return nil, fmt.Errorf("row %d: missing total marks", rowNum)
		}
		totalMarks, err := parseMarks(rawTotal)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid total marks %q", rowNum, rawTotal)
		}
		if totalMarks <= 0 {
			return nil, fmt.Errorf("row %d: total marks must be greater than zero", rowNum)
		}

		rawObtained, ok := resolve(row, marksObtainedKeys)
		if !ok {
			return nil, fmt.Errorf("row %d: missing obtained marks", rowNum)
		}
		marksObtained, err := parseMarks(rawObtained)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid obtained marks %q", rowNum, rawObtained)
		}

		students = append(students, model.Student{
			StudentID:     studentID,
			StudentName:   studentName,
			TotalMarks:    totalMarks,
			MarksObtained: marksObtained,
			Percentage:    Percentage(marksObtained, totalMarks),
		})
	}

	return students, nil
}

// Percentage computes obtained/total*100 rounded to two decimal places.
func Percentage(obtained, total float64) float64 {
	return round2(obtained / total * 100)
}
