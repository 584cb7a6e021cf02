package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook/internal/model"
	"gradebook/internal/service"
)

func csvMeta(name string, size int64) service.UploadMeta {
	return service.UploadMeta{Filename: name, FileType: model.FileTypeCSV, FileSize: size}
}

func TestProcessUploadReplacesStudents(t *testing.T) {
	db := setupTestDB(t)
	uploadService := service.NewUploadService(db)

	// Pre-existing data from an earlier upload.
	require.NoError(t, db.Create(&model.Student{StudentID: "OLD", StudentName: "Old", TotalMarks: 100, MarksObtained: 10, Percentage: 10}).Error)

	data := []byte("Student_ID,Student_Name,Total_Marks,Marks_Obtained\nS1,Alice,100,80\nS2,Bob,50,40\n")
	students, err := uploadService.ProcessUpload(csvMeta("grades.csv", int64(len(data))), data)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, 80.0, students[0].Percentage)
	assert.Equal(t, 80.0, students[1].Percentage)

	// The prior set is gone, only the new rows remain.
	var stored []model.Student
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 2)
	for _, s := range stored {
		assert.NotEqual(t, "OLD", s.StudentID)
	}
}

func TestProcessUploadRecordsSuccessHistory(t *testing.T) {
	db := setupTestDB(t)
	uploadService := service.NewUploadService(db)

	data := []byte("Student_ID,Student_Name,Total_Marks,Marks_Obtained\nS1,Alice,100,80\n")
	_, err := uploadService.ProcessUpload(csvMeta("grades.csv", 123), data)
	require.NoError(t, err)

	var entries []model.UploadHistory
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, "grades.csv", entries[0].Filename)
	assert.Equal(t, model.FileTypeCSV, entries[0].FileType)
	assert.Equal(t, model.UploadStatusSuccess, entries[0].Status)
	assert.Equal(t, 1, entries[0].StudentsCount)
	assert.Equal(t, int64(123), entries[0].FileSize)
	assert.False(t, entries[0].UploadDate.IsZero())
}

func TestProcessUploadRecordsFailureHistory(t *testing.T) {
	db := setupTestDB(t)
	uploadService := service.NewUploadService(db)

	// Zero total marks fails normalization after a file was received.
	data := []byte("Student_ID,Student_Name,Total_Marks,Marks_Obtained\nS1,Alice,0,80\n")
	_, err := uploadService.ProcessUpload(csvMeta("bad.csv", int64(len(data))), data)
	require.Error(t, err)

	var entries []model.UploadHistory
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, model.UploadStatusError, entries[0].Status)
	assert.Equal(t, 0, entries[0].StudentsCount)
}

func TestProcessUploadParseFailureKeepsExistingData(t *testing.T) {
	db := setupTestDB(t)
	uploadService := service.NewUploadService(db)

	require.NoError(t, db.Create(&model.Student{StudentID: "KEEP", StudentName: "Keep", TotalMarks: 100, MarksObtained: 50, Percentage: 50}).Error)

	_, err := uploadService.ProcessUpload(csvMeta("corrupt.csv", 10), []byte("\"unterminated\n"))
	require.Error(t, err)

	var count int64
	db.Model(&model.Student{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestProcessUploadDuplicateIDsFailAndRollBack(t *testing.T) {
	db := setupTestDB(t)
	uploadService := service.NewUploadService(db)

	require.NoError(t, db.Create(&model.Student{StudentID: "OLD", StudentName: "Old", TotalMarks: 100, MarksObtained: 10, Percentage: 10}).Error)

	data := []byte("Student_ID,Student_Name,Total_Marks,Marks_Obtained\nS1,Alice,100,80\nS1,Bob,50,40\n")
	_, err := uploadService.ProcessUpload(csvMeta("dup.csv", int64(len(data))), data)
	require.Error(t, err)

	// The transaction rolled back, so the prior set survives.
	var stored []model.Student
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "OLD", stored[0].StudentID)

	var entries []model.UploadHistory
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, model.UploadStatusError, entries[0].Status)
}

func TestRecentHistoryLimitedToTen(t *testing.T) {
	db := setupTestDB(t)
	uploadService := service.NewUploadService(db)

	for i := 0; i < 12; i++ {
		data := []byte("Student_ID,Student_Name,Total_Marks,Marks_Obtained\nS1,Alice,100,80\n")
		_, err := uploadService.ProcessUpload(csvMeta("grades.csv", 1), data)
		require.NoError(t, err)
	}

	entries, err := uploadService.RecentHistory()
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}
