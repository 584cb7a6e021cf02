package handler

import (
	"io"
	"net/http"
	"strings"

	"gradebook/internal/model"
	"gradebook/internal/service"
)

const maxUploadSize = 5 << 20 // 5MB

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// fileTypeFor maps a declared media type onto the two supported upload
// formats. Anything else is rejected before normalization is attempted.
func fileTypeFor(contentType string) (string, bool) {
	mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0])
	switch mediaType {
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-excel":
		return model.FileTypeExcel, true
	case "text/csv":
		return model.FileTypeCSV, true
	}
	return "", false
}

func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large or bad request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	fileType, ok := fileTypeFor(header.Header.Get("Content-Type"))
	if !ok {
		// Terminal failure: the CSV/Excel branch was never reached, so no
		// history entry is written.
		writeError(w, http.StatusBadRequest, "Unsupported file type. Please upload a CSV or Excel file")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file", err.Error())
		return
	}

	meta := service.UploadMeta{
		Filename: header.Filename,
		FileType: fileType,
		FileSize: header.Size,
	}
	students, err := h.uploadService.ProcessUpload(meta, data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to process uploaded file", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "File processed successfully",
		"count":    len(students),
		"students": students,
	})
}

// ListUploadHistory returns the ten most recent upload attempts, newest first.
func (h *UploadHandler) ListUploadHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.uploadService.RecentHistory()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch upload history", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
