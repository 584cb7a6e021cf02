package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gradebook/internal/service"
)

type StudentHandler struct {
	studentService *service.StudentService
}

func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentService.ListStudents()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch students", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch service.StudentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	student, err := h.studentService.UpdateStudent(id, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, "Student not found")
		case errors.Is(err, service.ErrInvalidMarks):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Failed to update student", err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.studentService.DeleteStudent(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Student not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete student", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Student deleted successfully"})
}
