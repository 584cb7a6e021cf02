package handler

import (
	"net/http"

	"gorm.io/gorm"

	"gradebook/internal/database"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Status reports service liveness plus a live database ping.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	dbStatus := "connected"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "disconnected"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Student Grades API",
		"status":   "running",
		"dbStatus": dbStatus,
	})
}
