package main

import (
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"gradebook/internal/config"
	"gradebook/internal/database"
	"gradebook/internal/handler"
	"gradebook/internal/service"
)

func main() {
	cfg := config.Load()

	// Initialize database
	db := database.InitDB(cfg.DatabaseURL)

	// Initialize services
	studentService := service.NewStudentService(db)
	uploadService := service.NewUploadService(db)

	// Initialize handlers
	studentHandler := handler.NewStudentHandler(studentService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	healthHandler := handler.NewHealthHandler(db)

	// Setup router
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handler.NotFoundRoute)

	r.HandleFunc("/", healthHandler.Status).Methods("GET")
	r.HandleFunc("/api/upload", uploadHandler.UploadFile).Methods("POST")
	r.HandleFunc("/api/upload-history", uploadHandler.ListUploadHistory).Methods("GET")
	r.HandleFunc("/api/students", studentHandler.ListStudents).Methods("GET")
	r.HandleFunc("/api/students/{id}", studentHandler.UpdateStudent).Methods("PUT")
	r.HandleFunc("/api/students/{id}", studentHandler.DeleteStudent).Methods("DELETE")

	// Start server
	log.Println("Server running on port " + cfg.Port)
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.AllowedOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	if err := http.ListenAndServe(":"+cfg.Port, cors(r)); err != nil {
		log.Fatal("Server failed:", err)
	}
}
