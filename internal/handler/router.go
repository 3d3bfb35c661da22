package handler

import (
	"net/http"

	"payslip-processor/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"payslip-processor"}`))
	}).Methods("GET")

	// Initialize handlers
	processHandler := NewProcessHandler(
		container.TaskStore,
		container.Pool,
		container.Config.GetUploadPath(),
		container.Config.GetMaxFileSize(),
		container.Logger,
	)
	taskHandler := NewTaskHandler(container.TaskStore, container.Organizer, container.Logger)

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/process", processHandler.ProcessPDF).Methods("POST")
	api.HandleFunc("/tasks/{id}", taskHandler.GetStatus).Methods("GET")
	api.HandleFunc("/tasks/{id}/download", taskHandler.GetResult).Methods("GET")

	// Organized results are served statically under /media
	fileServer := http.FileServer(http.Dir(container.Config.GetOutputPath()))
	router.PathPrefix("/media/").Handler(http.StripPrefix("/media/", fileServer))

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
