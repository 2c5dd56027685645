package web

import (
	"io/fs"
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux) {
	// Static files
	staticSubFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSubFS))))

	// Pages
	mux.HandleFunc("GET /{$}", s.handleIndex)

	// API
	mux.HandleFunc("GET /messages", s.handleListMessages)
	mux.HandleFunc("POST /messages", s.handleCreateMessage)
	mux.HandleFunc("GET /repositories", s.handleListRepositories)
	mux.HandleFunc("POST /repositories", s.handleRegisterRepository)
	mux.HandleFunc("POST /push", s.handlePush)

	// System
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("/", s.handleNotFound)
}
