// Package server provides the HTTP REST API for the resume refiner.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-refiner/internal/db"
	"github.com/jonathan/resume-refiner/internal/jobdesc"
	"github.com/jonathan/resume-refiner/internal/llm"
	"github.com/jonathan/resume-refiner/internal/refine"
	"github.com/jonathan/resume-refiner/internal/resume"
	"github.com/jonathan/resume-refiner/internal/workflow"
)

// Store is the persistence surface the handlers need.
type Store interface {
	CreateResume(ctx context.Context, name, content string) (uuid.UUID, error)
	GetResume(ctx context.Context, id uuid.UUID) (*db.Resume, error)
	UpdateResumeContent(ctx context.Context, id uuid.UUID, content string) (bool, error)
	RenameResume(ctx context.Context, id uuid.UUID, name string) (bool, error)
	ListResumes(ctx context.Context) ([]db.ResumeSummary, error)
	DeleteResume(ctx context.Context, id uuid.UUID) (bool, error)
}

// jobTextFetcher retrieves a job posting's text from a URL.
type jobTextFetcher func(ctx context.Context, url string) (string, error)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	refiner    workflow.Refiner
	llmClient  llm.Client
	database   *db.DB
	fetchJob   jobTextFetcher
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	Model       string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierAdvanced, cfg.Model)
	}

	client, err := llm.NewClient(context.Background(), llmConfig, cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	s := &Server{
		store:     database,
		database:  database,
		llmClient: client,
		refiner:   &refine.Service{Client: client},
		fetchJob: func(ctx context.Context, url string) (string, error) {
			return jobdesc.FetchText(ctx, url, nil)
		},
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for model calls
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Resume CRUD endpoints
	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("PUT /resumes/{id}", s.handleUpdateResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)
	mux.HandleFunc("PUT /resumes/{id}/name", s.handleRenameResume)

	// Section and refinement endpoints
	mux.HandleFunc("GET /resumes/{id}/sections/{section}", s.handleGetSection)
	mux.HandleFunc("POST /resumes/{id}/refine", s.handleRefine)
	mux.HandleFunc("POST /resumes/{id}/refine/accept", s.handleAccept)
	mux.HandleFunc("POST /resumes/{id}/refine/save-as-new", s.handleSaveAsNew)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// domainErrorResponse maps domain errors to HTTP status codes and writes
// the response.
func (s *Server) domainErrorResponse(w http.ResponseWriter, err error) {
	s.errorResponse(w, httpStatus(err), err.Error())
}

// httpStatus returns the appropriate HTTP status code for a domain error.
// A reconstruction failure is checked before parse errors because it wraps
// the parse error that caused it.
func httpStatus(err error) int {
	var invalidSection *resume.InvalidSectionError
	var missingName *workflow.MissingNameError
	var reconErr *resume.ReconstructionError
	var parseErr *resume.ParseError
	var dateErr *resume.DateFormatError
	var formatErr *refine.ResponseFormatError
	var transportErr *refine.TransportError

	switch {
	case errors.As(err, &invalidSection), errors.As(err, &missingName):
		return http.StatusBadRequest
	case errors.As(err, &reconErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &parseErr), errors.As(err, &dateErr):
		return http.StatusBadRequest
	case errors.As(err, &formatErr), errors.As(err, &transportErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
