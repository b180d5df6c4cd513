package api

import (
	"github.com/gorilla/mux"
	"github.com/rskd/talent/internal/config"
	"github.com/rskd/talent/internal/db"
	"github.com/rskd/talent/internal/metrics"
	"github.com/rskd/talent/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddlewareWithOrigin(cfg.CORSOrigin))
	r.Use(RecoveryMiddleware)
	r.Use(MetricsMiddleware)

	// Repository
	repo := sqlite.New(database, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	candidatesHandler := NewCandidatesHandler(repo)

	// Service endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	// Candidate endpoints
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/candidates/", candidatesHandler.ListCandidates).Methods("GET")
	apiRouter.HandleFunc("/candidates/", candidatesHandler.CreateCandidate).Methods("POST")
	apiRouter.HandleFunc("/candidates/import/", candidatesHandler.ImportCandidates).Methods("POST")
	apiRouter.HandleFunc("/candidates/{id:[0-9]+}", candidatesHandler.GetCandidate).Methods("GET")
	apiRouter.HandleFunc("/candidates/{id:[0-9]+}", candidatesHandler.UpdateCandidate).Methods("PUT")
	apiRouter.HandleFunc("/candidates/{id:[0-9]+}", candidatesHandler.DeleteCandidate).Methods("DELETE")
	apiRouter.HandleFunc("/candidates/{id:[0-9]+}/next-stage", candidatesHandler.AdvanceStage).Methods("PUT")
	apiRouter.HandleFunc("/candidates/{id:[0-9]+}/reject", candidatesHandler.RejectCandidate).Methods("PUT")
	apiRouter.HandleFunc("/candidates/{id:[0-9]+}/pdf", candidatesHandler.CandidateProfile).Methods("GET")

	return r
}
