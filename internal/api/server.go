package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/citesmart/backend/internal/engine"
	"github.com/citesmart/backend/internal/storage"
)

type Server struct {
	Engine  *engine.Engine
	Logger  *logrus.Entry
	Router  *http.ServeMux
	started time.Time
}

func NewServer(eng *engine.Engine, logger *logrus.Entry) *Server {
	s := &Server{
		Engine:  eng,
		Logger:  logger,
		Router:  http.NewServeMux(),
		started: time.Now(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.HandleFunc("/api/v1/match", s.handleMatch)
	s.Router.HandleFunc("/api/v1/documents/", s.handleDocument)
	s.Router.HandleFunc("/api/v1/status", s.handleStatus)
}

func (s *Server) Start(port string) error {
	s.Logger.Infof("Starting API Server on %s", port)
	return http.ListenAndServe(port, s.Handler())
}

// Handler wraps the router with the CORS middleware.
func (s *Server) Handler() http.Handler {
	origin := s.Engine.Config.Server.CORSOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.Router.ServeHTTP(w, r)
	})
}

// Responses
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Handlers

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.Engine.Config.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.Engine.Config.Server.MaxUploadBytes); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "File is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}

	resp, reqErr := s.Engine.Match(r.Context(), engine.Request{
		Filename: header.Filename,
		Data:     data,
		Query:    r.FormValue("query"),
	})
	if reqErr != nil {
		jsonResponse(w, statusFor(reqErr.Kind), ErrorResponse{Error: reqErr.Error(), Kind: string(reqErr.Kind)})
		return
	}

	jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/v1/documents/")
	if name == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Document name is required"})
		return
	}

	data, err := s.Engine.Store.Open(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			jsonResponse(w, http.StatusNotFound, ErrorResponse{Error: "Document not found"})
			return
		}
		s.Logger.WithError(err).Error("Failed to open stored document")
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to open document"})
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(name))
	w.Write(data)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, StatusResponse{
		Status: "ok",
		Uptime: time.Since(s.started).String(),
	})
}

func statusFor(kind engine.Kind) int {
	switch kind {
	case engine.KindDecodeFailure, engine.KindEmptyQuery, engine.KindNoMeaningfulTerms:
		return http.StatusBadRequest
	case engine.KindNoExtractableText:
		return http.StatusUnprocessableEntity
	case engine.KindResourceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".html", ".htm":
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
