package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/pricebeacon/monitor/internal/platform"
	"github.com/pricebeacon/monitor/internal/platform/models"
)

type scanURLRequest struct {
	URL string `json:"url"`
}

type importURLsRequest struct {
	ProjectID string   `json:"projectId"`
	URLs      []string `json:"urls"`
}

type setPausedRequest struct {
	Paused bool `json:"paused"`
}

// handleScanURL scans an arbitrary url without persisting anything.
// Failed scans are a normal outcome answered with 200 and success=false.
func (s *Server) handleScanURL(w http.ResponseWriter, r *http.Request) {
	var req scanURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		s.respondWithJSON(w, http.StatusBadRequest, models.ScanResult{
			Success: false,
			Error:   "URL is required",
		})
		return
	}

	if _, err := url.ParseRequestURI(req.URL); err != nil {
		s.respondWithJSON(w, http.StatusBadRequest, models.ScanResult{
			Success: false,
			Error:   "invalid URL",
		})
		return
	}

	result, err := s.prober.Probe(r.Context(), req.URL)
	if err != nil {
		s.logger.Error().Str("url", req.URL).Err(err).Msg("can't probe url")
		s.respondWithJSON(w, http.StatusInternalServerError, models.ScanResult{
			Success: false,
			Error:   "an internal server error occurred",
		})
		return
	}

	s.respondWithJSON(w, http.StatusOK, result)
}

// handleScanNow triggers a bulk scan cycle over all due urls.
func (s *Server) handleScanNow(w http.ResponseWriter, r *http.Request) {
	err := s.scheduler.TriggerScanAsync(r.Context())
	if errors.Is(err, platform.ErrCooldownActive) {
		s.respondWithError(w, http.StatusTooManyRequests, "scan cooldown is active")
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("can't trigger bulk scan")
		s.respondWithError(w, http.StatusInternalServerError, "failed to trigger scan")
		return
	}

	s.respondWithJSON(w, http.StatusAccepted, map[string]string{"message": "scan started"})
}

func (s *Server) handleScanTrackedURL(w http.ResponseWriter, r *http.Request) {
	urlID := chi.URLParam(r, "urlID")

	tracked, err := s.storage.GetURL(r.Context(), urlID)
	if errors.Is(err, platform.ErrURLNotFound) {
		s.respondWithError(w, http.StatusNotFound, "URL not found")
		return
	}
	if err != nil {
		s.logger.Error().Str("urlId", urlID).Err(err).Msg("can't load tracked url")
		s.respondWithError(w, http.StatusInternalServerError, "failed to load URL")
		return
	}

	result, err := s.scheduler.ScanNow(r.Context(), tracked.ID, tracked.URL)
	if err != nil {
		s.logger.Error().Str("urlId", urlID).Err(err).Msg("can't scan tracked url")
		s.respondWithJSON(w, http.StatusInternalServerError, models.ScanResult{
			Success: false,
			Error:   "an internal server error occurred",
		})
		return
	}

	s.respondWithJSON(w, http.StatusOK, result)
}

func (s *Server) handleImportURLs(w http.ResponseWriter, r *http.Request) {
	var req importURLsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProjectID == "" || len(req.URLs) == 0 {
		s.respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	imported, err := s.storage.ImportURLs(r.Context(), req.ProjectID, req.URLs)
	if err != nil {
		s.logger.Error().Str("projectId", req.ProjectID).Err(err).Msg("can't import urls")
		s.respondWithError(w, http.StatusInternalServerError, "failed to import URLs")
		return
	}

	s.respondWithJSON(w, http.StatusCreated, imported)
}

func (s *Server) handleSetPaused(w http.ResponseWriter, r *http.Request) {
	urlID := chi.URLParam(r, "urlID")

	var req setPausedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.storage.SetPaused(r.Context(), urlID, req.Paused)
	if errors.Is(err, platform.ErrURLNotFound) {
		s.respondWithError(w, http.StatusNotFound, "URL not found")
		return
	}
	if err != nil {
		s.logger.Error().Str("urlId", urlID).Err(err).Msg("can't update url pause state")
		s.respondWithError(w, http.StatusInternalServerError, "failed to update URL")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.storage.ListProjects(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("can't list projects")
		s.respondWithError(w, http.StatusInternalServerError, "failed to fetch projects")
		return
	}

	if projects == nil {
		projects = []models.Project{}
	}

	s.respondWithJSON(w, http.StatusOK, projects)
}

func (s *Server) handleListProjectURLs(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	urls, err := s.storage.ListProjectURLs(r.Context(), projectID)
	if err != nil {
		s.logger.Error().Str("projectId", projectID).Err(err).Msg("can't list project urls")
		s.respondWithError(w, http.StatusInternalServerError, "failed to fetch URLs")
		return
	}

	if urls == nil {
		urls = []models.TrackedURL{}
	}

	s.respondWithJSON(w, http.StatusOK, urls)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, map[string]string{"error": message})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error().Err(err).Msg("can't marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}
