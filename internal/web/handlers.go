package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dyluth/peyote/internal/beads"
	"go.uber.org/zap"
)

// FailureMessage is shown whenever a request cannot be answered.
const FailureMessage = "Sorry, something went wrong. Please enter a whole number of beads and try again."

// Query parameters read by the handlers.
const (
	formField = "beads_entered"
	apiField  = "beads"
)

const healthTimeout = 5 * time.Second

// HealthResponse represents the JSON response from the /healthz endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache,omitempty"`
	Error  string `json:"error,omitempty"`
}

type errorPage struct {
	Message string
}

// lookup parses raw input and returns its recommendation, consulting the
// cache when one is configured. Cache failures are logged and bypassed.
func (s *Server) lookup(ctx context.Context, raw string) (beads.Result, error) {
	n, err := beads.ParseCount(raw)
	if err != nil {
		return beads.Result{}, err
	}

	if s.cache == nil {
		return beads.Suggest(n), nil
	}

	result, found, err := s.cache.Get(ctx, n)
	if err != nil {
		s.logger.Warn("cache read failed", zap.Int("beads", n), zap.Error(err))
	} else if found {
		return result, nil
	}

	result = beads.Suggest(n)
	if err := s.cache.Put(ctx, result); err != nil {
		s.logger.Warn("cache write failed", zap.Int("beads", n), zap.Error(err))
	}
	return result, nil
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", fmt.Sprintf("%s, %s", http.MethodGet, http.MethodHead))
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !allowRead(w, r) {
		return
	}
	if err := s.renderer.Render(w, http.StatusOK, pageForm, nil); err != nil {
		s.logger.Error("render failed", zap.String("page", pageForm), zap.Error(err))
	}
}

// handleResults answers the form submission.
// Input that is not a whole number gets the generic failure page with a 500,
// logged at error level; everything else renders the results page.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	raw := r.URL.Query().Get(formField)
	result, err := s.lookup(r.Context(), raw)
	if err != nil {
		s.logger.Error("bead count rejected",
			zap.String("request_id", RequestID(r.Context())),
			zap.String("input", raw),
			zap.Error(err),
		)
		s.renderFailure(w)
		return
	}

	s.logger.Debug("bead count evaluated",
		zap.String("request_id", RequestID(r.Context())),
		zap.Int("beads", result.Beads),
		zap.String("outcome", string(result.Outcome)),
	)
	if err := s.renderer.Render(w, http.StatusOK, pageResults, result); err != nil {
		s.logger.Error("render failed", zap.String("page", pageResults), zap.Error(err))
		s.renderFailure(w)
	}
}

func (s *Server) handleAPISuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	result, err := s.lookup(r.Context(), r.URL.Query().Get(apiField))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, beads.ErrParse) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleHealthz returns 200 OK if healthy, 503 Service Unavailable when the
// configured cache cannot be reached.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := s.cache.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unhealthy",
			Cache:  "unreachable",
			Error:  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Cache: "ok"})
}

// renderFailure writes the fixed failure page with a 500 status.
func (s *Server) renderFailure(w http.ResponseWriter) {
	if err := s.renderer.Render(w, http.StatusInternalServerError, pageError, errorPage{Message: FailureMessage}); err != nil {
		s.logger.Error("render failed", zap.String("page", pageError), zap.Error(err))
		http.Error(w, FailureMessage, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
