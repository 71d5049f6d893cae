package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/dakotahermes/brollbot22/broll"
	"github.com/dakotahermes/brollbot22/internal/models"
	"github.com/dakotahermes/brollbot22/shared/config"
	"github.com/dakotahermes/brollbot22/shared/monitoring"
	"github.com/dakotahermes/brollbot22/shared/storage"
)

// Server exposes the pipeline over HTTP. It is a thin shell: input
// validation, pipeline invocation, and export wiring only.
type Server struct {
	cfg      *config.Config
	pipeline *broll.Pipeline
	history  *storage.GenerationHistory
	monitor  *monitoring.Monitor
}

func NewServer(cfg *config.Config, pipeline *broll.Pipeline, history *storage.GenerationHistory, monitor *monitoring.Monitor) *Server {
	return &Server{cfg: cfg, pipeline: pipeline, history: history, monitor: monitor}
}

// Routes returns the request mux for the server.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /history", s.handleHistory)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)
	return mux
}

type generateRequest struct {
	Script      string `json:"script"`
	Tone        string `json:"tone"`
	Format      string `json:"format"`
	Duration    int    `json:"duration"`
	AspectRatio string `json:"aspect_ratio"`
}

type generateResponse struct {
	Outcome string               `json:"outcome"`
	Message string               `json:"message"`
	Beats   []models.SceneBeat   `json:"beats"`
	Prompts []broll.ExportRecord `json:"prompts"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON")
		return
	}

	in, err := models.NewScriptInputWithBounds(req.Script, models.Tone(req.Tone), models.Format(req.Format),
		s.cfg.Script.MinLength, s.cfg.Script.MaxLength)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts, err := s.synthesisOptions(req.Duration, req.AspectRatio)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	startTime := time.Now()
	result, err := s.pipeline.Run(r.Context(), in, opts)
	if err != nil {
		s.monitor.RecordFailure(err, time.Since(startTime))
		status := http.StatusBadGateway
		if errors.Is(err, broll.ErrServiceUnavailable) {
			status = http.StatusServiceUnavailable
		}
		writeError(w, status, broll.FailureMessage(err))
		return
	}

	s.monitor.RecordRun(len(result.Beats), len(result.Prompts), time.Since(startTime))
	s.recordHistory(in, result)

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="broll_prompts.csv"`)
		if err := broll.WriteCSV(w, result.Prompts); err != nil {
			log.Printf("Warning: failed to write CSV response: %v", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Outcome: string(result.Outcome),
		Message: result.Message,
		Beats:   result.Beats,
		Prompts: broll.ExportRecords(result.Prompts),
	})
}

func (s *Server) synthesisOptions(duration int, aspectRatio string) (broll.SynthesisOptions, error) {
	if duration == 0 {
		duration = s.cfg.Output.DefaultDuration
	}
	if duration < models.MinPromptDuration || duration > models.MaxPromptDuration {
		return broll.SynthesisOptions{}, fmt.Errorf("duration must be %d-%d seconds", models.MinPromptDuration, models.MaxPromptDuration)
	}
	if aspectRatio == "" {
		aspectRatio = s.cfg.Output.DefaultAspectRatio
	}
	return broll.SynthesisOptions{Duration: duration, AspectRatio: aspectRatio}, nil
}

func (s *Server) recordHistory(in *models.ScriptInput, result *broll.Result) {
	if s.history == nil {
		return
	}
	rec := storage.NewGenerationRecord(in.Tone, in.Format, len(result.Beats), len(result.Prompts), string(result.Outcome))
	if err := s.history.Append(rec); err != nil {
		log.Printf("Warning: failed to record generation history: %v", err)
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusOK, []storage.GenerationRecord{})
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	writeJSON(w, http.StatusOK, s.history.Recent(limit))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.monitor.IsHealthy() {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK - %s", s.monitor.StatusSummary())
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	fmt.Fprintf(w, "Service unhealthy - %s", s.monitor.StatusSummary())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, s.monitor.StatusSummary())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
