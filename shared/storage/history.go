package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dakotahermes/brollbot22/internal/models"
)

// GenerationRecord summarizes one completed pipeline run. Prompt content
// itself is owned by the caller; history keeps run metadata only.
type GenerationRecord struct {
	ID          string        `json:"id"`
	CreatedAt   time.Time     `json:"created_at"`
	Tone        models.Tone   `json:"tone"`
	Format      models.Format `json:"format"`
	BeatCount   int           `json:"beat_count"`
	PromptCount int           `json:"prompt_count"`
	Outcome     string        `json:"outcome"`
}

// NewGenerationRecord builds a record with a fresh ID and timestamp.
func NewGenerationRecord(tone models.Tone, format models.Format, beats, prompts int, outcome string) GenerationRecord {
	return GenerationRecord{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		Tone:        tone,
		Format:      format,
		BeatCount:   beats,
		PromptCount: prompts,
		Outcome:     outcome,
	}
}

// GenerationHistory keeps a best-effort persistent log of past runs in a
// JSON file. Records older than maxAge are dropped on load and on Cleanup.
type GenerationHistory struct {
	filePath string
	records  map[string]GenerationRecord
	mu       sync.RWMutex
	maxAge   time.Duration
}

func NewGenerationHistory(dataDir string, maxAge time.Duration) (*GenerationHistory, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	h := &GenerationHistory{
		filePath: filepath.Join(dataDir, "generation_history.json"),
		records:  make(map[string]GenerationRecord),
		maxAge:   maxAge,
	}

	if err := h.load(); err != nil {
		return nil, fmt.Errorf("failed to load generation history: %w", err)
	}
	h.cleanupLocked()

	return h, nil
}

// Append records a run and persists the updated history.
func (h *GenerationHistory) Append(rec GenerationRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records[rec.ID] = rec
	return h.save()
}

// Recent returns up to n records, newest first.
func (h *GenerationHistory) Recent(n int) []GenerationRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	all := make([]GenerationRecord, 0, len(h.records))
	for _, rec := range h.records {
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

// Count returns the number of retained records.
func (h *GenerationHistory) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// Cleanup drops expired records and persists the result.
func (h *GenerationHistory) Cleanup() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cleanupLocked()
	return h.save()
}

func (h *GenerationHistory) cleanupLocked() {
	cutoff := time.Now().Add(-h.maxAge)
	for id, rec := range h.records {
		if rec.CreatedAt.Before(cutoff) {
			delete(h.records, id)
		}
	}
}

func (h *GenerationHistory) load() error {
	file, err := os.Open(h.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	var records []GenerationRecord
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return fmt.Errorf("failed to decode history data: %w", err)
	}

	for _, rec := range records {
		h.records[rec.ID] = rec
	}
	return nil
}

func (h *GenerationHistory) save() error {
	records := make([]GenerationRecord, 0, len(h.records))
	for _, rec := range h.records {
		records = append(records, rec)
	}

	file, err := os.Create(h.filePath)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
