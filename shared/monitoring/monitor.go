package monitoring

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Monitor tracks the outcome of recent generation runs for health reporting.
type Monitor struct {
	mu             sync.Mutex
	totalRuns      int
	totalPrompts   int
	lastRunSuccess bool
	lastRunTime    time.Time
	lastSummary    string
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

// RecordRun records a completed pipeline run.
func (m *Monitor) RecordRun(beats, prompts int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalRuns++
	m.totalPrompts += prompts
	m.lastRunSuccess = true
	m.lastRunTime = time.Now()
	m.lastSummary = fmt.Sprintf("extracted %d beats, generated %d prompts", beats, prompts)

	log.Printf("Run completed - %s (took %v)", m.lastSummary, duration)
}

// RecordFailure records a run that failed during decomposition.
func (m *Monitor) RecordFailure(err error, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalRuns++
	m.lastRunSuccess = false
	m.lastRunTime = time.Now()
	m.lastSummary = err.Error()

	log.Printf("FAILURE: %s (Duration: %v)", err.Error(), duration)
}

// IsHealthy reports whether the last run succeeded. No runs yet counts as
// healthy.
func (m *Monitor) IsHealthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastRunTime.IsZero() {
		return true
	}
	return m.lastRunSuccess
}

// StatusSummary renders a short human-readable status line.
func (m *Monitor) StatusSummary() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastRunTime.IsZero() {
		return "No runs yet"
	}
	state := "ok"
	if !m.lastRunSuccess {
		state = "failed"
	}
	return fmt.Sprintf("Last run %s at %s: %s (%d runs, %d prompts total)",
		state, m.lastRunTime.Format("Jan 2 15:04"), m.lastSummary, m.totalRuns, m.totalPrompts)
}
