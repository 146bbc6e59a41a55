package synchronization

import (
	"fmt"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
)

// State is a phase of one sync run
type State int

const (
	StateIdle State = iota
	StateFetching
	StateNormalizing
	StatePersisting
	StateEvicting
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateNormalizing:
		return "normalizing"
	case StatePersisting:
		return "persisting"
	case StateEvicting:
		return "evicting"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText renders the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var transitions = map[State][]State{
	StateIdle:        {StateFetching},
	StateFetching:    {StateNormalizing, StateFailed},
	StateNormalizing: {StatePersisting, StateFailed},
	StatePersisting:  {StateEvicting, StateFailed},
	StateEvicting:    {StateIdle},
	StateFailed:      {StateIdle},
}

// CanTransitionTo reports whether next is a legal successor of s
func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// machine tracks one run's state and the path it took
type machine struct {
	state State
	path  []State
}

func newMachine() *machine {
	return &machine{state: StateIdle, path: []State{StateIdle}}
}

func (m *machine) to(next State) error {
	if !m.state.CanTransitionTo(next) {
		return fmt.Errorf("illegal sync state transition %s -> %s", m.state, next)
	}
	m.state = next
	m.path = append(m.path, next)
	return nil
}

// Outcome labels a finished run
const (
	OutcomeSuccess   = "success"
	OutcomeFailed    = "failed"
	OutcomeCancelled = "cancelled"
	OutcomeNoTarget  = "no_active_location"
)

// RunStatus describes one sync run, in flight or finished
type RunStatus struct {
	ID         string            `json:"id"`
	Location   forecast.Location `json:"location"`
	Source     string            `json:"source"`
	State      State             `json:"state"`
	Path       []State           `json:"path"`
	Outcome    string            `json:"outcome,omitempty"`
	Error      string            `json:"error,omitempty"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt *time.Time        `json:"finished_at,omitempty"`
}

// StatusReport lists in-flight runs and the last finished run per location and source
type StatusReport struct {
	InFlight []RunStatus `json:"in_flight"`
	Recent   []RunStatus `json:"recent"`
}

// Result summarises a successful run
type Result struct {
	RunID       string               `json:"run_id"`
	Location    forecast.Location    `json:"location"`
	Source      forecast.DataSource  `json:"source"`
	Providers   []string             `json:"providers"`
	Dropped     []string             `json:"dropped,omitempty"`
	HourlyCount int                  `json:"hourly_count"`
	DailyCount  int                  `json:"daily_count"`
	Evicted     ports.EvictionResult `json:"evicted"`
	Coalesced   bool                 `json:"coalesced"`
	StartedAt   time.Time            `json:"started_at"`
	FinishedAt  time.Time            `json:"finished_at"`
}

func runKey(coord forecast.Coordinate, source string) string {
	return coord.Key() + "|" + source
}
