package engine

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Reporter receives coarse pipeline progress at fixed checkpoints on a
// 13-step scale. Implementations must not block; a Reporter failure never
// affects the pipeline outcome.
type Reporter interface {
	Report(step int, message, detail string)
}

// report invokes the reporter, isolating the pipeline from a panicking sink.
func report(r Reporter, step int, message, detail string) {
	if r == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			zap.L().Warn("engine: progress reporter panicked",
				zap.Int("step", step),
				zap.Any("panic", rec),
			)
		}
	}()
	r.Report(step, message, detail)
}

// TotalSteps is the checkpoint scale reported to observers.
const TotalSteps = 13

// Checkpoint is one recorded progress event.
type Checkpoint struct {
	Step    int       `json:"step"`
	Message string    `json:"message"`
	Detail  string    `json:"detail,omitempty"`
	At      time.Time `json:"at"`
}

// Tracker records checkpoints per session for later retrieval, e.g. by the
// HTTP progress endpoint.
type Tracker struct {
	mu       sync.RWMutex
	sessions map[string][]Checkpoint
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{sessions: make(map[string][]Checkpoint)}
}

// Session returns a Reporter that records under the given session ID.
func (t *Tracker) Session(sessionID string) Reporter {
	return &sessionReporter{tracker: t, sessionID: sessionID}
}

// Checkpoints returns a copy of the recorded events for a session.
func (t *Tracker) Checkpoints(sessionID string) []Checkpoint {
	t.mu.RLock()
	defer t.mu.RUnlock()
	cps := t.sessions[sessionID]
	out := make([]Checkpoint, len(cps))
	copy(out, cps)
	return out
}

// Forget drops a session's history.
func (t *Tracker) Forget(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, sessionID)
}

type sessionReporter struct {
	tracker   *Tracker
	sessionID string
}

func (r *sessionReporter) Report(step int, message, detail string) {
	r.tracker.mu.Lock()
	defer r.tracker.mu.Unlock()
	r.tracker.sessions[r.sessionID] = append(r.tracker.sessions[r.sessionID], Checkpoint{
		Step:    step,
		Message: message,
		Detail:  detail,
		At:      time.Now().UTC(),
	})
}

// LogReporter mirrors checkpoints to the global logger.
type LogReporter struct{}

func (LogReporter) Report(step int, message, detail string) {
	zap.L().Info("analysis progress",
		zap.Int("step", step),
		zap.Int("total_steps", TotalSteps),
		zap.String("message", message),
		zap.String("detail", detail),
	)
}

// MultiReporter fans a checkpoint out to several reporters.
type MultiReporter []Reporter

func (m MultiReporter) Report(step int, message, detail string) {
	for _, r := range m {
		report(r, step, message, detail)
	}
}
