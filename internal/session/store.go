package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-client/internal/preview"
	"resume-client/internal/shared/metrics"
	"resume-client/internal/shared/telemetry"
	"resume-client/internal/workflow"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

// Session binds one browser to its upload workflow.
type Session struct {
	ID        string
	CreatedAt time.Time
	Workflow  *workflow.Workflow

	mu       sync.Mutex
	lastSeen time.Time
	preview  *preview.Preview
}

// SetPreview stores the preview of the currently selected file; nil clears it.
func (s *Session) SetPreview(p *preview.Preview) {
	s.mu.Lock()
	s.preview = p
	s.mu.Unlock()
}

// Preview returns the stored file preview, if any.
func (s *Session) Preview() *preview.Preview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Store keeps sessions in memory for the life of the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	analyzer workflow.Analyzer
	ttl      time.Duration
	now      func() time.Time
}

// NewStore builds a store whose workflows share analyzer. Sessions idle for
// longer than ttl are removed by Sweep.
func NewStore(analyzer workflow.Analyzer, ttl time.Duration, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		sessions: make(map[string]*Session),
		analyzer: analyzer,
		ttl:      ttl,
		now:      now,
	}
}

// Create starts a new session in CollectingFile.
func (s *Store) Create() *Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Workflow:  workflow.New(s.analyzer),
		lastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.SetActiveSessions(n)
	return sess
}

// Get returns the session and marks it as recently used.
func (s *Store) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	sess.touch(s.now())
	return sess, nil
}

// Delete removes the session. In-flight submits on it are superseded.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	n := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	sess.Workflow.Reset()
	metrics.SetActiveSessions(n)
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes sessions idle since before now-ttl and returns how many were
// removed. Sessions with a submit in flight are kept.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince().After(cutoff) || sess.Workflow.State() == workflow.Submitting {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	n := len(s.sessions)
	s.mu.Unlock()

	if removed > 0 {
		metrics.SetActiveSessions(n)
		telemetry.Info("session.sweep", map[string]any{"removed": removed, "active": n})
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(s.now())
		}
	}
}
