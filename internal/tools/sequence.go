package tools

import (
	"sync"
	"time"
)

// Sequencer tracks the highest client-issued sequence number per session so
// that a later-resolving older request can be flagged stale instead of
// silently winning the final render.
type Sequencer struct {
	mu      sync.Mutex
	latest  map[string]sessionSeq
	maxIdle time.Duration
}

type sessionSeq struct {
	seq      int64
	lastSeen time.Time
}

// NewSequencer creates a sequencer. Sessions idle longer than maxIdle are
// dropped on the next sweep.
func NewSequencer(maxIdle time.Duration) *Sequencer {
	s := &Sequencer{
		latest:  make(map[string]sessionSeq),
		maxIdle: maxIdle,
	}
	go s.sweep()
	return s
}

// Begin records a request's sequence number. Sessions without a sequence
// (empty session or seq <= 0) are ignored.
func (s *Sequencer) Begin(session string, seq int64) {
	if session == "" || seq <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.latest[session]
	if seq > entry.seq {
		entry.seq = seq
	}
	entry.lastSeen = time.Now()
	s.latest[session] = entry
}

// IsStale reports whether a newer sequence number was begun for the session
// since this request started.
func (s *Sequencer) IsStale(session string, seq int64) bool {
	if session == "" || seq <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq < s.latest[session].seq
}

func (s *Sequencer) sweep() {
	ticker := time.NewTicker(s.maxIdle)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		for session, entry := range s.latest {
			if time.Since(entry.lastSeen) > s.maxIdle {
				delete(s.latest, session)
			}
		}
		s.mu.Unlock()
	}
}
