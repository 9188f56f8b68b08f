package quiz

import (
	"sync"
	"time"
)

// DefaultSessionTTL bounds how long an abandoned upload session may live.
const DefaultSessionTTL = 30 * time.Minute

// UploadSession bridges the two-step upload/generate flow: the raw file
// bytes and the submitted video URL, held until finalization or expiry.
type UploadSession struct {
	FileName   string
	MimeType   string
	YoutubeURL string
	Data       []byte
}

// SessionStore is the keyed store the orchestrator keeps upload sessions in.
type SessionStore interface {
	Put(id string, session UploadSession)
	Get(id string) (UploadSession, bool)
	Delete(id string)
}

type sessionEntry struct {
	session   UploadSession
	expiresAt time.Time
}

// MemorySessionStore is an in-process SessionStore with TTL eviction. A
// reaper goroutine sweeps expired entries so abandoned uploads cannot
// accumulate for the lifetime of the process.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]sessionEntry
	stop     chan struct{}
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	s := &MemorySessionStore{
		ttl:      ttl,
		sessions: make(map[string]sessionEntry),
		stop:     make(chan struct{}),
	}
	go s.reap()
	return s
}

func (s *MemorySessionStore) Put(id string, session UploadSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(s.ttl),
	}
}

func (s *MemorySessionStore) Get(id string) (UploadSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return UploadSession{}, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return UploadSession{}, false
	}
	return entry.session, true
}

func (s *MemorySessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Close stops the reaper goroutine.
func (s *MemorySessionStore) Close() {
	close(s.stop)
}

func (s *MemorySessionStore) reap() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, entry := range s.sessions {
				if now.After(entry.expiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
