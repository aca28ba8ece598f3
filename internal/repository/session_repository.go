package repository

import (
	"sync"
	"time"

	"extractor-web/internal/models"
)

// SessionRepository keeps extract sessions in memory for the gap between
// the upload request and the export request. Nothing is persisted; expired
// sessions are pruned lazily whenever the store is touched, so no
// background work is needed.
type SessionRepository struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*models.ExtractSession
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		ttl:      ttl,
		sessions: make(map[string]*models.ExtractSession),
	}
}

// Create stores the session under its code.
func (r *SessionRepository) Create(session *models.ExtractSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	r.sessions[session.Code] = session
}

// Get returns the session for code, or false when it never existed or has
// expired.
func (r *SessionRepository) Get(code string) (*models.ExtractSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	session, ok := r.sessions[code]
	return session, ok
}

// Delete removes a session.
func (r *SessionRepository) Delete(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, code)
}

func (r *SessionRepository) prune() {
	cutoff := time.Now().Add(-r.ttl)
	for code, session := range r.sessions {
		if session.CreatedAt.Before(cutoff) {
			delete(r.sessions, code)
		}
	}
}
