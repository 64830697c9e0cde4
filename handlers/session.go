package handlers

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"

	"hectarepricer/services"
)

type contextKey string

const SessionKey contextKey = "pricingSession"

// SessionCookieName is the browser-session cookie that identifies a ledger.
const SessionCookieName = "pricing_session"

// Session is the in-memory state of one browser: its ledger and the last
// price per hectare entered. Nothing is persisted.
type Session struct {
	ID     string
	Ledger *services.Ledger

	mu       sync.Mutex
	price    string
	lastSeen time.Time
}

// Price returns the remembered price-per-hectare field value.
func (s *Session) Price() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.price
}

func (s *Session) SetPrice(price string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.price = price
}

// SessionStore keeps sessions in memory. Sessions idle for longer than ttl
// are dropped the next time the store is accessed.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns a live session and marks it as used.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.mu.Lock()
	sess.lastSeen = now
	sess.mu.Unlock()
	return sess, true
}

// Create starts a new session with an empty ledger.
func (s *SessionStore) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)

	sess := &Session{
		ID:       uuid.NewString(),
		Ledger:   services.NewLedger(),
		lastSeen: now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// evictExpired must be called with s.mu held.
func (s *SessionStore) evictExpired(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastSeen)
		sess.mu.Unlock()
		if idle > s.ttl {
			delete(s.sessions, id)
			log.Printf("session: evicted idle session %s after %s", id, idle.Truncate(time.Second))
		}
	}
}

// GetSession extracts the session from the request context.
func GetSession(r *http.Request) *Session {
	if val, ok := r.Context().Value(SessionKey).(*Session); ok {
		return val
	}
	return nil
}

// WithSession returns a copy of r carrying sess in its context.
func WithSession(r *http.Request, sess *Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), SessionKey, sess))
}

// SessionMiddleware reads the session cookie, loads or creates the session
// and stores it in the request context. A new session gets a browser-session
// cookie (no MaxAge), so closing the browser discards the ledger.
func SessionMiddleware(store *SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var sess *Session

		cookie, err := e.Request.Cookie(SessionCookieName)
		if err == nil && cookie.Value != "" {
			sess, _ = store.Get(cookie.Value)
		}

		if sess == nil {
			sess = store.Create()
			http.SetCookie(e.Response, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		e.Request = WithSession(e.Request, sess)
		return e.Next()
	}
}
