package handlers

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

// newTestSession creates a store with one live session.
func newTestSession() (*SessionStore, *Session) {
	store := NewSessionStore(time.Hour)
	return store, store.Create()
}
