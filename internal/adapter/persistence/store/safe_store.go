// Package store implements session persistence on top of a pluggable
// key/value backend.
package store

import (
	"context"
	"encoding/json"
	"strings"

	"cpq_quote/internal/usecase/interfaces"
	"cpq_quote/pkg/logger"
)

const keyNamespace = "cpq"

// SafeStore turns a fallible backend into the total store quote sessions use.
// Backend failures are logged and read as absent values or dropped writes.
type SafeStore struct {
	backend interfaces.IKeyValueBackend
	log     *logger.Logger
}

var _ interfaces.ISessionStoreFactory = (*SafeStore)(nil)

func NewSafeStore(backend interfaces.IKeyValueBackend, log *logger.Logger) *SafeStore {
	if log == nil {
		log = logger.Nop()
	}
	return &SafeStore{backend: backend, log: log}
}

// ForSession returns a store whose keys are prefixed with the session id.
func (s *SafeStore) ForSession(sessionID string) interfaces.IPersistenceStore {
	return &SessionStore{parent: s, sessionID: sessionID}
}

// SessionKey builds the backend key for a session-scoped key.
func SessionKey(sessionID, key string) string {
	return strings.Join([]string{keyNamespace, "session", sessionID, key}, ":")
}

type SessionStore struct {
	parent    *SafeStore
	sessionID string
}

var _ interfaces.IPersistenceStore = (*SessionStore)(nil)

func (s *SessionStore) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	raw, err := s.parent.backend.Get(ctx, SessionKey(s.sessionID, key))
	if err != nil {
		s.warn(ctx, key, "[quote][store] read failed", err)
		return nil, false
	}
	if raw == nil {
		return nil, false
	}
	if !json.Valid(raw) {
		s.warn(ctx, key, "[quote][store] discarding malformed value", nil)
		return nil, false
	}
	return json.RawMessage(raw), true
}

func (s *SessionStore) Set(ctx context.Context, key string, value json.RawMessage) {
	if err := s.parent.backend.Put(ctx, SessionKey(s.sessionID, key), value); err != nil {
		s.warn(ctx, key, "[quote][store] write failed", err)
	}
}

func (s *SessionStore) Clear(ctx context.Context, key string) {
	if err := s.parent.backend.Delete(ctx, SessionKey(s.sessionID, key)); err != nil {
		s.warn(ctx, key, "[quote][store] delete failed", err)
	}
}

func (s *SessionStore) warn(ctx context.Context, key, msg string, err error) {
	log := s.parent.log
	ctx = log.WithFields(ctx, map[string]any{"session_id": s.sessionID, "key": key})
	log.Warn(ctx, msg, err)
}
