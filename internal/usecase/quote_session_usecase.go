package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"cpq_quote/internal/domain/entities"
	"cpq_quote/internal/usecase/interfaces"
	"cpq_quote/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
)

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// IQuoteSessionUseCase exposes quote sessions by id to the HTTP layer.
//
// Start is idempotent: a known id returns the live session and an unknown one is
// created and restored from persistence.
type IQuoteSessionUseCase interface {
	Start(ctx context.Context, sessionID string) (SessionView, error)
	Get(ctx context.Context, sessionID string) (SessionView, error)
	UpdateForm(ctx context.Context, sessionID string, fields map[string]json.RawMessage) (SessionView, error)
	ClearForm(ctx context.Context, sessionID string) (SessionView, error)
	UpdateOverrides(ctx context.Context, sessionID string, overrides entities.OverrideSet) (SessionView, error)
	Submit(ctx context.Context, sessionID string) (SessionView, error)
	Cancel(ctx context.Context, sessionID string) (SessionView, error)
	Retry(ctx context.Context, sessionID string) (SessionView, error)
	TrackPDFClick(ctx context.Context, sessionID string) error
}

const (
	DefaultSessionIdleTTL = 30 * time.Minute
	DefaultMaxSessions    = 10_000
)

type QuoteSessionUseCase struct {
	stores  interfaces.ISessionStoreFactory
	client  interfaces.ISubmissionClient
	events  interfaces.IEventSink
	log     *logger.Logger
	timeout time.Duration

	idleTTL     time.Duration
	maxSessions int
	now         func() time.Time

	mu        sync.RWMutex
	sessions  map[string]*sessionEntry
	lastSweep time.Time
}

// sessionEntry is a live session plus the last time any operation touched it.
type sessionEntry struct {
	session  *QuoteSession
	lastSeen atomic.Int64
}

func (e *sessionEntry) touch(now time.Time) {
	e.lastSeen.Store(now.UnixNano())
}

func (e *sessionEntry) idleSince() time.Time {
	return time.Unix(0, e.lastSeen.Load())
}

// RegistryOption tunes how many sessions stay in memory and for how long.
type RegistryOption func(*QuoteSessionUseCase)

// WithIdleTTL evicts sessions untouched for longer than ttl. Evicted sessions
// come back from persistence on the next Start with the same id.
func WithIdleTTL(ttl time.Duration) RegistryOption {
	return func(u *QuoteSessionUseCase) {
		if ttl > 0 {
			u.idleTTL = ttl
		}
	}
}

// WithMaxSessions caps the number of live sessions; the least recently used idle
// session is evicted to make room.
func WithMaxSessions(n int) RegistryOption {
	return func(u *QuoteSessionUseCase) {
		if n > 0 {
			u.maxSessions = n
		}
	}
}

var _ IQuoteSessionUseCase = (*QuoteSessionUseCase)(nil)

func NewQuoteSessionUseCase(
	stores interfaces.ISessionStoreFactory,
	client interfaces.ISubmissionClient,
	events interfaces.IEventSink,
	log *logger.Logger,
	timeout time.Duration,
	opts ...RegistryOption,
) *QuoteSessionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	u := &QuoteSessionUseCase{
		stores:      stores,
		client:      client,
		events:      events,
		log:         log,
		timeout:     timeout,
		idleTTL:     DefaultSessionIdleTTL,
		maxSessions: DefaultMaxSessions,
		now:         time.Now,
		sessions:    make(map[string]*sessionEntry),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Start returns the live session for sessionID or restores a new one from
// persistence. Restoring happens outside the registry lock; when two callers
// race on the same id the first insert wins.
func (u *QuoteSessionUseCase) Start(ctx context.Context, sessionID string) (SessionView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	} else if !sessionIDPattern.MatchString(sessionID) {
		return SessionView{}, ErrInvalidSessionID
	}

	if s, err := u.lookup(sessionID); err == nil {
		return s.View(), nil
	}

	fresh := NewQuoteSession(sessionID, u.stores.ForSession(sessionID), u.client, u.events, u.log, u.timeout)
	if err := fresh.Initialize(ctx); err != nil {
		return SessionView{}, err
	}

	now := u.now()
	u.mu.Lock()
	entry, ok := u.sessions[sessionID]
	if !ok {
		u.evictLocked(ctx, now)
		entry = &sessionEntry{session: fresh}
		u.sessions[sessionID] = entry
	}
	entry.touch(now)
	u.mu.Unlock()

	if !ok {
		u.log.Info(u.log.WithSessionID(ctx, sessionID), "[quote][usecase] session started")
	}
	return entry.session.View(), nil
}

func (u *QuoteSessionUseCase) Get(ctx context.Context, sessionID string) (SessionView, error) {
	s, err := u.lookup(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return s.View(), nil
}

func (u *QuoteSessionUseCase) UpdateForm(ctx context.Context, sessionID string, fields map[string]json.RawMessage) (SessionView, error) {
	return u.apply(sessionID, func(s *QuoteSession) error {
		return s.UpdateFields(ctx, fields)
	})
}

func (u *QuoteSessionUseCase) ClearForm(ctx context.Context, sessionID string) (SessionView, error) {
	return u.apply(sessionID, func(s *QuoteSession) error {
		return s.ClearForm(ctx)
	})
}

func (u *QuoteSessionUseCase) UpdateOverrides(ctx context.Context, sessionID string, overrides entities.OverrideSet) (SessionView, error) {
	return u.apply(sessionID, func(s *QuoteSession) error {
		return s.UpdateOverrides(ctx, overrides)
	})
}

// Submit blocks until the submission completes, fails or is aborted.
func (u *QuoteSessionUseCase) Submit(ctx context.Context, sessionID string) (SessionView, error) {
	return u.apply(sessionID, func(s *QuoteSession) error {
		_, err := s.Submit(ctx)
		return err
	})
}

func (u *QuoteSessionUseCase) Cancel(ctx context.Context, sessionID string) (SessionView, error) {
	return u.apply(sessionID, func(s *QuoteSession) error {
		return s.Cancel()
	})
}

func (u *QuoteSessionUseCase) Retry(ctx context.Context, sessionID string) (SessionView, error) {
	return u.apply(sessionID, func(s *QuoteSession) error {
		return s.Retry()
	})
}

func (u *QuoteSessionUseCase) TrackPDFClick(ctx context.Context, sessionID string) error {
	s, err := u.lookup(sessionID)
	if err != nil {
		return err
	}
	return s.TrackPDFClick(ctx)
}

func (u *QuoteSessionUseCase) apply(sessionID string, op func(*QuoteSession) error) (SessionView, error) {
	s, err := u.lookup(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if err := op(s); err != nil {
		return SessionView{}, err
	}
	return s.View(), nil
}

func (u *QuoteSessionUseCase) lookup(sessionID string) (*QuoteSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if !sessionIDPattern.MatchString(sessionID) {
		return nil, ErrInvalidSessionID
	}
	u.mu.RLock()
	entry, ok := u.sessions[sessionID]
	u.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	entry.touch(u.now())
	return entry.session, nil
}

// evictLocked drops sessions idle past the TTL, then the least recently used
// ones while the registry is full. Sessions with a submission in flight stay.
// Callers hold u.mu.
func (u *QuoteSessionUseCase) evictLocked(ctx context.Context, now time.Time) {
	full := len(u.sessions) >= u.maxSessions
	if !full && now.Sub(u.lastSweep) < u.idleTTL/4 {
		return
	}
	u.lastSweep = now

	evicted := 0
	var oldestID string
	var oldest time.Time
	for id, entry := range u.sessions {
		if entry.session.Status() == entities.SessionStatusLoading {
			continue
		}
		seen := entry.idleSince()
		if now.Sub(seen) > u.idleTTL {
			delete(u.sessions, id)
			evicted++
			continue
		}
		if oldestID == "" || seen.Before(oldest) {
			oldestID, oldest = id, seen
		}
	}
	if len(u.sessions) >= u.maxSessions && oldestID != "" {
		delete(u.sessions, oldestID)
		evicted++
	}

	if evicted > 0 {
		u.log.Debug(u.log.WithFields(ctx, map[string]any{
			"evicted": evicted,
			"live":    len(u.sessions),
		}), "[quote][usecase] evicted idle sessions")
	}
}
