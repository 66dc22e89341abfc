package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"cpq_quote/internal/domain/entities"
	"cpq_quote/internal/domain/tariff"
	"cpq_quote/internal/domain/validation"
	"cpq_quote/internal/usecase/interfaces"
	"cpq_quote/pkg/logger"

	"github.com/shopspring/decimal"
)

// Persistence keys shared with the browser widget.
const (
	FormStorageKey      = "cpq-form-data"
	OverridesStorageKey = "cpq-tariff-state"
)

const DefaultSubmitTimeout = 10 * time.Second

var (
	ErrSessionNotInitialized     = errors.New("session not initialized")
	ErrSessionAlreadyInitialized = errors.New("session already initialized")
	ErrInvalidStatusTransition   = errors.New("invalid status transition")
	ErrSubmissionSuperseded      = errors.New("submission superseded by a newer one")
	ErrSubmissionCancelled       = errors.New("submission cancelled")
	ErrInvalidTariffVariant      = errors.New("invalid tariff variant")
	ErrInvalidOverride           = errors.New("invalid override value")
	ErrNoSubmittedQuote          = errors.New("no submitted quote")
)

// SessionView is a consistent snapshot of a quote session.
type SessionView struct {
	ID        string
	Status    entities.SessionStatus
	Form      entities.QuoteForm
	Overrides entities.OverrideSet
	Tariffs   tariff.Breakdown
	Issues    []validation.FieldError
	Result    *entities.SubmissionResult
}

// QuoteSession owns one form: its fields, tariff overrides, persistence and the
// submission status machine.
//
//	uninitialized -> idle -> loading -> success | error
//	error -> idle (Retry), loading -> idle (Cancel), any -> idle (ClearForm)
//
// All state lives behind mu. The submission client and the event sink are called
// without holding it.
type QuoteSession struct {
	id      string
	store   interfaces.IPersistenceStore
	client  interfaces.ISubmissionClient
	events  interfaces.IEventSink
	log     *logger.Logger
	timeout time.Duration
	now     func() time.Time

	mu        sync.Mutex
	status    entities.SessionStatus
	form      entities.QuoteForm
	overrides entities.OverrideSet
	result    *entities.SubmissionResult
	gen       uint64
	abort     context.CancelCauseFunc
}

func NewQuoteSession(
	id string,
	store interfaces.IPersistenceStore,
	client interfaces.ISubmissionClient,
	events interfaces.IEventSink,
	log *logger.Logger,
	timeout time.Duration,
) *QuoteSession {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	return &QuoteSession{
		id:        id,
		store:     store,
		client:    client,
		events:    events,
		log:       log,
		timeout:   timeout,
		now:       time.Now,
		status:    entities.SessionStatusUninitialized,
		overrides: entities.NewOverrideSet(),
	}
}

func (s *QuoteSession) ID() string { return s.id }

func (s *QuoteSession) logCtx(ctx context.Context) context.Context {
	return s.log.WithSessionID(ctx, s.id)
}

// Initialize restores the persisted form and overrides. It runs once and never
// writes to the store.
func (s *QuoteSession) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != entities.SessionStatusUninitialized {
		return ErrSessionAlreadyInitialized
	}

	lctx := s.logCtx(ctx)
	if raw, ok := s.store.Get(ctx, FormStorageKey); ok {
		var snap entities.FormSnapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			s.log.Warn(lctx, "[quote][session] ignoring unreadable form snapshot", err)
		} else {
			form, err := s.form.RestoreFields(snap)
			if err != nil {
				s.log.Warn(lctx, "[quote][session] skipped invalid form snapshot keys", err)
			}
			s.form = form
		}
	}
	if raw, ok := s.store.Get(ctx, OverridesStorageKey); ok {
		var o entities.OverrideSet
		if err := json.Unmarshal(raw, &o); err != nil {
			s.log.Warn(lctx, "[quote][session] ignoring unreadable tariff state", err)
		} else {
			s.overrides = o
		}
	}

	s.status = entities.SessionStatusIdle
	s.log.Debug(lctx, "[quote][session] initialized")
	return nil
}

// UpdateFields applies user input and persists the filtered snapshot. Editing
// after a successful submission starts a new quote.
func (s *QuoteSession) UpdateFields(ctx context.Context, fields map[string]json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInitialized(); err != nil {
		return err
	}
	next, err := s.form.ApplyFields(fields)
	if err != nil {
		return err
	}
	s.form = next
	if s.status == entities.SessionStatusSuccess {
		s.status = entities.SessionStatusIdle
		s.result = nil
	}
	s.persistForm(ctx)
	return nil
}

// SetCustomPrice sets or, with nil, clears the price override of a variant.
func (s *QuoteSession) SetCustomPrice(ctx context.Context, v entities.TariffVariant, price *decimal.Decimal) error {
	if !v.Valid() {
		return ErrInvalidTariffVariant
	}
	if price != nil && (price.IsNegative() || !entities.AmountInRange(*price)) {
		return ErrInvalidOverride
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireInitialized(); err != nil {
		return err
	}

	next := s.overrides.Clone()
	if price == nil {
		delete(next.CustomPrices, v)
	} else {
		next.CustomPrices[v] = *price
	}
	s.overrides = next
	s.persistOverrides(ctx)
	return nil
}

// SetCustomDays sets or, with nil, clears the delivery-day override of a variant.
func (s *QuoteSession) SetCustomDays(ctx context.Context, v entities.TariffVariant, days *int) error {
	if !v.Valid() {
		return ErrInvalidTariffVariant
	}
	if days != nil && !entities.DeliveryDaysInRange(*days) {
		return ErrInvalidOverride
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireInitialized(); err != nil {
		return err
	}

	next := s.overrides.Clone()
	if days == nil {
		delete(next.CustomDays, v)
	} else {
		next.CustomDays[v] = *days
	}
	s.overrides = next
	s.persistOverrides(ctx)
	return nil
}

// UpdateOverrides replaces the whole override set.
func (s *QuoteSession) UpdateOverrides(ctx context.Context, o entities.OverrideSet) error {
	for v, p := range o.CustomPrices {
		if !v.Valid() {
			return ErrInvalidTariffVariant
		}
		if p.IsNegative() || !entities.AmountInRange(p) {
			return ErrInvalidOverride
		}
	}
	for v, d := range o.CustomDays {
		if !v.Valid() {
			return ErrInvalidTariffVariant
		}
		if !entities.DeliveryDaysInRange(d) {
			return ErrInvalidOverride
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireInitialized(); err != nil {
		return err
	}
	s.overrides = o.Clone()
	s.persistOverrides(ctx)
	return nil
}

// Tariffs returns the tariff breakdown for the current form and overrides.
func (s *QuoteSession) Tariffs() (tariff.Breakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireInitialized(); err != nil {
		return tariff.Breakdown{}, err
	}
	return tariff.BuildBreakdown(s.form.PricingInput(), s.overrides, s.now()), nil
}

// BuildPayload returns what Submit would send right now.
func (s *QuoteSession) BuildPayload() (entities.SubmissionPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireInitialized(); err != nil {
		return entities.SubmissionPayload{}, err
	}
	return s.buildPayloadLocked(), nil
}

func (s *QuoteSession) buildPayloadLocked() entities.SubmissionPayload {
	tariffs := tariff.ApplyCustomPrices(tariff.CalculateTariffsByDelivery(s.form.PricingInput()), s.overrides.CustomPrices)
	return entities.NewSubmissionPayload(s.form, tariffs.Standard, s.overrides)
}

// Submit sends the current quote. A Submit issued while another is in flight
// aborts the older one, whose caller gets ErrSubmissionSuperseded; Cancel and
// ClearForm make it return ErrSubmissionCancelled. An aborted outcome never
// touches session state.
func (s *QuoteSession) Submit(ctx context.Context) (entities.SubmissionResult, error) {
	s.mu.Lock()
	if err := s.requireInitialized(); err != nil {
		s.mu.Unlock()
		return entities.SubmissionResult{}, err
	}
	if s.status != entities.SessionStatusIdle && s.status != entities.SessionStatusLoading {
		s.mu.Unlock()
		return entities.SubmissionResult{}, ErrInvalidStatusTransition
	}

	s.abortInflight(ErrSubmissionSuperseded)
	s.gen++
	gen := s.gen
	runCtx, abort := context.WithCancelCause(ctx)
	s.abort = abort
	s.status = entities.SessionStatusLoading
	s.result = nil
	payload := s.buildPayloadLocked()
	s.mu.Unlock()
	defer abort(nil)

	lctx := s.logCtx(ctx)
	s.log.Info(lctx, "[quote][session] submitting quote")
	s.emit(ctx, entities.QuoteEvent{Name: entities.EventFormSubmit, SessionID: s.id})

	callCtx, stop := context.WithTimeout(runCtx, s.timeout)
	res := s.client.Submit(callCtx, payload)
	stop()

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		if errors.Is(context.Cause(runCtx), ErrSubmissionCancelled) {
			s.log.Info(lctx, "[quote][session] cancelled submission discarded")
			return entities.SubmissionResult{}, ErrSubmissionCancelled
		}
		s.log.Info(lctx, "[quote][session] superseded submission discarded")
		return entities.SubmissionResult{}, ErrSubmissionSuperseded
	}

	s.abort = nil
	s.result = &res
	// Clean-up writes must survive a caller that already went away.
	storeCtx := context.WithoutCancel(ctx)
	if res.OK {
		s.status = entities.SessionStatusSuccess
		s.resetLocked(storeCtx)
	} else {
		s.status = entities.SessionStatusError
	}
	s.mu.Unlock()

	if res.OK {
		s.log.Info(s.log.WithField(lctx, "lead_id", res.LeadID), "[quote][session] quote submitted")
		s.emit(ctx, entities.QuoteEvent{Name: entities.EventAPIOK, SessionID: s.id, LeadID: res.LeadID})
	} else {
		s.log.Warn(s.log.WithField(lctx, "error_kind", res.ErrorKind), "[quote][session] quote submission failed", errors.New(res.Error))
		s.emit(ctx, entities.QuoteEvent{Name: entities.EventAPIError, SessionID: s.id, Message: res.Error})
	}
	return res, nil
}

// Cancel abandons the in-flight submission and returns to idle.
func (s *QuoteSession) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireInitialized(); err != nil {
		return err
	}
	if s.status != entities.SessionStatusLoading {
		return ErrInvalidStatusTransition
	}
	s.abortInflight(ErrSubmissionCancelled)
	s.gen++
	s.status = entities.SessionStatusIdle
	return nil
}

// Retry acknowledges a failed submission. Form data is kept.
func (s *QuoteSession) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireInitialized(); err != nil {
		return err
	}
	if s.status != entities.SessionStatusError {
		return ErrInvalidStatusTransition
	}
	s.status = entities.SessionStatusIdle
	s.result = nil
	return nil
}

// ClearForm drops the form, the overrides and any in-flight submission.
func (s *QuoteSession) ClearForm(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireInitialized(); err != nil {
		return err
	}
	if s.abort != nil {
		s.abortInflight(ErrSubmissionCancelled)
		s.gen++
	}
	s.resetLocked(ctx)
	s.status = entities.SessionStatusIdle
	s.result = nil
	return nil
}

// TrackPDFClick records that the generated PDF link was opened.
func (s *QuoteSession) TrackPDFClick(ctx context.Context) error {
	s.mu.Lock()
	if err := s.requireInitialized(); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.result == nil || !s.result.OK {
		s.mu.Unlock()
		return ErrNoSubmittedQuote
	}
	leadID := s.result.LeadID
	s.mu.Unlock()

	s.emit(ctx, entities.QuoteEvent{Name: entities.EventPDFLinkClick, SessionID: s.id, LeadID: leadID})
	return nil
}

// View returns a snapshot of the session.
func (s *QuoteSession) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SessionView{
		ID:        s.id,
		Status:    s.status,
		Form:      s.form,
		Overrides: s.overrides.Clone(),
		Tariffs:   tariff.BuildBreakdown(s.form.PricingInput(), s.overrides, s.now()),
		Issues:    validation.ValidateForm(s.form),
	}
	if s.result != nil {
		res := *s.result
		view.Result = &res
	}
	return view
}

func (s *QuoteSession) Status() entities.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *QuoteSession) requireInitialized() error {
	if s.status == entities.SessionStatusUninitialized {
		return ErrSessionNotInitialized
	}
	return nil
}

func (s *QuoteSession) abortInflight(reason error) {
	if s.abort != nil {
		s.abort(reason)
		s.abort = nil
	}
}

func (s *QuoteSession) resetLocked(ctx context.Context) {
	s.form = entities.QuoteForm{}
	s.overrides = entities.NewOverrideSet()
	s.store.Clear(ctx, FormStorageKey)
	s.store.Clear(ctx, OverridesStorageKey)
}

func (s *QuoteSession) persistForm(ctx context.Context) {
	snap, err := s.form.Snapshot()
	if err != nil {
		s.log.Warn(s.logCtx(ctx), "[quote][session] form snapshot failed", err)
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		s.log.Warn(s.logCtx(ctx), "[quote][session] form snapshot encode failed", err)
		return
	}
	s.store.Set(ctx, FormStorageKey, raw)
}

func (s *QuoteSession) persistOverrides(ctx context.Context) {
	raw, err := json.Marshal(s.overrides)
	if err != nil {
		s.log.Warn(s.logCtx(ctx), "[quote][session] tariff state encode failed", err)
		return
	}
	s.store.Set(ctx, OverridesStorageKey, raw)
}

func (s *QuoteSession) emit(ctx context.Context, e entities.QuoteEvent) {
	if s.events == nil {
		return
	}
	s.events.Push(ctx, e)
}
