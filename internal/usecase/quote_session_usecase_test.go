package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cpq_quote/internal/adapter/persistence/store"
	"cpq_quote/internal/domain/entities"
	mock_interfaces "cpq_quote/internal/usecase/interfaces/mocks"
	"cpq_quote/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestQuoteSessionUseCase_Start(t *testing.T) {
	t.Run("generates an id when none is given", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		factory := mock_interfaces.NewMockISessionStoreFactory(ctrl)
		store := mock_interfaces.NewMockIPersistenceStore(ctrl)
		uc := NewQuoteSessionUseCase(factory, nil, nil, nil, 0)

		factory.EXPECT().ForSession(gomock.Any()).Return(store)
		store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false).Times(2)

		view, err := uc.Start(context.Background(), "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uuid.Parse(view.ID); err != nil {
			t.Fatalf("expected uuid session id, got %q", view.ID)
		}
		if view.Status != entities.SessionStatusIdle {
			t.Fatalf("expected idle, got %s", view.Status)
		}
	})

	t.Run("known id is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		factory := mock_interfaces.NewMockISessionStoreFactory(ctrl)
		store := mock_interfaces.NewMockIPersistenceStore(ctrl)
		uc := NewQuoteSessionUseCase(factory, nil, nil, nil, 0)

		factory.EXPECT().ForSession("widget-1").Return(store).Times(1)
		store.EXPECT().Get(gomock.Any(), FormStorageKey).Return(json.RawMessage(`{"qty":5}`), true)
		store.EXPECT().Get(gomock.Any(), OverridesStorageKey).Return(nil, false)

		first, err := uc.Start(context.Background(), "widget-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Start(context.Background(), "widget-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID != "widget-1" || second.Form.Qty != 5 {
			t.Fatalf("unexpected views: %+v %+v", first, second)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteSessionUseCase(nil, nil, nil, nil, 0)
		if _, err := uc.Start(context.Background(), "../etc/passwd"); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})
}

func TestQuoteSessionUseCase_Lookup(t *testing.T) {
	uc := NewQuoteSessionUseCase(nil, nil, nil, nil, 0)

	if _, err := uc.Get(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := uc.Retry(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := uc.TrackPDFClick(context.Background(), ""); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
}

func TestQuoteSessionUseCase_Flow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	factory := mock_interfaces.NewMockISessionStoreFactory(ctrl)
	store := mock_interfaces.NewMockIPersistenceStore(ctrl)
	client := mock_interfaces.NewMockISubmissionClient(ctrl)
	events := mock_interfaces.NewMockIEventSink(ctrl)
	uc := NewQuoteSessionUseCase(factory, client, events, nil, 0)

	factory.EXPECT().ForSession("s-9").Return(store)
	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false).Times(2)
	store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	store.EXPECT().Clear(gomock.Any(), gomock.Any()).Times(2)
	events.EXPECT().Push(gomock.Any(), gomock.Any()).Times(3)
	client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.SubmissionSuccess("https://cdn/q.pdf", "lead-9"))

	ctx := context.Background()
	if _, err := uc.Start(ctx, "s-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.UpdateForm(ctx, "s-9", pricedFields(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	overrides := entities.NewOverrideSet()
	overrides.CustomDays[entities.TariffStandard] = 12
	view, err := uc.UpdateOverrides(ctx, "s-9", overrides)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Tariffs.Schedule.Standard != 12 {
		t.Fatalf("expected overridden schedule, got %+v", view.Tariffs.Schedule)
	}

	view, err = uc.Submit(ctx, "s-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != entities.SessionStatusSuccess || view.Result == nil || view.Result.LeadID != "lead-9" {
		t.Fatalf("unexpected view after submit: %+v", view)
	}
	if err := uc.TrackPDFClick(ctx, "s-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Cancel(ctx, "s-9"); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestQuoteSessionUseCase_StartRestoresOutsideLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	factory := mock_interfaces.NewMockISessionStoreFactory(ctrl)
	sessionStore := mock_interfaces.NewMockIPersistenceStore(ctrl)
	uc := NewQuoteSessionUseCase(factory, nil, nil, nil, 0)

	entered := make(chan struct{}, 2)
	proceed := make(chan struct{})
	factory.EXPECT().ForSession("dup").Return(sessionStore).Times(2)
	sessionStore.EXPECT().Get(gomock.Any(), FormStorageKey).
		DoAndReturn(func(context.Context, string) (json.RawMessage, bool) {
			entered <- struct{}{}
			<-proceed
			return json.RawMessage(`{"qty":3}`), true
		}).Times(2)
	sessionStore.EXPECT().Get(gomock.Any(), OverridesStorageKey).Return(nil, false).Times(2)

	type outcome struct {
		view SessionView
		err  error
	}
	results := make(chan outcome, 2)
	for i := 0; i < 2; i++ {
		go func() {
			view, err := uc.Start(context.Background(), "dup")
			results <- outcome{view, err}
		}()
	}

	// Both restores must be in flight at once; a registry-wide lock would serialize them.
	for i := 0; i < 2; i++ {
		select {
		case <-entered:
		case <-time.After(2 * time.Second):
			close(proceed)
			t.Fatalf("restores were serialized behind the registry lock")
		}
	}
	close(proceed)

	for i := 0; i < 2; i++ {
		res := <-results
		if res.err != nil {
			t.Fatalf("unexpected error: %v", res.err)
		}
		if res.view.ID != "dup" || res.view.Form.Qty != 3 {
			t.Fatalf("unexpected view: %+v", res.view)
		}
	}
	if len(uc.sessions) != 1 {
		t.Fatalf("expected a single live session, got %d", len(uc.sessions))
	}
}

func TestQuoteSessionUseCase_Eviction(t *testing.T) {
	base := time.Date(2025, time.October, 17, 9, 0, 0, 0, time.UTC)

	t.Run("idle sessions expire and resume from persistence", func(t *testing.T) {
		stores := store.NewSafeStore(store.NewMemoryBackend(), logger.Nop())
		uc := NewQuoteSessionUseCase(stores, nil, nil, nil, 0, WithIdleTTL(time.Minute))
		clock := base
		uc.now = func() time.Time { return clock }
		ctx := context.Background()

		if _, err := uc.Start(ctx, "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.UpdateForm(ctx, "a", fields(t, map[string]any{"qty": 7})); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		clock = base.Add(2 * time.Minute)
		if _, err := uc.Start(ctx, "b"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Get(ctx, "a"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected idle session to be evicted, got %v", err)
		}

		view, err := uc.Start(ctx, "a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Form.Qty != 7 {
			t.Fatalf("expected form restored from persistence, got %+v", view.Form)
		}
	})

	t.Run("least recently used session makes room", func(t *testing.T) {
		stores := store.NewSafeStore(store.NewMemoryBackend(), logger.Nop())
		uc := NewQuoteSessionUseCase(stores, nil, nil, nil, 0, WithMaxSessions(2))
		clock := base
		uc.now = func() time.Time { return clock }
		ctx := context.Background()

		for i, id := range []string{"a", "b"} {
			clock = base.Add(time.Duration(i) * time.Second)
			if _, err := uc.Start(ctx, id); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		clock = base.Add(2 * time.Second)
		if _, err := uc.Get(ctx, "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clock = base.Add(3 * time.Second)
		if _, err := uc.Start(ctx, "c"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := uc.Get(ctx, "b"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected b to be evicted, got %v", err)
		}
		for _, id := range []string{"a", "c"} {
			if _, err := uc.Get(ctx, id); err != nil {
				t.Fatalf("expected %s to stay live, got %v", id, err)
			}
		}
		if len(uc.sessions) != 2 {
			t.Fatalf("expected 2 live sessions, got %d", len(uc.sessions))
		}
	})

	t.Run("sessions awaiting a reply are kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockISubmissionClient(ctrl)
		stores := store.NewSafeStore(store.NewMemoryBackend(), logger.Nop())
		uc := NewQuoteSessionUseCase(stores, client, nil, nil, 0, WithMaxSessions(1))
		ctx := context.Background()

		started := make(chan struct{})
		client.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(blockingSubmit(started))

		if _, err := uc.Start(ctx, "busy"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		done := make(chan error, 1)
		go func() {
			_, err := uc.Submit(ctx, "busy")
			done <- err
		}()
		<-started

		if _, err := uc.Start(ctx, "next"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view, err := uc.Get(ctx, "busy"); err != nil || view.Status != entities.SessionStatusLoading {
			t.Fatalf("expected in-flight session to stay live, got %+v %v", view, err)
		}

		if _, err := uc.Cancel(ctx, "busy"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := <-done; !errors.Is(err, ErrSubmissionCancelled) {
			t.Fatalf("expected ErrSubmissionCancelled, got %v", err)
		}
	})
}

