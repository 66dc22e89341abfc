package store

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	mock_interfaces "cpq_quote/internal/usecase/interfaces/mocks"
	"cpq_quote/pkg/logger"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func TestSessionKey(t *testing.T) {
	if got := SessionKey("abc", "cpq-form-data"); got != "cpq:session:abc:cpq-form-data" {
		t.Fatalf("unexpected key %s", got)
	}
}

func TestSafeStore_MemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	safe := NewSafeStore(NewMemoryBackend(), nil)
	a := safe.ForSession("a")
	b := safe.ForSession("b")

	a.Set(ctx, "cpq-form-data", []byte(`{"qty":5}`))

	got, ok := a.Get(ctx, "cpq-form-data")
	if !ok || string(got) != `{"qty":5}` {
		t.Fatalf("unexpected value %s %v", got, ok)
	}
	if _, ok := b.Get(ctx, "cpq-form-data"); ok {
		t.Fatalf("sessions must not share keys")
	}

	a.Clear(ctx, "cpq-form-data")
	if _, ok := a.Get(ctx, "cpq-form-data"); ok {
		t.Fatalf("expected key to be cleared")
	}
}

func TestSafeStore_BackendFailuresDegrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_interfaces.NewMockIKeyValueBackend(ctrl)

	var buf bytes.Buffer
	log := logger.New(logger.Options{ServiceName: "test", Level: zerolog.DebugLevel, Output: &buf})
	s := NewSafeStore(backend, log).ForSession("s-1")
	ctx := context.Background()

	backend.EXPECT().Get(gomock.Any(), "cpq:session:s-1:k").Return(nil, errors.New("throttled"))
	backend.EXPECT().Put(gomock.Any(), "cpq:session:s-1:k", gomock.Any()).Return(errors.New("quota exceeded"))
	backend.EXPECT().Delete(gomock.Any(), "cpq:session:s-1:k").Return(errors.New("denied"))

	if v, ok := s.Get(ctx, "k"); ok || v != nil {
		t.Fatalf("expected absent value, got %s", v)
	}
	s.Set(ctx, "k", []byte(`{}`))
	s.Clear(ctx, "k")

	out := buf.String()
	for _, want := range []string{"read failed", "write failed", "delete failed", "quota exceeded", `"session_id":"s-1"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log to contain %q, got %s", want, out)
		}
	}
}

func TestSafeStore_MalformedValueIsAbsent(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	_ = backend.Put(ctx, SessionKey("s-1", "k"), []byte(`{"qty":`))

	if _, ok := NewSafeStore(backend, nil).ForSession("s-1").Get(ctx, "k"); ok {
		t.Fatalf("expected malformed value to read as absent")
	}
}
