package shutdown

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"tetramod/internal/pkg/logger"
)

func newTestLogger() *logger.Logger {
	var buf bytes.Buffer
	return logger.New(logger.Config{
		Level:  "debug",
		Format: "json",
		Output: &buf,
	})
}

func TestNewManager(t *testing.T) {
	log := newTestLogger()

	t.Run("with default timeout", func(t *testing.T) {
		mgr := NewManager(log, 0)
		if mgr == nil {
			t.Fatal("expected manager to be non-nil")
		}
		if mgr.timeout != 30*time.Second {
			t.Errorf("expected default timeout 30s, got %v", mgr.timeout)
		}
	})

	t.Run("with custom timeout", func(t *testing.T) {
		mgr := NewManager(log, 10*time.Second)
		if mgr.timeout != 10*time.Second {
			t.Errorf("expected timeout 10s, got %v", mgr.timeout)
		}
	})
}

func TestRegister(t *testing.T) {
	log := newTestLogger()
	mgr := NewManager(log, 5*time.Second)

	mgr.Register("test", func(ctx context.Context) error {
		return nil
	})

	if len(mgr.handlers) != 1 {
		t.Errorf("expected 1 handler, got %d", len(mgr.handlers))
	}

	if mgr.handlers[0].Name != "test" {
		t.Errorf("expected handler name 'test', got %s", mgr.handlers[0].Name)
	}
}

func TestRegisterSimple(t *testing.T) {
	log := newTestLogger()
	mgr := NewManager(log, 5*time.Second)

	var called bool
	mgr.RegisterSimple("simple", func() {
		called = true
	})

	mgr.Shutdown()

	if !called {
		t.Error("expected simple handler to be called")
	}
}

func TestShutdownRunsAllHandlers(t *testing.T) {
	log := newTestLogger()
	mgr := NewManager(log, 5*time.Second)

	var count atomic.Int32
	mgr.Register("a", func(ctx context.Context) error {
		count.Add(1)
		return nil
	})
	mgr.Register("b", func(ctx context.Context) error {
		count.Add(1)
		return nil
	})

	mgr.Shutdown()

	if count.Load() != 2 {
		t.Errorf("expected 2 handlers run, got %d", count.Load())
	}

	select {
	case <-mgr.Done():
	default:
		t.Error("expected Done channel to be closed after shutdown")
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	log := newTestLogger()
	mgr := NewManager(log, 5*time.Second)

	var count atomic.Int32
	mgr.RegisterSimple("once", func() {
		count.Add(1)
	})

	mgr.Shutdown()
	mgr.Shutdown()

	if count.Load() != 1 {
		t.Errorf("expected handler to run once, ran %d times", count.Load())
	}
}

func TestNotifyCancelsOnParentCancel(t *testing.T) {
	log := newTestLogger()
	mgr := NewManager(log, time.Second)

	parent, parentCancel := context.WithCancel(context.Background())
	ctx, cancel := mgr.Notify(parent)
	defer cancel()

	parentCancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("expected context to be canceled with parent")
	}
}
