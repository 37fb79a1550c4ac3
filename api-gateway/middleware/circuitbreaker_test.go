package middleware

import (
	"errors"
	"testing"
	"time"

	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

func init() {
	logger.Init("middleware-test", true)
}

var errDownstream = errors.New("downstream failure")

func TestCircuitBreakerOpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker("inventory", 3, 30*time.Second)

	for i := 0; i < 3; i++ {
		_ = cb.Call(func() error { return errDownstream })
	}

	if got := cb.GetState(); got != StateOpen {
		t.Errorf("state after %d failures = %q, want %q", 3, got, StateOpen)
	}
}

func TestCircuitBreakerRejectsWhileOpen(t *testing.T) {
	cb := NewCircuitBreaker("inventory", 1, 30*time.Second)
	_ = cb.Call(func() error { return errDownstream })

	called := false
	err := cb.Call(func() error {
		called = true
		return nil
	})

	if err == nil {
		t.Fatal("Call() on open circuit returned nil error")
	}
	if called {
		t.Error("open circuit still executed the function")
	}
}

func TestCircuitBreakerSuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker("customer", 3, 30*time.Second)

	_ = cb.Call(func() error { return errDownstream })
	_ = cb.Call(func() error { return errDownstream })
	_ = cb.Call(func() error { return nil })
	_ = cb.Call(func() error { return errDownstream })
	_ = cb.Call(func() error { return errDownstream })

	if got := cb.GetState(); got != StateClosed {
		t.Errorf("state = %q after interleaved success, want %q", got, StateClosed)
	}
}

func TestCircuitBreakerRecoversThroughHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker("notification", 1, 10*time.Millisecond)
	_ = cb.Call(func() error { return errDownstream })

	if got := cb.GetState(); got != StateOpen {
		t.Fatalf("state = %q, want %q", got, StateOpen)
	}

	time.Sleep(20 * time.Millisecond)

	// Three successes in half-open close the circuit
	for i := 0; i < 3; i++ {
		if err := cb.Call(func() error { return nil }); err != nil {
			t.Fatalf("Call() in half-open returned error: %v", err)
		}
	}

	if got := cb.GetState(); got != StateClosed {
		t.Errorf("state after recovery = %q, want %q", got, StateClosed)
	}
}

func TestCircuitBreakerReopensOnHalfOpenFailure(t *testing.T) {
	cb := NewCircuitBreaker("inventory", 1, 10*time.Millisecond)
	_ = cb.Call(func() error { return errDownstream })

	time.Sleep(20 * time.Millisecond)

	_ = cb.Call(func() error { return errDownstream })

	if got := cb.GetState(); got != StateOpen {
		t.Errorf("state after half-open failure = %q, want %q", got, StateOpen)
	}
}

func TestCircuitBreakerManagerReusesBreakers(t *testing.T) {
	m := NewCircuitBreakerManager()

	first := m.GetOrCreate("inventory")
	second := m.GetOrCreate("inventory")

	if first != second {
		t.Error("GetOrCreate returned a new breaker for the same service")
	}

	stats := m.GetAllStats()
	if len(stats) != 1 {
		t.Errorf("GetAllStats() has %d entries, want 1", len(stats))
	}
}

func TestDetermineServiceFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/books", "inventory"},
		{"/api/books/42/stock", "inventory"},
		{"/api/inventory/summary", "inventory"},
		{"/api/customers/7", "customer"},
		{"/api/notifications", "notification"},
		{"/health", ""},
		{"/", ""},
	}

	for _, tt := range tests {
		if got := determineServiceFromPath(tt.path); got != tt.want {
			t.Errorf("determineServiceFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
