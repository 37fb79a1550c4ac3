package loadbalancer

import (
	"testing"

	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

func init() {
	logger.Init("loadbalancer-test", true)
}

func TestRoundRobinNext(t *testing.T) {
	servers := []string{
		"http://localhost:8082",
		"http://localhost:8092",
		"http://localhost:8102",
	}
	rr := NewRoundRobin(servers)

	for round := 0; round < 2; round++ {
		for _, want := range servers {
			got := rr.Next()
			if got != want {
				t.Errorf("Next() = %q, want %q", got, want)
			}
		}
	}
}

func TestRoundRobinDefaultFallback(t *testing.T) {
	rr := NewRoundRobin(nil)

	if got := rr.Next(); got == "" {
		t.Error("Next() returned empty string, want default fallback")
	}
}

func TestRoundRobinAddServer(t *testing.T) {
	rr := NewRoundRobin([]string{"http://localhost:8082"})
	rr.AddServer("http://localhost:8092")

	servers := rr.GetServers()
	if len(servers) != 2 {
		t.Fatalf("GetServers() returned %d servers, want 2", len(servers))
	}

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		seen[rr.Next()] = true
	}
	if !seen["http://localhost:8092"] {
		t.Error("added server never selected")
	}
}

func TestRoundRobinRemoveServer(t *testing.T) {
	rr := NewRoundRobin([]string{
		"http://localhost:8082",
		"http://localhost:8092",
	})

	// Advance so the current index points at the server being removed
	rr.Next()
	rr.RemoveServer("http://localhost:8092")

	servers := rr.GetServers()
	if len(servers) != 1 {
		t.Fatalf("GetServers() returned %d servers, want 1", len(servers))
	}

	for i := 0; i < 3; i++ {
		if got := rr.Next(); got != "http://localhost:8082" {
			t.Errorf("Next() = %q after removal, want remaining server", got)
		}
	}
}
