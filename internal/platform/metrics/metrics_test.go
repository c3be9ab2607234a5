package metrics

import (
	"testing"
	"time"
)

func TestCollectorCounts(t *testing.T) {
	c := New()
	c.Record(200, 10*time.Millisecond)
	c.Record(404, 20*time.Millisecond)
	c.Record(500, 30*time.Millisecond)

	snap := c.Snapshot()
	if snap["requestsTotal"] != uint64(3) {
		t.Fatalf("requests: %v", snap["requestsTotal"])
	}
	if snap["clientErrorsTotal"] != uint64(1) {
		t.Fatalf("client errors: %v", snap["clientErrorsTotal"])
	}
	if snap["serverErrorsTotal"] != uint64(1) {
		t.Fatalf("server errors: %v", snap["serverErrorsTotal"])
	}
	if snap["avgDurationMs"] != float64(20) {
		t.Fatalf("avg duration: %v", snap["avgDurationMs"])
	}
}

func TestCollectorEmpty(t *testing.T) {
	snap := New().Snapshot()
	if snap["requestsTotal"] != uint64(0) || snap["avgDurationMs"] != float64(0) {
		t.Fatalf("empty snapshot: %v", snap)
	}
}
