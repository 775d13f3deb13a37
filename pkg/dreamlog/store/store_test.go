package store

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestNewIDMonotonic(t *testing.T) {
	prev := NewID()
	for i := 0; i < 100; i++ {
		id := NewID()
		if _, err := ulid.Parse(id); err != nil {
			t.Fatalf("invalid ULID %q: %v", id, err)
		}
		if id <= prev {
			t.Fatalf("IDs not increasing: %s then %s", prev, id)
		}
		prev = id
	}
}

func TestPrepare(t *testing.T) {
	r := Prepare(Report{Strategy: "raw"})
	if r.ID == "" {
		t.Error("expected an ID")
	}
	if r.CreatedAt.IsZero() {
		t.Error("expected a creation time")
	}

	fixed := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	kept := Prepare(Report{ID: "x", CreatedAt: fixed})
	if kept.ID != "x" || !kept.CreatedAt.Equal(fixed) {
		t.Errorf("Prepare overwrote fields: %+v", kept)
	}
}

func TestDateKey(t *testing.T) {
	d := time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC)
	if got := DateKey(d); got != "2023-01-09" {
		t.Errorf("DateKey = %q", got)
	}
}
