package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store archives analysis outputs so runs can be compared later.
// Grouping state is recomputed on every run and never stored.
type Store interface {
	Close() error

	// Reports
	SaveReport(ctx context.Context, r Report) (string, error)
	GetReport(ctx context.Context, id string) (Report, error)
	ListReports(ctx context.Context, limit int) ([]Report, error)

	// Day scores, keyed by calendar date
	UpsertDayScore(ctx context.Context, d DayScore) error
	DayScores(ctx context.Context) ([]DayScore, error)
}

// Report is one archived ranking run.
type Report struct {
	ID        string
	Strategy  string
	Source    string // journal path or label
	CreatedAt time.Time
	Entries   []Entry
}

// Entry is one ranked group in a report, in rank order.
type Entry struct {
	Key     string
	Display string
	Score   float64
}

// DayScore is the scored summary of one journal day.
type DayScore struct {
	Date   time.Time
	Dreams float64 // fragments count one half
	D      float64
	LD     float64
	Score  float64
}

// DateKey is the canonical storage key of a day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

var (
	idMu    sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a fresh, lexically sortable report ID.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}

// Prepare fills in the ID and creation time of a report when unset.
func Prepare(r Report) Report {
	if r.ID == "" {
		r.ID = NewID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return r
}
