package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/dreamlog/pkg/dreamlog/internalerr"
	"github.com/cognicore/dreamlog/pkg/dreamlog/store"
)

// DefaultListLimit bounds ListReports when no limit is given.
const DefaultListLimit = 20

// Store is an in-memory implementation of store.Store, used when no
// database path is configured and in tests.
type Store struct {
	mu      sync.RWMutex
	reports map[string]store.Report
	days    map[string]store.DayScore
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		reports: make(map[string]store.Report),
		days:    make(map[string]store.DayScore),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveReport stores a copy of r, replacing any report with the same ID.
func (s *Store) SaveReport(ctx context.Context, r store.Report) (string, error) {
	r = store.Prepare(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.ID] = copyReport(r)
	return r.ID, nil
}

func (s *Store) GetReport(ctx context.Context, id string) (store.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[id]
	if !ok {
		return store.Report{}, fmt.Errorf("report %s: %w", id, internalerr.ErrNotFound)
	}
	return copyReport(r), nil
}

// ListReports returns the newest reports first.
func (s *Store) ListReports(ctx context.Context, limit int) ([]store.Report, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, copyReport(r))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) UpsertDayScore(ctx context.Context, d store.DayScore) error {
	if d.Date.IsZero() {
		return fmt.Errorf("day score without date: %w", internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.days[store.DateKey(d.Date)] = d
	return nil
}

// DayScores returns every stored day in date order.
func (s *Store) DayScores(ctx context.Context) ([]store.DayScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.days))
	for k := range s.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]store.DayScore, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.days[k])
	}
	return out, nil
}

func copyReport(r store.Report) store.Report {
	cp := r
	if r.Entries != nil {
		cp.Entries = append([]store.Entry(nil), r.Entries...)
	}
	return cp
}
