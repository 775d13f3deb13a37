package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/cognicore/dreamlog/pkg/dreamlog/internalerr"
	"github.com/cognicore/dreamlog/pkg/dreamlog/store"
)

func openTemp(t *testing.T) store.Store {
	t.Helper()
	st, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "dreamlog.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveAndGetReport(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	created := time.Date(2024, 5, 1, 7, 30, 0, 123456789, time.UTC)
	entries := []store.Entry{
		{Key: "sogno/sogni", Display: "sogno/sogni", Score: 3},
		{Key: "casa", Display: "casa", Score: 1},
	}
	id, err := st.SaveReport(ctx, store.Report{
		Strategy:  "raw",
		Source:    "journal.md",
		CreatedAt: created,
		Entries:   entries,
	})
	if err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated ID")
	}

	got, err := st.GetReport(ctx, id)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if got.Strategy != "raw" || got.Source != "journal.md" {
		t.Errorf("unexpected report header: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	if !reflect.DeepEqual(got.Entries, entries) {
		t.Errorf("Entries = %+v, want %+v", got.Entries, entries)
	}
}

func TestSaveReportReplacesEntries(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	r := store.Report{ID: "fixed", Strategy: "raw", Entries: []store.Entry{{Key: "a", Display: "a", Score: 1}, {Key: "b", Display: "b", Score: 1}}}
	if _, err := st.SaveReport(ctx, r); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	r.Strategy = "tfidf"
	r.Entries = []store.Entry{{Key: "c", Display: "c", Score: 0.5}}
	if _, err := st.SaveReport(ctx, r); err != nil {
		t.Fatalf("SaveReport again: %v", err)
	}

	got, err := st.GetReport(ctx, "fixed")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if got.Strategy != "tfidf" || len(got.Entries) != 1 || got.Entries[0].Key != "c" {
		t.Errorf("report not replaced: %+v", got)
	}
}

func TestGetReportNotFound(t *testing.T) {
	st := openTemp(t)
	_, err := st.GetReport(context.Background(), "missing")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListReportsNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"r1", "r2", "r3"} {
		_, err := st.SaveReport(ctx, store.Report{
			ID:        id,
			Strategy:  "raw",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("SaveReport %s: %v", id, err)
		}
	}

	got, err := st.ListReports(ctx, 2)
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	var ids []string
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	if !reflect.DeepEqual(ids, []string{"r3", "r2"}) {
		t.Errorf("ListReports order = %v", ids)
	}
}

func TestDayScores(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	d1 := time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := st.UpsertDayScore(ctx, store.DayScore{Date: d1, Dreams: 2, D: 3, LD: 0, Score: 3}); err != nil {
		t.Fatalf("UpsertDayScore: %v", err)
	}
	if err := st.UpsertDayScore(ctx, store.DayScore{Date: d2, Dreams: 1, D: 1.5, LD: 1, Score: 2.5}); err != nil {
		t.Fatalf("UpsertDayScore: %v", err)
	}
	// overwrite
	if err := st.UpsertDayScore(ctx, store.DayScore{Date: d1, Dreams: 3, D: 4, LD: 0, Score: 4}); err != nil {
		t.Fatalf("UpsertDayScore overwrite: %v", err)
	}

	got, err := st.DayScores(ctx)
	if err != nil {
		t.Fatalf("DayScores: %v", err)
	}
	want := []store.DayScore{
		{Date: d2, Dreams: 1, D: 1.5, LD: 1, Score: 2.5},
		{Date: d1, Dreams: 3, D: 4, LD: 0, Score: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DayScores = %+v, want %+v", got, want)
	}
}

func TestUpsertDayScoreRequiresDate(t *testing.T) {
	st := openTemp(t)
	err := st.UpsertDayScore(context.Background(), store.DayScore{Score: 1})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dreamlog.db")

	st, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	id, err := st.SaveReport(ctx, store.Report{Strategy: "distinct"})
	if err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	st.Close()

	st, err = OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()
	if _, err := st.GetReport(ctx, id); err != nil {
		t.Fatalf("GetReport after reopen: %v", err)
	}
}
