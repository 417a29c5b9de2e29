package store

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "passgen.db"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveRun_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.SaveRun(Run{
		Sources:      "words=3 urls=1",
		OutputPath:   "wordlist.txt",
		BaseWords:    3,
		Mutations:    120,
		Combinations: 36,
		Filtered:     14,
		Total:        142,
		Duration:     250 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected assigned run id")
	}

	got, err := s.GetRun(saved.ID)
	if err != nil {
		t.Fatalf("GetRun() error: %v", err)
	}
	if got.Total != 142 || got.BaseWords != 3 || got.Sources != "words=3 urls=1" {
		t.Errorf("GetRun() = %+v", got)
	}
	if got.Duration != 250*time.Millisecond {
		t.Errorf("Duration = %v, want 250ms", got.Duration)
	}
}

func TestListRuns(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := s.SaveRun(Run{Sources: "words=1", OutputPath: "out.txt", Total: i}); err != nil {
			t.Fatalf("SaveRun() error: %v", err)
		}
	}

	runs, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("ListRuns(2) returned %d runs", len(runs))
	}
}
