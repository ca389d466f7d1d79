package benchstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ffi-playground/numffi/internal/benchrun"
)

func testRun(id string, startedAt time.Time) *benchrun.Results {
	return &benchrun.Results{
		RunID:        id,
		Op:           benchrun.OpFactorial,
		Path:         benchrun.PathNative,
		Workers:      4,
		TotalOps:     1000000,
		ElapsedTime:  2 * time.Second,
		OpsPerSecond: 500000,
		LatencyNs:    120.5,
		StartedAt:    startedAt,
	}
}

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}
}

func TestSaveAndGetRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	want := testRun("run-1", time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))

	if err := s.SaveRun(ctx, want); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := s.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun() failed: %v", err)
	}
	if got.Op != want.Op || got.Path != want.Path || got.TotalOps != want.TotalOps {
		t.Errorf("GetRun() = %+v, want %+v", got, want)
	}
	if !got.StartedAt.Equal(want.StartedAt) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, want.StartedAt)
	}
	if got.ElapsedTime != want.ElapsedTime {
		t.Errorf("ElapsedTime = %v, want %v", got.ElapsedTime, want.ElapsedTime)
	}
}

func TestSaveRun_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	run := testRun("run-1", time.Now().UTC())

	for i := 0; i < 2; i++ {
		if err := s.SaveRun(ctx, run); err != nil {
			t.Fatalf("SaveRun() iteration %d failed: %v", i, err)
		}
	}

	runs, err := s.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run after duplicate save, got %d", len(runs))
	}
}

func TestGetRun_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	_, err = s.GetRun(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		if err := s.SaveRun(ctx, testRun(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", id, err)
		}
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != "run-c" || runs[1].RunID != "run-b" {
		t.Errorf("unexpected order: %s, %s", runs[0].RunID, runs[1].RunID)
	}
}

// Runs started fractions of a second apart must still list newest first.
// Timestamps are stored as text, so the format has to be fixed-width:
// trimmed fractional seconds would make "...00.1Z" sort after "...00.15Z".
func TestListRuns_SubSecondOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	if err := s.SaveRun(ctx, testRun("run-older", base.Add(100*time.Millisecond))); err != nil {
		t.Fatalf("SaveRun(run-older) failed: %v", err)
	}
	if err := s.SaveRun(ctx, testRun("run-newer", base.Add(150*time.Millisecond))); err != nil {
		t.Fatalf("SaveRun(run-newer) failed: %v", err)
	}

	runs, err := s.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != "run-newer" || runs[1].RunID != "run-older" {
		t.Errorf("unexpected order: %s, %s", runs[0].RunID, runs[1].RunID)
	}
}
