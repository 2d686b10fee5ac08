package worklog_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/galaxy-cli/circuit/internal/model"
	"github.com/galaxy-cli/circuit/internal/store"
	"github.com/galaxy-cli/circuit/internal/worklog"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "circuit.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

// Thursday.
var testThursday = time.Date(2025, time.January, 9, 0, 0, 0, 0, time.Local)

func TestAppendWritesBlock(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	_, err := st.CreateGroup(ctx, model.Group{
		Name:             "Leg Day",
		RepsPerCycle:     10,
		CyclesPerCircuit: 3,
		Days:             []string{"Mon", "Thu"},
		AddReps:          2,
	}, []string{"Squats", "Lunges"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	logPath := filepath.Join(t.TempDir(), "circuit.log")
	sink := worklog.NewFileSink(logPath)
	outcome, err := worklog.Append(ctx, st, sink, testThursday)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if outcome != worklog.Logged {
		t.Fatalf("expected Logged outcome, got %v", outcome)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	want := "Workout Log for 01/09/25 (Thu):\n" +
		"\n" +
		"Leg Day:\n" +
		"1. Squats\n" +
		"2. Lunges\n" +
		"14 reps\n" +
		"3 cycles\n" +
		"----------------------------------------\n"
	if string(data) != want {
		t.Fatalf("unexpected log block:\n%q\nwant:\n%q", data, want)
	}
}

func TestAppendRepeatedCallsAppendDuplicates(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	_, err := st.CreateGroup(ctx, model.Group{
		Name:             "Push",
		RepsPerCycle:     8,
		CyclesPerCircuit: 4,
		Days:             []string{"Thu"},
	}, []string{"Push ups"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	logPath := filepath.Join(t.TempDir(), "circuit.log")
	sink := worklog.NewFileSink(logPath)
	for i := 0; i < 2; i++ {
		if _, err := worklog.Append(ctx, st, sink, testThursday); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	first, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	half := len(first) / 2
	if string(first[:half]) != string(first[half:]) {
		t.Fatalf("expected two identical blocks, got:\n%s", first)
	}
}

func TestAppendNothingScheduledWritesNothing(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	_, err := st.CreateGroup(ctx, model.Group{
		Name:             "Pull",
		RepsPerCycle:     8,
		CyclesPerCircuit: 4,
		Days:             []string{"Mon"},
	}, []string{"Pull ups"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	logPath := filepath.Join(t.TempDir(), "circuit.log")
	sink := worklog.NewFileSink(logPath)
	outcome, err := worklog.Append(ctx, st, sink, testThursday)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if outcome != worklog.NothingScheduled {
		t.Fatalf("expected NothingScheduled outcome, got %v", outcome)
	}
	if _, err := sink.ReadAll(); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected no log file, got err=%v", err)
	}
}

func TestAppendEmptyStore(t *testing.T) {
	st := openTestStore(t)
	sink := worklog.NewFileSink(filepath.Join(t.TempDir(), "circuit.log"))
	outcome, err := worklog.Append(context.Background(), st, sink, testThursday)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if outcome != worklog.NoGroups {
		t.Fatalf("expected NoGroups outcome, got %v", outcome)
	}
}

type failingSink struct{}

func (failingSink) Append([]byte) error {
	return errors.New("disk full")
}

func (failingSink) ReadAll() ([]byte, error) {
	return nil, errors.New("disk full")
}

func TestAppendSinkFailure(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	_, err := st.CreateGroup(ctx, model.Group{
		Name:             "Push",
		RepsPerCycle:     8,
		CyclesPerCircuit: 4,
		Days:             []string{"Thu"},
	}, []string{"Push ups"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	if _, err := worklog.Append(ctx, st, failingSink{}, testThursday); err == nil {
		t.Fatalf("expected sink failure to surface")
	}
}

func TestSeparatorLength(t *testing.T) {
	if len(worklog.Separator) != 40 {
		t.Fatalf("expected 40-character separator, got %d", len(worklog.Separator))
	}
}
