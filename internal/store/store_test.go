package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/galaxy-cli/circuit/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "circuit.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestCreateAndListGroups(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	first, err := st.CreateGroup(ctx, model.Group{
		Name:             "Leg Day",
		RepsPerCycle:     10,
		CyclesPerCircuit: 3,
		Days:             []string{"Mon", "Thu"},
		AddReps:          2,
	}, []string{"Squats", "Lunges"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	second, err := st.CreateGroup(ctx, model.Group{
		Name:             "Push Day",
		RepsPerCycle:     8,
		CyclesPerCircuit: 4,
	}, []string{"Push ups"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if second <= first {
		t.Fatalf("expected increasing ids, got %d then %d", first, second)
	}

	groups, err := st.ListGroups(ctx)
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != "Leg Day" || groups[1].Name != "Push Day" {
		t.Fatalf("unexpected group order: %+v", groups)
	}
	if !reflect.DeepEqual(groups[0].Days, []string{"Mon", "Thu"}) {
		t.Fatalf("unexpected days round trip: %v", groups[0].Days)
	}
	if groups[1].Days != nil {
		t.Fatalf("expected unscheduled group to have no days, got %v", groups[1].Days)
	}
}

func TestListExercisesInsertionOrder(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	id, err := st.CreateGroup(ctx, model.Group{Name: "Full Body", RepsPerCycle: 5, CyclesPerCircuit: 5},
		[]string{"Zercher Squat", "Bench Press", "Deadlift"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	names, err := st.ListExercises(ctx, id)
	if err != nil {
		t.Fatalf("list exercises: %v", err)
	}
	want := []string{"Zercher Squat", "Bench Press", "Deadlift"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected insertion order %v, got %v", want, names)
	}
}

func TestCreateGroupNameTaken(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if _, err := st.CreateGroup(ctx, model.Group{Name: "Leg Day", RepsPerCycle: 1, CyclesPerCircuit: 1}, nil); err != nil {
		t.Fatalf("create group: %v", err)
	}
	_, err := st.CreateGroup(ctx, model.Group{Name: "Leg Day", RepsPerCycle: 2, CyclesPerCircuit: 2}, nil)
	if !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestGetGroupNotFound(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.GetGroup(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateGroupReplacesExercises(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	id, err := st.CreateGroup(ctx, model.Group{Name: "Core", RepsPerCycle: 20, CyclesPerCircuit: 2, Days: []string{"Wed"}},
		[]string{"Plank"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	updated := model.Group{
		ID:               id,
		Name:             "Core Blast",
		RepsPerCycle:     25,
		CyclesPerCircuit: 3,
		Days:             []string{"Wed", "Sat"},
		AddCycles:        1,
	}
	if err := st.UpdateGroup(ctx, updated, []string{"Plank", "Sit ups"}); err != nil {
		t.Fatalf("update group: %v", err)
	}

	group, err := st.GetGroup(ctx, id)
	if err != nil {
		t.Fatalf("get group: %v", err)
	}
	if group.Name != "Core Blast" || group.RepsPerCycle != 25 || group.AddCycles != 1 {
		t.Fatalf("update not applied: %+v", group)
	}
	names, err := st.ListExercises(ctx, id)
	if err != nil {
		t.Fatalf("list exercises: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"Plank", "Sit ups"}) {
		t.Fatalf("exercises not replaced: %v", names)
	}
}

func TestUpdateGroupNotFound(t *testing.T) {
	st := openTestStore(t)
	err := st.UpdateGroup(context.Background(), model.Group{ID: 99, Name: "Ghost"}, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteGroupsRemovesExercises(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	id, err := st.CreateGroup(ctx, model.Group{Name: "Doomed", RepsPerCycle: 1, CyclesPerCircuit: 1}, []string{"Burpees"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	keep, err := st.CreateGroup(ctx, model.Group{Name: "Kept", RepsPerCycle: 1, CyclesPerCircuit: 1}, []string{"Rowing"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	if err := st.DeleteGroups(ctx, []int64{id}); err != nil {
		t.Fatalf("delete groups: %v", err)
	}
	if _, err := st.GetGroup(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected group to be deleted, got %v", err)
	}
	names, err := st.ListExercises(ctx, id)
	if err != nil {
		t.Fatalf("list exercises: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected exercises to be deleted with group, got %v", names)
	}
	if _, err := st.GetGroup(ctx, keep); err != nil {
		t.Fatalf("unrelated group affected: %v", err)
	}
}
