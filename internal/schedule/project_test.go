package schedule

import (
	"testing"

	"github.com/galaxy-cli/circuit/internal/model"
)

func TestProjectFormula(t *testing.T) {
	group := model.Group{RepsPerCycle: 10, CyclesPerCircuit: 3, AddReps: 2, AddCycles: 1}
	for k := 1; k <= 5; k++ {
		proj := Project(group, k)
		if proj.Reps != 10+2*k {
			t.Fatalf("occurrence %d: expected %d reps, got %d", k, 10+2*k, proj.Reps)
		}
		if proj.Cycles != 3+k {
			t.Fatalf("occurrence %d: expected %d cycles, got %d", k, 3+k, proj.Cycles)
		}
	}
}

func TestProjectMonotonic(t *testing.T) {
	group := model.Group{RepsPerCycle: 8, CyclesPerCircuit: 2, AddReps: 3, AddCycles: 0}
	prev := Project(group, 1)
	for k := 2; k <= 10; k++ {
		proj := Project(group, k)
		if proj.Reps < prev.Reps || proj.Cycles < prev.Cycles {
			t.Fatalf("projection decreased at occurrence %d: %+v -> %+v", k, prev, proj)
		}
		prev = proj
	}
}

func TestProjectZeroIncrements(t *testing.T) {
	group := model.Group{RepsPerCycle: 12, CyclesPerCircuit: 4}
	proj := Project(group, 7)
	if proj.Reps != 12 || proj.Cycles != 4 {
		t.Fatalf("expected base values with zero increments, got %+v", proj)
	}
}
