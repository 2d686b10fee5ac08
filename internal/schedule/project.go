package schedule

import "github.com/galaxy-cli/circuit/internal/model"

// Projection is the reps/cycles pair for one scheduled slot.
type Projection struct {
	Reps   int
	Cycles int
}

// Project applies progressive overload for the given occurrence index.
func Project(group model.Group, occurrence int) Projection {
	return Projection{
		Reps:   group.RepsPerCycle + group.AddReps*occurrence,
		Cycles: group.CyclesPerCircuit + group.AddCycles*occurrence,
	}
}
