// Package model defines shared data structures.
package model

// Group is a named set of exercises sharing one schedule and overload policy.
type Group struct {
	ID               int64
	Name             string
	RepsPerCycle     int
	CyclesPerCircuit int
	Days             []string
	AddReps          int
	AddCycles        int
}

// Scheduled reports whether the group has any workout days configured.
func (g Group) Scheduled() bool {
	return len(g.Days) > 0
}

// DisplayOptions controls how layouts are rendered. Values are threaded
// explicitly into the rendering calls; there is no package-level state.
type DisplayOptions struct {
	DateFormat     int
	ExerciseFormat int
	ShowGroupNames bool
}

// DefaultDisplayOptions returns the rendering defaults applied on every run.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		DateFormat:     1,
		ExerciseFormat: 3,
		ShowGroupNames: true,
	}
}
