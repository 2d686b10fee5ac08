package shell

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/galaxy-cli/circuit/internal/model"
	"github.com/galaxy-cli/circuit/internal/store"
)

// step is one prompt of a multi-step input flow. apply parses the input;
// a non-nil error keeps the flow on the same step.
type step struct {
	intro  []string
	prompt string
	apply  func(input string) error
}

// flow is a sequence of prompts ending in a commit action.
type flow struct {
	steps []step
	idx   int
	done  func()
}

func (m *Model) startFlow(f *flow) {
	m.flow = f
	m.info(f.steps[0].intro...)
}

func (m *Model) advanceFlow(value string) {
	current := m.flow.steps[m.flow.idx]
	if err := current.apply(strings.TrimSpace(value)); err != nil {
		m.errorf("%s", err)
		return
	}
	m.flow.idx++
	if m.flow.idx >= len(m.flow.steps) {
		done := m.flow.done
		m.flow = nil
		done()
		return
	}
	m.info(m.flow.steps[m.flow.idx].intro...)
}

type groupDraft struct {
	name      string
	exercises []string
	reps      int
	cycles    int
	days      []string
	addReps   int
	addCycles int
}

func (m *Model) runAdd(arg string) tea.Cmd {
	if arg != "" {
		m.errorf("`add` takes no arguments")
		return nil
	}
	draft := &groupDraft{}
	m.startFlow(&flow{
		steps: m.groupSteps(draft, false),
		done: func() {
			group := draft.toGroup(0)
			id, err := m.store.CreateGroup(shellCtx(), group, draft.exercises)
			if err != nil {
				if errors.Is(err, store.ErrNameTaken) {
					m.errorf("Group name already exists. Choose a different name.")
					return
				}
				m.errorf("Failed to add group: %v", err)
				return
			}
			m.currentGroupID = id
			m.info(fmt.Sprintf("✓ Added %s", draft.name))
		},
	})
	return nil
}

func (m *Model) runEdit(arg string) tea.Cmd {
	if arg != "" {
		m.errorf("`edit` takes no arguments")
		return nil
	}
	if m.currentGroupID == 0 {
		m.errorf("No group selected to edit. Use 'index NUM' to select a group first.")
		return nil
	}
	group, err := m.store.GetGroup(shellCtx(), m.currentGroupID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			m.errorf("Currently selected group no longer exists. Please select a valid group.")
			m.currentGroupID = 0
			return nil
		}
		m.errorf("Failed to fetch group: %v", err)
		return nil
	}
	exercises, err := m.store.ListExercises(shellCtx(), group.ID)
	if err != nil {
		m.errorf("Failed to list exercises: %v", err)
		return nil
	}

	draft := &groupDraft{
		name:      group.Name,
		exercises: exercises,
		reps:      group.RepsPerCycle,
		cycles:    group.CyclesPerCircuit,
		days:      group.Days,
		addReps:   group.AddReps,
		addCycles: group.AddCycles,
	}
	m.startFlow(&flow{
		steps: m.groupSteps(draft, true),
		done: func() {
			updated := draft.toGroup(group.ID)
			if err := m.store.UpdateGroup(shellCtx(), updated, draft.exercises); err != nil {
				if errors.Is(err, store.ErrNameTaken) {
					m.errorf("Group name already exists. Choose a different name.")
					return
				}
				m.errorf("Failed to edit group: %v", err)
				return
			}
			m.info(fmt.Sprintf("✓ Edited %s", draft.name))
		},
	})
	return nil
}

// groupSteps builds the add/edit prompt sequence. When editing, prompts show
// the current values in brackets and empty input keeps them.
func (m *Model) groupSteps(draft *groupDraft, editing bool) []step {
	withDefault := func(prompt, current string) string {
		if !editing {
			return prompt + ":"
		}
		return fmt.Sprintf("%s [%s]:", prompt, current)
	}
	keep := func(input string) bool {
		return editing && input == ""
	}

	return []step{
		{
			intro:  []string{"--- WORKOUTS ---"},
			prompt: withDefault("Group name (ex. Workout A, Leg Day)", draft.name),
			apply: func(input string) error {
				if keep(input) {
					return nil
				}
				if !ValidGroupName(input) {
					return fmt.Errorf("group name must contain only letters, digits, commas, underscores, dashes, spaces, and parentheses")
				}
				draft.name = input
				return nil
			},
		},
		{
			prompt: withDefault("Add exercises (ex. Squats, Push ups) (use `,` to separate)", strings.Join(draft.exercises, ", ")),
			apply: func(input string) error {
				if keep(input) {
					return nil
				}
				names, err := ParseExercises(input)
				if err != nil {
					return err
				}
				draft.exercises = names
				m.info(fmt.Sprintf("%s added to %s", strings.Join(names, ", "), draft.name))
				return nil
			},
		},
		{
			intro: []string{
				"--- CIRCUITS ---",
				"Rep = Repetition of an exercise",
				"Cycle = A single completion of a circuit",
				"Circuit = Sequentially progressing through a number of exercises",
			},
			prompt: withDefault("Rep per cycle?", fmt.Sprintf("%d", draft.reps)),
			apply:  intApply(&draft.reps, keep),
		},
		{
			prompt: withDefault("Cycles per circuit?", fmt.Sprintf("%d", draft.cycles)),
			apply:  intApply(&draft.cycles, keep),
		},
		{
			intro:  []string{"--- SCHEDULE ---"},
			prompt: withDefault("Workout days on? (Mon|Tue|Wed|Thu|Fri|Sat|Sun, or N/A if not scheduled) (use `,` to separate)", strings.Join(draft.days, ", ")),
			apply: func(input string) error {
				if keep(input) {
					return nil
				}
				days, err := ParseDaysInput(input)
				if err != nil {
					return err
				}
				draft.days = days
				if len(days) == 0 {
					m.info("Scheduled No scheduled days (N/A)")
				} else {
					m.info(fmt.Sprintf("Scheduled %s", strings.Join(days, ", ")))
				}
				return nil
			},
		},
		{
			intro:  []string{"--- PROGRESSIVE OVERLOAD ---"},
			prompt: withDefault("Reps added next workout? (+intensity)", fmt.Sprintf("%d", draft.addReps)),
			apply:  intApply(&draft.addReps, keep),
		},
		{
			prompt: withDefault("Cycles added next workout? (+cardio)", fmt.Sprintf("%d", draft.addCycles)),
			apply:  intApply(&draft.addCycles, keep),
		},
	}
}

func intApply(target *int, keep func(string) bool) func(string) error {
	return func(input string) error {
		if keep(input) {
			return nil
		}
		n, err := ParseNonNegativeInt(input)
		if err != nil {
			return err
		}
		*target = n
		return nil
	}
}

func (d *groupDraft) toGroup(id int64) model.Group {
	return model.Group{
		ID:               id,
		Name:             d.name,
		RepsPerCycle:     d.reps,
		CyclesPerCircuit: d.cycles,
		Days:             d.days,
		AddReps:          d.addReps,
		AddCycles:        d.addCycles,
	}
}

func (m *Model) startRemoveFlow(groups []model.Group, indexes []int) {
	names := make([]string, 0, len(indexes))
	ids := make([]int64, 0, len(indexes))
	for _, idx := range indexes {
		group := groups[idx-1]
		names = append(names, fmt.Sprintf("%d. %s", idx, group.Name))
		ids = append(ids, group.ID)
	}
	var confirm string
	m.startFlow(&flow{
		steps: []step{{
			prompt: fmt.Sprintf("Are you sure you want to remove these groups: %s? (y/n):", strings.Join(names, ", ")),
			apply: func(input string) error {
				confirm = strings.ToLower(input)
				return nil
			},
		}},
		done: func() {
			if confirm != "y" {
				m.info("Aborted removing workout groups.")
				return
			}
			if err := m.store.DeleteGroups(shellCtx(), ids); err != nil {
				m.errorf("Failed to remove group(s): %v", err)
				return
			}
			for _, id := range ids {
				if id == m.currentGroupID {
					m.currentGroupID = 0
				}
			}
			removed := make([]string, 0, len(indexes))
			for _, idx := range indexes {
				removed = append(removed, groups[idx-1].Name)
			}
			m.info(fmt.Sprintf("✓ Removed workout group(s): %s", strings.Join(removed, ", ")))
		},
	})
}

func (m *Model) startLogAddFlow() {
	var date time.Time
	m.startFlow(&flow{
		steps: []step{{
			prompt: "Enter date to log (YYYY-MM-DD) [default: today]:",
			apply: func(input string) error {
				if input == "" {
					date = today()
					return nil
				}
				parsed, err := time.ParseInLocation("2006-01-02", input, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date format. Please enter YYYY-MM-DD")
				}
				date = parsed
				return nil
			},
		}},
		done: func() {
			m.appendLog(date)
		},
	})
}
