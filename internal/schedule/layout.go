package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/galaxy-cli/circuit/internal/model"
)

// NoGroupsMessage is emitted when the store holds no workout groups.
const NoGroupsMessage = "No workout groups available."

// Source is the read-only group store the layout builder consumes.
type Source interface {
	ListGroups(ctx context.Context) ([]model.Group, error)
	ListExercises(ctx context.Context, groupID int64) ([]string, error)
}

// Entry is one scheduled slot resolved for a concrete date. Entries are
// rebuilt on every request and never cached.
type Entry struct {
	Date       time.Time
	Day        string
	Group      model.Group
	Occurrence int
	Exercises  []string
	Projection Projection
}

// WeeklyLines renders the rolling 7-day layout starting at today inclusive.
// Dates with no scheduled slots are skipped. Ordering is ascending date,
// then ascending group id, then slot order within the group's day list.
func WeeklyLines(ctx context.Context, src Source, today time.Time, opts model.DisplayOptions) ([]string, error) {
	groups, err := src.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	if len(groups) == 0 {
		return []string{NoGroupsMessage}, nil
	}

	var lines []string
	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, i)
		dayName := date.Format("Mon")
		entries, err := daySlots(ctx, src, groups, date, dayName)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}
		lines = append(lines, FormatDate(date, opts.DateFormat))
		for _, entry := range entries {
			lines = append(lines, entryLines(entry, opts)...)
		}
	}
	return lines, nil
}

// DayEntries resolves every group scheduled on the given date, one entry per
// group using the first matching slot. Groups without exercises are skipped.
// This is the single-date path shared by the log appender.
func DayEntries(ctx context.Context, src Source, date time.Time) ([]Entry, error) {
	groups, err := src.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	dayName := date.Format("Mon")

	var entries []Entry
	for _, group := range groups {
		if len(Slots(group.Days, dayName)) == 0 {
			continue
		}
		exercises, err := src.ListExercises(ctx, group.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list exercises: %w", err)
		}
		if len(exercises) == 0 {
			continue
		}
		occ := OccurrenceIndex(group.Days, dayName)
		entries = append(entries, Entry{
			Date:       date,
			Day:        dayName,
			Group:      group,
			Occurrence: occ,
			Exercises:  exercises,
			Projection: Project(group, occ),
		})
	}
	return entries, nil
}

// DetailLines renders a single group: its numbered exercises and the
// projection at occurrence 1, or the base values when unscheduled.
func DetailLines(group model.Group, exercises []string, exerciseFormat int) []string {
	var lines []string
	for i, name := range exercises {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, name))
	}
	reps := group.RepsPerCycle
	cycles := group.CyclesPerCircuit
	if group.Scheduled() {
		proj := Project(group, 1)
		reps = proj.Reps
		cycles = proj.Cycles
	}
	lines = append(lines, splitFormatted(FormatExercise(reps, cycles, exerciseFormat))...)
	return lines
}

func daySlots(ctx context.Context, src Source, groups []model.Group, date time.Time, dayName string) ([]Entry, error) {
	var entries []Entry
	for _, group := range groups {
		for _, occ := range Slots(group.Days, dayName) {
			exercises, err := src.ListExercises(ctx, group.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to list exercises: %w", err)
			}
			entries = append(entries, Entry{
				Date:       date,
				Day:        dayName,
				Group:      group,
				Occurrence: occ,
				Exercises:  exercises,
				Projection: Project(group, occ),
			})
		}
	}
	return entries, nil
}

func entryLines(entry Entry, opts model.DisplayOptions) []string {
	var lines []string
	if opts.ShowGroupNames {
		lines = append(lines, entry.Group.Name)
	}
	for i, name := range entry.Exercises {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, name))
	}
	formatted := FormatExercise(entry.Projection.Reps, entry.Projection.Cycles, opts.ExerciseFormat)
	lines = append(lines, splitFormatted(formatted)...)
	lines = append(lines, "")
	return lines
}

func splitFormatted(formatted string) []string {
	return strings.Split(formatted, "\n")
}
