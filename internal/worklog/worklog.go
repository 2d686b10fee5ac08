// Package worklog appends completed-day snapshots to the workout log.
package worklog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/galaxy-cli/circuit/internal/schedule"
)

// Separator terminates every appended block.
const Separator = "----------------------------------------"

// Sink is the append-only destination for log blocks.
type Sink interface {
	Append(data []byte) error
	ReadAll() ([]byte, error)
}

// Outcome reports what Append did.
type Outcome int

const (
	// Logged means a block was appended.
	Logged Outcome = iota
	// NothingScheduled means the date had no matching groups; nothing was
	// written. This is informational, not an error.
	NothingScheduled
	// NoGroups means the store holds no groups at all.
	NoGroups
)

// Append serializes the layout for the given date and appends it to the
// sink as a single write. The computed block is discarded on sink failure.
func Append(ctx context.Context, src schedule.Source, sink Sink, date time.Time) (Outcome, error) {
	groups, err := src.ListGroups(ctx)
	if err != nil {
		return NothingScheduled, fmt.Errorf("failed to list groups: %w", err)
	}
	if len(groups) == 0 {
		return NoGroups, nil
	}

	entries, err := schedule.DayEntries(ctx, src, date)
	if err != nil {
		return NothingScheduled, err
	}
	if len(entries) == 0 {
		return NothingScheduled, nil
	}

	block := Block(entries, date)
	if err := sink.Append([]byte(block)); err != nil {
		return NothingScheduled, fmt.Errorf("failed to write to log: %w", err)
	}
	return Logged, nil
}

// Block renders the log text for one day's entries.
func Block(entries []schedule.Entry, date time.Time) string {
	lines := []string{
		fmt.Sprintf("Workout Log for %s (%s):", date.Format("01/02/06"), date.Format("Mon")),
	}
	for _, entry := range entries {
		lines = append(lines, "", entry.Group.Name+":")
		for i, name := range entry.Exercises {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, name))
		}
		lines = append(lines, fmt.Sprintf("%d reps", entry.Projection.Reps))
		lines = append(lines, fmt.Sprintf("%d cycles", entry.Projection.Cycles))
	}
	lines = append(lines, Separator)
	return strings.Join(lines, "\n") + "\n"
}
