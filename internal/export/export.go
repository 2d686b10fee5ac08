// Package export writes the weekly layout to a schedule file.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/galaxy-cli/circuit/internal/model"
	"github.com/galaxy-cli/circuit/internal/schedule"
)

// Banner prefixes every exported schedule.
const Banner = `
  ___(_)_ __ ___ _   _(_) |_
 / __| | '__/ __| | | | | __|
| (__| | | | (__| |_| | | |_
 \___|_|_|  \___|\__,_|_|\__|

`

// Filename returns the export file name for the given date.
func Filename(date time.Time) string {
	return fmt.Sprintf("circuit_schedule[%s].txt", date.Format("2006-01-02"))
}

// Write renders the weekly layout starting at today and writes it, banner
// first, to dir. It returns the path of the written file.
func Write(ctx context.Context, src schedule.Source, today time.Time, opts model.DisplayOptions, dir string) (string, error) {
	lines, err := schedule.WeeklyLines(ctx, src, today, opts)
	if err != nil {
		return "", err
	}
	content := Banner
	for _, line := range lines {
		content += line + "\n"
	}
	path := filepath.Join(dir, Filename(today))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to export to file: %w", err)
	}
	return path, nil
}
