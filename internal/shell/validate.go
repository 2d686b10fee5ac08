package shell

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/galaxy-cli/circuit/internal/schedule"
)

var (
	groupNamePattern = regexp.MustCompile(`^[A-Za-z0-9,_\-\s\(\)]+$`)
	exercisePattern  = regexp.MustCompile(`^[A-Za-z\s\-]+$`)
	dayTokenPattern  = regexp.MustCompile(`(?i)(Mon|Tue|Wed|Thu|Fri|Sat|Sun|N/?A)`)
	digitsPattern    = regexp.MustCompile(`^\d+$`)
)

// ValidGroupName reports whether a group name uses only letters, digits,
// commas, underscores, dashes, spaces, and parentheses.
func ValidGroupName(name string) bool {
	return name != "" && groupNamePattern.MatchString(name)
}

// ParseExercises parses a comma-separated exercise list. Each name may
// contain only letters, spaces, and dashes.
func ParseExercises(input string) ([]string, error) {
	var names []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !exercisePattern.MatchString(part) {
			return nil, fmt.Errorf("exercise %q may contain only letters, spaces, and dashes", part)
		}
		names = append(names, part)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("enter at least one exercise")
	}
	return names, nil
}

// ParseDaysInput parses a comma-separated weekday list. A lone "N/A" means
// the group is unscheduled and yields an empty list.
func ParseDaysInput(input string) ([]string, error) {
	matches := dayTokenPattern.FindAllString(input, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("enter days as Mon, Tue, Wed, etc., separated by commas, or just 'N/A' if not scheduled")
	}
	days := make([]string, 0, len(matches))
	for _, match := range matches {
		days = append(days, normalizeDayToken(match))
	}
	if len(days) == 1 && days[0] == "N/A" {
		return []string{}, nil
	}
	for _, day := range days {
		if !schedule.IsDayName(day) {
			return nil, fmt.Errorf("enter days as Mon, Tue, Wed, etc., separated by commas, or just 'N/A' if not scheduled")
		}
	}
	return days, nil
}

// ParseNonNegativeInt parses a digit-only value.
func ParseNonNegativeInt(input string) (int, error) {
	if !digitsPattern.MatchString(input) {
		return 0, fmt.Errorf("please enter a valid positive integer")
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("please enter a valid positive integer")
	}
	return n, nil
}

func normalizeDayToken(token string) string {
	lower := strings.ToLower(token)
	if lower == "n/a" || lower == "na" {
		return "N/A"
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}
