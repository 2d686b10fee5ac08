package schedule

import (
	"fmt"
	"time"
)

// Exercise display formats selectable via `layout set exercise display`.
const (
	ExerciseFormatDetailed = 1
	ExerciseFormatSimple   = 2
	ExerciseFormatPipe     = 3
	ExerciseFormatCompact  = 4
)

// Date display formats selectable via `layout set date`.
const (
	DateFormatShortDay = 1
	DateFormatFullDay  = 2
	DateFormatMonthDay = 3
	DateFormatFull     = 4
)

// FormatExercise renders a reps/cycles pair. Codes outside 1-4 render as
// format 1.
func FormatExercise(reps, cycles, code int) string {
	switch code {
	case ExerciseFormatSimple:
		return fmt.Sprintf("%d reps\n%d cycles", reps, cycles)
	case ExerciseFormatPipe:
		return fmt.Sprintf("%d reps | %d cycles", reps, cycles)
	case ExerciseFormatCompact:
		return fmt.Sprintf("%dr %dc", reps, cycles)
	default:
		return fmt.Sprintf("%d reps each per cycle\n%d cycles in circuit", reps, cycles)
	}
}

// FormatDate renders a calendar date. Codes outside 1-4 render as format 1.
// Formats 3 and 4 carry no leading zeros.
func FormatDate(date time.Time, code int) string {
	switch code {
	case DateFormatFullDay:
		return date.Format("Monday")
	case DateFormatMonthDay:
		return fmt.Sprintf("%d/%d", int(date.Month()), date.Day())
	case DateFormatFull:
		return fmt.Sprintf("%d/%d/%02d", int(date.Month()), date.Day(), date.Year()%100)
	default:
		return date.Format("Mon")
	}
}
