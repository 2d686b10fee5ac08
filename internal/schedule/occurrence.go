// Package schedule computes workout layouts and progressive overload.
package schedule

// DayNames lists the valid weekday tokens in week order.
var DayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// IsDayName reports whether day is a valid weekday token.
func IsDayName(day string) bool {
	for _, name := range DayNames {
		if day == name {
			return true
		}
	}
	return false
}

// Slots returns the occurrence index of every slot in days matching target.
// The occurrence index of a slot is its 1-based position in the whole days
// list, not a per-weekday count; a list [Mon, Wed, Mon] yields slots 1 and 3
// for Mon and slot 2 for Wed.
func Slots(days []string, target string) []int {
	var slots []int
	for i, day := range days {
		if day == target {
			slots = append(slots, i+1)
		}
	}
	return slots
}

// OccurrenceIndex returns the occurrence index of the first slot in days
// matching target, falling back to 1 when target is not scheduled. The
// fallback is only reachable from single-group lookups; the weekly builder
// visits matching slots exclusively.
func OccurrenceIndex(days []string, target string) int {
	for i, day := range days {
		if day == target {
			return i + 1
		}
	}
	return 1
}
