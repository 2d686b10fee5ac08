package schedule

import (
	"reflect"
	"testing"
)

func TestSlotsUsesListPositions(t *testing.T) {
	days := []string{"Mon", "Wed", "Mon"}
	if got := Slots(days, "Mon"); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("expected Mon slots [1 3], got %v", got)
	}
	if got := Slots(days, "Wed"); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("expected Wed slots [2], got %v", got)
	}
	if got := Slots(days, "Tue"); got != nil {
		t.Fatalf("expected no Tue slots, got %v", got)
	}
}

func TestOccurrenceIndexFirstMatch(t *testing.T) {
	if got := OccurrenceIndex([]string{"Mon", "Thu"}, "Thu"); got != 2 {
		t.Fatalf("expected occurrence 2 for Thu, got %d", got)
	}
	if got := OccurrenceIndex([]string{"Mon", "Wed", "Mon"}, "Mon"); got != 1 {
		t.Fatalf("expected first Mon slot, got %d", got)
	}
}

func TestOccurrenceIndexFallback(t *testing.T) {
	if got := OccurrenceIndex([]string{"Mon", "Wed"}, "Sun"); got != 1 {
		t.Fatalf("expected fallback occurrence 1, got %d", got)
	}
	if got := OccurrenceIndex(nil, "Mon"); got != 1 {
		t.Fatalf("expected fallback occurrence 1 for empty days, got %d", got)
	}
}

func TestIsDayName(t *testing.T) {
	for _, day := range DayNames {
		if !IsDayName(day) {
			t.Fatalf("expected %q to be a valid day name", day)
		}
	}
	for _, day := range []string{"mon", "Monday", "N/A", ""} {
		if IsDayName(day) {
			t.Fatalf("expected %q to be rejected", day)
		}
	}
}
