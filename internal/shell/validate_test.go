package shell

import (
	"reflect"
	"testing"
)

func TestValidGroupName(t *testing.T) {
	for _, name := range []string{"Workout A", "Leg Day", "Push (heavy)", "a_b-c,1"} {
		if !ValidGroupName(name) {
			t.Fatalf("expected %q to be a valid group name", name)
		}
	}
	for _, name := range []string{"", "day!", "légs", "a;b"} {
		if ValidGroupName(name) {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
}

func TestParseExercises(t *testing.T) {
	names, err := ParseExercises("Squats, Push ups , Leg-Press")
	if err != nil {
		t.Fatalf("parse exercises: %v", err)
	}
	want := []string{"Squats", "Push ups", "Leg-Press"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}

	if _, err := ParseExercises("Squats, 21s"); err == nil {
		t.Fatalf("expected digits to be rejected")
	}
	if _, err := ParseExercises("  , ,"); err == nil {
		t.Fatalf("expected empty list to be rejected")
	}
}

func TestParseDaysInput(t *testing.T) {
	days, err := ParseDaysInput("Mon, Thu")
	if err != nil {
		t.Fatalf("parse days: %v", err)
	}
	if !reflect.DeepEqual(days, []string{"Mon", "Thu"}) {
		t.Fatalf("unexpected days: %v", days)
	}

	days, err = ParseDaysInput("mon,tue,WED")
	if err != nil {
		t.Fatalf("parse days: %v", err)
	}
	if !reflect.DeepEqual(days, []string{"Mon", "Tue", "Wed"}) {
		t.Fatalf("case normalization failed: %v", days)
	}

	days, err = ParseDaysInput("N/A")
	if err != nil {
		t.Fatalf("parse days: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("expected empty schedule for N/A, got %v", days)
	}

	if _, err := ParseDaysInput("someday"); err == nil {
		t.Fatalf("expected invalid input to be rejected")
	}
	if _, err := ParseDaysInput(""); err == nil {
		t.Fatalf("expected empty input to be rejected")
	}
}

func TestParseDaysInputDuplicatesAllowed(t *testing.T) {
	days, err := ParseDaysInput("Mon, Wed, Mon")
	if err != nil {
		t.Fatalf("parse days: %v", err)
	}
	if !reflect.DeepEqual(days, []string{"Mon", "Wed", "Mon"}) {
		t.Fatalf("duplicates should be preserved: %v", days)
	}
}

func TestParseNonNegativeInt(t *testing.T) {
	n, err := ParseNonNegativeInt("16")
	if err != nil || n != 16 {
		t.Fatalf("expected 16, got %d (%v)", n, err)
	}
	n, err = ParseNonNegativeInt("0")
	if err != nil || n != 0 {
		t.Fatalf("expected 0, got %d (%v)", n, err)
	}
	for _, input := range []string{"", "-1", "1.5", "ten", " 3"} {
		if _, err := ParseNonNegativeInt(input); err == nil {
			t.Fatalf("expected %q to be rejected", input)
		}
	}
}
