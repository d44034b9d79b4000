package scroll

import (
	"reflect"
	"testing"
)

func TestObserve_Sequence(t *testing.T) {
	tr := NewTracker()
	var changes []Direction
	tr.OnChange(func(d Direction) { changes = append(changes, d) })

	var got []Direction
	var flagged []bool
	for _, offset := range []int{5, 20, 15, 30} {
		d, changed := tr.Observe(offset)
		got = append(got, d)
		flagged = append(flagged, changed)
	}

	if want := []Direction{Up, Down, Up, Down}; !reflect.DeepEqual(got, want) {
		t.Errorf("directions = %v, want %v", got, want)
	}
	if want := []bool{false, true, true, true}; !reflect.DeepEqual(flagged, want) {
		t.Errorf("changed flags = %v, want %v", flagged, want)
	}
	if want := []Direction{Down, Up, Down}; !reflect.DeepEqual(changes, want) {
		t.Errorf("listener calls = %v, want %v", changes, want)
	}
	if !tr.ScrollingDown() {
		t.Error("tracker should end scrolling down")
	}
}

func TestObserve_NoRedundantNotifications(t *testing.T) {
	tr := NewTracker()
	calls := 0
	tr.OnChange(func(Direction) { calls++ })

	for _, offset := range []int{20, 30, 40, 50} {
		tr.Observe(offset)
	}
	if calls != 1 {
		t.Errorf("listener ran %d times for a single downward scroll, want 1", calls)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		prev, offset int
		want         Direction
	}{
		{"near top forces up", 0, 9, Up},
		{"near top even when growing", 3, 8, Up},
		{"at threshold moving down", 0, 10, Down},
		{"moving down", 20, 25, Down},
		{"moving up", 25, 20, Up},
		{"equal offsets are up", 30, 30, Up},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.prev, tt.offset); got != tt.want {
				t.Errorf("Classify(%d, %d) = %v, want %v", tt.prev, tt.offset, got, tt.want)
			}
		})
	}
}

func TestReset(t *testing.T) {
	tr := NewTracker()
	var last Direction = Down
	tr.OnChange(func(d Direction) { last = d })

	tr.Observe(40)
	tr.Reset()
	if tr.ScrollingDown() || last != Up {
		t.Error("Reset should return to Up and notify")
	}
	if _, changed := tr.Observe(5); changed {
		t.Error("offset near top after Reset should not be a change")
	}
}
