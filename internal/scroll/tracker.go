// Package scroll classifies vertical scroll offsets into a direction. The
// chat list feeds offsets in; the tab bar reads the direction to slide
// itself out of the way.
package scroll

// Direction is the most recent vertical scroll direction.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// TopThreshold is the offset below which the direction is always Up.
const TopThreshold = 10

// Tracker remembers the previous offset and the current direction.
// One Tracker is shared by the writer (a scrolling list) and its readers;
// pass it to both explicitly.
type Tracker struct {
	offset    int
	direction Direction
	listeners []func(Direction)
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// OnChange registers fn to run on every direction transition.
func (t *Tracker) OnChange(fn func(Direction)) {
	t.listeners = append(t.listeners, fn)
}

// Direction returns the current direction.
func (t *Tracker) Direction() Direction { return t.direction }

// ScrollingDown reports whether the last transition was downward.
func (t *Tracker) ScrollingDown() bool { return t.direction == Down }

// Classify returns the direction implied by moving from prev to offset.
func Classify(prev, offset int) Direction {
	switch {
	case offset < TopThreshold:
		return Up
	case offset > prev:
		return Down
	default:
		return Up
	}
}

// Observe records a new offset. It returns the classified direction and
// whether that was a change; listeners only run on changes.
func (t *Tracker) Observe(offset int) (Direction, bool) {
	dir := Classify(t.offset, offset)
	t.offset = offset

	if dir == t.direction {
		return dir, false
	}
	t.direction = dir
	for _, fn := range t.listeners {
		fn(dir)
	}
	return dir, true
}

// Reset returns the tracker to the top.
func (t *Tracker) Reset() {
	t.offset = 0
	if t.direction != Up {
		t.direction = Up
		for _, fn := range t.listeners {
			fn(Up)
		}
	}
}
