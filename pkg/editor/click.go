package editor

import (
	"time"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

// Double-click limits used by the frontends.
const (
	DoubleClickInterval = 400 * time.Millisecond
	DoubleClickSlop     = 4.0
)

// ClickTracker recognises double clicks from a stream of presses. Neither
// Gio nor tcell report click counts for raw pointer presses, so both
// frontends feed their presses through one of these.
type ClickTracker struct {
	Interval time.Duration
	// Slop is the largest distance, in the caller's units, between the two
	// presses of a double click.
	Slop float64

	last  time.Duration
	pos   geom.Point
	armed bool
}

// NewClickTracker returns a tracker with the default limits.
func NewClickTracker() *ClickTracker {
	return &ClickTracker{Interval: DoubleClickInterval, Slop: DoubleClickSlop}
}

// Press records a press at p and time t (any monotonic clock) and reports
// whether it completes a double click. A third press starts over.
func (ct *ClickTracker) Press(p geom.Point, t time.Duration) bool {
	double := ct.armed && t-ct.last <= ct.Interval && geom.Distance(p, ct.pos) <= ct.Slop
	ct.armed = !double
	ct.last = t
	ct.pos = p
	return double
}

// Reset forgets the previous press.
func (ct *ClickTracker) Reset() {
	ct.armed = false
}
