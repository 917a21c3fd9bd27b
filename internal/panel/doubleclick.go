package panel

import "time"

// DefaultClickWindow is the double-click threshold.
const DefaultClickWindow = 500 * time.Millisecond

// ClickDetector recognizes a double press of the primary input device:
// two presses within the window count as one double-click.
type ClickDetector struct {
	Window time.Duration
	last   time.Time
}

func NewClickDetector(window time.Duration) *ClickDetector {
	if window <= 0 {
		window = DefaultClickWindow
	}
	return &ClickDetector{Window: window}
}

// Press records a press at the given time and reports whether it
// completed a double-click.
func (d *ClickDetector) Press(at time.Time) bool {
	double := !d.last.IsZero() && at.Sub(d.last) < d.Window
	d.last = at
	return double
}
