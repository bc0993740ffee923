package mouse

import "time"

// clickCounter counts consecutive left presses that land close together in
// space and time. The count cycles 1, 2, 3, 1, ...
type clickCounter struct {
	window time.Duration
	radius int

	at    Position
	when  time.Time
	count int
}

func newClickCounter(window time.Duration, radius int) *clickCounter {
	return &clickCounter{window: window, radius: radius}
}

// press records a press at pos and returns its click count. A zero ts means
// now.
func (c *clickCounter) press(pos Position, ts time.Time) int {
	if ts.IsZero() {
		ts = time.Now()
	}
	gap := ts.Sub(c.when)
	if c.count > 0 && gap >= 0 && gap <= c.window && pos.Distance(c.at) <= c.radius {
		c.count = c.count%3 + 1
	} else {
		c.count = 1
	}
	c.at, c.when = pos, ts
	return c.count
}

func (c *clickCounter) reset() {
	*c = clickCounter{window: c.window, radius: c.radius}
}
