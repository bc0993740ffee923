// Package mouse turns raw terminal mouse reports into grid pointer events.
//
// Terminals report only the set of buttons held at each position update.
// Tracker remembers the previously held button and derives press, drag and
// release actions from the transitions, with double-click detection based on
// timing and position thresholds:
//
//	tr := mouse.NewTracker(mouse.DefaultConfig())
//	ev := tr.Translate(mouse.Position{X: 10, Y: 4}, mouse.ButtonLeft, key.ModNone, time.Now())
//	if ev.Action == mouse.ActionPress && ev.Clicks == 2 {
//	    openEditor()
//	}
//
// Scroll wheel reports are passed through as presses of the scroll buttons
// and never start a drag.
//
// Tracker is not safe for concurrent use; it is driven by the grid event loop.
package mouse
