package mouse

import (
	"testing"
	"time"

	"github.com/dshills/gridstorm/internal/input/key"
)

func TestTrackerPressDragRelease(t *testing.T) {
	tr := NewTracker(DefaultConfig())
	now := time.Now()

	steps := []struct {
		pos    Position
		down   Button
		action Action
		button Button
	}{
		{Position{1, 1}, ButtonNone, ActionMove, ButtonNone},
		{Position{1, 1}, ButtonLeft, ActionPress, ButtonLeft},
		{Position{2, 1}, ButtonLeft, ActionDrag, ButtonLeft},
		{Position{3, 2}, ButtonLeft, ActionDrag, ButtonLeft},
		{Position{3, 2}, ButtonNone, ActionRelease, ButtonLeft},
		{Position{4, 2}, ButtonNone, ActionMove, ButtonNone},
	}
	for i, s := range steps {
		ev := tr.Translate(s.pos, s.down, key.ModNone, now)
		if ev.Action != s.action || ev.Button != s.button {
			t.Errorf("step %d: got %v/%v, want %v/%v", i, ev.Action, ev.Button, s.action, s.button)
		}
	}
	if tr.Held() != ButtonNone {
		t.Errorf("Held() = %v after release, want none", tr.Held())
	}
}

func TestTrackerScrollDoesNotHold(t *testing.T) {
	tr := NewTracker(DefaultConfig())
	ev := tr.Translate(Position{0, 0}, ButtonScrollDown, key.ModNone, time.Now())
	if ev.Action != ActionPress || ev.Button != ButtonScrollDown {
		t.Errorf("scroll event = %v/%v, want press/scroll-down", ev.Action, ev.Button)
	}
	if tr.Held() != ButtonNone {
		t.Error("scroll should not start a drag")
	}
	if r, c := ev.Button.ScrollDelta(); r != 1 || c != 0 {
		t.Errorf("ScrollDelta() = %d,%d, want 1,0", r, c)
	}
}

func TestTrackerClickCount(t *testing.T) {
	tr := NewTracker(DefaultConfig())
	base := time.Unix(1000, 0)

	click := func(pos Position, at time.Duration) int {
		ev := tr.Translate(pos, ButtonLeft, key.ModNone, base.Add(at))
		tr.Translate(pos, ButtonNone, key.ModNone, base.Add(at))
		return ev.Clicks
	}

	if got := click(Position{5, 5}, 0); got != 1 {
		t.Errorf("first click = %d, want 1", got)
	}
	if got := click(Position{5, 5}, 100*time.Millisecond); got != 2 {
		t.Errorf("second click = %d, want 2", got)
	}
	if got := click(Position{9, 5}, 200*time.Millisecond); got != 1 {
		t.Errorf("distant click = %d, want 1", got)
	}
	if got := click(Position{9, 5}, 2*time.Second); got != 1 {
		t.Errorf("late click = %d, want 1", got)
	}
}

func TestTrackerCancel(t *testing.T) {
	tr := NewTracker(DefaultConfig())
	tr.Translate(Position{1, 1}, ButtonLeft, key.ModNone, time.Now())
	tr.Cancel()
	if ev := tr.Translate(Position{1, 1}, ButtonLeft, key.ModNone, time.Now()); ev.Action != ActionPress {
		t.Errorf("after Cancel action = %v, want press", ev.Action)
	}
}
