package runtime

import (
	"github.com/aretw0/doro/pkg/domain"
)

type gesture int

const (
	gestureNone gesture = iota
	gestureDrag
	gestureClick
)

// pressTracker turns a left press followed by moves and a release into a
// click or a drag. Movement is measured as Manhattan distance from the press.
type pressTracker struct {
	active   bool
	originX  int
	originY  int
	dragging bool
}

func (p *pressTracker) reset() {
	*p = pressTracker{}
}

// feed consumes ev and reports the gesture it completes, if any, and
// whether the event belongs to a left-button gesture.
func (p *pressTracker) feed(ev domain.Event, threshold int) (gesture, bool) {
	switch ev.Type {
	case domain.EventPress:
		if ev.Button != domain.ButtonLeft {
			return gestureNone, false
		}
		p.active = true
		p.dragging = false
		p.originX, p.originY = ev.X, ev.Y
		return gestureNone, true

	case domain.EventMove:
		if !p.active || p.dragging {
			return gestureNone, false
		}
		if abs(ev.X-p.originX)+abs(ev.Y-p.originY) > threshold {
			p.dragging = true
			return gestureDrag, true
		}
		return gestureNone, true

	case domain.EventRelease:
		if !p.active {
			return gestureNone, false
		}
		wasDragging := p.dragging
		p.reset()
		if wasDragging {
			return gestureNone, true
		}
		return gestureClick, true
	}
	return gestureNone, false
}

func (p *pressTracker) origin() (int, int) {
	return p.originX, p.originY
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
