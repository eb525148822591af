package board

import "LocalWhiteboard/internal/state"

type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
	TouchStart
	TouchMove
	TouchEnd
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case PointerLeave:
		return "pointer-leave"
	case TouchStart:
		return "touch-start"
	case TouchMove:
		return "touch-move"
	case TouchEnd:
		return "touch-end"
	}
	return "unknown"
}

func (k EventKind) touch() bool {
	return k == TouchStart || k == TouchMove || k == TouchEnd
}

// Event is an input sample in window (client) coordinates. Pointer events
// use Client; touch events use Touches, of which only the first is read.
type Event struct {
	Kind    EventKind
	Client  state.Point
	Touches []state.Point
}

// Locate converts an event to surface-local logical coordinates. It returns
// false for a touch event that carries no touch point.
func Locate(ev Event, origin state.Point) (state.Point, bool) {
	client := ev.Client
	if ev.Kind.touch() {
		if len(ev.Touches) == 0 {
			return state.Point{}, false
		}
		client = ev.Touches[0]
	}
	return client.Sub(origin), true
}
