package host

import (
	"fmt"

	"github.com/san-kum/verletsim/internal/vec"
)

// EventKind enumerates the pointer input a host forwards to the simulation.
type EventKind uint8

const (
	PointerMoved EventKind = iota
	PointerDown
	PointerUp
)

func (k EventKind) String() string {
	switch k {
	case PointerMoved:
		return "moved"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a pointer event in world coordinates. Point is only meaningful
// for PointerMoved.
type Event struct {
	Kind  EventKind
	Point vec.Vec2
}

func Moved(p vec.Vec2) Event { return Event{Kind: PointerMoved, Point: p} }
func Down() Event            { return Event{Kind: PointerDown} }
func Up() Event              { return Event{Kind: PointerUp} }
