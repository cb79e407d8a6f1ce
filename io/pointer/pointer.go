// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer defines the pointer events routed by package input.

Only a single mouse-style pointer is modelled. The embedding
application produces Press, Release, Move and Click events; Enter and
Leave are synthesized by the router when the frontmost widget under
the pointer changes.

Each Kind has a wire name matching the DOM mouse event types
("mousedown", "mouseup", "mousemove", "mouseenter", "mouseexit",
"click"). Wire names are used by the text encoding of Kind.
*/
package pointer

import (
	"fmt"
	"strconv"
	"time"

	"simplekit.org/f32"
)

// Event is a pointer event. Events are values; use WithKind to derive
// a modified copy.
type Event struct {
	Kind Kind
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Position is the coordinates of the event in the
	// coordinate space of the root widget.
	Position f32.Point
}

// Kind of an Event.
type Kind uint8

const (
	// Press of a pointer.
	Press Kind = iota + 1
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Pointer became the frontmost widget under the pointer.
	Enter
	// Pointer stopped being the frontmost widget under the pointer.
	Leave
	// Click is a completed press and release reported by the platform.
	Click
)

var kindNames = [...]string{
	Press:   "mousedown",
	Release: "mouseup",
	Move:    "mousemove",
	Enter:   "mouseenter",
	Leave:   "mouseexit",
	Click:   "click",
}

// WithKind returns a copy of e with its Kind replaced by k. Time and
// Position are preserved.
func (e Event) WithKind(k Kind) Event {
	e.Kind = k
	return e
}

func (e Event) String() string {
	return fmt.Sprintf("%s@%v %v", e.Kind, e.Time, e.Position)
}

// Millis converts a millisecond timestamp as sent by the embedding
// application into a Duration.
func Millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// ParseKind returns the Kind with the wire name s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name != "" && name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("pointer: unknown event type %q", s)
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= Press && k <= Click
}

// Synthetic reports whether k is only ever produced by the router.
func (k Kind) Synthetic() bool {
	return k == Enter || k == Leave
}

// Name returns the wire name of k.
func (k Kind) Name() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Enter:
		return "Enter"
	case Leave:
		return "Leave"
	case Click:
		return "Click"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// MarshalText implements encoding.TextMarshaler using the wire name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("pointer: invalid kind %d", k)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the wire name.
func (k *Kind) UnmarshalText(text []byte) error {
	kk, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}
