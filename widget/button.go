// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"simplekit.org/io/input"
	"simplekit.org/io/pointer"
)

// Button is a clickable widget. A press claims mouse focus so that
// the matching release reaches the button even when the pointer has
// moved away.
type Button struct {
	Box
	Text     string
	Disabled bool
	State    ButtonState
	// OnAction is called when a press on the button is released. Its
	// result is reported as the handled state of the release.
	OnAction func(Action) bool
}

// ButtonState is the interaction state of a Button.
type ButtonState uint8

const (
	Idle ButtonState = iota
	Hover
	Down
)

func (b *Button) HandlePointer(src input.Source, e pointer.Event) bool {
	if b.Disabled {
		return false
	}
	switch e.Kind {
	case pointer.Press:
		b.State = Down
		src.RequestFocus(b)
		return true
	case pointer.Release:
		pressed := b.State == Down
		b.State = Hover
		if !pressed || b.OnAction == nil {
			return false
		}
		return b.OnAction(Action{Source: b, Time: e.Time})
	case pointer.Enter:
		b.State = Hover
		return true
	case pointer.Leave:
		b.State = Idle
		return true
	}
	return false
}

func (b *Button) String() string {
	return describe("Button", b.ID, b.Text)
}

func (s ButtonState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Hover:
		return "Hover"
	case Down:
		return "Down"
	default:
		panic("unknown button state")
	}
}
