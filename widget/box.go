// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"time"

	"simplekit.org/f32"
	"simplekit.org/io/input"
	"simplekit.org/io/pointer"
)

// Box is a rectangular leaf widget. It is the base of the other
// widgets in this package and ignores all pointer events.
type Box struct {
	// ID optionally identifies the widget in logs and scene files.
	ID string
	// Position is the top left corner of the margin box in the
	// content space of the parent.
	Position f32.Point
	// Size is the size of the padding box.
	Size f32.Point
	// Padding and Margin are uniform offsets on all four sides.
	Padding float32
	Margin  float32
}

// Action is emitted by widgets that trigger an application action.
type Action struct {
	Source input.Widget
	Time   time.Duration
	// Capture is set for actions emitted during the capture phase.
	Capture bool
}

func (b *Box) Geometry() input.Geometry {
	return input.Geometry{
		Position: b.Position,
		Padding:  b.Padding,
		Margin:   b.Margin,
	}
}

// Bounds returns the padding box of b in its parent's content space.
func (b *Box) Bounds() f32.Rectangle {
	o := b.Position.Add(f32.Pt(b.Margin, b.Margin))
	return f32.Rectangle{Min: o, Max: o.Add(b.Size)}
}

func (b *Box) Children() []input.Widget {
	return nil
}

// HitTest reports whether p lies in the padding box of b.
func (b *Box) HitTest(p f32.Point) bool {
	return b.Bounds().Contains(p)
}

func (b *Box) HandlePointer(input.Source, pointer.Event) bool {
	return false
}

func (b *Box) CapturePointer(input.Source, pointer.Event) bool {
	return false
}

func (b *Box) String() string {
	return describe("Box", b.ID, "")
}

func describe(kind, id, text string) string {
	s := kind
	if text != "" {
		s += fmt.Sprintf(" %q", text)
	}
	if id != "" {
		s += " #" + id
	}
	return s
}
