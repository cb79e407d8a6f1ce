// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"slices"

	"simplekit.org/io/input"
	"simplekit.org/io/pointer"
)

// Container is a widget holding an ordered list of children. Children
// are positioned in the content box of the container and are hit
// tested in order, the last child being the frontmost.
//
// A Container turns Click events into actions in both the capture
// and the bubble phase, which lets it intercept clicks meant for its
// descendants.
type Container struct {
	Box
	// OnAction is called for every Click delivered to the container.
	// Its result is reported as the handled state of the click.
	OnAction func(Action) bool

	children []input.Widget
}

// Add appends children in front of the existing ones.
func (c *Container) Add(children ...input.Widget) {
	c.children = append(c.children, children...)
}

// Remove removes every occurrence of w from the children.
func (c *Container) Remove(w input.Widget) {
	c.children = slices.DeleteFunc(c.children, func(child input.Widget) bool {
		return child == w
	})
}

// Clear removes all children.
func (c *Container) Clear() {
	c.children = nil
}

// Children returns the children, back to front. The slice must not be
// modified.
func (c *Container) Children() []input.Widget {
	return c.children
}

func (c *Container) CapturePointer(_ input.Source, e pointer.Event) bool {
	if e.Kind != pointer.Click {
		return false
	}
	return c.action(e, true)
}

func (c *Container) HandlePointer(_ input.Source, e pointer.Event) bool {
	if e.Kind != pointer.Click {
		return false
	}
	return c.action(e, false)
}

func (c *Container) action(e pointer.Event, capture bool) bool {
	if c.OnAction == nil {
		return false
	}
	return c.OnAction(Action{Source: c, Time: e.Time, Capture: capture})
}

func (c *Container) String() string {
	return describe("Container", c.ID, "")
}
