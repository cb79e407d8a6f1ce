// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"simplekit.org/f32"
	"simplekit.org/io/pointer"
)

// Widget is the set of capabilities the Router needs from a user
// interface element. Widgets are compared by identity, so
// implementations must be comparable, typically pointer types.
type Widget interface {
	// Geometry returns the position and box model offsets of the
	// widget in the content space of its parent.
	Geometry() Geometry
	// Children returns the child widgets in paint order, back to
	// front. Leaves return nil. The router never modifies the slice.
	Children() []Widget
	// HitTest reports whether p, expressed in the same space as the
	// widget's Position, lies within its interactive bounds.
	HitTest(p f32.Point) bool
	// HandlePointer is the bubble phase handler. It reports whether
	// the event was consumed.
	HandlePointer(src Source, e pointer.Event) bool
	// CapturePointer is the capture phase handler. It reports whether
	// the event was consumed, which also cancels the bubble phase.
	CapturePointer(src Source, e pointer.Event) bool
}

// Geometry describes where a widget sits inside its parent.
type Geometry struct {
	Position f32.Point
	// Padding and Margin are uniform offsets on all four sides.
	Padding float32
	Margin  float32
}

// ContentOrigin returns the origin of the widget's content box in
// its parent's content space. Children are positioned relative to it.
func (g Geometry) ContentOrigin() f32.Point {
	inset := g.Padding + g.Margin
	return g.Position.Add(f32.Pt(inset, inset))
}

// Route is the list of widgets under a point, outermost first.
type Route []Widget

// Target returns the frontmost widget of the route, or nil if the
// route is empty.
func (r Route) Target() Widget {
	if len(r) == 0 {
		return nil
	}
	return r[len(r)-1]
}

// BuildRoute returns the widgets of the tree rooted at root that
// contain p, a point in the root's coordinate space. Children are
// visited in order and each widget precedes its hit descendants.
//
// A widget that doesn't contain p is left out even if some of its
// descendants do; those descendants still appear in the route, which
// is how content overflowing its parent stays reachable.
func BuildRoute(root Widget, p f32.Point) Route {
	if root == nil {
		panic("input: nil root widget")
	}
	return appendRoute(nil, root, p)
}

func appendRoute(route Route, w Widget, p f32.Point) Route {
	// Reserve a slot for w so that it ends up ahead of its descendants.
	slot := len(route)
	route = append(route, nil)
	if children := w.Children(); len(children) > 0 {
		cp := p.Sub(w.Geometry().ContentOrigin())
		for _, c := range children {
			route = appendRoute(route, c, cp)
		}
	}
	if w.HitTest(p) {
		route[slot] = w
		return route
	}
	return append(route[:slot], route[slot+1:]...)
}
