// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"context"
	"fmt"
	"log/slog"

	"simplekit.org/io/pointer"
)

// Router tracks the mouse focus and hover state of a single pointer
// and routes pointer events to widgets. The zero value is ready to
// use. [Source] is its interface exposed to widgets.
type Router struct {
	// Logger receives a debug record for every delivery. A nil Logger
	// disables logging.
	Logger *slog.Logger

	// focus is the widget that receives every event until the
	// pointer is released.
	focus Widget
	// entered is the widget that last received an Enter event.
	entered Widget
}

// Source implements the interface between a Router and the widgets it
// delivers to. The zero Source is disabled.
type Source struct {
	r *Router
}

// Phase identifies the delivery pass an event is part of.
type Phase uint8

const (
	// Capture runs from the root towards the frontmost widget.
	Capture Phase = iota
	// Bubble runs from the frontmost widget back to the root.
	Bubble
	// Focused delivery bypasses routing entirely.
	Focused
	// Hover delivers synthesized Enter and Leave events.
	Hover
)

// Source returns the Source handed to widget handlers.
func (r *Router) Source() Source {
	return Source{r: r}
}

// Focus returns the widget holding mouse focus, or nil.
func (r *Router) Focus() Widget {
	return r.focus
}

// Entered returns the widget the pointer last entered, or nil.
func (r *Router) Entered() Widget {
	return r.entered
}

// Queue dispatches events in order.
func (r *Router) Queue(root Widget, events ...pointer.Event) {
	for _, e := range events {
		r.Dispatch(root, e)
	}
}

// Dispatch routes e through the widget tree rooted at root.
//
// If a widget holds mouse focus, e is delivered to it alone and a
// Release ends the focus. Otherwise e is offered to every widget of
// the route under e.Position, first in capture order and then, unless
// a capture handler consumed it, in bubble order until a handler
// consumes it. Move events additionally update the entered widget.
//
// Dispatch panics if root is nil or if e.Kind is not a valid input
// kind.
func (r *Router) Dispatch(root Widget, e pointer.Event) {
	if root == nil {
		panic("input: nil root widget")
	}
	if !e.Kind.Valid() {
		panic(fmt.Sprintf("input: invalid pointer kind %d", e.Kind))
	}
	if e.Kind.Synthetic() {
		panic("input: " + e.Kind.String() + " events are synthesized by the router")
	}
	if r.focus != nil {
		r.deliverFocused(e)
		return
	}
	route := BuildRoute(root, e.Position)
	if e.Kind == pointer.Move {
		r.updateEntered(e, route.Target())
	}
	if r.capture(route, e) {
		return
	}
	r.bubble(route, e)
}

func (r *Router) deliverFocused(e pointer.Event) {
	w := r.focus
	handled := w.HandlePointer(r.Source(), e)
	r.logDelivery(Focused, w, e, handled)
	if e.Kind == pointer.Release {
		r.focus = nil
		r.debug("focus released", widgetAttr(w))
	}
}

// capture runs the capture pass and reports whether it was stopped.
func (r *Router) capture(route Route, e pointer.Event) bool {
	src := r.Source()
	for _, w := range route {
		handled := w.CapturePointer(src, e)
		r.logDelivery(Capture, w, e, handled)
		if handled {
			return true
		}
	}
	return false
}

func (r *Router) bubble(route Route, e pointer.Event) {
	src := r.Source()
	for i := len(route) - 1; i >= 0; i-- {
		w := route[i]
		handled := w.HandlePointer(src, e)
		r.logDelivery(Bubble, w, e, handled)
		if handled {
			return
		}
	}
}

// updateEntered delivers Leave and Enter events when the frontmost
// widget under the pointer changes. At most one widget is entered at
// any time.
func (r *Router) updateEntered(e pointer.Event, target Widget) {
	if target == r.entered {
		return
	}
	src := r.Source()
	if prev := r.entered; prev != nil {
		leave := e.WithKind(pointer.Leave)
		handled := prev.HandlePointer(src, leave)
		r.logDelivery(Hover, prev, leave, handled)
	}
	if target != nil {
		enter := e.WithKind(pointer.Enter)
		handled := target.HandlePointer(src, enter)
		r.logDelivery(Hover, target, enter, handled)
	}
	r.entered = target
}

func (r *Router) logDelivery(p Phase, w Widget, e pointer.Event, handled bool) {
	r.debug("deliver",
		slog.String("phase", p.String()),
		widgetAttr(w),
		slog.String("kind", e.Kind.Name()),
		slog.Duration("at", e.Time),
		slog.Any("pos", e.Position),
		slog.Bool("handled", handled),
	)
}

func (r *Router) debug(msg string, attrs ...slog.Attr) {
	if r.Logger == nil {
		return
	}
	ctx := context.Background()
	if !r.Logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	r.Logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// RequestFocus gives w mouse focus: every following event is
// delivered to w alone until the pointer is released. A nil w
// releases the focus early. RequestFocus is a no-op for a disabled
// Source.
func (s Source) RequestFocus(w Widget) {
	if s.r == nil {
		return
	}
	s.r.focus = w
	if w != nil {
		s.r.debug("focus", widgetAttr(w))
	} else {
		s.r.debug("focus released")
	}
}

// Focused returns the widget holding mouse focus, or nil.
func (s Source) Focused() Widget {
	if s.r == nil {
		return nil
	}
	return s.r.focus
}

// Enabled reports whether the source is connected to a Router.
func (s Source) Enabled() bool {
	return s.r != nil
}

func (p Phase) String() string {
	switch p {
	case Capture:
		return "capture"
	case Bubble:
		return "bubble"
	case Focused:
		return "focused"
	case Hover:
		return "hover"
	default:
		panic("unknown phase")
	}
}

// widgetValue formats a widget only when the record is emitted.
type widgetValue struct {
	w Widget
}

func (v widgetValue) LogValue() slog.Value {
	return slog.StringValue(fmt.Sprint(v.w))
}

func widgetAttr(w Widget) slog.Attr {
	return slog.Any("widget", widgetValue{w})
}
