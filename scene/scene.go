// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scene loads widget trees and pointer event traces from TOML
or YAML files.

A scene file has a root node and an optional list of events:

	[root]
	kind = "container"
	id = "root"
	width = 300
	height = 200
	padding = 10

	[[root.children]]
	kind = "button"
	id = "ok"
	text = "OK"
	x = 10
	y = 40
	width = 80
	height = 30

	[[events]]
	time = 0
	kind = "mousemove"
	x = 30
	y = 60

Node kinds are "box", "label", "button" and "container"; only
containers may have children. Event kinds use the wire names of
package pointer; "mouseenter" and "mouseexit" are rejected since the
router synthesizes them.
*/
package scene

import (
	"errors"
	"fmt"
	"strings"

	"simplekit.org/f32"
	"simplekit.org/io/input"
	"simplekit.org/io/pointer"
	"simplekit.org/widget"
)

var (
	ErrFormat      = errors.New("scene: unsupported file format")
	ErrNodeKind    = errors.New("scene: unknown node kind")
	ErrChildren    = errors.New("scene: children on a non-container node")
	ErrDuplicateID = errors.New("scene: duplicate node id")
	ErrGeometry    = errors.New("scene: negative size, padding or margin")
	ErrTrace       = errors.New("scene: invalid event trace")
)

// File is the decoded form of a scene file.
type File struct {
	Root   Node        `toml:"root" yaml:"root"`
	Events []EventSpec `toml:"events" yaml:"events"`
}

// Node describes a widget and its children.
type Node struct {
	Kind     string  `toml:"kind" yaml:"kind"`
	ID       string  `toml:"id" yaml:"id"`
	Text     string  `toml:"text" yaml:"text"`
	X        float32 `toml:"x" yaml:"x"`
	Y        float32 `toml:"y" yaml:"y"`
	Width    float32 `toml:"width" yaml:"width"`
	Height   float32 `toml:"height" yaml:"height"`
	Padding  float32 `toml:"padding" yaml:"padding"`
	Margin   float32 `toml:"margin" yaml:"margin"`
	Disabled bool    `toml:"disabled" yaml:"disabled"`
	// Intercept makes a container consume clicks in the capture
	// phase, hiding them from its descendants.
	Intercept bool   `toml:"intercept" yaml:"intercept"`
	Children  []Node `toml:"children" yaml:"children"`
}

// EventSpec describes a pointer event of the trace.
type EventSpec struct {
	// Time is the timestamp in milliseconds.
	Time float64      `toml:"time" yaml:"time"`
	Kind pointer.Kind `toml:"kind" yaml:"kind"`
	X    float32      `toml:"x" yaml:"x"`
	Y    float32      `toml:"y" yaml:"y"`
}

// Scene is a built widget tree with its event trace.
type Scene struct {
	Root input.Widget
	// Widgets maps node ids to their widgets.
	Widgets map[string]input.Widget
	Events  []pointer.Event
	// OnAction, if set, observes every action emitted by the scene's
	// buttons and containers.
	OnAction func(widget.Action)
}

// Build validates f and creates its widgets.
func (f *File) Build() (*Scene, error) {
	s := &Scene{Widgets: make(map[string]input.Widget)}
	root, err := s.build(&f.Root, "root")
	if err != nil {
		return nil, err
	}
	s.Root = root
	events, err := f.trace()
	if err != nil {
		return nil, err
	}
	s.Events = events
	return s, nil
}

// Replay dispatches the scene's events through r.
func (s *Scene) Replay(r *input.Router) {
	r.Queue(s.Root, s.Events...)
}

func (s *Scene) build(n *Node, path string) (input.Widget, error) {
	if n.ID != "" {
		path += "(" + n.ID + ")"
	}
	if n.Width < 0 || n.Height < 0 || n.Padding < 0 || n.Margin < 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrGeometry)
	}
	box := widget.Box{
		ID:       n.ID,
		Position: f32.Pt(n.X, n.Y),
		Size:     f32.Pt(n.Width, n.Height),
		Padding:  n.Padding,
		Margin:   n.Margin,
	}
	kind := strings.ToLower(strings.TrimSpace(n.Kind))
	if kind != "container" && len(n.Children) > 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrChildren)
	}
	var w input.Widget
	switch kind {
	case "box":
		w = &box
	case "label":
		w = &widget.Label{Box: box, Text: n.Text}
	case "button":
		w = &widget.Button{
			Box:      box,
			Text:     n.Text,
			Disabled: n.Disabled,
			OnAction: func(a widget.Action) bool {
				s.observe(a)
				return true
			},
		}
	case "container":
		c := &widget.Container{Box: box}
		intercept := n.Intercept
		c.OnAction = func(a widget.Action) bool {
			s.observe(a)
			if a.Capture {
				return intercept
			}
			return true
		}
		for i := range n.Children {
			child, err := s.build(&n.Children[i], fmt.Sprintf("%s/children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			c.Add(child)
		}
		w = c
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrNodeKind, n.Kind)
	}
	if n.ID != "" {
		if _, dup := s.Widgets[n.ID]; dup {
			return nil, fmt.Errorf("%s: %w %q", path, ErrDuplicateID, n.ID)
		}
		s.Widgets[n.ID] = w
	}
	return w, nil
}

func (s *Scene) observe(a widget.Action) {
	if s.OnAction != nil {
		s.OnAction(a)
	}
}

func (f *File) trace() ([]pointer.Event, error) {
	events := make([]pointer.Event, 0, len(f.Events))
	for i, spec := range f.Events {
		switch {
		case !spec.Kind.Valid():
			return nil, fmt.Errorf("events[%d]: %w: missing kind", i, ErrTrace)
		case spec.Kind.Synthetic():
			return nil, fmt.Errorf("events[%d]: %w: %s is synthesized by the router", i, ErrTrace, spec.Kind.Name())
		}
		e := pointer.Event{
			Kind:     spec.Kind,
			Time:     pointer.Millis(spec.Time),
			Position: f32.Pt(spec.X, spec.Y),
		}
		if n := len(events); n > 0 && e.Time < events[n-1].Time {
			return nil, fmt.Errorf("events[%d]: %w: time %v before %v", i, ErrTrace, e.Time, events[n-1].Time)
		}
		events = append(events, e)
	}
	return events, nil
}
