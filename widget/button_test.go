// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"testing"
	"time"

	"simplekit.org/f32"
	"simplekit.org/io/input"
	"simplekit.org/io/pointer"
	"simplekit.org/widget"
)

func buttonScene() (*widget.Container, *widget.Button, *[]widget.Action) {
	var actions []widget.Action
	root := &widget.Container{Box: widget.Box{ID: "root", Size: f32.Pt(200, 200), Padding: 10}}
	btn := &widget.Button{
		Box:  widget.Box{ID: "ok", Position: f32.Pt(20, 20), Size: f32.Pt(80, 30)},
		Text: "OK",
		OnAction: func(a widget.Action) bool {
			actions = append(actions, a)
			return true
		},
	}
	root.Add(btn)
	return root, btn, &actions
}

func ev(k pointer.Kind, ms int, x, y float32) pointer.Event {
	return pointer.Event{Kind: k, Time: time.Duration(ms) * time.Millisecond, Position: f32.Pt(x, y)}
}

func TestButtonHover(t *testing.T) {
	root, btn, _ := buttonScene()
	var r input.Router

	// The button's padding box starts at root padding + position = (30,30).
	r.Dispatch(root, ev(pointer.Move, 0, 31, 31))
	if btn.State != widget.Hover {
		t.Fatalf("state after enter is %v, want Hover", btn.State)
	}
	r.Dispatch(root, ev(pointer.Move, 1, 29, 31))
	if btn.State != widget.Idle {
		t.Fatalf("state after leave is %v, want Idle", btn.State)
	}
	if r.Entered() != input.Widget(root) {
		t.Errorf("entered is %v, want root", r.Entered())
	}
}

func TestButtonPressDragRelease(t *testing.T) {
	root, btn, actions := buttonScene()
	var r input.Router

	r.Queue(root,
		ev(pointer.Move, 0, 50, 40),
		ev(pointer.Press, 1, 50, 40),
	)
	if btn.State != widget.Down {
		t.Fatalf("state after press is %v, want Down", btn.State)
	}
	if r.Focus() != input.Widget(btn) {
		t.Fatalf("focus is %v, want button", r.Focus())
	}

	// Dragging away keeps the focus; no Leave is synthesized.
	r.Dispatch(root, ev(pointer.Move, 2, 190, 190))
	if btn.State != widget.Down {
		t.Errorf("state after drag is %v, want Down", btn.State)
	}

	r.Dispatch(root, ev(pointer.Release, 3, 190, 190))
	if r.Focus() != nil {
		t.Errorf("focus not released")
	}
	if len(*actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(*actions))
	}
	a := (*actions)[0]
	if a.Source != input.Widget(btn) || a.Time != 3*time.Millisecond || a.Capture {
		t.Errorf("unexpected action %+v", a)
	}

	// Next move outside the button leaves it.
	r.Dispatch(root, ev(pointer.Move, 4, 190, 190))
	if btn.State != widget.Idle {
		t.Errorf("state after leaving is %v, want Idle", btn.State)
	}
}

func TestButtonReleaseWithoutPress(t *testing.T) {
	root, btn, actions := buttonScene()
	var r input.Router
	r.Queue(root,
		ev(pointer.Move, 0, 50, 40),
		ev(pointer.Release, 1, 50, 40),
	)
	if len(*actions) != 0 {
		t.Errorf("release without press triggered %d actions", len(*actions))
	}
	if btn.State != widget.Hover {
		t.Errorf("state is %v, want Hover", btn.State)
	}
}

func TestButtonDisabled(t *testing.T) {
	root, btn, actions := buttonScene()
	btn.Disabled = true
	var r input.Router
	r.Queue(root,
		ev(pointer.Move, 0, 50, 40),
		ev(pointer.Press, 1, 50, 40),
		ev(pointer.Release, 2, 50, 40),
	)
	if btn.State != widget.Idle {
		t.Errorf("disabled button state is %v", btn.State)
	}
	if r.Focus() != nil {
		t.Errorf("disabled button took focus")
	}
	if len(*actions) != 0 {
		t.Errorf("disabled button emitted actions")
	}
}

func TestButtonStateString(t *testing.T) {
	for s, want := range map[widget.ButtonState]string{
		widget.Idle:  "Idle",
		widget.Hover: "Hover",
		widget.Down:  "Down",
	} {
		if got := s.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
