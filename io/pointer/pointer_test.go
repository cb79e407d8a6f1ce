// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
	"time"

	"simplekit.org/f32"
)

func TestKindString(t *testing.T) {
	for _, tc := range []struct {
		typ  Kind
		res  string
		wire string
	}{
		{Press, "Press", "mousedown"},
		{Release, "Release", "mouseup"},
		{Move, "Move", "mousemove"},
		{Enter, "Enter", "mouseenter"},
		{Leave, "Leave", "mouseexit"},
		{Click, "Click", "click"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.typ.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
			if want, got := tc.wire, tc.typ.Name(); want != got {
				t.Errorf("got wire name %q; want %q", got, want)
			}
			k, err := ParseKind(tc.wire)
			if err != nil {
				t.Fatal(err)
			}
			if k != tc.typ {
				t.Errorf("ParseKind(%q) = %v; want %v", tc.wire, k, tc.typ)
			}
		})
	}
}

func TestKindInvalid(t *testing.T) {
	if _, err := ParseKind("mousewheel"); err == nil {
		t.Error("ParseKind accepted unknown type")
	}
	if _, err := ParseKind(""); err == nil {
		t.Error("ParseKind accepted empty type")
	}
	var zero Kind
	if zero.Valid() {
		t.Error("zero Kind is valid")
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("got %q", got)
	}
	if _, err := Kind(0).MarshalText(); err == nil {
		t.Error("MarshalText accepted zero Kind")
	}
}

func TestKindText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("mouseup")); err != nil {
		t.Fatal(err)
	}
	if k != Release {
		t.Errorf("got %v; want Release", k)
	}
	b, err := Click.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "click" {
		t.Errorf("got %q", b)
	}
	if err := k.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText accepted bogus type")
	}
	if k != Release {
		t.Error("failed UnmarshalText modified the kind")
	}
}

func TestSynthetic(t *testing.T) {
	for _, k := range []Kind{Press, Release, Move, Click} {
		if k.Synthetic() {
			t.Errorf("%v reported synthetic", k)
		}
	}
	for _, k := range []Kind{Enter, Leave} {
		if !k.Synthetic() {
			t.Errorf("%v not reported synthetic", k)
		}
	}
}

func TestWithKind(t *testing.T) {
	e := Event{Kind: Move, Time: 15 * time.Millisecond, Position: f32.Pt(3, 4)}
	leave := e.WithKind(Leave)
	if leave.Kind != Leave || leave.Time != e.Time || leave.Position != e.Position {
		t.Errorf("WithKind = %v; want Leave copy of %v", leave, e)
	}
	if e.Kind != Move {
		t.Error("WithKind modified its receiver")
	}
}

func TestMillis(t *testing.T) {
	if got := Millis(12.5); got != 12500*time.Microsecond {
		t.Errorf("Millis(12.5) = %v", got)
	}
}
