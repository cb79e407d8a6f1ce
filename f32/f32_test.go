// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestRectangleContains(t *testing.T) {
	r := Rect(10, 20, 30, 40)
	for _, tc := range []struct {
		p    Point
		want bool
	}{
		{Pt(10, 20), true},
		{Pt(29.5, 39.5), true},
		{Pt(30, 30), false},
		{Pt(20, 40), false},
		{Pt(9.99, 25), false},
		{Pt(-20, -40), false},
	} {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.p, got, tc.want)
		}
	}
}

func TestRectCanon(t *testing.T) {
	r := Rect(5, 6, 1, 2)
	if want := (Rectangle{Min: Pt(1, 2), Max: Pt(5, 6)}); r != want {
		t.Errorf("Rect not canonical: have %v, want %v", r, want)
	}
	if r.Empty() {
		t.Errorf("%v reported empty", r)
	}
	if !(Rectangle{}).Empty() {
		t.Error("zero rectangle not empty")
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4).Add(Pt(1, -1)).Sub(Pt(2, 2)).Mul(2)
	if want := Pt(4, 2); p != want {
		t.Errorf("have %v, want %v", p, want)
	}
	if got, want := Pt(1.5, -2).String(), "(1.5,-2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRectangleOffset(t *testing.T) {
	r := Rect(0, 0, 10, 5).Add(Pt(2, 3))
	if want := Rect(2, 3, 12, 8); r != want {
		t.Errorf("Add: have %v, want %v", r, want)
	}
	if back := r.Sub(Pt(2, 3)); back != Rect(0, 0, 10, 5) {
		t.Errorf("Sub: have %v", back)
	}
	if s := r.Size(); s != Pt(10, 5) {
		t.Errorf("Size: have %v", s)
	}
}
