package geom

import "testing"

func TestPositionUnion(t *testing.T) {
	a := Position{X: 0, Y: 0, W: 10, H: 10}
	b := Position{X: 5, Y: 5, W: 10, H: 10}
	got := a.Union(b)
	want := Position{X: 0, Y: 0, W: 15, H: 15}
	if got != want {
		t.Fatalf("Union() = %+v, want %+v", got, want)
	}
}

func TestPositionUnionWithZero(t *testing.T) {
	a := Position{X: 3, Y: 4, W: 10, H: 10}
	if got := (Position{}).Union(a); got != a {
		t.Fatalf("Union(zero, a) = %+v, want %+v", got, a)
	}
	if got := a.Union(Position{}); got != a {
		t.Fatalf("Union(a, zero) = %+v, want %+v", got, a)
	}
}

func TestPositionPad(t *testing.T) {
	p := Position{X: 10, Y: 10, W: 20, H: 20}
	padded := p.Pad(20)
	if padded.Left() != -10 || padded.Top() != -10 {
		t.Fatalf("Pad() left/top = %v/%v, want -10/-10", padded.Left(), padded.Top())
	}
	if padded.Right() != 50 || padded.Bottom() != 50 {
		t.Fatalf("Pad() right/bottom = %v/%v, want 50/50", padded.Right(), padded.Bottom())
	}
	if padded.CenterX() != p.CenterX() || padded.CenterY() != p.CenterY() {
		t.Fatalf("Pad() must preserve center")
	}
}

func TestPositionOverlaps(t *testing.T) {
	a := Position{X: 0, Y: 0, W: 10, H: 10}
	b := Position{X: 5, Y: 5, W: 10, H: 10}
	c := Position{X: 10, Y: 0, W: 10, H: 10} // touching edge only
	if !a.Overlaps(b) {
		t.Fatalf("expected a and b to overlap")
	}
	if a.Overlaps(c) {
		t.Fatalf("expected touching rectangles to not overlap")
	}
}

func TestPositionEncloses(t *testing.T) {
	outer := Position{X: 0, Y: 0, W: 100, H: 100}
	inner := Position{X: 10, Y: 10, W: 20, H: 20}
	if !outer.Encloses(inner) {
		t.Fatalf("expected outer to enclose inner")
	}
	if inner.Encloses(outer) {
		t.Fatalf("expected inner to not enclose outer")
	}
}

func TestUnionAllSkipsZero(t *testing.T) {
	positions := []Position{
		{},
		{X: 1, Y: 1, W: 2, H: 2},
		{X: -1, Y: -1, W: 2, H: 2},
	}
	got := UnionAll(positions)
	want := Position{X: -1, Y: -1, W: 4, H: 4}
	if got != want {
		t.Fatalf("UnionAll() = %+v, want %+v", got, want)
	}
}

func TestSegmentMidpoint(t *testing.T) {
	s := Segment{Start: Coordinate{X: 0, Y: 0}, End: Coordinate{X: 10, Y: 20}}
	mid := s.Midpoint()
	if mid.X != 5 || mid.Y != 10 {
		t.Fatalf("Midpoint() = %+v, want {5 10}", mid)
	}
}

func TestNewPositionAndCenter(t *testing.T) {
	p := NewPosition(50, 60, 10, 20)
	if p.CenterX() != 50 || p.CenterY() != 60 {
		t.Fatalf("NewPosition center = (%v, %v), want (50, 60)", p.CenterX(), p.CenterY())
	}
	if p.Left() != 45 || p.Top() != 50 {
		t.Fatalf("NewPosition left/top = %v/%v, want 45/50", p.Left(), p.Top())
	}
}

func TestPositionTranslate(t *testing.T) {
	p := Position{X: 5, Y: 5, W: 10, H: 10}
	moved := p.Translate(-5, -5)
	if moved.X != 0 || moved.Y != 0 {
		t.Fatalf("Translate() = %+v, want origin", moved)
	}
}
