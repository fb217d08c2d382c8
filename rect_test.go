package quadtree

import "testing"

func TestRectContainsRect(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"fully inside", Rect{X: 2, Y: 2, W: 3, H: 3}, true},
		{"touches every edge", Rect{X: 0, Y: 0, W: 10, H: 10}, true},
		{"straddles right edge", Rect{X: 8, Y: 2, W: 5, H: 2}, false},
		{"wholly outside", Rect{X: 20, Y: 20, W: 1, H: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.r); got != tt.want {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"edge touch", Rect{X: 10, Y: 0, W: 5, H: 5}, true},
		{"disjoint", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("Intersects is not symmetric for %+v", tt.b)
			}
		})
	}
}

func TestRectQuarterPartitionsExactly(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 6}
	midX, midY := r.midpoint()
	quads := [4]Rect{
		r.quarter(quadTL, midX, midY),
		r.quarter(quadTR, midX, midY),
		r.quarter(quadBL, midX, midY),
		r.quarter(quadBR, midX, midY),
	}
	var area float64
	for _, q := range quads {
		area += q.Area()
	}
	if area != r.Area() {
		t.Errorf("quarters area sum = %v, want %v", area, r.Area())
	}
	if quads[quadTL].Right() != quads[quadTR].Left() {
		t.Errorf("TL/TR do not share a boundary: %+v vs %+v", quads[quadTL], quads[quadTR])
	}
}

func TestDegenerate(t *testing.T) {
	if !degenerate(Rect{X: 0, Y: 0, W: 0.001, H: 0.001}, DefaultConfig().MinSubdivideArea) {
		t.Errorf("expected a near-zero-area rect to be degenerate")
	}
	if degenerate(Rect{X: 0, Y: 0, W: 10, H: 10}, DefaultConfig().MinSubdivideArea) {
		t.Errorf("expected a normal rect not to be degenerate")
	}
}
