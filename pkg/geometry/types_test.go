package geometry

import "testing"

func TestRectIntOverlaps(t *testing.T) {
	testCases := []struct {
		name string
		a, b RectInt
		want bool
	}{
		{
			name: "identical",
			a:    RectInt{X: 0, Y: 0, Width: 20, Height: 20},
			b:    RectInt{X: 0, Y: 0, Width: 20, Height: 20},
			want: true,
		},
		{
			name: "partial overlap",
			a:    RectInt{X: 0, Y: 0, Width: 20, Height: 20},
			b:    RectInt{X: 5, Y: 5, Width: 20, Height: 20},
			want: true,
		},
		{
			name: "contained",
			a:    RectInt{X: 0, Y: 0, Width: 30, Height: 30},
			b:    RectInt{X: 10, Y: 10, Width: 5, Height: 5},
			want: true,
		},
		{
			name: "touching right edge",
			a:    RectInt{X: 0, Y: 0, Width: 10, Height: 10},
			b:    RectInt{X: 10, Y: 0, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "touching corner",
			a:    RectInt{X: 0, Y: 0, Width: 10, Height: 10},
			b:    RectInt{X: 10, Y: 10, Width: 5, Height: 5},
			want: true,
		},
		{
			name: "one pixel apart horizontally",
			a:    RectInt{X: 0, Y: 0, Width: 10, Height: 10},
			b:    RectInt{X: 11, Y: 0, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "overlap in x only",
			a:    RectInt{X: 0, Y: 0, Width: 10, Height: 10},
			b:    RectInt{X: 5, Y: 40, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "disjoint",
			a:    RectInt{X: 0, Y: 0, Width: 10, Height: 10},
			b:    RectInt{X: 100, Y: 100, Width: 10, Height: 10},
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestRectIntClamp(t *testing.T) {
	testCases := []struct {
		name string
		r    RectInt
		w, h int
		want RectInt
	}{
		{
			name: "inside bounds",
			r:    RectInt{X: 10, Y: 10, Width: 20, Height: 20},
			w:    100, h: 100,
			want: RectInt{X: 10, Y: 10, Width: 20, Height: 20},
		},
		{
			name: "negative origin",
			r:    RectInt{X: -5, Y: -3, Width: 20, Height: 20},
			w:    100, h: 100,
			want: RectInt{X: 0, Y: 0, Width: 15, Height: 17},
		},
		{
			name: "past far edge",
			r:    RectInt{X: 90, Y: 95, Width: 20, Height: 20},
			w:    100, h: 100,
			want: RectInt{X: 90, Y: 95, Width: 10, Height: 5},
		},
		{
			name: "entirely outside",
			r:    RectInt{X: 200, Y: 200, Width: 20, Height: 20},
			w:    100, h: 100,
			want: RectInt{X: 100, Y: 100, Width: 0, Height: 0},
		},
		{
			name: "entirely outside negative",
			r:    RectInt{X: -200, Y: -200, Width: 20, Height: 20},
			w:    100, h: 100,
			want: RectInt{X: 0, Y: 0, Width: 0, Height: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Clamp(tc.w, tc.h)
			if got != tc.want {
				t.Errorf("Clamp(%+v, %d, %d) = %+v, want %+v", tc.r, tc.w, tc.h, got, tc.want)
			}
		})
	}
}

func TestNewRectInt(t *testing.T) {
	r := NewRectInt(3, 4, 20, 15)
	if r != (RectInt{X: 3, Y: 4, Width: 20, Height: 15}) {
		t.Errorf("NewRectInt(3, 4, 20, 15) = %+v", r)
	}
	if got := r.TopLeft(); got != (PointInt{X: 3, Y: 4}) {
		t.Errorf("TopLeft() = %+v, want {3 4}", got)
	}
}

func TestRectIntArea(t *testing.T) {
	r := RectInt{X: 3, Y: 4, Width: 20, Height: 15}
	if got := r.Area(); got != 300 {
		t.Errorf("Area() = %d, want 300", got)
	}
	if r.Empty() {
		t.Errorf("Empty() = true for %+v", r)
	}
	if !(RectInt{X: 1, Y: 1}).Empty() {
		t.Errorf("Empty() = false for zero-size rect")
	}
}
