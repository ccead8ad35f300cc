package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDistance(t *testing.T) {
	if d := Distance(Pt(0, 0), Pt(3, 4)); math.Abs(d-5) > eps {
		t.Errorf("Expected distance 5, got %f", d)
	}
	if d := Distance(Pt(7, -2), Pt(7, -2)); d != 0 {
		t.Errorf("Expected distance 0 for identical points, got %f", d)
	}
}

func TestAngleOfVector(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   float64
	}{
		{1, 0, 0},
		{0, 1, 90},
		{-1, 0, 180},
		{0, -1, 270},
		{1, -1, 315},
		{0, 0, 0},
	}
	for _, tt := range tests {
		got := AngleOfVector(tt.dx, tt.dy)
		if math.Abs(got-tt.want) > eps {
			t.Errorf("AngleOfVector(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("AngleOfVector(%v, %v) = %v, outside [0, 360)", tt.dx, tt.dy, got)
		}
	}
}

func TestRotateAroundZeroIsIdentity(t *testing.T) {
	pts := []Point{{0, 0}, {10, -3.5}, {-120.25, 44}, {1e6, -1e6}}
	centers := []Point{{0, 0}, {150, 100}, {-7, 3}}
	for _, c := range centers {
		for _, p := range pts {
			if got := RotateAround(p, c, 0); got != p {
				t.Errorf("RotateAround(%v, %v, 0) = %v, want %v", p, c, got, p)
			}
		}
	}
}

func TestRotateAroundInverse(t *testing.T) {
	c := Pt(150, 100)
	for _, angle := range []float64{0, 15, 45, 90, 133.7, 180, 270, 359, -90} {
		for _, p := range []Point{{100, 100}, {200, 50}, {0, 0}, {-30, 400}} {
			back := RotateAround(RotateAround(p, c, angle), c, -angle)
			if !ApproxEqual(back, p, 1e-9) {
				t.Errorf("angle %v: round trip of %v gave %v", angle, p, back)
			}
		}
	}
}

func TestRotateAroundQuarterTurn(t *testing.T) {
	got := RotateAround(Pt(200, 100), Pt(150, 100), 90)
	if !ApproxEqual(got, Pt(150, 150), 1e-9) {
		t.Errorf("Expected (150,150), got %v", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	for in, want := range map[float64]float64{0: 0, 360: 0, 450: 90, -90: 270, 720.5: 0.5} {
		if got := NormalizeAngle(in); math.Abs(got-want) > eps {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestBBox(t *testing.T) {
	bb := BBoxOf(Pt(10, 20), Pt(-5, 4), Pt(3, 30))
	if bb.MinX != -5 || bb.MaxX != 10 || bb.MinY != 4 || bb.MaxY != 30 {
		t.Fatalf("Unexpected bbox %+v", bb)
	}
	if !bb.Contains(Pt(-5, 4)) || !bb.Contains(Pt(0, 10)) {
		t.Error("Expected edge and interior points to be contained")
	}
	if bb.Contains(Pt(11, 10)) {
		t.Error("Expected point outside to be rejected")
	}
	padded := bb.Pad(1, 2)
	if padded.Width() != bb.Width()+2 || padded.Height() != bb.Height()+4 {
		t.Errorf("Unexpected padded size %vx%v", padded.Width(), padded.Height())
	}
	if !EmptyBBox().IsEmpty() {
		t.Error("Expected EmptyBBox to be empty")
	}
	u := EmptyBBox().Union(bb)
	if u != bb {
		t.Errorf("Union with empty = %+v, want %+v", u, bb)
	}
}
