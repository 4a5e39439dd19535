package vmath

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("sequence diverged at %d", i)
		}
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 10000; i++ {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range: %v", v)
		}
		if v := r.BiRand(0.3); v < -0.3 || v >= 0.3 {
			t.Fatalf("BiRand out of range: %v", v)
		}
		if v := r.BiRandInt(32); v < -32 || v >= 32 {
			t.Fatalf("BiRandInt out of range: %v", v)
		}
		if v := r.RangeF(1.5, 3); v < 1.5 || v >= 3 {
			t.Fatalf("RangeF out of range: %v", v)
		}
		if v := r.Range(8, 12); v < 8 || v > 12 {
			t.Fatalf("Range out of range: %v", v)
		}
	}
}

func TestInterp(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"lerp start", Lerp(0, 2, 4), 2},
		{"lerp mid", Lerp(0.5, 2, 4), 3},
		{"exp mid", ExpInterp(0.5, 0, 4), 1},
		{"exp end", ExpInterp(1, 0, -1.35), -1.35},
		{"clamp lo", Clamp(-1, 0, 1), 0},
		{"approach", Approach(1, 0, 0.25), 0.75},
		{"approach overshoot", Approach(0.1, 0, 0.25), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !near(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVecRotateAndCross(t *testing.T) {
	v := V(1, 0, 0).RotateZ(math.Pi / 2)
	if !near(v.X, 0) || !near(v.Y, 1) {
		t.Errorf("RotateZ = %+v", v)
	}
	c := V(1, 0, 0).Cross(V(0, 1, 0))
	if c != V(0, 0, 1) {
		t.Errorf("Cross = %+v", c)
	}
	if n := V(3, 4, 0).Normalize(); !near(n.Len(), 1) {
		t.Errorf("Normalize len = %v", n.Len())
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero normalize = %+v", z)
	}
}

func TestMatTransforms(t *testing.T) {
	m := Translate(1, 2, 3).Mul(Scale(2, 2, 2))
	p, w := m.MulPoint(V(1, 1, 1))
	if w != 1 || p != V(3, 4, 5) {
		t.Errorf("translate*scale = %+v w=%v", p, w)
	}
	r, _ := RotateZ(math.Pi / 2).MulPoint(V(1, 0, 0))
	if !near(r.X, 0) || !near(r.Y, 1) {
		t.Errorf("RotateZ = %+v", r)
	}
	o, _ := Ortho(-2, 2, -1, 1, -1, 1).MulPoint(V(2, 1, 0))
	if !near(o.X, 1) || !near(o.Y, 1) {
		t.Errorf("Ortho corner = %+v", o)
	}
	view := LookAt(V(0, 0, 5), V(0, 0, 0), V(0, 1, 0))
	e, _ := view.MulPoint(V(0, 0, 0))
	if !near(e.Z, -5) {
		t.Errorf("LookAt origin depth = %v", e.Z)
	}
}
