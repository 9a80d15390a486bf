package core

import (
	"math"
	"testing"
)

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	if got := r.At(1.5); !got.Equals(NewVec3(1, 2, 0)) {
		t.Errorf("Expected (1,2,0), got %v", got)
	}
	if r.TMin != 0 || !math.IsInf(r.TMax, 1) {
		t.Errorf("Expected [0, +Inf), got [%v, %v]", r.TMin, r.TMax)
	}
}

func TestRay_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		ray   Ray
		valid bool
	}{
		{"Default interval", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), true},
		{"Zero direction", NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 0)), false},
		{"Empty interval", NewRayInterval(NewVec3(0, 0, 0), NewVec3(1, 0, 0), 2, 2), false},
		{"Inverted interval", NewRayInterval(NewVec3(0, 0, 0), NewVec3(1, 0, 0), 3, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ray.IsValid(); got != tt.valid {
				t.Errorf("Expected %v, got %v", tt.valid, got)
			}
		})
	}
}

func TestRay_NormalizedDirection(t *testing.T) {
	r := NewRayInterval(NewVec3(0, 0, 0), NewVec3(0, 3, 4), 1, 2)
	n := r.NormalizedDirection()

	if math.Abs(n.Direction.Length()-1) > 1e-12 {
		t.Errorf("Expected unit direction, got %v", n.Direction)
	}
	// Same segment of space, measured in the new units
	if !n.At(n.TMin).ApproxEquals(r.At(r.TMin), 1e-12) || !n.At(n.TMax).ApproxEquals(r.At(r.TMax), 1e-12) {
		t.Errorf("Interval endpoints moved: [%v, %v] vs [%v, %v]",
			n.At(n.TMin), n.At(n.TMax), r.At(r.TMin), r.At(r.TMax))
	}
}
