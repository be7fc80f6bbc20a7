package vec

import (
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -4)

	if got := a.Add(b); got != New(4, -2) {
		t.Errorf("Add failed: got %v", got)
	}
	if got := a.Sub(b); got != New(-2, 6) {
		t.Errorf("Sub failed: got %v", got)
	}
	if got := a.Scale(2); got != New(2, 4) {
		t.Errorf("Scale failed: got %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot failed: got %v", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross failed: got %v", got)
	}
}

func TestOperationsDoNotMutate(t *testing.T) {
	a := New(1, 2)
	b := New(3, 4)
	a.Add(b)
	a.Sub(b)
	a.Scale(5)
	a.Normalized()
	if a != New(1, 2) || b != New(3, 4) {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestNorm(t *testing.T) {
	tests := []struct {
		v        Vec2
		expected float64
	}{
		{New(3, 4), 5},
		{New(1, 0), 1},
		{New(0, 0), 0},
		{New(-3, -4), 5},
	}
	for _, tt := range tests {
		if got := tt.v.Norm(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Norm(%v) = %v, want %v", tt.v, got, tt.expected)
		}
		if got := tt.v.NormSq(); math.Abs(got-tt.expected*tt.expected) > 1e-12 {
			t.Errorf("NormSq(%v) = %v, want %v", tt.v, got, tt.expected*tt.expected)
		}
	}
}

func TestNormalized(t *testing.T) {
	n := New(3, 4).Normalized()
	if math.Abs(n.Norm()-1) > 1e-12 {
		t.Errorf("expected unit vector, got %v", n)
	}

	// Zero vector normalizes to zero, not an error.
	if got := Zero.Normalized(); got != Zero {
		t.Errorf("Normalized(zero) = %v, want zero", got)
	}
}

func TestDistSymmetry(t *testing.T) {
	a := New(1, 2)
	b := New(-4, 7)

	if Dist(a, b) != Dist(b, a) {
		t.Error("Dist is not symmetric")
	}
	if DistSq(a, b) != DistSq(b, a) {
		t.Error("DistSq is not symmetric")
	}
	if math.Abs(Dist(a, b)-math.Sqrt(DistSq(a, b))) > 1e-12 {
		t.Error("Dist disagrees with DistSq")
	}
	if got := Dist(New(0, 0), New(3, 4)); math.Abs(got-5) > 1e-12 {
		t.Errorf("Dist = %v, want 5", got)
	}
}
