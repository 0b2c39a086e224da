package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	expectedLength := 1.0
	actualLength := normalized.Length()

	if math.Abs(actualLength-expectedLength) > 1e-10 {
		t.Errorf("Normalize failed: expected length %v, got %v", expectedLength, actualLength)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	result := NewVector3(0, 0, 0).Normalize()

	expected := NewVector3(0, 0, 0)
	if result != expected {
		t.Errorf("Normalize zero failed: expected %v, got %v", expected, result)
	}
	if math.IsNaN(result.X) || math.IsNaN(result.Y) || math.IsNaN(result.Z) {
		t.Errorf("Normalize zero produced NaN: %v", result)
	}
}

func TestVector3NormalizeUnitLength(t *testing.T) {
	vectors := []Vector3{
		NewVector3(1, 0, 0),
		NewVector3(-3, 7, 2),
		NewVector3(1e-9, 0, 0),
		NewVector3(1e9, -1e9, 5),
	}

	for _, v := range vectors {
		length := v.Normalize().Length()
		if math.Abs(length-1) > 1e-10 {
			t.Errorf("Normalize %v failed: expected length 1, got %v", v, length)
		}
	}
}

func TestVector3CrossAnticommutative(t *testing.T) {
	pairs := [][2]Vector3{
		{NewVector3(1, 2, 3), NewVector3(4, 5, 6)},
		{NewVector3(-1, 0.5, 2), NewVector3(3, -2, 0)},
		{NewVector3(0, 0, 1), NewVector3(0, 1, 0)},
	}

	for _, p := range pairs {
		ab := p[0].Cross(p[1])
		ba := p[1].Cross(p[0]).Negate()
		if !ab.ApproxEqual(ba, 1e-12) {
			t.Errorf("Cross anticommutative failed: %v x %v = %v, -(b x a) = %v", p[0], p[1], ab, ba)
		}
		if p[0].Dot(p[1]) != p[1].Dot(p[0]) {
			t.Errorf("Dot commutative failed for %v, %v", p[0], p[1])
		}
	}
}

func TestVector3ArrayRoundTrip(t *testing.T) {
	v := NewVector3(1.5, -2, 3)

	result := Vector3FromArray(v.ToArray())
	if result != v {
		t.Errorf("Array round trip failed: expected %v, got %v", v, result)
	}

	if _, err := Vector3FromSlice([]float64{1, 2}); err == nil {
		t.Errorf("Vector3FromSlice should reject 2 components")
	}
}

func TestVector3Immutable(t *testing.T) {
	v := NewVector3(1, 2, 3)
	_ = v.Add(NewVector3(1, 1, 1))
	_ = v.Mul(10)
	_ = v.Normalize()

	expected := NewVector3(1, 2, 3)
	if v != expected {
		t.Errorf("Vector mutated: expected %v, got %v", expected, v)
	}
	if v.Clone() != v {
		t.Errorf("Clone failed: expected %v, got %v", v, v.Clone())
	}
}
