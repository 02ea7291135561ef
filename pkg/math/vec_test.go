package math

import (
	gomath "math"
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 0}
	got := v.Length()
	want := 5.0
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999999 || l > 1.000001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", zero)
	}
}

func TestVec3SetLength(t *testing.T) {
	v := Vec3{0, 2, 0}.SetLength(7)
	want := Vec3{0, 7, 0}
	if v.Distance(want) > 1e-9 {
		t.Errorf("Vec3.SetLength(7) = %v, want %v", v, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}
	got := a.Lerp(b, 0.5)
	want := Vec3{5, 10, 15}
	if got.Distance(want) > 1e-9 {
		t.Errorf("Vec3.Lerp(0.5) = %v, want %v", got, want)
	}
}

func TestVec3ApplyAxisAngle(t *testing.T) {
	// Rotating X about Z by 90 degrees gives Y.
	got := Vec3{1, 0, 0}.ApplyAxisAngle(Vec3{0, 0, 1}, gomath.Pi/2)
	want := Vec3{0, 1, 0}
	if got.Distance(want) > 1e-9 {
		t.Errorf("ApplyAxisAngle(Z, 90deg) = %v, want %v", got, want)
	}
}
