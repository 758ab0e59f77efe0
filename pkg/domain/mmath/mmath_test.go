// 指示: miu200521358
package mmath

import (
	"math"
	"testing"
)

func TestVec3NormalizedZeroLengthReturnsZero(t *testing.T) {
	got := ZERO_VEC3.Normalized()
	if !got.NearEquals(ZERO_VEC3, 0) {
		t.Fatalf("zero vector should stay zero: got=%v", got)
	}
	unit := NewVec3(3, 0, 4).Normalized()
	if math.Abs(unit.Length()-1.0) > 1e-12 {
		t.Fatalf("normalized length mismatch: got=%f", unit.Length())
	}
}

func TestVec3Distance(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(1, 5, 7)
	if got := a.Distance(b); math.Abs(got-5.0) > 1e-12 {
		t.Fatalf("distance mismatch: got=%f want=5", got)
	}
}

func TestQuaternionFromAxisNameRotatesVector(t *testing.T) {
	q := NewQuaternionFromAxisName(AXIS_Y, math.Pi/2)
	got := q.MulVec3(UNIT_X_VEC3)
	if !got.NearEquals(NewVec3(0, 0, -1), 1e-9) {
		t.Fatalf("rotate x by y+90 mismatch: got=%v", got)
	}
}

func TestQuaternionMuledAppliesRightOperandFirst(t *testing.T) {
	qy := NewQuaternionFromAxisName(AXIS_Y, math.Pi/2)
	qz := NewQuaternionFromAxisName(AXIS_Z, math.Pi/2)

	// qy * qz: Z回転の後にY回転
	got := qy.Muled(qz).MulVec3(UNIT_X_VEC3)
	want := qy.MulVec3(qz.MulVec3(UNIT_X_VEC3))
	if !got.NearEquals(want, 1e-9) {
		t.Fatalf("composition order mismatch: got=%v want=%v", got, want)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, -1, 1) != 1 || Clamp(-5, -1, 1) != -1 || Clamp(0.5, -1, 1) != 0.5 {
		t.Fatalf("clamp mismatch")
	}
}
