// 指示: miu200521358
// Package mmath はリグ計算で使うベクトル・クォータニオンを提供する。
package mmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

var (
	// ZERO_VEC3 はゼロベクトル。
	ZERO_VEC3 = Vec3{}
	// UNIT_X_VEC3 はX軸単位ベクトル。
	UNIT_X_VEC3 = Vec3{Vec: r3.Vec{X: 1}}
	// UNIT_Y_VEC3 はY軸単位ベクトル。
	UNIT_Y_VEC3 = Vec3{Vec: r3.Vec{Y: 1}}
	// UNIT_Z_VEC3 はZ軸単位ベクトル。
	UNIT_Z_VEC3 = Vec3{Vec: r3.Vec{Z: 1}}
)

// NewVec3 は成分からVec3を生成する。
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MuledScalar はスカラー倍を返す。
func (v Vec3) MuledScalar(s float64) Vec3 {
	return Vec3{Vec: r3.Scale(s, v.Vec)}
}

// Length は長さを返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// Distance は2点間の距離を返す。
func (v Vec3) Distance(other Vec3) float64 {
	return r3.Norm(r3.Sub(v.Vec, other.Vec))
}

// Normalized は正規化ベクトルを返す。長さ0の場合はゼロベクトルを返す。
func (v Vec3) Normalized() Vec3 {
	if r3.Norm2(v.Vec) == 0 {
		return ZERO_VEC3
	}
	return Vec3{Vec: r3.Unit(v.Vec)}
}

// IsZero は長さがepsilon以下か判定する。
func (v Vec3) IsZero(epsilon float64) bool {
	return v.Length() <= epsilon
}

// NearEquals は各成分がepsilon以内で一致するか判定する。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}

// Component は軸名に対応する成分を返す。
func (v Vec3) Component(axis Axis) float64 {
	switch axis {
	case AXIS_X:
		return v.X
	case AXIS_Y:
		return v.Y
	default:
		return v.Z
	}
}

// ToMgl はmathglのベクトルへ変換する。
func (v Vec3) ToMgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// NewVec3FromMgl はmathglのベクトルから生成する。
func NewVec3FromMgl(v mgl64.Vec3) Vec3 {
	return NewVec3(v[0], v[1], v[2])
}

// String は表示用文字列を返す。
func (v Vec3) String() string {
	return fmt.Sprintf("[x=%.5f, y=%.5f, z=%.5f]", v.X, v.Y, v.Z)
}
