// 指示: miu200521358
package mmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis は回転軸名を表す。
type Axis string

const (
	AXIS_X Axis = "x"
	AXIS_Y Axis = "y"
	AXIS_Z Axis = "z"
)

// Quaternion は回転を表す。
type Quaternion struct {
	mgl64.Quat
}

// NewQuaternion は単位クォータニオンを生成する。
func NewQuaternion() Quaternion {
	return Quaternion{Quat: mgl64.QuatIdent()}
}

// NewQuaternionByValues は成分(x, y, z, w)から生成する。
func NewQuaternionByValues(x, y, z, w float64) Quaternion {
	return Quaternion{Quat: mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}}
}

// NewQuaternionFromAxisAngle は軸と角度(ラジアン)から生成する。
func NewQuaternionFromAxisAngle(axis Vec3, radians float64) Quaternion {
	return Quaternion{Quat: mgl64.QuatRotate(radians, axis.Normalized().ToMgl())}
}

// NewQuaternionFromAxisName は軸名と角度(ラジアン)から生成する。
func NewQuaternionFromAxisName(axis Axis, radians float64) Quaternion {
	switch axis {
	case AXIS_X:
		return NewQuaternionFromAxisAngle(UNIT_X_VEC3, radians)
	case AXIS_Y:
		return NewQuaternionFromAxisAngle(UNIT_Y_VEC3, radians)
	default:
		return NewQuaternionFromAxisAngle(UNIT_Z_VEC3, radians)
	}
}

// Muled は積(q * other)を返す。otherが先に適用される。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Quat: q.Quat.Mul(other.Quat)}
}

// Normalized は正規化結果を返す。
func (q Quaternion) Normalized() Quaternion {
	return Quaternion{Quat: q.Quat.Normalize()}
}

// MulVec3 はベクトルを回転させる。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	return NewVec3FromMgl(q.Quat.Rotate(v.ToMgl()))
}

// NearEquals は同じ姿勢を表すか判定する(符号反転も同一とみなす)。
func (q Quaternion) NearEquals(other Quaternion, epsilon float64) bool {
	return q.Quat.OrientationEqualThreshold(other.Quat, epsilon)
}

// RadToDeg はラジアンを度へ変換する。
func RadToDeg(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// Clamp は値をmin-maxへ収める。
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
