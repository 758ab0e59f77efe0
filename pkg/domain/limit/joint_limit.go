// 指示: miu200521358
// Package limit は標準ボーンごとの回転可動域を提供する。
package limit

import (
	"fmt"
	"math"

	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
)

// Range は回転可動域をπ単位で表す。
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// NewRange はRangeを生成する。
func NewRange(min, max float64) Range {
	return Range{Min: min, Max: max}
}

// MinRadians は下限をラジアンで返す。
func (r Range) MinRadians() float64 {
	return r.Min * math.Pi
}

// MaxRadians は上限をラジアンで返す。
func (r Range) MaxRadians() float64 {
	return r.Max * math.Pi
}

// Clamp はラジアン値を可動域へ収める。
func (r Range) Clamp(radians float64) float64 {
	return mmath.Clamp(radians, r.MinRadians(), r.MaxRadians())
}

// Contains はラジアン値が可動域内(境界含む)か判定する。
func (r Range) Contains(radians float64) bool {
	return radians >= r.MinRadians() && radians <= r.MaxRadians()
}

// Validate は下限が上限以下か検証する。
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return fmt.Errorf("可動域に NaN が含まれています: [%v, %v]", r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("可動域の下限が上限を超えています: [%v, %v]", r.Min, r.Max)
	}
	return nil
}

// JointLimit は1ボーン分の可動域と主軸を表す。
type JointLimit struct {
	PrimaryAxis mmath.Axis `yaml:"primaryAxis" json:"primaryAxis"`
	X           Range      `yaml:"x" json:"x"`
	Y           Range      `yaml:"y" json:"y"`
	Z           Range      `yaml:"z" json:"z"`
}

// RangeOf は軸ごとの可動域を返す。
func (l JointLimit) RangeOf(axis mmath.Axis) Range {
	switch axis {
	case mmath.AXIS_X:
		return l.X
	case mmath.AXIS_Y:
		return l.Y
	default:
		return l.Z
	}
}

// Clamp は各軸の角度を可動域へ収める。
func (l JointLimit) Clamp(angles mmath.Vec3) mmath.Vec3 {
	return mmath.NewVec3(
		l.X.Clamp(angles.X),
		l.Y.Clamp(angles.Y),
		l.Z.Clamp(angles.Z),
	)
}

// Contains は全軸の角度が可動域内か判定する。
func (l JointLimit) Contains(angles mmath.Vec3) bool {
	return l.X.Contains(angles.X) && l.Y.Contains(angles.Y) && l.Z.Contains(angles.Z)
}

// Validate は主軸と各軸の可動域を検証する。
func (l JointLimit) Validate() error {
	if l.PrimaryAxis != mmath.AXIS_X && l.PrimaryAxis != mmath.AXIS_Y {
		return fmt.Errorf("主軸は x または y のみ指定できます: %q", l.PrimaryAxis)
	}
	for _, axis := range []mmath.Axis{mmath.AXIS_X, mmath.AXIS_Y, mmath.AXIS_Z} {
		if err := l.RangeOf(axis).Validate(); err != nil {
			return fmt.Errorf("%s軸: %w", axis, err)
		}
	}
	return nil
}
