// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/limit"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/rig"
)

// ComposeRotation は可動域を適用した角度から軸順序付きの回転を合成する。
// 主軸 x は Ry·Rz·Rx、主軸 y は Rx·Rz·Ry の順で掛ける。
func ComposeRotation(jointLimit limit.JointLimit, angles mmath.Vec3) (mmath.Quaternion, mmath.Vec3) {
	clamped := jointLimit.Clamp(angles)
	qx := mmath.NewQuaternionFromAxisName(mmath.AXIS_X, clamped.X)
	qy := mmath.NewQuaternionFromAxisName(mmath.AXIS_Y, clamped.Y)
	qz := mmath.NewQuaternionFromAxisName(mmath.AXIS_Z, clamped.Z)

	if jointLimit.PrimaryAxis == mmath.AXIS_X {
		return qy.Muled(qz).Muled(qx).Normalized(), clamped
	}
	return qx.Muled(qz).Muled(qy).Normalized(), clamped
}

// applyRotation は合成した回転でボーンのローカル回転を置き換え、適用角度を返す。
func applyRotation(bone rig.IBone, jointLimit limit.JointLimit, angles mmath.Vec3) mmath.Vec3 {
	rotation, clamped := ComposeRotation(jointLimit, angles)
	bone.SetRotation(rotation)
	return clamped
}

// rotateOne は指定ボーン1本へ角度を適用する。
func rotateOne(
	registry *rig.BoneRegistry,
	limits *limit.JointLimitTable,
	name humanoid.BoneName,
	angles mmath.Vec3,
) (mmath.Vec3, error) {
	jointLimit, ok := limits.Get(name)
	if !ok {
		return mmath.ZERO_VEC3, fmt.Errorf("可動域が設定されていないボーンです: %s", name)
	}
	bone, ok := registry.Get(name)
	if !ok {
		return mmath.ZERO_VEC3, fmt.Errorf("リグにボーンがありません: %s", name)
	}
	return applyRotation(bone, jointLimit, angles), nil
}
