// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_vrmanim/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/limit"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/model"
	"gonum.org/v1/gonum/stat/distuv"
)

// PoseController は可動域付きボーンを目標角度へ補間し、収束後に目標を引き直す。
type PoseController struct {
	gain      float64
	epsilon   float64
	halfRange float64
}

// NewPoseController はPoseControllerを生成する。
func NewPoseController(config *AnimatorConfig) *PoseController {
	return &PoseController{
		gain:      config.Gain,
		epsilon:   config.ConvergenceEpsilon,
		halfRange: config.SampleHalfRange,
	}
}

// Update は1tick分の姿勢更新を行い、目標を引き直したボーン名を返す。
func (c *PoseController) Update(state *AnimationState) []humanoid.BoneName {
	retargeted := make([]humanoid.BoneName, 0)
	tracked := 0
	for _, name := range state.Config.Limits.Names() {
		bone, ok := state.Registry.Get(name)
		if !ok {
			state.warn(model.RigWarningLimitBoneNotInRig, messages.LogWarnLimitBoneNotInRig, name)
			continue
		}
		jointLimit, _ := state.Config.Limits.Get(name)
		tracked++

		pose := state.poseOf(name)
		pose.Current = pose.Current.Added(pose.Destination.Subed(pose.Current).MuledScalar(c.gain))
		pose.Applied = applyRotation(bone, jointLimit, pose.Current)

		if !state.PoseRequested || !pose.Converged(c.epsilon) {
			continue
		}
		if _, done := state.retargeted[name]; done {
			continue
		}
		pose.Destination = c.sampleDestination(state, jointLimit)
		state.retargeted[name] = struct{}{}
		retargeted = append(retargeted, name)
		logAnimDebug(messages.LogPoseRetargeted, name, pose.Destination)
	}

	if state.PoseRequested && len(state.retargeted) >= tracked {
		logAnimDebug(messages.LogPoseRequestCleared, state.TickCount, len(state.retargeted))
		state.PoseRequested = false
		state.retargeted = map[humanoid.BoneName]struct{}{}
	}
	return retargeted
}

// sampleDestination は固定幅の一様分布から抽選した角度を可動域で切り詰める。
// 狭い可動域では境界値に偏るが、棄却による再抽選は行わない。
func (c *PoseController) sampleDestination(state *AnimationState, jointLimit limit.JointLimit) mmath.Vec3 {
	uniform := distuv.Uniform{Min: -c.halfRange, Max: c.halfRange, Src: state.source}
	return mmath.NewVec3(
		jointLimit.X.Clamp(uniform.Rand()),
		jointLimit.Y.Clamp(uniform.Rand()),
		jointLimit.Z.Clamp(uniform.Rand()),
	)
}
