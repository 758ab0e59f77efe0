// 指示: miu200521358
package minteractor

import (
	"math"

	"github.com/miu200521358/mu_vrmanim/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
)

// applyPlacement は接続時に hips の向きと x 位置を設定する。
func applyPlacement(state *AnimationState) {
	placement := state.Config.Placement
	hips, ok := state.Registry.Get(humanoid.HIPS)
	if !placement.Enabled || !ok {
		return
	}
	hips.SetRotation(mmath.NewQuaternionFromAxisName(mmath.AXIS_Y, placement.FacingYaw*math.Pi))
	position := hips.Position()
	position.X = placement.OffsetX
	hips.SetPosition(position)
}

// RootWander はルートを x 方向へ往復させる。
type RootWander struct {
	enabled bool
	minX    float64
	maxX    float64
}

// NewRootWander はRootWanderを生成する。
func NewRootWander(config *AnimatorConfig) *RootWander {
	return &RootWander{
		enabled: config.Wander.Enabled,
		minX:    config.Wander.MinX,
		maxX:    config.Wander.MaxX,
	}
}

// Update はルートを移動し、範囲外へ出たら次tickから向きを反転する。
func (w *RootWander) Update(state *AnimationState) {
	root := state.RootBone()
	if !w.enabled || root == nil {
		return
	}
	position := root.Position()
	position.X += state.WanderVelocity
	root.SetPosition(position)
	if position.X < w.minX || position.X > w.maxX {
		state.WanderVelocity = -state.WanderVelocity
		logAnimDebug(messages.LogWanderTurn, state.TickCount, position.X, state.WanderVelocity)
	}
}
