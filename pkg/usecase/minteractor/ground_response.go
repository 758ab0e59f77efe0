// 指示: miu200521358
package minteractor

import (
	"math"

	"github.com/miu200521358/mu_vrmanim/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/model"
)

// notPenetrating は接地判定対象が地面下にない場合の最小高さ。
const notPenetrating = 1.0

// GroundResponse はルートボーンへ簡易的な落下と接地補正を行う。
type GroundResponse struct {
	gravityAccel float64
}

// GroundResult は接地処理1回分の結果を表す。
type GroundResult struct {
	Fell bool
	Push float64
}

// NewGroundResponse はGroundResponseを生成する。
func NewGroundResponse(config *AnimatorConfig) *GroundResponse {
	return &GroundResponse{gravityAccel: config.GravityAccel}
}

// Update は落下、接地補正の順に2段階で処理する。
// 落下判定はルート移動前の高さで行うため、補正は1tick遅れて効く。
func (g *GroundResponse) Update(state *AnimationState) GroundResult {
	result := GroundResult{}
	root := state.RootBone()
	if root == nil {
		return result
	}
	minHeight, sampled := g.sampleMinHeight(state)
	if !sampled {
		state.warn(model.RigWarningGroundBoneMissing, messages.LogWarnGroundBoneMissing)
		return result
	}

	if minHeight > 0 {
		state.GravityVelocity -= g.gravityAccel
		position := root.Position()
		position.Y += state.GravityVelocity
		root.SetPosition(position)
		result.Fell = true
		logAnimDebug(messages.LogGroundFall, state.TickCount, state.GravityVelocity, position.Y)
	}

	minHeight, _ = g.sampleMinHeight(state)
	if minHeight < 0 {
		position := root.Position()
		position.Y += -minHeight
		root.SetPosition(position)
		state.GravityVelocity = 0
		result.Push = -minHeight
		logAnimDebug(messages.LogGroundClamp, state.TickCount, -minHeight, position.Y)
	}
	return result
}

// sampleMinHeight は可動域表のボーンのうち高さ0以下の最小値を返す。
// 該当がなければ notPenetrating を返す。対象ボーンが1本もない場合は false を返す。
func (g *GroundResponse) sampleMinHeight(state *AnimationState) (float64, bool) {
	minHeight := math.Inf(1)
	sampled := false
	for _, name := range state.Config.Limits.Names() {
		bone, ok := state.Registry.Get(name)
		if !ok {
			continue
		}
		sampled = true
		if height := bone.WorldPosition().Y; height <= 0 && height < minHeight {
			minHeight = height
		}
	}
	if math.IsInf(minHeight, 1) {
		return notPenetrating, sampled
	}
	return minHeight, sampled
}
