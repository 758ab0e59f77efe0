// 指示: miu200521358
package minteractor

import (
	"math"
	"math/rand/v2"

	"github.com/miu200521358/mu_vrmanim/pkg/domain/body"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/model"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/rig"
)

// pcgStream はPCG乱数の系列番号。
const pcgStream = 0x9e3779b97f4a7c15

// PoseState は1ボーン分の姿勢補間状態を表す。角度はラジアン。
type PoseState struct {
	Current     mmath.Vec3
	Destination mmath.Vec3
	// Applied は直近にリグへ反映した可動域適用後の角度。
	Applied mmath.Vec3
}

// Converged は全軸で目標との差が epsilon 未満か判定する。
func (p *PoseState) Converged(epsilon float64) bool {
	diff := p.Destination.Subed(p.Current)
	return math.Abs(diff.X) < epsilon && math.Abs(diff.Y) < epsilon && math.Abs(diff.Z) < epsilon
}

// PhysicsBodyMirror はボーン1本分の補助点を表す。
type PhysicsBodyMirror struct {
	RestDistance float64
	AuxPosition  mmath.Vec3
}

// AnimationState は接続中リグ1体分のアニメーション状態を表す。
type AnimationState struct {
	Registry *rig.BoneRegistry
	Tree     *body.BodyTree
	Config   *AnimatorConfig

	Poses   map[humanoid.BoneName]*PoseState
	Mirrors map[string]*PhysicsBodyMirror

	PoseRequested   bool
	GravityVelocity float64
	WanderVelocity  float64
	TickCount       int
	Warnings        model.WarningSet

	retargeted map[humanoid.BoneName]struct{}
	source     *rand.PCG
}

// NewAnimationState はAnimationStateを生成する。
func NewAnimationState(registry *rig.BoneRegistry, tree *body.BodyTree, config *AnimatorConfig) *AnimationState {
	return &AnimationState{
		Registry:       registry,
		Tree:           tree,
		Config:         config,
		Poses:          map[humanoid.BoneName]*PoseState{},
		Mirrors:        map[string]*PhysicsBodyMirror{},
		WanderVelocity: -config.Wander.Speed,
		Warnings:       model.NewWarningSet(),
		retargeted:     map[humanoid.BoneName]struct{}{},
		source:         rand.NewPCG(config.Seed, pcgStream),
	}
}

// poseOf は姿勢状態を返す。未作成の場合はゼロ角度で作成する。
func (s *AnimationState) poseOf(name humanoid.BoneName) *PoseState {
	pose, ok := s.Poses[name]
	if !ok {
		pose = &PoseState{}
		s.Poses[name] = pose
	}
	return pose
}

// RootNode はBodyTreeのルートノードを返す。
func (s *AnimationState) RootNode() *body.BodyNode {
	rootID, ok := s.Tree.Root()
	if !ok {
		return nil
	}
	return s.Tree.Node(rootID)
}

// RootBone はBodyTreeのルートボーンを返す。
func (s *AnimationState) RootBone() rig.IBone {
	node := s.RootNode()
	if node == nil {
		return nil
	}
	return node.Bone
}

// TrackedBoneNames は可動域表にありリグにも存在するボーン名を返す。
func (s *AnimationState) TrackedBoneNames() []humanoid.BoneName {
	names := make([]humanoid.BoneName, 0)
	for _, name := range s.Config.Limits.Names() {
		if s.Registry.Has(name) {
			names = append(names, name)
		}
	}
	return names
}

// warn は警告IDを記録する。初回のみWARN、以降はDEBUGで出力する。
func (s *AnimationState) warn(warningID string, format string, params ...any) {
	if s.Warnings.Add(warningID) {
		logAnimWarn(format, params...)
		return
	}
	logAnimDebug(format, params...)
}
