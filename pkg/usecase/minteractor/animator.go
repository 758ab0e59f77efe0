// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_vrmanim/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/animation"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/body"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/model"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/rig"
	"github.com/miu200521358/mu_vrmanim/pkg/usecase/port/moutput"
)

// RigAnimatorUsecaseDeps はリグアニメーションユースケースの依存を表す。
type RigAnimatorUsecaseDeps struct {
	RigReader    moutput.IRigReader
	ConfigReader moutput.IConfigReader
	Config       *AnimatorConfig
}

// RigAnimatorUsecase はリグの接続、tick駆動、切断をまとめたユースケースを表す。
type RigAnimatorUsecase struct {
	rigReader    moutput.IRigReader
	configReader moutput.IConfigReader
	config       *AnimatorConfig

	state          *AnimationState
	poseController *PoseController
	ground         *GroundResponse
	mirror         *PhysicsMirror
	wander         *RootWander
}

// NewRigAnimatorUsecase はリグアニメーションユースケースを生成する。
func NewRigAnimatorUsecase(deps RigAnimatorUsecaseDeps) *RigAnimatorUsecase {
	config := deps.Config
	if config == nil {
		config = animation.DefaultAnimatorConfig()
	}
	return &RigAnimatorUsecase{
		rigReader:    deps.RigReader,
		configReader: deps.ConfigReader,
		config:       config,
	}
}

// Config は次回接続時に使う設定を返す。
func (uc *RigAnimatorUsecase) Config() *AnimatorConfig {
	return uc.config
}

// SetConfig は次回接続時に使う設定を差し替える。接続中の状態には影響しない。
func (uc *RigAnimatorUsecase) SetConfig(config *AnimatorConfig) {
	if config == nil {
		return
	}
	uc.config = config
}

// Attach はリグからBodyTreeを構築してアニメーション状態を作成する。
// 同じリグの再接続は何もしない。別リグの場合は先に切断する。
func (uc *RigAnimatorUsecase) Attach(registry *rig.BoneRegistry) error {
	if registry == nil {
		return fmt.Errorf("接続するリグが指定されていません")
	}
	if uc.state != nil && uc.state.Registry == registry {
		logAnimInfo(messages.LogAttachSkipped)
		return nil
	}
	if err := uc.config.Validate(); err != nil {
		return fmt.Errorf("アニメーション設定が不正です: %w", err)
	}
	config, err := uc.config.Clone()
	if err != nil {
		return err
	}

	if uc.state != nil {
		uc.Detach()
	}
	tree, err := body.NewHierarchyBuilder(config.RequiredBones).Build(registry)
	if err != nil {
		logAnimWarn(messages.LogAttachFailed, err)
		return fmt.Errorf("ボーン階層の構築に失敗しました: %w", err)
	}

	state := NewAnimationState(registry, tree, config)
	collectLimitWarnings(state)
	applyPlacement(state)

	uc.state = state
	uc.poseController = NewPoseController(config)
	uc.ground = NewGroundResponse(config)
	uc.mirror = NewPhysicsMirror()
	uc.wander = NewRootWander(config)

	rootName := ""
	if root := state.RootNode(); root != nil {
		rootName = root.RawName
	}
	logAnimInfo(messages.LogAttachSuccess, rootName, tree.NodeCount(), len(state.TrackedBoneNames()))
	return nil
}

// collectLimitWarnings は可動域表とBodyTreeの差分を警告として記録する。
func collectLimitWarnings(state *AnimationState) {
	nodes := state.Tree.NodesByCanonicalName()
	names := make([]humanoid.BoneName, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	humanoid.SortBoneNames(names)
	for _, name := range names {
		if !state.Config.Limits.Has(name) {
			state.warn(model.RigWarningMissingLimitEntry, messages.LogWarnMissingLimitEntry, name)
		}
	}
}

// Detach はアニメーション状態を破棄する。
func (uc *RigAnimatorUsecase) Detach() {
	if uc.state == nil {
		return
	}
	logAnimInfo(messages.LogDetach, uc.state.TickCount)
	uc.state = nil
	uc.poseController = nil
	uc.ground = nil
	uc.mirror = nil
	uc.wander = nil
}

// IsAttached はリグ接続中か判定する。
func (uc *RigAnimatorUsecase) IsAttached() bool {
	return uc.state != nil
}

// State は接続中のアニメーション状態を返す。
func (uc *RigAnimatorUsecase) State() *AnimationState {
	return uc.state
}

// RequestNewPose は新しい姿勢への切り替えを要求する。
func (uc *RigAnimatorUsecase) RequestNewPose() {
	if uc.state == nil {
		return
	}
	uc.state.PoseRequested = true
	uc.state.retargeted = map[humanoid.BoneName]struct{}{}
	logAnimDebug(messages.LogPoseRequested, uc.state.TickCount)
}

// RotateOne は指定ボーンへ角度(ラジアン)を直接適用し、可動域適用後の角度を返す。
func (uc *RigAnimatorUsecase) RotateOne(name humanoid.BoneName, x, y, z float64) (mmath.Vec3, error) {
	if uc.state == nil {
		return mmath.ZERO_VEC3, fmt.Errorf("リグが接続されていません")
	}
	return rotateOne(uc.state.Registry, uc.state.Config.Limits, name, mmath.NewVec3(x, y, z))
}

// Tick は1フレーム分の処理を行う。未接続の場合は空の結果を返す。
func (uc *RigAnimatorUsecase) Tick() TickReport {
	state := uc.state
	if state == nil {
		return TickReport{}
	}
	state.TickCount++
	report := TickReport{Tick: state.TickCount, Attached: true}

	uc.wander.Update(state)
	for _, name := range uc.poseController.Update(state) {
		report.Retargeted = append(report.Retargeted, name.String())
	}
	ground := uc.ground.Update(state)
	mirror := uc.mirror.Update(state)

	if root := state.RootNode(); root != nil {
		report.RootName = root.RawName
		report.RootPosition = root.Bone.Position()
	}
	if hips, ok := state.Registry.Get(humanoid.HIPS); ok {
		report.HipsPosition = hips.Position()
	}
	report.GravityVelocity = state.GravityVelocity
	report.Fell = ground.Fell
	report.GroundPush = ground.Push
	report.PoseRequested = state.PoseRequested
	report.MirrorCount = len(state.Mirrors)
	report.SkippedEdges = mirror.SkippedEdges
	report.Diagnostics = mirror.Diagnostics
	return report
}
