// 指示: miu200521358
package minteractor

import (
	"io"
	"testing"

	"github.com/miu200521358/mu_vrmanim/pkg/domain/animation"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/body"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/rig"
	"github.com/miu200521358/mu_vrmanim/pkg/shared/logging"
	"go.uber.org/zap/zapcore"
)

// fixtureBone はテスト用リグのボーン定義を表す。
type fixtureBone struct {
	canonical humanoid.BoneName
	raw       string
	parent    string
	position  mmath.Vec3
}

// humanoidFixtureBones はVRoid風の骨格を親から順に並べたもの。
var humanoidFixtureBones = []fixtureBone{
	{humanoid.HIPS, "J_Bip_C_Hips", "", mmath.NewVec3(0, 1, 0)},
	{humanoid.SPINE, "J_Bip_C_Spine", "J_Bip_C_Hips", mmath.NewVec3(0, 0.1, 0)},
	{humanoid.CHEST, "J_Bip_C_Chest", "J_Bip_C_Spine", mmath.NewVec3(0, 0.15, 0)},
	{humanoid.NECK, "J_Bip_C_Neck", "J_Bip_C_Chest", mmath.NewVec3(0, 0.2, 0)},
	{humanoid.HEAD, "J_Bip_C_Head", "J_Bip_C_Neck", mmath.NewVec3(0, 0.1, 0)},
	{humanoid.LEFT_UPPER_ARM, "J_Bip_L_UpperArm", "J_Bip_C_Chest", mmath.NewVec3(0.2, 0.15, 0)},
	{humanoid.LEFT_LOWER_ARM, "J_Bip_L_LowerArm", "J_Bip_L_UpperArm", mmath.NewVec3(0.25, 0, 0)},
	{humanoid.LEFT_HAND, "J_Bip_L_Hand", "J_Bip_L_LowerArm", mmath.NewVec3(0.2, 0, 0)},
	{humanoid.RIGHT_UPPER_ARM, "J_Bip_R_UpperArm", "J_Bip_C_Chest", mmath.NewVec3(-0.2, 0.15, 0)},
	{humanoid.RIGHT_LOWER_ARM, "J_Bip_R_LowerArm", "J_Bip_R_UpperArm", mmath.NewVec3(-0.25, 0, 0)},
	{humanoid.RIGHT_HAND, "J_Bip_R_Hand", "J_Bip_R_LowerArm", mmath.NewVec3(-0.2, 0, 0)},
	{humanoid.LEFT_UPPER_LEG, "J_Bip_L_UpperLeg", "J_Bip_C_Hips", mmath.NewVec3(0.1, -0.05, 0)},
	{humanoid.LEFT_LOWER_LEG, "J_Bip_L_LowerLeg", "J_Bip_L_UpperLeg", mmath.NewVec3(0, -0.4, 0)},
	{humanoid.LEFT_FOOT, "J_Bip_L_Foot", "J_Bip_L_LowerLeg", mmath.NewVec3(0, -0.45, 0)},
	{humanoid.RIGHT_UPPER_LEG, "J_Bip_R_UpperLeg", "J_Bip_C_Hips", mmath.NewVec3(-0.1, -0.05, 0)},
	{humanoid.RIGHT_LOWER_LEG, "J_Bip_R_LowerLeg", "J_Bip_R_UpperLeg", mmath.NewVec3(0, -0.4, 0)},
	{humanoid.RIGHT_FOOT, "J_Bip_R_Foot", "J_Bip_R_LowerLeg", mmath.NewVec3(0, -0.45, 0)},
}

// reparentFixture はボーン定義を複製し、指定ボーンの親を差し替える。
func reparentFixture(bones []fixtureBone, raw string, parent string) []fixtureBone {
	copied := make([]fixtureBone, len(bones))
	copy(copied, bones)
	for i := range copied {
		if copied[i].raw == raw {
			copied[i].parent = parent
		}
	}
	return copied
}

// newRigFixture はボーン定義からSkeletonとBoneRegistryを生成する。
func newRigFixture(t *testing.T, bones []fixtureBone) (*rig.Skeleton, *rig.BoneRegistry) {
	t.Helper()
	skeleton := rig.NewSkeleton()
	registry := rig.NewBoneRegistry()
	for _, bone := range bones {
		created, err := skeleton.AddBone(bone.raw, bone.parent, bone.position, mmath.NewQuaternion())
		if err != nil {
			t.Fatalf("add bone failed: %v", err)
		}
		if bone.canonical == "" {
			continue
		}
		if err := registry.Register(bone.canonical, created); err != nil {
			t.Fatalf("register failed: %v", err)
		}
	}
	return skeleton, registry
}

// newHumanoidFixture は標準的な人型リグを生成する。
func newHumanoidFixture(t *testing.T) (*rig.Skeleton, *rig.BoneRegistry) {
	t.Helper()
	return newRigFixture(t, humanoidFixtureBones)
}

// newTestState はリグからアニメーション状態を生成する。config が nil の場合は既定設定を使う。
func newTestState(t *testing.T, registry *rig.BoneRegistry, config *AnimatorConfig) *AnimationState {
	t.Helper()
	if config == nil {
		config = animation.DefaultAnimatorConfig()
	}
	tree, err := body.NewHierarchyBuilder(config.RequiredBones).Build(registry)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return NewAnimationState(registry, tree, config)
}

// mustBone はBoneRegistryからボーンを取得する。
func mustBone(t *testing.T, registry *rig.BoneRegistry, name humanoid.BoneName) rig.IBone {
	t.Helper()
	bone, ok := registry.Get(name)
	if !ok {
		t.Fatalf("bone missing: %s", name)
	}
	return bone
}

// useBufferedLogger はテスト中だけDEBUGレベルのロガーへ差し替える。
func useBufferedLogger(t *testing.T) *logging.Logger {
	t.Helper()
	logger := logging.NewLogger(zapcore.AddSync(io.Discard))
	logger.SetLevel(logging.LOG_LEVEL_DEBUG)
	logger.MessageBuffer().Clear()
	prevLogger := logging.DefaultLogger()
	logging.SetDefaultLogger(logger)
	t.Cleanup(func() {
		logging.SetDefaultLogger(prevLogger)
	})
	return logger
}
