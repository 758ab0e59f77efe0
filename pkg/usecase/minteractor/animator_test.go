// 指示: miu200521358
package minteractor

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/animation"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/body"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/model"
	"github.com/miu200521358/mu_vrmanim/pkg/usecase/port/moutput"
)

func TestTickWithoutAttachReturnsEmptyReport(t *testing.T) {
	uc := NewRigAnimatorUsecase(RigAnimatorUsecaseDeps{})
	uc.RequestNewPose()
	report := uc.Tick()
	if diff := cmp.Diff(TickReport{}, report); diff != "" {
		t.Fatalf("report should be empty (-want +got):\n%s", diff)
	}
	if uc.IsAttached() {
		t.Fatalf("usecase should not be attached")
	}
}

func TestAttachSameRigIsNoOp(t *testing.T) {
	_, registry := newHumanoidFixture(t)
	uc := NewRigAnimatorUsecase(RigAnimatorUsecaseDeps{})
	if err := uc.Attach(registry); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	state := uc.State()
	uc.Tick()
	uc.Tick()

	if err := uc.Attach(registry); err != nil {
		t.Fatalf("second attach should not fail: %v", err)
	}
	if uc.State() != state {
		t.Fatalf("state should be kept on duplicate attach")
	}
	if state.TickCount != 2 {
		t.Fatalf("tick count should be kept: %d", state.TickCount)
	}

	_, other := newHumanoidFixture(t)
	if err := uc.Attach(other); err != nil {
		t.Fatalf("attach other failed: %v", err)
	}
	if uc.State() == state || uc.State().Registry != other {
		t.Fatalf("attaching another rig should replace the state")
	}
	uc.Detach()
	if uc.IsAttached() || uc.State() != nil {
		t.Fatalf("detach should drop the state")
	}
}

func TestAttachFailsAtomicallyWithoutRequiredBone(t *testing.T) {
	_, registry := newRigFixture(t, []fixtureBone{
		{humanoid.SPINE, "spine", "", mmath.ZERO_VEC3},
	})
	uc := NewRigAnimatorUsecase(RigAnimatorUsecaseDeps{})
	err := uc.Attach(registry)
	if err == nil {
		t.Fatalf("attach should fail without hips")
	}
	hierarchyErr, ok := body.AsHierarchyError(err)
	if !ok || hierarchyErr.Kind != body.HierarchyErrorMissingRequiredBone {
		t.Fatalf("expected missing required bone error: %v", err)
	}
	if uc.IsAttached() {
		t.Fatalf("failed attach must not expose state")
	}
	if report := uc.Tick(); report.Attached {
		t.Fatalf("tick after failed attach should be empty")
	}
}

func TestAttachAppliesInitialPlacement(t *testing.T) {
	_, registry := newHumanoidFixture(t)
	uc := NewRigAnimatorUsecase(RigAnimatorUsecaseDeps{})
	if err := uc.Attach(registry); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	hips := mustBone(t, registry, humanoid.HIPS)
	if hips.Position().X != -1 {
		t.Fatalf("hips x should be offset: %v", hips.Position().X)
	}
	if !hips.Rotation().NearEquals(mmath.NewQuaternionFromAxisName(mmath.AXIS_Y, math.Pi), 1e-9) {
		t.Fatalf("hips should face the camera")
	}
	if !uc.State().Warnings.Has(model.RigWarningMissingLimitEntry) {
		t.Fatalf("hips has no limit entry and should be recorded")
	}
}

func TestAttachPlacesHipsBelowNonHumanoidRoot(t *testing.T) {
	_, registry := newRigFixture(t, append([]fixtureBone{
		{"", "Armature", "", mmath.ZERO_VEC3},
	}, reparentFixture(humanoidFixtureBones, "J_Bip_C_Hips", "Armature")...))
	uc := NewRigAnimatorUsecase(RigAnimatorUsecaseDeps{})
	if err := uc.Attach(registry); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	root := uc.State().RootBone()
	if root == nil || root.Name() != "Armature" {
		t.Fatalf("root should be Armature: %v", root)
	}
	if root.Position().X != 0 || !root.Rotation().NearEquals(mmath.NewQuaternion(), 1e-12) {
		t.Fatalf("non-humanoid root must stay untouched: pos=%v rot=%v", root.Position(), root.Rotation())
	}
	hips := mustBone(t, registry, humanoid.HIPS)
	if hips.Position().X != -1 {
		t.Fatalf("hips x should be offset: %v", hips.Position().X)
	}
	if !hips.Rotation().NearEquals(mmath.NewQuaternionFromAxisName(mmath.AXIS_Y, math.Pi), 1e-9) {
		t.Fatalf("hips should face the camera")
	}
	if report := uc.Tick(); report.RootName != "Armature" || report.HipsPosition.X != -1 {
		t.Fatalf("report should carry root and hips separately: %+v", report)
	}
}

func TestTickRunsPoseGroundAndMirror(t *testing.T) {
	_, registry := newHumanoidFixture(t)
	uc := NewRigAnimatorUsecase(RigAnimatorUsecaseDeps{})
	if err := uc.Attach(registry); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	uc.RequestNewPose()
	first := uc.Tick()
	if first.Tick != 1 || !first.Attached || first.RootName != "J_Bip_C_Hips" {
		t.Fatalf("report header mismatch: %+v", first)
	}
	if len(first.Retargeted) != len(uc.State().TrackedBoneNames()) || first.PoseRequested {
		t.Fatalf("pose request should be consumed in one tick: %+v", first)
	}
	if !first.Fell {
		t.Fatalf("floating fixture should fall on the first tick")
	}
	if first.MirrorCount != len(uc.State().Tree.Edges()) {
		t.Fatalf("mirror count mismatch: %d", first.MirrorCount)
	}

	for i := 0; i < 300; i++ {
		uc.Tick()
	}
	report := uc.Tick()
	if len(report.Diagnostics) == 0 {
		t.Fatalf("mirror diagnostics should be produced after the first tick")
	}
	for _, name := range []humanoid.BoneName{humanoid.LEFT_FOOT, humanoid.RIGHT_FOOT} {
		if y := mustBone(t, registry, name).WorldPosition().Y; y < -1e-9 {
			t.Fatalf("%s should not stay below ground after ground response: %v", name, y)
		}
	}
}

func TestRootWanderTurnsAfterLeavingRange(t *testing.T) {
	config := animation.DefaultAnimatorConfig()
	config.Placement.Enabled = false
	config.Wander.Enabled = true
	_, registry := newHumanoidFixture(t)
	state := newTestState(t, registry, config)
	wander := NewRootWander(config)

	root := state.RootBone()
	root.SetPosition(mmath.NewVec3(-4.995, 1, 0))
	wander.Update(state)
	if math.Abs(root.Position().X-(-5.005)) > 1e-12 {
		t.Fatalf("root should move before turning: %v", root.Position().X)
	}
	if state.WanderVelocity != 0.01 {
		t.Fatalf("velocity should flip after leaving the range: %v", state.WanderVelocity)
	}
	wander.Update(state)
	if math.Abs(root.Position().X-(-4.995)) > 1e-12 {
		t.Fatalf("root should head back: %v", root.Position().X)
	}
}

// stubRigReader はテスト用のリグ読み込みを表す。
type stubRigReader struct {
	data *moutput.RigData
}

func (r *stubRigReader) CanLoad(path string) bool { return path == "rig.yaml" }

func (r *stubRigReader) LoadRig(path string) (*moutput.RigData, error) {
	return r.data, nil
}

// stubConfigReader はテスト用の設定読み込みを表す。
type stubConfigReader struct {
	config *AnimatorConfig
}

func (r *stubConfigReader) CanLoad(path string) bool { return path == "animator.yaml" }

func (r *stubConfigReader) LoadConfig(path string) (*AnimatorConfig, error) {
	return r.config, nil
}

func TestLoadRigAndConfigUseInjectedReaders(t *testing.T) {
	skeleton, registry := newHumanoidFixture(t)
	config := animation.DefaultAnimatorConfig()
	config.Seed = 99

	uc := NewRigAnimatorUsecase(RigAnimatorUsecaseDeps{
		RigReader:    &stubRigReader{data: &moutput.RigData{Path: "rig.yaml", Skeleton: skeleton, Registry: registry}},
		ConfigReader: &stubConfigReader{config: config},
	})
	if _, err := uc.LoadRig(nil, "rig.json"); err == nil {
		t.Fatalf("unsupported rig path should fail")
	}
	data, err := uc.LoadRig(nil, "rig.yaml")
	if err != nil || data.Registry != registry {
		t.Fatalf("load rig mismatch: data=%v err=%v", data, err)
	}
	if _, err := uc.LoadConfig(nil, "animator.yaml"); err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if uc.Config().Seed != 99 {
		t.Fatalf("loaded config should be used for next attach: %d", uc.Config().Seed)
	}

	broken := animation.DefaultAnimatorConfig()
	broken.Gain = 0
	if _, err := uc.LoadConfig(&stubConfigReader{config: broken}, "animator.yaml"); err == nil {
		t.Fatalf("invalid config should be rejected")
	}
	if uc.Config().Seed != 99 {
		t.Fatalf("rejected config must not replace the current one")
	}

	empty := NewRigAnimatorUsecase(RigAnimatorUsecaseDeps{})
	if _, err := empty.LoadRig(nil, "rig.yaml"); err == nil {
		t.Fatalf("missing reader should fail")
	}
}
