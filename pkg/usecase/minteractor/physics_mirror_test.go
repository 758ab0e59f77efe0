// 指示: miu200521358
package minteractor

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/model"
)

func TestPhysicsMirrorCreatesAuxPointsOnFirstEncounter(t *testing.T) {
	_, registry := newHumanoidFixture(t)
	state := newTestState(t, registry, nil)
	mirror := NewPhysicsMirror()

	result := mirror.Update(state)
	if len(result.Diagnostics) != 0 {
		t.Fatalf("first encounter should not produce diagnostics: %d", len(result.Diagnostics))
	}
	edges := state.Tree.Edges()
	if len(state.Mirrors) != len(edges) {
		t.Fatalf("mirror count mismatch: got=%d want=%d", len(state.Mirrors), len(edges))
	}

	chest := state.Mirrors["J_Bip_C_Chest"]
	if chest == nil {
		t.Fatalf("chest mirror missing")
	}
	if math.Abs(chest.RestDistance-0.15) > 1e-12 {
		t.Fatalf("rest distance mismatch: %v", chest.RestDistance)
	}
	chestWorld := mustBone(t, registry, humanoid.CHEST).WorldPosition()
	if !chest.AuxPosition.NearEquals(chestWorld, 1e-12) {
		t.Fatalf("aux point should start at the bone: aux=%v bone=%v", chest.AuxPosition, chestWorld)
	}
}

func TestPhysicsMirrorComputesCandidatesWithoutWritingBack(t *testing.T) {
	_, registry := newHumanoidFixture(t)
	state := newTestState(t, registry, nil)
	mirror := NewPhysicsMirror()
	mirror.Update(state)

	// 子を親から遠ざけて補助点とのずれを作る
	head := mustBone(t, registry, humanoid.HEAD)
	head.SetPosition(mmath.NewVec3(0, 0.3, 0))
	mirror.Update(state)
	headWorldBefore := head.WorldPosition()

	// 補助点は前tickの子位置へ同期済みなので、候補は静止距離へ戻した点になる
	result := mirror.Update(state)
	if len(result.Diagnostics) != len(state.Tree.Edges()) {
		t.Fatalf("diagnostic count mismatch: got=%d want=%d", len(result.Diagnostics), len(state.Tree.Edges()))
	}
	var headDiagnostic *EdgeDiagnostic
	for i := range result.Diagnostics {
		if result.Diagnostics[i].Child == "J_Bip_C_Head" {
			headDiagnostic = &result.Diagnostics[i]
		}
	}
	if headDiagnostic == nil {
		t.Fatalf("head diagnostic missing")
	}
	neckWorld := mustBone(t, registry, humanoid.NECK).WorldPosition()
	if math.Abs(headDiagnostic.Candidate.Distance(neckWorld)-0.1) > 1e-9 {
		t.Fatalf("candidate should sit at rest distance: %v", headDiagnostic.Candidate.Distance(neckWorld))
	}
	if math.Abs(headDiagnostic.Stretch-0.2) > 1e-9 {
		t.Fatalf("stretch mismatch: %v", headDiagnostic.Stretch)
	}
	if !head.WorldPosition().NearEquals(headWorldBefore, 0) {
		t.Fatalf("candidate must not be written back to the rig")
	}
	if !state.Mirrors["J_Bip_C_Head"].AuxPosition.NearEquals(headWorldBefore, 1e-12) {
		t.Fatalf("aux point should follow the bone, not the candidate")
	}
}

func TestPhysicsMirrorSkipsZeroLengthEdges(t *testing.T) {
	logger := useBufferedLogger(t)
	_, registry := newRigFixture(t, []fixtureBone{
		{humanoid.HIPS, "hips", "", mmath.NewVec3(0, 1, 0)},
		{humanoid.SPINE, "spine", "hips", mmath.ZERO_VEC3},
		{humanoid.CHEST, "chest", "spine", mmath.NewVec3(0, 0.2, 0)},
	})
	state := newTestState(t, registry, nil)
	mirror := NewPhysicsMirror()

	mirror.Update(state)
	if !state.Warnings.Has(model.RigWarningDegenerateDistance) {
		t.Fatalf("zero rest distance should be recorded")
	}
	if state.Mirrors["spine"].RestDistance != 0 {
		t.Fatalf("zero-length edge should keep zero rest distance")
	}

	result := mirror.Update(state)
	if diff := cmp.Diff([]string{"spine"}, result.SkippedEdges); diff != "" {
		t.Fatalf("skipped edges mismatch (-want +got):\n%s", diff)
	}
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Child != "chest" {
		t.Fatalf("other edges should still be processed: %+v", result.Diagnostics)
	}
	for _, diagnostic := range result.Diagnostics {
		if math.IsNaN(diagnostic.Direction.X) || math.IsNaN(diagnostic.Candidate.Y) {
			t.Fatalf("diagnostic must not contain NaN: %+v", diagnostic)
		}
	}
	if !state.Warnings.Has(model.RigWarningDegenerateDirection) {
		t.Fatalf("degenerate direction should be recorded")
	}
	if len(logger.MessageBuffer().Lines()) == 0 {
		t.Fatalf("warnings should be logged")
	}
}

func TestPhysicsMirrorRecoversAfterDegenerateTick(t *testing.T) {
	useBufferedLogger(t)
	_, registry := newRigFixture(t, []fixtureBone{
		{humanoid.HIPS, "hips", "", mmath.NewVec3(0, 1, 0)},
		{humanoid.SPINE, "spine", "hips", mmath.ZERO_VEC3},
	})
	state := newTestState(t, registry, nil)
	mirror := NewPhysicsMirror()
	mirror.Update(state)
	if result := mirror.Update(state); len(result.SkippedEdges) != 1 {
		t.Fatalf("zero-length edge should be skipped: %+v", result)
	}

	spine := mustBone(t, registry, humanoid.SPINE)
	spine.SetPosition(mmath.NewVec3(0, 0.3, 0))
	mirror.Update(state)
	if !state.Mirrors["spine"].AuxPosition.NearEquals(spine.WorldPosition(), 1e-12) {
		t.Fatalf("aux point should follow the bone even on a skipped tick: aux=%v bone=%v",
			state.Mirrors["spine"].AuxPosition, spine.WorldPosition())
	}

	result := mirror.Update(state)
	if len(result.SkippedEdges) != 0 {
		t.Fatalf("edge should recover once the child moves away: %v", result.SkippedEdges)
	}
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Child != "spine" {
		t.Fatalf("recovered edge should produce a diagnostic: %+v", result.Diagnostics)
	}
	if math.Abs(result.Diagnostics[0].Stretch-0.3) > 1e-12 {
		t.Fatalf("stretch mismatch: %v", result.Diagnostics[0].Stretch)
	}
}
