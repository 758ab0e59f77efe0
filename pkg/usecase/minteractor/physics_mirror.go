// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_vrmanim/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/model"
)

// degenerateEpsilon は方向ベクトルを0とみなす長さ。
const degenerateEpsilon = 1e-12

// PhysicsMirror はボーン位置を補助点へ写し、親との距離を保つ候補位置を求める。
// 候補位置は診断値としてのみ返し、補助点やリグへは書き戻さない。
type PhysicsMirror struct{}

// NewPhysicsMirror はPhysicsMirrorを生成する。
func NewPhysicsMirror() *PhysicsMirror {
	return &PhysicsMirror{}
}

// MirrorResult は補助点更新1回分の結果を表す。
type MirrorResult struct {
	Diagnostics  []EdgeDiagnostic
	SkippedEdges []string
}

// Update はBodyTreeの親子ごとに補助点を更新する。
func (m *PhysicsMirror) Update(state *AnimationState) MirrorResult {
	result := MirrorResult{Diagnostics: make([]EdgeDiagnostic, 0)}
	for _, edge := range state.Tree.Edges() {
		parent := state.Tree.Node(edge.Parent)
		child := state.Tree.Node(edge.Child)
		if parent.Bone == nil || child.Bone == nil {
			continue
		}
		parentPosition := parent.Bone.WorldPosition()
		childPosition := child.Bone.WorldPosition()

		mirror, exists := state.Mirrors[child.RawName]
		if !exists {
			mirror = &PhysicsBodyMirror{
				RestDistance: parentPosition.Distance(childPosition),
				AuxPosition:  childPosition,
			}
			state.Mirrors[child.RawName] = mirror
			if mirror.RestDistance == 0 {
				state.warn(model.RigWarningDegenerateDistance, messages.LogWarnDegenerateDistance, parent.RawName, child.RawName)
			}
			continue
		}

		offset := mirror.AuxPosition.Subed(parentPosition)
		if offset.IsZero(degenerateEpsilon) {
			state.warn(model.RigWarningDegenerateDirection, messages.LogWarnDegenerateDirection,
				parent.RawName, child.RawName, state.TickCount)
			result.SkippedEdges = append(result.SkippedEdges, child.RawName)
			mirror.AuxPosition = childPosition
			continue
		}
		direction := offset.Normalized()
		candidate := parentPosition.Added(direction.MuledScalar(mirror.RestDistance))
		result.Diagnostics = append(result.Diagnostics, EdgeDiagnostic{
			Parent:    parent.RawName,
			Child:     child.RawName,
			Direction: direction,
			Candidate: candidate,
			Stretch:   offset.Length() - mirror.RestDistance,
		})
		logAnimDebug(messages.LogDebugMirrorEdgeCandidate, parent.RawName, child.RawName, candidate)

		mirror.AuxPosition = childPosition
	}
	return result
}
