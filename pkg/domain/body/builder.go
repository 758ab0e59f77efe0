// 指示: miu200521358
package body

import (
	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/rig"
)

// SeedEdge は標準ボーン1件から得られる生の親子関係を表す。
// Parent が nil の場合、Child 自身が仮ルートになる。
type SeedEdge struct {
	CanonicalName humanoid.BoneName
	Parent        rig.IBone
	Child         rig.IBone
}

// HierarchyBuilder は標準ボーンの親子関係から単一ルートのBodyTreeを構築する。
type HierarchyBuilder struct {
	requiredBoneNames []humanoid.BoneName
}

// NewHierarchyBuilder はHierarchyBuilderを生成する。required が空の場合は既定の必須ボーンを使う。
func NewHierarchyBuilder(required []humanoid.BoneName) *HierarchyBuilder {
	if len(required) == 0 {
		required = humanoid.DefaultRequiredBoneNames
	}
	copied := make([]humanoid.BoneName, len(required))
	copy(copied, required)
	return &HierarchyBuilder{requiredBoneNames: copied}
}

// Build はBoneRegistryからBodyTreeを構築する。失敗時は部分的な木を返さない。
func (b *HierarchyBuilder) Build(registry *rig.BoneRegistry) (*BodyTree, error) {
	if err := b.checkRequiredBones(registry); err != nil {
		return nil, err
	}

	tree := SeedTree(CollectSeedEdges(registry))
	if err := tree.Reconcile(); err != nil {
		return nil, err
	}
	tree.Annotate(registry)
	return tree, nil
}

// checkRequiredBones は必須ボーンの有無を検証する。
func (b *HierarchyBuilder) checkRequiredBones(registry *rig.BoneRegistry) error {
	missing := make([]string, 0)
	for _, name := range b.requiredBoneNames {
		if !registry.Has(name) {
			missing = append(missing, name.String())
		}
	}
	if len(missing) > 0 {
		return NewHierarchyError(HierarchyErrorMissingRequiredBone, missing)
	}
	return nil
}

// CollectSeedEdges は標準ボーンごとに先頭区間の親子関係を収集する。
func CollectSeedEdges(registry *rig.BoneRegistry) []SeedEdge {
	edges := make([]SeedEdge, 0, registry.Len())
	for _, name := range registry.Names() {
		segment, ok := registry.Get(name)
		if !ok {
			continue
		}
		edges = append(edges, SeedEdge{
			CanonicalName: name,
			Parent:        segment.ParentBone(),
			Child:         segment,
		})
	}
	return edges
}

// SeedTree は親子関係ごとに親を仮ルートとして登録し、子をその直下へ置く。
func SeedTree(edges []SeedEdge) *BodyTree {
	tree := newBodyTree()
	for _, edge := range edges {
		if edge.Child == nil {
			continue
		}
		if edge.Parent == nil {
			tree.ensureRoot(edge.Child)
			continue
		}
		parentID := tree.ensureRoot(edge.Parent)
		parent := tree.Node(parentID)
		childName := edge.Child.Name()
		if _, exists := parent.Children[childName]; exists {
			continue
		}
		childID := tree.newNode(childName, edge.Child)
		tree.Node(childID).Parent = parentID
		parent.Children[childName] = childID
	}
	return tree
}

// ensureRoot は仮ルートを取得し、なければ作成する。
func (t *BodyTree) ensureRoot(bone rig.IBone) NodeID {
	if id, exists := t.roots[bone.Name()]; exists {
		return id
	}
	id := t.newNode(bone.Name(), bone)
	t.roots[bone.Name()] = id
	return id
}

// Reconcile は仮ルートを他の仮ルートの部分木内にある同名の子スロットへ移し、
// ルートが1つになるまで繰り返す。
func (t *BodyTree) Reconcile() error {
	maxPasses := len(t.roots) * len(t.roots)
	if maxPasses < 1 {
		maxPasses = 1
	}

	for pass := 0; len(t.roots) > 1; pass++ {
		if pass >= maxPasses {
			return NewHierarchyError(HierarchyErrorUnreconciled, t.RootNames())
		}
		moved := false
		for _, rootName := range t.RootNames() {
			rootID, exists := t.roots[rootName]
			if !exists {
				continue
			}
			slotParentID, placeholderID, found := t.findSlot(rootName)
			if !found {
				continue
			}
			t.graft(rootID, slotParentID, placeholderID)
			delete(t.roots, rootName)
			moved = true
		}
		if !moved {
			break
		}
	}

	if duplicated := t.rebuildIndex(); len(duplicated) > 0 {
		return NewHierarchyError(HierarchyErrorCycle, duplicated)
	}
	if len(t.roots) != 1 {
		return NewHierarchyError(HierarchyErrorUnreconciled, t.RootNames())
	}
	return nil
}

// findSlot は他の仮ルートの部分木を前順で探索し、name の子スロットを持つノードを返す。
func (t *BodyTree) findSlot(name string) (NodeID, NodeID, bool) {
	for _, otherName := range t.RootNames() {
		if otherName == name {
			continue
		}
		slotParentID := NoNode
		placeholderID := NoNode
		t.walkFrom(t.roots[otherName], 0, func(id NodeID, _ int) bool {
			if slotParentID != NoNode {
				return false
			}
			if childID, exists := t.Node(id).Children[name]; exists {
				slotParentID = id
				placeholderID = childID
				return false
			}
			return true
		})
		if slotParentID != NoNode {
			return slotParentID, placeholderID, true
		}
	}
	return NoNode, NoNode, false
}

// graft は仮ルートの部分木を子スロットへ差し替える。
// プレースホルダが子を持っていた場合はルート側に無い子だけを引き継ぐ。
func (t *BodyTree) graft(rootID NodeID, slotParentID NodeID, placeholderID NodeID) {
	root := t.Node(rootID)
	placeholder := t.Node(placeholderID)
	for childName, childID := range placeholder.Children {
		if _, exists := root.Children[childName]; exists {
			continue
		}
		root.Children[childName] = childID
		t.Node(childID).Parent = rootID
	}
	placeholder.Children = map[string]NodeID{}
	placeholder.Parent = NoNode

	t.Node(slotParentID).Children[root.RawName] = rootID
	root.Parent = slotParentID
}

// Annotate は標準ボーン名と親との距離をノードへ付与する。
// 付与済みの標準ボーン名は変更しない。距離は初回のみ計算する。
func (t *BodyTree) Annotate(registry *rig.BoneRegistry) {
	canonicalByRawName := map[string]humanoid.BoneName{}
	for _, name := range registry.Names() {
		bone, ok := registry.Get(name)
		if !ok {
			continue
		}
		if _, exists := canonicalByRawName[bone.Name()]; !exists {
			canonicalByRawName[bone.Name()] = name
		}
	}

	computeDistances := !t.annotated
	t.Walk(func(id NodeID, _ int) bool {
		node := t.Node(id)
		if node.CanonicalName == "" {
			if name, ok := canonicalByRawName[node.RawName]; ok {
				node.CanonicalName = name
			}
		}
		if computeDistances {
			node.RestDistanceToParent = t.distanceToParent(node)
		}
		return true
	})
	t.annotated = true
}

// distanceToParent は親とのワールド距離を返す。
func (t *BodyTree) distanceToParent(node *BodyNode) float64 {
	parent := t.Node(node.Parent)
	if parent == nil || parent.Bone == nil || node.Bone == nil {
		return 0
	}
	return node.Bone.WorldPosition().Distance(parent.Bone.WorldPosition())
}
