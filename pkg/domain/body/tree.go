// 指示: miu200521358
// Package body はボーン参照を単一ルートの木へ再構成する。
package body

import (
	"sort"

	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/rig"
)

// NodeID はBodyTree内のノード番号を表す。
type NodeID int

// NoNode は親なしを表す。
const NoNode NodeID = -1

// BodyNode はBodyTreeのノードを表す。
type BodyNode struct {
	RawName              string
	CanonicalName        humanoid.BoneName
	Bone                 rig.IBone
	Children             map[string]NodeID
	RestDistanceToParent float64
	Parent               NodeID
}

// Edge は親子ノードの組を表す。
type Edge struct {
	Parent NodeID
	Child  NodeID
}

// BodyTree はノードを番号で保持する木を表す。
// 再構成前は複数の仮ルートを持ちうる。
type BodyTree struct {
	nodes     []*BodyNode
	roots     map[string]NodeID
	index     map[string]NodeID
	annotated bool
}

// newBodyTree は空のBodyTreeを生成する。
func newBodyTree() *BodyTree {
	return &BodyTree{
		nodes: make([]*BodyNode, 0),
		roots: map[string]NodeID{},
		index: map[string]NodeID{},
	}
}

// newNode はノードを追加して番号を返す。
func (t *BodyTree) newNode(rawName string, bone rig.IBone) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &BodyNode{
		RawName:  rawName,
		Bone:     bone,
		Children: map[string]NodeID{},
		Parent:   NoNode,
	})
	return id
}

// Node は番号からノードを返す。
func (t *BodyTree) Node(id NodeID) *BodyNode {
	if t == nil || id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Lookup は生ボーン名からノード番号を返す。
func (t *BodyTree) Lookup(rawName string) (NodeID, bool) {
	if t == nil {
		return NoNode, false
	}
	id, ok := t.index[rawName]
	return id, ok
}

// RootNames はルート名を辞書順で返す。
func (t *BodyTree) RootNames() []string {
	names := make([]string, 0, len(t.roots))
	for name := range t.roots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Roots はルート番号を名前順で返す。
func (t *BodyTree) Roots() []NodeID {
	names := t.RootNames()
	ids := make([]NodeID, 0, len(names))
	for _, name := range names {
		ids = append(ids, t.roots[name])
	}
	return ids
}

// Root は単一ルートを返す。ルートが1つでない場合は false を返す。
func (t *BodyTree) Root() (NodeID, bool) {
	if t == nil || len(t.roots) != 1 {
		return NoNode, false
	}
	for _, id := range t.roots {
		return id, true
	}
	return NoNode, false
}

// ChildIDs は子ノード番号を名前順で返す。
func (t *BodyTree) ChildIDs(id NodeID) []NodeID {
	node := t.Node(id)
	if node == nil {
		return nil
	}
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	ids := make([]NodeID, 0, len(names))
	for _, name := range names {
		ids = append(ids, node.Children[name])
	}
	return ids
}

// Walk はルートから深さ優先(前順)で辿る。fn が false を返すとその部分木を辿らない。
func (t *BodyTree) Walk(fn func(id NodeID, depth int) bool) {
	for _, rootID := range t.Roots() {
		t.walkFrom(rootID, 0, fn)
	}
}

// walkFrom は指定ノード以下を前順で辿る。
func (t *BodyTree) walkFrom(id NodeID, depth int, fn func(id NodeID, depth int) bool) {
	stack := []struct {
		id    NodeID
		depth int
	}{{id: id, depth: depth}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(current.id, current.depth) {
			continue
		}
		children := t.ChildIDs(current.id)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, struct {
				id    NodeID
				depth int
			}{id: children[i], depth: current.depth + 1})
		}
	}
}

// Edges は親子ノードの組を前順で返す。
func (t *BodyTree) Edges() []Edge {
	edges := make([]Edge, 0)
	t.Walk(func(id NodeID, _ int) bool {
		for _, childID := range t.ChildIDs(id) {
			edges = append(edges, Edge{Parent: id, Child: childID})
		}
		return true
	})
	return edges
}

// NodeCount はルートから到達できるノード数を返す。
func (t *BodyTree) NodeCount() int {
	count := 0
	t.Walk(func(NodeID, int) bool {
		count++
		return true
	})
	return count
}

// NodesByCanonicalName は標準ボーン名が付与されたノードの辞書を返す。
func (t *BodyTree) NodesByCanonicalName() map[humanoid.BoneName]NodeID {
	nodes := map[humanoid.BoneName]NodeID{}
	t.Walk(func(id NodeID, _ int) bool {
		if name := t.Node(id).CanonicalName; name != "" {
			nodes[name] = id
		}
		return true
	})
	return nodes
}

// rebuildIndex は名前から番号への索引を再構築する。重複名を返す。
func (t *BodyTree) rebuildIndex() []string {
	t.index = map[string]NodeID{}
	duplicated := make([]string, 0)
	seen := map[string]struct{}{}
	t.Walk(func(id NodeID, _ int) bool {
		name := t.Node(id).RawName
		if _, exists := t.index[name]; exists {
			if _, reported := seen[name]; !reported {
				duplicated = append(duplicated, name)
				seen[name] = struct{}{}
			}
			return false
		}
		t.index[name] = id
		return true
	})
	sort.Strings(duplicated)
	return duplicated
}
