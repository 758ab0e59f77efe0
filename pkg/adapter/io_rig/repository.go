// 指示: miu200521358
// Package io_rig はノード配列と humanoid 対応表からなるリグ定義を読み込む。
package io_rig

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/miu200521358/mu_vrmanim/pkg/adapter/io_common"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/rig"
	"github.com/miu200521358/mu_vrmanim/pkg/shared/logging"
	"github.com/miu200521358/mu_vrmanim/pkg/usecase/port/moutput"
	"gopkg.in/yaml.v3"
)

// rigDocument はリグ定義のトップレベル要素を表す。
type rigDocument struct {
	Nodes      []rigNode      `yaml:"nodes" json:"nodes"`
	Humanoid   map[string]int `yaml:"humanoid" json:"humanoid"`
	HumanBones []rigHumanBone `yaml:"humanBones" json:"humanBones"`
}

// rigNode はノード要素を表す。
type rigNode struct {
	Name        string    `yaml:"name" json:"name"`
	Children    []int     `yaml:"children" json:"children"`
	Translation []float64 `yaml:"translation" json:"translation"`
	Rotation    []float64 `yaml:"rotation" json:"rotation"`
}

// rigHumanBone は一覧形式の humanoid 対応を表す。
type rigHumanBone struct {
	Bone string `yaml:"bone" json:"bone"`
	Node int    `yaml:"node" json:"node"`
}

// RigRepository はリグ定義の読み込みを表す。
type RigRepository struct{}

// NewRigRepository はRigRepositoryを生成する。
func NewRigRepository() *RigRepository {
	return &RigRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *RigRepository) CanLoad(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

// LoadRig はリグ定義を読み込み、SkeletonとBoneRegistryを構築する。
func (r *RigRepository) LoadRig(path string) (*moutput.RigData, error) {
	if !r.CanLoad(path) {
		return nil, io_common.NewIoExtInvalid(path, nil)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, io_common.NewIoFileNotFound(path, err)
		}
		return nil, io_common.NewIoParseFailed("リグ定義ファイルの読み取りに失敗しました", err)
	}

	doc, err := decodeRigDocument(path, b)
	if err != nil {
		return nil, err
	}
	logRigDebug("リグ定義解析完了: nodes=%d humanoid=%d", len(doc.Nodes), len(doc.Humanoid)+len(doc.HumanBones))

	skeleton, err := buildSkeleton(doc.Nodes)
	if err != nil {
		return nil, err
	}
	registry, err := buildRegistry(doc, skeleton)
	if err != nil {
		return nil, err
	}
	return &moutput.RigData{Path: path, Skeleton: skeleton, Registry: registry}, nil
}

// decodeRigDocument は拡張子に応じてYAMLまたはJSONを解析する。
func decodeRigDocument(path string, b []byte) (*rigDocument, error) {
	doc := &rigDocument{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(b, doc); err != nil {
			return nil, io_common.NewIoParseFailed("リグ定義JSONの解析に失敗しました", err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(b, doc); err != nil {
		return nil, io_common.NewIoParseFailed("リグ定義YAMLの解析に失敗しました", err)
	}
	return doc, nil
}

// buildNodeParentIndexes はnode配列から親インデックス配列を生成する。
// 複数の親から参照される子はエラーとする。
func buildNodeParentIndexes(nodes []rigNode) ([]int, error) {
	parentIndexes := make([]int, len(nodes))
	for i := range parentIndexes {
		parentIndexes[i] = -1
	}
	for parentIndex, node := range nodes {
		for _, childIndex := range node.Children {
			if childIndex < 0 || childIndex >= len(nodes) {
				return nil, io_common.NewIoParseFailed("node.children のindexが不正です: %d", nil, childIndex)
			}
			if parentIndexes[childIndex] != -1 && parentIndexes[childIndex] != parentIndex {
				return nil, io_common.NewIoParseFailed(
					"nodeが複数の親から参照されています: %d (親=%d, %d)", nil,
					childIndex, parentIndexes[childIndex], parentIndex)
			}
			parentIndexes[childIndex] = parentIndex
		}
	}
	return parentIndexes, nil
}

// buildSkeleton は親を先に追加する順序でSkeletonを構築する。
func buildSkeleton(nodes []rigNode) (*rig.Skeleton, error) {
	parents, err := buildNodeParentIndexes(nodes)
	if err != nil {
		return nil, err
	}
	skeleton := rig.NewSkeleton()
	state := make([]int, len(nodes))
	for i := range nodes {
		if err := addNodeBone(skeleton, nodes, parents, i, state); err != nil {
			return nil, err
		}
	}
	return skeleton, nil
}

// addNodeBone はnodeを親から順に再帰的に追加する。
func addNodeBone(skeleton *rig.Skeleton, nodes []rigNode, parents []int, nodeIndex int, state []int) error {
	if state[nodeIndex] == 2 {
		return nil
	}
	if state[nodeIndex] == 1 {
		return io_common.NewIoParseFailed("node親子関係に循環があります: %d", nil, nodeIndex)
	}
	state[nodeIndex] = 1

	node := nodes[nodeIndex]
	parentName := ""
	if parentIndex := parents[nodeIndex]; parentIndex >= 0 {
		if err := addNodeBone(skeleton, nodes, parents, parentIndex, state); err != nil {
			return err
		}
		parentName = nodes[parentIndex].Name
	}
	translation, err := parseVec3(node.Translation, "node.translation")
	if err != nil {
		return err
	}
	rotation, err := parseQuaternion(node.Rotation)
	if err != nil {
		return err
	}
	if _, err := skeleton.AddBone(node.Name, parentName, translation, rotation); err != nil {
		return io_common.NewIoParseFailed("node[%d] のボーン追加に失敗しました", err, nodeIndex)
	}
	state[nodeIndex] = 2
	return nil
}

// buildRegistry は humanoid 対応表からBoneRegistryを構築する。
func buildRegistry(doc *rigDocument, skeleton *rig.Skeleton) (*rig.BoneRegistry, error) {
	mapping := map[string]int{}
	for name, nodeIndex := range doc.Humanoid {
		mapping[name] = nodeIndex
	}
	for _, humanBone := range doc.HumanBones {
		if _, exists := mapping[humanBone.Bone]; !exists {
			mapping[humanBone.Bone] = humanBone.Node
		}
	}

	names := make([]string, 0, len(mapping))
	for name := range mapping {
		names = append(names, name)
	}
	sort.Strings(names)

	registry := rig.NewBoneRegistry()
	for _, name := range names {
		nodeIndex := mapping[name]
		boneName, ok := humanoid.ParseBoneName(name)
		if !ok {
			return nil, io_common.NewIoFormatNotSupported("未知の humanoid ボーン名です: %s", nil, name)
		}
		if nodeIndex < 0 || nodeIndex >= len(doc.Nodes) {
			return nil, io_common.NewIoParseFailed("humanoid.%s のnode indexが不正です: %d", nil, name, nodeIndex)
		}
		bone, ok := skeleton.Bone(doc.Nodes[nodeIndex].Name)
		if !ok {
			return nil, io_common.NewIoParseFailed("humanoid.%s のボーンが見つかりません", nil, name)
		}
		if registry.Has(boneName) {
			return nil, io_common.NewIoParseFailed("humanoid ボーンが重複しています: %s", nil, boneName)
		}
		if err := registry.Register(boneName, bone); err != nil {
			return nil, io_common.NewIoParseFailed("humanoid.%s の登録に失敗しました", err, name)
		}
	}
	return registry, nil
}

// parseVec3 はスライスをVec3へ変換する。
func parseVec3(values []float64, label string) (mmath.Vec3, error) {
	if len(values) == 0 {
		return mmath.ZERO_VEC3, nil
	}
	if len(values) != 3 {
		return mmath.ZERO_VEC3, io_common.NewIoParseFailed("%s の要素数が不正です: %d", nil, label, len(values))
	}
	return mmath.NewVec3(values[0], values[1], values[2]), nil
}

// parseQuaternion はスライス(x, y, z, w)をQuaternionへ変換する。
func parseQuaternion(values []float64) (mmath.Quaternion, error) {
	if len(values) == 0 {
		return mmath.NewQuaternion(), nil
	}
	if len(values) != 4 {
		return mmath.NewQuaternion(), io_common.NewIoParseFailed("node.rotation の要素数が不正です: %d", nil, len(values))
	}
	return mmath.NewQuaternionByValues(values[0], values[1], values[2], values[3]).Normalized(), nil
}

// logRigDebug はリグ読み込みのデバッグログを出力する。
func logRigDebug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Debug(format, params...)
}
