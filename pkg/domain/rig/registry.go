// 指示: miu200521358
package rig

import (
	"fmt"

	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
)

// BoneRegistry はhumanoid標準ボーン名からボーン区間一覧への辞書を表す。
// 区間の先頭要素がそのボーンの代表ハンドルになる。
type BoneRegistry struct {
	segments map[humanoid.BoneName][]IBone
}

// NewBoneRegistry はBoneRegistryを生成する。
func NewBoneRegistry() *BoneRegistry {
	return &BoneRegistry{segments: map[humanoid.BoneName][]IBone{}}
}

// Register は標準ボーン名へ区間を登録する。
func (r *BoneRegistry) Register(name humanoid.BoneName, segments ...IBone) error {
	if !name.IsValid() {
		return fmt.Errorf("humanoidボーン名が不正です: %s", name)
	}
	for _, segment := range segments {
		if segment == nil {
			return fmt.Errorf("ボーン区間が未設定です: %s", name)
		}
	}
	r.segments[name] = append(r.segments[name], segments...)
	return nil
}

// Segments は区間一覧を返す。
func (r *BoneRegistry) Segments(name humanoid.BoneName) []IBone {
	if r == nil {
		return nil
	}
	return r.segments[name]
}

// Get は代表ハンドルを返す。
func (r *BoneRegistry) Get(name humanoid.BoneName) (IBone, bool) {
	segments := r.Segments(name)
	if len(segments) == 0 {
		return nil, false
	}
	return segments[0], true
}

// Has は区間を1つ以上持つか判定する。
func (r *BoneRegistry) Has(name humanoid.BoneName) bool {
	return len(r.Segments(name)) > 0
}

// Names は区間を持つ標準ボーン名を辞書順で返す。
func (r *BoneRegistry) Names() []humanoid.BoneName {
	if r == nil {
		return nil
	}
	names := make([]humanoid.BoneName, 0, len(r.segments))
	for name, segments := range r.segments {
		if len(segments) == 0 {
			continue
		}
		names = append(names, name)
	}
	humanoid.SortBoneNames(names)
	return names
}

// Len は区間を持つ標準ボーン数を返す。
func (r *BoneRegistry) Len() int {
	return len(r.Names())
}

// CanonicalNameOf は生ボーン名に対応する標準ボーン名を返す。
func (r *BoneRegistry) CanonicalNameOf(rawName string) (humanoid.BoneName, bool) {
	for _, name := range r.Names() {
		if bone, ok := r.Get(name); ok && bone.Name() == rawName {
			return name, true
		}
	}
	return "", false
}
