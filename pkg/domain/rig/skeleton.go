// 指示: miu200521358
package rig

import (
	"fmt"
	"sort"
	"strings"

	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
)

// Skeleton は名前付きBoneの集合を表す。
type Skeleton struct {
	bones map[string]*Bone
	order []string
}

// NewSkeleton はSkeletonを生成する。
func NewSkeleton() *Skeleton {
	return &Skeleton{bones: map[string]*Bone{}}
}

// AddBone はBoneを追加する。parentName が空の場合はルートとして追加する。
func (s *Skeleton) AddBone(
	name string,
	parentName string,
	position mmath.Vec3,
	rotation mmath.Quaternion,
) (*Bone, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("ボーン名が未指定です")
	}
	if _, exists := s.bones[name]; exists {
		return nil, fmt.Errorf("ボーン名が重複しています: %s", name)
	}
	bone := NewBone(name, position, rotation)
	if parentName != "" {
		parent, exists := s.bones[parentName]
		if !exists {
			return nil, fmt.Errorf("親ボーンが見つかりません: %s (子=%s)", parentName, name)
		}
		bone.parent = parent
		parent.children = append(parent.children, bone)
	}
	s.bones[name] = bone
	s.order = append(s.order, name)
	return bone, nil
}

// MustAddBone はAddBoneに失敗した場合にpanicする。テスト・固定データ構築用。
func (s *Skeleton) MustAddBone(name string, parentName string, position mmath.Vec3) *Bone {
	bone, err := s.AddBone(name, parentName, position, mmath.NewQuaternion())
	if err != nil {
		panic(err)
	}
	return bone
}

// Bone は名前からBoneを取得する。
func (s *Skeleton) Bone(name string) (*Bone, bool) {
	bone, exists := s.bones[name]
	return bone, exists
}

// Len はBone数を返す。
func (s *Skeleton) Len() int {
	return len(s.bones)
}

// Names は追加順のBone名一覧を返す。
func (s *Skeleton) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Roots は親を持たないBoneを名前順で返す。
func (s *Skeleton) Roots() []*Bone {
	roots := make([]*Bone, 0)
	for _, bone := range s.bones {
		if bone.parent == nil {
			roots = append(roots, bone)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].name < roots[j].name })
	return roots
}
