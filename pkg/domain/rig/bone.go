// 指示: miu200521358
// Package rig はホストが所有するボーン変換への参照契約と、その参照実装を提供する。
package rig

import "github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"

// IBone はホストが所有するボーン変換への参照を表す。
// 位置・回転はローカル値、WorldPosition は祖先の変換を反映した値を返す。
type IBone interface {
	// Name はリグ内で一意な生ボーン名を返す。
	Name() string
	// Position はローカル位置を返す。
	Position() mmath.Vec3
	// SetPosition はローカル位置を設定する。
	SetPosition(position mmath.Vec3)
	// Rotation はローカル回転を返す。
	Rotation() mmath.Quaternion
	// SetRotation はローカル回転を設定する。
	SetRotation(rotation mmath.Quaternion)
	// ParentBone は親ボーンを返す。親がない場合は nil を返す。
	ParentBone() IBone
	// WorldPosition はワールド位置を返す。
	WorldPosition() mmath.Vec3
}

// Bone はメモリ上で完結する IBone 実装を表す。
type Bone struct {
	name     string
	position mmath.Vec3
	rotation mmath.Quaternion
	parent   *Bone
	children []*Bone
}

// NewBone はBoneを生成する。
func NewBone(name string, position mmath.Vec3, rotation mmath.Quaternion) *Bone {
	return &Bone{
		name:     name,
		position: position,
		rotation: rotation,
	}
}

// Name は生ボーン名を返す。
func (b *Bone) Name() string {
	return b.name
}

// Position はローカル位置を返す。
func (b *Bone) Position() mmath.Vec3 {
	return b.position
}

// SetPosition はローカル位置を設定する。
func (b *Bone) SetPosition(position mmath.Vec3) {
	b.position = position
}

// Rotation はローカル回転を返す。
func (b *Bone) Rotation() mmath.Quaternion {
	return b.rotation
}

// SetRotation はローカル回転を設定する。
func (b *Bone) SetRotation(rotation mmath.Quaternion) {
	b.rotation = rotation
}

// ParentBone は親ボーンを返す。
func (b *Bone) ParentBone() IBone {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

// Parent は親Boneを返す。
func (b *Bone) Parent() *Bone {
	return b.parent
}

// Children は子Bone一覧を返す。
func (b *Bone) Children() []*Bone {
	return b.children
}

// WorldPosition はワールド位置を返す。
func (b *Bone) WorldPosition() mmath.Vec3 {
	position, _ := b.worldTransform()
	return position
}

// WorldRotation はワールド回転を返す。
func (b *Bone) WorldRotation() mmath.Quaternion {
	_, rotation := b.worldTransform()
	return rotation
}

// worldTransform は親方向へ辿ってワールド変換を合成する。
func (b *Bone) worldTransform() (mmath.Vec3, mmath.Quaternion) {
	if b.parent == nil {
		return b.position, b.rotation
	}
	parentPosition, parentRotation := b.parent.worldTransform()
	position := parentPosition.Added(parentRotation.MulVec3(b.position))
	return position, parentRotation.Muled(b.rotation)
}
