// 指示: miu200521358
package moutput

import (
	"github.com/miu200521358/mu_vrmanim/pkg/domain/animation"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/rig"
)

// RigData は読み込んだリグを表す。
type RigData struct {
	Path     string
	Skeleton *rig.Skeleton
	Registry *rig.BoneRegistry
}

// IRigReader はリグ定義の読み込み契約を表す。
type IRigReader interface {
	// CanLoad は読み込み可能な拡張子か判定する。
	CanLoad(path string) bool
	// LoadRig はリグ定義を読み込む。
	LoadRig(path string) (*RigData, error)
}

// IConfigReader はアニメーション設定の読み込み契約を表す。
type IConfigReader interface {
	// CanLoad は読み込み可能な拡張子か判定する。
	CanLoad(path string) bool
	// LoadConfig は既定値に設定ファイルの内容を重ねた設定を返す。
	LoadConfig(path string) (*animation.AnimatorConfig, error)
}
