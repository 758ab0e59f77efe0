// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_vrmanim/pkg/domain/animation"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmanim/pkg/usecase/port/moutput"
)

// AnimatorConfig はリグアニメーション設定を表す。
type AnimatorConfig = animation.AnimatorConfig

// RigData は読み込んだリグを表す。
type RigData = moutput.RigData

// EdgeDiagnostic は補助点の親子1組分の診断値を表す。
type EdgeDiagnostic struct {
	Parent    string     `json:"parent"`
	Child     string     `json:"child"`
	Direction mmath.Vec3 `json:"direction"`
	Candidate mmath.Vec3 `json:"candidate"`
	// Stretch は補助点と親の距離から静止距離を引いた値。
	Stretch float64 `json:"stretch"`
}

// TickReport は1tick分の処理結果を表す。
type TickReport struct {
	Tick            int              `json:"tick"`
	Attached        bool             `json:"attached"`
	RootName        string           `json:"rootName,omitempty"`
	RootPosition    mmath.Vec3       `json:"rootPosition"`
	HipsPosition    mmath.Vec3       `json:"hipsPosition"`
	GravityVelocity float64          `json:"gravityVelocity"`
	Fell            bool             `json:"fell"`
	GroundPush      float64          `json:"groundPush"`
	PoseRequested   bool             `json:"poseRequested"`
	Retargeted      []string         `json:"retargeted,omitempty"`
	MirrorCount     int              `json:"mirrorCount"`
	SkippedEdges    []string         `json:"skippedEdges,omitempty"`
	Diagnostics     []EdgeDiagnostic `json:"-"`
}
