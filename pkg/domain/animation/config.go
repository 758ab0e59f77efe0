// 指示: miu200521358
// Package animation はリグアニメーションの設定値を提供する。
package animation

import (
	"fmt"
	"math"

	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/limit"
	"github.com/tiendc/go-deepcopy"
)

const (
	// DEFAULT_GAIN は1tickあたりの目標への補間率。
	DEFAULT_GAIN = 0.1
	// DEFAULT_CONVERGENCE_EPSILON は収束とみなす軸ごとの角度差(ラジアン)。
	DEFAULT_CONVERGENCE_EPSILON = 0.01
	// DEFAULT_SAMPLE_HALF_RANGE は目標角度の抽選幅(±ラジアン)。
	DEFAULT_SAMPLE_HALF_RANGE = math.Pi / 2
	// DEFAULT_GRAVITY_ACCEL は1tickあたりの重力加速度。
	DEFAULT_GRAVITY_ACCEL = 0.01
)

// PlacementConfig は接続時の初期配置を表す。
type PlacementConfig struct {
	Enabled   bool    `yaml:"enabled" json:"enabled"`
	FacingYaw float64 `yaml:"facingYaw" json:"facingYaw"`
	OffsetX   float64 `yaml:"offsetX" json:"offsetX"`
}

// WanderConfig はルートの x 方向往復移動を表す。
type WanderConfig struct {
	Enabled bool    `yaml:"enabled" json:"enabled"`
	Speed   float64 `yaml:"speed" json:"speed"`
	MinX    float64 `yaml:"minX" json:"minX"`
	MaxX    float64 `yaml:"maxX" json:"maxX"`
}

// AnimatorConfig はリグアニメーションの設定を表す。
type AnimatorConfig struct {
	Gain               float64             `yaml:"gain" json:"gain"`
	ConvergenceEpsilon float64             `yaml:"convergenceEpsilon" json:"convergenceEpsilon"`
	SampleHalfRange    float64             `yaml:"sampleHalfRange" json:"sampleHalfRange"`
	GravityAccel       float64             `yaml:"gravityAccel" json:"gravityAccel"`
	Seed               uint64              `yaml:"seed" json:"seed"`
	RequiredBones      []humanoid.BoneName `yaml:"requiredBones" json:"requiredBones"`
	Placement          PlacementConfig     `yaml:"placement" json:"placement"`
	Wander             WanderConfig        `yaml:"wander" json:"wander"`
	// Limits は deepcopy では複製せず Clone で個別に複製する。
	Limits *limit.JointLimitTable `yaml:"-" json:"-" copy:"-"`
}

// defaultAnimatorConfig は既定設定の原本。
var defaultAnimatorConfig = AnimatorConfig{
	Gain:               DEFAULT_GAIN,
	ConvergenceEpsilon: DEFAULT_CONVERGENCE_EPSILON,
	SampleHalfRange:    DEFAULT_SAMPLE_HALF_RANGE,
	GravityAccel:       DEFAULT_GRAVITY_ACCEL,
	Seed:               1,
	RequiredBones:      []humanoid.BoneName{humanoid.HIPS},
	Placement: PlacementConfig{
		Enabled:   true,
		FacingYaw: 1,
		OffsetX:   -1,
	},
	Wander: WanderConfig{
		Enabled: false,
		Speed:   0.01,
		MinX:    -5,
		MaxX:    0,
	},
}

// DefaultAnimatorConfig は既定設定の独立した複製を返す。
func DefaultAnimatorConfig() *AnimatorConfig {
	config := &AnimatorConfig{}
	if err := deepcopy.Copy(config, &defaultAnimatorConfig); err != nil {
		panic(fmt.Sprintf("既定設定の複製に失敗しました: %v", err))
	}
	config.Limits = limit.DefaultJointLimitTable()
	return config
}

// Clone は独立した複製を返す。
func (c *AnimatorConfig) Clone() (*AnimatorConfig, error) {
	cloned := &AnimatorConfig{}
	if err := deepcopy.Copy(cloned, c); err != nil {
		return nil, fmt.Errorf("設定の複製に失敗しました: %w", err)
	}
	if c.Limits != nil {
		limits, err := c.Limits.Clone()
		if err != nil {
			return nil, err
		}
		cloned.Limits = limits
	}
	return cloned, nil
}

// Validate は設定値を検証する。
func (c *AnimatorConfig) Validate() error {
	if c.Gain <= 0 || c.Gain > 1 {
		return fmt.Errorf("gain は 0 より大きく 1 以下で指定してください: %v", c.Gain)
	}
	if c.ConvergenceEpsilon <= 0 {
		return fmt.Errorf("convergenceEpsilon は正の値で指定してください: %v", c.ConvergenceEpsilon)
	}
	if c.SampleHalfRange < 0 {
		return fmt.Errorf("sampleHalfRange は 0 以上で指定してください: %v", c.SampleHalfRange)
	}
	if c.GravityAccel < 0 {
		return fmt.Errorf("gravityAccel は 0 以上で指定してください: %v", c.GravityAccel)
	}
	for _, name := range c.RequiredBones {
		if !name.IsValid() {
			return fmt.Errorf("未知の必須ボーン名です: %s", name)
		}
	}
	if c.Wander.Enabled && c.Wander.MinX > c.Wander.MaxX {
		return fmt.Errorf("wander の範囲が不正です: [%v, %v]", c.Wander.MinX, c.Wander.MaxX)
	}
	if c.Limits == nil {
		return fmt.Errorf("可動域表が設定されていません")
	}
	return nil
}
