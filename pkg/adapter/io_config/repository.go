// 指示: miu200521358
// Package io_config はアニメーション設定YAMLを読み込む。
package io_config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/miu200521358/mu_vrmanim/pkg/adapter/io_common"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/animation"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/limit"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmanim/pkg/shared/logging"
	"gopkg.in/Knetic/govaluate.v3"
	"gopkg.in/yaml.v3"
)

const (
	// LIMITS_MODE_MERGE は既定の可動域表へ上書きする。
	LIMITS_MODE_MERGE = "merge"
	// LIMITS_MODE_REPLACE は可動域表を丸ごと差し替える。
	LIMITS_MODE_REPLACE = "replace"
)

// expressionParameters は可動域式で使える変数。値はπ単位。
var expressionParameters = map[string]any{
	"deg": 1.0 / 180.0,
}

// configDocument は設定ファイルのうち可動域に関する要素を表す。
type configDocument struct {
	LimitsMode string                   `yaml:"limitsMode"`
	Limits     map[string]limitDocument `yaml:"limits"`
}

// limitDocument は1ボーン分の可動域定義を表す。
type limitDocument struct {
	PrimaryAxis string        `yaml:"primaryAxis"`
	X           rangeDocument `yaml:"x"`
	Y           rangeDocument `yaml:"y"`
	Z           rangeDocument `yaml:"z"`
}

// rangeDocument は式で書かれた可動域を表す。
type rangeDocument struct {
	Min expression `yaml:"min"`
	Max expression `yaml:"max"`
}

// expression は数値または式のスカラー値を表す。
type expression string

// UnmarshalYAML は数値・文字列どちらのスカラーも式として受け取る。
func (e *expression) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return io_common.NewIoParseFailed("可動域はスカラー値で指定してください (line=%d)", nil, node.Line)
	}
	*e = expression(node.Value)
	return nil
}

// ConfigRepository は設定ファイルの読み込みを表す。
type ConfigRepository struct{}

// NewConfigRepository はConfigRepositoryを生成する。
func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *ConfigRepository) CanLoad(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// LoadConfig は既定設定に設定ファイルの値を重ねて返す。
func (r *ConfigRepository) LoadConfig(path string) (*animation.AnimatorConfig, error) {
	if !r.CanLoad(path) {
		return nil, io_common.NewIoExtInvalid(path, nil)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, io_common.NewIoFileNotFound(path, err)
		}
		return nil, io_common.NewIoParseFailed("設定ファイルの読み取りに失敗しました", err)
	}
	return DecodeConfig(b)
}

// DecodeConfig はYAMLを既定設定へ重ねて解析する。
func DecodeConfig(b []byte) (*animation.AnimatorConfig, error) {
	config := animation.DefaultAnimatorConfig()
	if err := yaml.Unmarshal(b, config); err != nil {
		return nil, io_common.NewIoParseFailed("設定YAMLの解析に失敗しました", err)
	}
	doc := &configDocument{}
	if err := yaml.Unmarshal(b, doc); err != nil {
		return nil, io_common.NewIoParseFailed("設定YAMLの可動域解析に失敗しました", err)
	}

	limits, err := buildLimitTable(doc, config.Limits)
	if err != nil {
		return nil, err
	}
	config.Limits = limits
	if err := config.Validate(); err != nil {
		return nil, io_common.NewIoParseFailed("設定値が不正です", err)
	}
	logConfigDebug("設定解析完了: limitsMode=%s limits=%d", doc.LimitsMode, limits.Len())
	return config, nil
}

// buildLimitTable は可動域定義を既定表へ反映する。
func buildLimitTable(doc *configDocument, defaults *limit.JointLimitTable) (*limit.JointLimitTable, error) {
	var table *limit.JointLimitTable
	switch strings.ToLower(doc.LimitsMode) {
	case "", LIMITS_MODE_MERGE:
		cloned, err := defaults.Clone()
		if err != nil {
			return nil, io_common.NewIoParseFailed("可動域表の複製に失敗しました", err)
		}
		table = cloned
	case LIMITS_MODE_REPLACE:
		table = limit.NewJointLimitTable()
	default:
		return nil, io_common.NewIoFormatNotSupported("未対応の limitsMode です: %s", nil, doc.LimitsMode)
	}

	names := make([]string, 0, len(doc.Limits))
	for name := range doc.Limits {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		boneName, ok := humanoid.ParseBoneName(name)
		if !ok {
			return nil, io_common.NewIoFormatNotSupported("未知の humanoid ボーン名です: %s", nil, name)
		}
		jointLimit, err := evaluateLimit(name, doc.Limits[name])
		if err != nil {
			return nil, err
		}
		if err := table.Set(boneName, jointLimit); err != nil {
			return nil, io_common.NewIoParseFailed("limits.%s の登録に失敗しました", err, name)
		}
	}
	return table, nil
}

// evaluateLimit は式で書かれた可動域を数値化する。
func evaluateLimit(name string, doc limitDocument) (limit.JointLimit, error) {
	jointLimit := limit.JointLimit{PrimaryAxis: mmath.Axis(strings.ToLower(doc.PrimaryAxis))}
	for _, axis := range []struct {
		label  string
		source rangeDocument
		target *limit.Range
	}{
		{"x", doc.X, &jointLimit.X},
		{"y", doc.Y, &jointLimit.Y},
		{"z", doc.Z, &jointLimit.Z},
	} {
		minValue, err := evaluateExpression(axis.source.Min)
		if err != nil {
			return jointLimit, io_common.NewIoParseFailed("limits.%s.%s.min の評価に失敗しました", err, name, axis.label)
		}
		maxValue, err := evaluateExpression(axis.source.Max)
		if err != nil {
			return jointLimit, io_common.NewIoParseFailed("limits.%s.%s.max の評価に失敗しました", err, name, axis.label)
		}
		*axis.target = limit.NewRange(minValue, maxValue)
	}
	return jointLimit, nil
}

// evaluateExpression は式を評価する。空文字は 0 とみなす。
func evaluateExpression(expr expression) (float64, error) {
	source := strings.TrimSpace(string(expr))
	if source == "" {
		return 0, nil
	}
	evaluable, err := govaluate.NewEvaluableExpression(source)
	if err != nil {
		return 0, err
	}
	result, err := evaluable.Evaluate(expressionParameters)
	if err != nil {
		return 0, err
	}
	value, ok := result.(float64)
	if !ok {
		return 0, io_common.NewIoParseFailed("式の結果が数値ではありません: %s", nil, source)
	}
	return value, nil
}

// logConfigDebug は設定読み込みのデバッグログを出力する。
func logConfigDebug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Debug(format, params...)
}
