// 指示: miu200521358
package limit

import (
	"fmt"

	"github.com/miu200521358/mu_vrmanim/pkg/domain/humanoid"
	"github.com/miu200521358/mu_vrmanim/pkg/domain/mmath"
	"github.com/tiendc/go-deepcopy"
)

// JointLimitTable は標準ボーン名から可動域への対応表を表す。
type JointLimitTable struct {
	limits map[humanoid.BoneName]JointLimit
}

// NewJointLimitTable は空のJointLimitTableを生成する。
func NewJointLimitTable() *JointLimitTable {
	return &JointLimitTable{limits: map[humanoid.BoneName]JointLimit{}}
}

// Set は可動域を登録する。未知のボーン名や不正な可動域はエラーを返す。
func (t *JointLimitTable) Set(name humanoid.BoneName, limit JointLimit) error {
	if !name.IsValid() {
		return fmt.Errorf("未知の標準ボーン名です: %s", name)
	}
	if err := limit.Validate(); err != nil {
		return fmt.Errorf("%s の可動域が不正です: %w", name, err)
	}
	t.limits[name] = limit
	return nil
}

// Get は可動域を返す。
func (t *JointLimitTable) Get(name humanoid.BoneName) (JointLimit, bool) {
	if t == nil {
		return JointLimit{}, false
	}
	limit, ok := t.limits[name]
	return limit, ok
}

// Has は可動域が登録済みか判定する。
func (t *JointLimitTable) Has(name humanoid.BoneName) bool {
	_, ok := t.Get(name)
	return ok
}

// Names は登録済みボーン名を辞書順で返す。
func (t *JointLimitTable) Names() []humanoid.BoneName {
	if t == nil {
		return nil
	}
	names := make([]humanoid.BoneName, 0, len(t.limits))
	for name := range t.limits {
		names = append(names, name)
	}
	humanoid.SortBoneNames(names)
	return names
}

// Len は登録件数を返す。
func (t *JointLimitTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.limits)
}

// Clone は独立した複製を返す。
func (t *JointLimitTable) Clone() (*JointLimitTable, error) {
	cloned := NewJointLimitTable()
	if t == nil {
		return cloned, nil
	}
	if err := deepcopy.Copy(&cloned.limits, t.limits); err != nil {
		return nil, fmt.Errorf("可動域表の複製に失敗しました: %w", err)
	}
	return cloned, nil
}

// defaultLimits は既定の可動域(π単位)。腕は x 軸、それ以外は y 軸を主軸とする。
var defaultLimits = map[humanoid.BoneName]JointLimit{
	humanoid.SPINE: {PrimaryAxis: mmath.AXIS_Y, X: NewRange(-0.1, 0.1), Y: NewRange(-0.1, 0.1), Z: NewRange(-0.05, 0.05)},
	humanoid.CHEST: {PrimaryAxis: mmath.AXIS_Y, X: NewRange(-0.05, 0.1), Y: NewRange(-0.1, 0.1), Z: NewRange(-0.05, 0.05)},
	humanoid.NECK:  {PrimaryAxis: mmath.AXIS_Y, X: NewRange(-0.1, 0.1), Y: NewRange(-0.2, 0.2), Z: NewRange(-0.1, 0.1)},
	humanoid.HEAD:  {PrimaryAxis: mmath.AXIS_Y, X: NewRange(-0.15, 0.15), Y: NewRange(-0.25, 0.25), Z: NewRange(-0.1, 0.1)},

	humanoid.LEFT_UPPER_ARM:  {PrimaryAxis: mmath.AXIS_X, X: NewRange(-0.25, 0.5), Y: NewRange(-0.25, 0.25), Z: NewRange(-0.25, 0.4)},
	humanoid.RIGHT_UPPER_ARM: {PrimaryAxis: mmath.AXIS_X, X: NewRange(-0.25, 0.5), Y: NewRange(-0.25, 0.25), Z: NewRange(-0.4, 0.25)},
	humanoid.LEFT_LOWER_ARM:  {PrimaryAxis: mmath.AXIS_X, X: NewRange(-0.25, 0.25), Y: NewRange(-0.5, 0), Z: NewRange(0, 0)},
	humanoid.RIGHT_LOWER_ARM: {PrimaryAxis: mmath.AXIS_X, X: NewRange(-0.25, 0.25), Y: NewRange(0, 0.5), Z: NewRange(0, 0)},
	humanoid.LEFT_HAND:       {PrimaryAxis: mmath.AXIS_X, X: NewRange(-0.1, 0.1), Y: NewRange(-0.1, 0.1), Z: NewRange(-0.25, 0.25)},
	humanoid.RIGHT_HAND:      {PrimaryAxis: mmath.AXIS_X, X: NewRange(-0.1, 0.1), Y: NewRange(-0.1, 0.1), Z: NewRange(-0.25, 0.25)},

	humanoid.LEFT_UPPER_LEG:  {PrimaryAxis: mmath.AXIS_Y, X: NewRange(-0.25, 0.1), Y: NewRange(-0.05, 0.05), Z: NewRange(-0.05, 0.05)},
	humanoid.RIGHT_UPPER_LEG: {PrimaryAxis: mmath.AXIS_Y, X: NewRange(-0.25, 0.1), Y: NewRange(-0.05, 0.05), Z: NewRange(-0.05, 0.05)},
	humanoid.LEFT_LOWER_LEG:  {PrimaryAxis: mmath.AXIS_Y, X: NewRange(0, 0.4), Y: NewRange(0, 0), Z: NewRange(0, 0)},
	humanoid.RIGHT_LOWER_LEG: {PrimaryAxis: mmath.AXIS_Y, X: NewRange(0, 0.4), Y: NewRange(0, 0), Z: NewRange(0, 0)},
	humanoid.LEFT_FOOT:       {PrimaryAxis: mmath.AXIS_Y, X: NewRange(-0.1, 0.1), Y: NewRange(0, 0), Z: NewRange(-0.05, 0.05)},
	humanoid.RIGHT_FOOT:      {PrimaryAxis: mmath.AXIS_Y, X: NewRange(-0.1, 0.1), Y: NewRange(0, 0), Z: NewRange(-0.05, 0.05)},
}

// DefaultJointLimitTable は既定の可動域表を生成する。
func DefaultJointLimitTable() *JointLimitTable {
	table := NewJointLimitTable()
	for name, limit := range defaultLimits {
		table.limits[name] = limit
	}
	return table
}
