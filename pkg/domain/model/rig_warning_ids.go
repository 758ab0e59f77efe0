// 指示: miu200521358
package model

import "sort"

const (
	// RigWarningMissingLimitEntry は可動域未設定のためポーズ対象外となったボーンの警告。
	RigWarningMissingLimitEntry = "RigWarningMissingLimitEntry"
	// RigWarningLimitBoneNotInRig は可動域表にあるがリグに存在しないボーンの警告。
	RigWarningLimitBoneNotInRig = "RigWarningLimitBoneNotInRig"
	// RigWarningDegenerateDistance は親子が同一位置にあり静止距離が0となった警告。
	RigWarningDegenerateDistance = "RigWarningDegenerateDistance"
	// RigWarningDegenerateDirection は補助点の方向が求まらず更新を見送った警告。
	RigWarningDegenerateDirection = "RigWarningDegenerateDirection"
	// RigWarningGroundBoneMissing は接地判定対象のボーンが1つもない警告。
	RigWarningGroundBoneMissing = "RigWarningGroundBoneMissing"
)

// WarningSet は警告IDの集合を表す。
type WarningSet map[string]struct{}

// NewWarningSet はWarningSetを生成する。
func NewWarningSet() WarningSet {
	return WarningSet{}
}

// Add は警告IDを追加し、新規追加の場合に true を返す。
func (s WarningSet) Add(warningID string) bool {
	if warningID == "" {
		return false
	}
	if _, exists := s[warningID]; exists {
		return false
	}
	s[warningID] = struct{}{}
	return true
}

// Has は警告IDを含むか判定する。
func (s WarningSet) Has(warningID string) bool {
	_, exists := s[warningID]
	return exists
}

// Sorted は警告IDを辞書順で返す。
func (s WarningSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for warningID := range s {
		ids = append(ids, warningID)
	}
	sort.Strings(ids)
	return ids
}
