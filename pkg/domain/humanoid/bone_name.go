// 指示: miu200521358
// Package humanoid はVRM humanoid の標準ボーン名を提供する。
package humanoid

import (
	"sort"
	"strings"
)

// BoneName はhumanoid標準ボーン名を表す。
type BoneName string

const (
	HIPS        BoneName = "hips"
	SPINE       BoneName = "spine"
	CHEST       BoneName = "chest"
	UPPER_CHEST BoneName = "upperChest"
	NECK        BoneName = "neck"
	HEAD        BoneName = "head"
	LEFT_EYE    BoneName = "leftEye"
	RIGHT_EYE   BoneName = "rightEye"
	JAW         BoneName = "jaw"

	LEFT_UPPER_LEG  BoneName = "leftUpperLeg"
	LEFT_LOWER_LEG  BoneName = "leftLowerLeg"
	LEFT_FOOT       BoneName = "leftFoot"
	LEFT_TOES       BoneName = "leftToes"
	RIGHT_UPPER_LEG BoneName = "rightUpperLeg"
	RIGHT_LOWER_LEG BoneName = "rightLowerLeg"
	RIGHT_FOOT      BoneName = "rightFoot"
	RIGHT_TOES      BoneName = "rightToes"

	LEFT_SHOULDER   BoneName = "leftShoulder"
	LEFT_UPPER_ARM  BoneName = "leftUpperArm"
	LEFT_LOWER_ARM  BoneName = "leftLowerArm"
	LEFT_HAND       BoneName = "leftHand"
	RIGHT_SHOULDER  BoneName = "rightShoulder"
	RIGHT_UPPER_ARM BoneName = "rightUpperArm"
	RIGHT_LOWER_ARM BoneName = "rightLowerArm"
	RIGHT_HAND      BoneName = "rightHand"

	LEFT_THUMB_METACARPAL    BoneName = "leftThumbMetacarpal"
	LEFT_THUMB_PROXIMAL      BoneName = "leftThumbProximal"
	LEFT_THUMB_DISTAL        BoneName = "leftThumbDistal"
	LEFT_INDEX_PROXIMAL      BoneName = "leftIndexProximal"
	LEFT_INDEX_INTERMEDIATE  BoneName = "leftIndexIntermediate"
	LEFT_INDEX_DISTAL        BoneName = "leftIndexDistal"
	LEFT_MIDDLE_PROXIMAL     BoneName = "leftMiddleProximal"
	LEFT_MIDDLE_INTERMEDIATE BoneName = "leftMiddleIntermediate"
	LEFT_MIDDLE_DISTAL       BoneName = "leftMiddleDistal"
	LEFT_RING_PROXIMAL       BoneName = "leftRingProximal"
	LEFT_RING_INTERMEDIATE   BoneName = "leftRingIntermediate"
	LEFT_RING_DISTAL         BoneName = "leftRingDistal"
	LEFT_LITTLE_PROXIMAL     BoneName = "leftLittleProximal"
	LEFT_LITTLE_INTERMEDIATE BoneName = "leftLittleIntermediate"
	LEFT_LITTLE_DISTAL       BoneName = "leftLittleDistal"

	RIGHT_THUMB_METACARPAL    BoneName = "rightThumbMetacarpal"
	RIGHT_THUMB_PROXIMAL      BoneName = "rightThumbProximal"
	RIGHT_THUMB_DISTAL        BoneName = "rightThumbDistal"
	RIGHT_INDEX_PROXIMAL      BoneName = "rightIndexProximal"
	RIGHT_INDEX_INTERMEDIATE  BoneName = "rightIndexIntermediate"
	RIGHT_INDEX_DISTAL        BoneName = "rightIndexDistal"
	RIGHT_MIDDLE_PROXIMAL     BoneName = "rightMiddleProximal"
	RIGHT_MIDDLE_INTERMEDIATE BoneName = "rightMiddleIntermediate"
	RIGHT_MIDDLE_DISTAL       BoneName = "rightMiddleDistal"
	RIGHT_RING_PROXIMAL       BoneName = "rightRingProximal"
	RIGHT_RING_INTERMEDIATE   BoneName = "rightRingIntermediate"
	RIGHT_RING_DISTAL         BoneName = "rightRingDistal"
	RIGHT_LITTLE_PROXIMAL     BoneName = "rightLittleProximal"
	RIGHT_LITTLE_INTERMEDIATE BoneName = "rightLittleIntermediate"
	RIGHT_LITTLE_DISTAL       BoneName = "rightLittleDistal"
)

// allBoneNames は標準ボーン名の一覧を保持する。
var allBoneNames = []BoneName{
	HIPS, SPINE, CHEST, UPPER_CHEST, NECK, HEAD, LEFT_EYE, RIGHT_EYE, JAW,
	LEFT_UPPER_LEG, LEFT_LOWER_LEG, LEFT_FOOT, LEFT_TOES,
	RIGHT_UPPER_LEG, RIGHT_LOWER_LEG, RIGHT_FOOT, RIGHT_TOES,
	LEFT_SHOULDER, LEFT_UPPER_ARM, LEFT_LOWER_ARM, LEFT_HAND,
	RIGHT_SHOULDER, RIGHT_UPPER_ARM, RIGHT_LOWER_ARM, RIGHT_HAND,
	LEFT_THUMB_METACARPAL, LEFT_THUMB_PROXIMAL, LEFT_THUMB_DISTAL,
	LEFT_INDEX_PROXIMAL, LEFT_INDEX_INTERMEDIATE, LEFT_INDEX_DISTAL,
	LEFT_MIDDLE_PROXIMAL, LEFT_MIDDLE_INTERMEDIATE, LEFT_MIDDLE_DISTAL,
	LEFT_RING_PROXIMAL, LEFT_RING_INTERMEDIATE, LEFT_RING_DISTAL,
	LEFT_LITTLE_PROXIMAL, LEFT_LITTLE_INTERMEDIATE, LEFT_LITTLE_DISTAL,
	RIGHT_THUMB_METACARPAL, RIGHT_THUMB_PROXIMAL, RIGHT_THUMB_DISTAL,
	RIGHT_INDEX_PROXIMAL, RIGHT_INDEX_INTERMEDIATE, RIGHT_INDEX_DISTAL,
	RIGHT_MIDDLE_PROXIMAL, RIGHT_MIDDLE_INTERMEDIATE, RIGHT_MIDDLE_DISTAL,
	RIGHT_RING_PROXIMAL, RIGHT_RING_INTERMEDIATE, RIGHT_RING_DISTAL,
	RIGHT_LITTLE_PROXIMAL, RIGHT_LITTLE_INTERMEDIATE, RIGHT_LITTLE_DISTAL,
}

// DefaultRequiredBoneNames は階層構築に最低限必要なボーン名を保持する。
var DefaultRequiredBoneNames = []BoneName{HIPS}

// VrmRequiredBoneNames はVRM 1.0 で必須とされるボーン名を保持する。
var VrmRequiredBoneNames = []BoneName{
	HIPS, SPINE, HEAD,
	LEFT_UPPER_LEG, LEFT_LOWER_LEG, LEFT_FOOT,
	RIGHT_UPPER_LEG, RIGHT_LOWER_LEG, RIGHT_FOOT,
	LEFT_UPPER_ARM, LEFT_LOWER_ARM, LEFT_HAND,
	RIGHT_UPPER_ARM, RIGHT_LOWER_ARM, RIGHT_HAND,
}

// lowerBoneNames は小文字名から標準ボーン名への辞書を保持する。
var lowerBoneNames = buildLowerBoneNames()

// String は文字列表現を返す。
func (n BoneName) String() string {
	return string(n)
}

// IsValid は標準ボーン名か判定する。
func (n BoneName) IsValid() bool {
	resolved, ok := lowerBoneNames[strings.ToLower(string(n))]
	return ok && resolved == n
}

// AllBoneNames は標準ボーン名の一覧を返す。
func AllBoneNames() []BoneName {
	names := make([]BoneName, len(allBoneNames))
	copy(names, allBoneNames)
	return names
}

// ParseBoneName は大文字小文字を無視して標準ボーン名を解決する。
func ParseBoneName(name string) (BoneName, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", false
	}
	boneName, ok := lowerBoneNames[key]
	return boneName, ok
}

// SortBoneNames はボーン名を辞書順に並べる。
func SortBoneNames(names []BoneName) {
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
}

// buildLowerBoneNames は小文字名辞書を構築する。
func buildLowerBoneNames() map[string]BoneName {
	names := make(map[string]BoneName, len(allBoneNames))
	for _, name := range allBoneNames {
		names[strings.ToLower(string(name))] = name
	}
	return names
}
