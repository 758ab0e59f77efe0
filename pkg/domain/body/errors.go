// 指示: miu200521358
package body

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// HierarchyErrorKind は階層構築エラーの種別を表す。
type HierarchyErrorKind string

const (
	// HierarchyErrorMissingRequiredBone は必須ボーン欠落を表す。
	HierarchyErrorMissingRequiredBone HierarchyErrorKind = "missing_required_bone"
	// HierarchyErrorUnreconciled はルートを1つへ統合できないことを表す。
	HierarchyErrorUnreconciled HierarchyErrorKind = "unreconciled"
	// HierarchyErrorCycle は親子関係の循環(同名ノードの重複)を表す。
	HierarchyErrorCycle HierarchyErrorKind = "cycle"
)

// HierarchyError は階層構築の失敗を表す。
type HierarchyError struct {
	Kind  HierarchyErrorKind
	Names []string
}

// NewHierarchyError はスタック付きのHierarchyErrorを生成する。
func NewHierarchyError(kind HierarchyErrorKind, names []string) error {
	copied := make([]string, len(names))
	copy(copied, names)
	return errors.WithStack(&HierarchyError{Kind: kind, Names: copied})
}

// Error はエラーメッセージを返す。
func (e *HierarchyError) Error() string {
	joined := strings.Join(e.Names, ", ")
	switch e.Kind {
	case HierarchyErrorMissingRequiredBone:
		return fmt.Sprintf("必須ボーンが見つかりません: [%s]", joined)
	case HierarchyErrorUnreconciled:
		return fmt.Sprintf("ボーン階層を単一ルートへ統合できません: roots=[%s]", joined)
	case HierarchyErrorCycle:
		return fmt.Sprintf("ボーン階層に循環があります: [%s]", joined)
	default:
		return fmt.Sprintf("ボーン階層エラー(%s): [%s]", e.Kind, joined)
	}
}

// IsHierarchyError はHierarchyErrorか判定する。
func IsHierarchyError(err error) bool {
	_, ok := AsHierarchyError(err)
	return ok
}

// AsHierarchyError はHierarchyErrorを取り出す。
func AsHierarchyError(err error) (*HierarchyError, bool) {
	var hierarchyErr *HierarchyError
	if errors.As(err, &hierarchyErr) {
		return hierarchyErr, true
	}
	return nil, false
}
