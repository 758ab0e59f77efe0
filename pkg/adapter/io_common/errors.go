// 指示: miu200521358
// Package io_common は入出力アダプタ共通のエラーを提供する。
package io_common

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	// IO_FILE_NOT_FOUND_ID はファイル未検出のエラーID。
	IO_FILE_NOT_FOUND_ID = "14101"
	// IO_EXT_INVALID_ID は拡張子不正のエラーID。
	IO_EXT_INVALID_ID = "14102"
	// IO_PARSE_FAILED_ID は解析失敗のエラーID。
	IO_PARSE_FAILED_ID = "14103"
	// IO_FORMAT_NOT_SUPPORTED_ID は未対応形式のエラーID。
	IO_FORMAT_NOT_SUPPORTED_ID = "14104"
)

// IoError はエラーID付きの入出力エラーを表す。
type IoError struct {
	ErrorID string
	Message string
	cause   error
}

// Error はエラーメッセージを返す。
func (e *IoError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.ErrorID, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.ErrorID, e.Message, e.cause)
}

// Cause は原因エラーを返す。
func (e *IoError) Cause() error {
	return e.cause
}

// Unwrap は原因エラーを返す。
func (e *IoError) Unwrap() error {
	return e.cause
}

// newIoError はスタック付きのIoErrorを生成する。
func newIoError(errorID string, cause error, format string, params ...any) error {
	return errors.WithStack(&IoError{
		ErrorID: errorID,
		Message: fmt.Sprintf(format, params...),
		cause:   cause,
	})
}

// NewIoFileNotFound はファイル未検出エラーを生成する。
func NewIoFileNotFound(path string, cause error) error {
	return newIoError(IO_FILE_NOT_FOUND_ID, cause, "ファイルが見つかりません: %s", path)
}

// NewIoExtInvalid は拡張子不正エラーを生成する。
func NewIoExtInvalid(path string, cause error) error {
	return newIoError(IO_EXT_INVALID_ID, cause, "読み込めない拡張子です: %s", path)
}

// NewIoParseFailed は解析失敗エラーを生成する。
func NewIoParseFailed(format string, cause error, params ...any) error {
	return newIoError(IO_PARSE_FAILED_ID, cause, format, params...)
}

// NewIoFormatNotSupported は未対応形式エラーを生成する。
func NewIoFormatNotSupported(format string, cause error, params ...any) error {
	return newIoError(IO_FORMAT_NOT_SUPPORTED_ID, cause, format, params...)
}

// ExtractErrorID はエラー連鎖からエラーIDを取り出す。見つからない場合は空文字を返す。
func ExtractErrorID(err error) string {
	var ioErr *IoError
	if errors.As(err, &ioErr) {
		return ioErr.ErrorID
	}
	return ""
}
