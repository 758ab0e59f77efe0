// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_vrmanim/pkg/shared/logging"

// logAnimInfo はリグアニメーションのINFOログを出力する。
func logAnimInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}

// logAnimDebug はリグアニメーションのDEBUGログを出力する。
func logAnimDebug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil || !logger.IsDebugEnabled() {
		return
	}
	logger.Debug(format, params...)
}

// logAnimWarn はリグアニメーションのWARNログを出力する。
func logAnimWarn(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Warn(format, params...)
}
