// 指示: miu200521358
// Package logging はプロセス共通のロガーを提供する。
package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel はログレベルを表す。
type LogLevel int

const (
	LOG_LEVEL_DEBUG LogLevel = iota
	LOG_LEVEL_INFO
	LOG_LEVEL_WARN
	LOG_LEVEL_ERROR
)

// zapLevel はzapのレベルへ変換する。
func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LOG_LEVEL_DEBUG:
		return zapcore.DebugLevel
	case LOG_LEVEL_WARN:
		return zapcore.WarnLevel
	case LOG_LEVEL_ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ILogger はログ出力契約を表す。
type ILogger interface {
	Debug(format string, params ...any)
	Info(format string, params ...any)
	Warn(format string, params ...any)
	Error(format string, params ...any)
	SetLevel(level LogLevel)
	IsDebugEnabled() bool
	MessageBuffer() *MessageBuffer
	Sync() error
}

// Logger はzapを使うILogger実装を表す。
type Logger struct {
	sugar  *zap.SugaredLogger
	level  zap.AtomicLevel
	buffer *MessageBuffer
}

// NewLogger はLoggerを生成する。sink が nil の場合は標準エラーへ出力する。
// 出力内容は直近の行に限りMessageBufferにも保持する。
func NewLogger(sink zapcore.WriteSyncer) *Logger {
	if sink == nil {
		sink = zapcore.Lock(os.Stderr)
	}
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	buffer := NewMessageBuffer()

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	bufferConfig := encoderConfig
	bufferConfig.LevelKey = ""

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(bufferConfig), zapcore.AddSync(buffer), level),
	)
	return &Logger{
		sugar:  zap.New(core).Sugar(),
		level:  level,
		buffer: buffer,
	}
}

// Debug はDEBUGログを出力する。
func (l *Logger) Debug(format string, params ...any) {
	l.sugar.Debugf(format, params...)
}

// Info はINFOログを出力する。
func (l *Logger) Info(format string, params ...any) {
	l.sugar.Infof(format, params...)
}

// Warn はWARNログを出力する。
func (l *Logger) Warn(format string, params ...any) {
	l.sugar.Warnf(format, params...)
}

// Error はERRORログを出力する。
func (l *Logger) Error(format string, params ...any) {
	l.sugar.Errorf(format, params...)
}

// SetLevel はログレベルを変更する。
func (l *Logger) SetLevel(level LogLevel) {
	l.level.SetLevel(level.zapLevel())
}

// IsDebugEnabled はDEBUGログが有効か判定する。
func (l *Logger) IsDebugEnabled() bool {
	return l.level.Enabled(zapcore.DebugLevel)
}

// MessageBuffer は出力済みメッセージを返す。
func (l *Logger) MessageBuffer() *MessageBuffer {
	return l.buffer
}

// Sync はバッファを書き出す。
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

var (
	defaultLoggerMu sync.RWMutex
	defaultLogger   ILogger = NewLogger(nil)
)

// DefaultLogger はプロセス共通のロガーを返す。
func DefaultLogger() ILogger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger はプロセス共通のロガーを差し替える。
func SetDefaultLogger(logger ILogger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// NewNopLogger は何も出力しないロガーを生成する。
func NewNopLogger() *Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return &Logger{
		sugar:  zap.NewNop().Sugar(),
		level:  level,
		buffer: NewMessageBuffer(),
	}
}
