package logger

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeQuiet = "quiet"
	ModeDev   = "dev"
	ModeProd  = "prod"
)

type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New builds a logger writing to w. Quiet mode only lets warnings through so
// command output stays readable.
func New(mode string, w io.Writer) *Logger {
	var encoderCfg zapcore.EncoderConfig
	var level zapcore.Level

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeProd, "production":
		encoderCfg = zap.NewProductionEncoderConfig()
		level = zapcore.InfoLevel
	case ModeDev, "development", "debug":
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		level = zapcore.DebugLevel
	default:
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		level = zapcore.WarnLevel
	}

	var encoder zapcore.Encoder
	if level == zapcore.InfoLevel {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}

func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}

func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}

// OrNop returns l, or a no-op logger when l is nil.
func (l *Logger) OrNop() *Logger {
	if l == nil {
		return NewNop()
	}
	return l
}
