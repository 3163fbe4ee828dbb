package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger with a small structured-field interface.
type Logger struct {
	*zap.SugaredLogger
}

// New creates a logger. Debug mode enables DEBUG level and colored output.
func New(debug bool) *Logger {
	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		config.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	baseLogger, err := config.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		baseLogger = zap.NewExample()
	}

	return &Logger{SugaredLogger: baseLogger.Sugar()}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// WithFields returns a logger with additional structured fields.
func (l *Logger) WithFields(fields ...any) *Logger {
	return &Logger{SugaredLogger: l.With(fields...)}
}

// WithError returns a logger with an error field attached.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return &Logger{SugaredLogger: l.With("error", err.Error())}
}

func (l *Logger) Debug(msg string, fields ...any) { l.Debugw(msg, fields...) }
func (l *Logger) Info(msg string, fields ...any)  { l.Infow(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...any)  { l.Warnw(msg, fields...) }
func (l *Logger) Error(msg string, fields ...any) { l.Errorw(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...any) { l.Fatalw(msg, fields...) }

// Sync flushes buffered entries. Call before exit.
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}
