package log

import (
	"context"
	"io"
	"os"
	"sync"

	cerrors "github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/edakit/edakit/pkg/errors"
)

// zerologLogger implements Logger on top of a zerolog.Logger.
type zerologLogger struct {
	zl zerolog.Logger
}

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = newZerologLogger(os.Stderr, LevelInfo, true)
)

// Setup configures the package-level logger. Analysis pipelines call this
// once at startup; console=true renders human-readable output, console=false
// emits JSON lines.
//
// Setup also registers the zerolog warning hook so that warnings raised via
// pkg/errors surface as structured WARN records.
func Setup(w io.Writer, level Level, console bool) {
	logger := newZerologLogger(w, level, console)

	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()

	errors.SetZerologWarnFunc(func(warning error) {
		logger.Warn("analysis warning", ErrAttrKey, warning)
	})
}

// GetLogger returns the package-level logger.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// GetLoggerWithName returns the package-level logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

func newZerologLogger(w io.Writer, level Level, console bool) *zerologLogger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	zl := zerolog.New(w).
		Level(toZerologLevel(level)).
		With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Debug implements Logger.Debug.
func (l *zerologLogger) Debug(msg string, fields ...any) {
	l.emit(l.zl.Debug(), msg, fields)
}

// Info implements Logger.Info.
func (l *zerologLogger) Info(msg string, fields ...any) {
	l.emit(l.zl.Info(), msg, fields)
}

// Warn implements Logger.Warn.
func (l *zerologLogger) Warn(msg string, fields ...any) {
	l.emit(l.zl.Warn(), msg, fields)
}

// Error implements Logger.Error.
func (l *zerologLogger) Error(msg string, fields ...any) {
	l.emit(l.zl.Error(), msg, fields)
}

// With implements Logger.With.
func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{zl: ctx.Logger()}
}

// Enabled implements Logger.Enabled.
func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= l.zl.GetLevel()
}

// emit applies structured fields to the event. Error values get special
// handling: the message is logged under "error" and any stack trace captured
// by cockroachdb/errors is attached under "stacktrace".
func (l *zerologLogger) emit(e *zerolog.Event, msg string, fields []any) {
	i := 0
	for i < len(fields) {
		// A bare error value (no preceding key) is logged as the error attribute.
		if err, ok := fields[i].(error); ok {
			addError(e, err)
			i++
			continue
		}
		if i+1 >= len(fields) {
			break
		}
		key, ok := fields[i].(string)
		if !ok {
			i += 2
			continue
		}
		switch v := fields[i+1].(type) {
		case error:
			addError(e, v)
		case zerolog.LogObjectMarshaler:
			e.Object(key, v)
		default:
			e.Interface(key, v)
		}
		i += 2
	}
	e.Msg(msg)
}

func addError(e *zerolog.Event, err error) {
	e.Str(ErrAttrKey, err.Error())
	if marshaler, ok := err.(zerolog.LogObjectMarshaler); ok {
		e.Object(ErrDetailKey, marshaler)
	}
	if st := extractStacktrace(err); st != "" {
		e.Str(StacktraceAttrKey, st)
	}
}

// extractStacktrace pulls the stack trace recorded by cockroachdb/errors, if any.
func extractStacktrace(err error) string {
	safeDetails := cerrors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
