package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"ksc/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	logger  = NewLogger()
)

// Field is a single structured key/value attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

type settings struct {
	out      io.Writer
	json     bool
	filePath string
}

// Option configures a Logger.
type Option func(*settings)

// WithOutput sends log entries to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		s.out = w
	}
}

// WithJSON switches to one JSON object per entry.
func WithJSON() Option {
	return func(s *settings) {
		s.json = true
	}
}

// WithFile appends entries to path in addition to the regular output.
func WithFile(path string) Option {
	return func(s *settings) {
		s.filePath = path
	}
}

// Logger wraps a logrus entry. The zero value is not usable; use NewLogger.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// NewLogger creates a logger writing to stderr unless configured otherwise.
func NewLogger(opts ...Option) *Logger {
	s := settings{out: os.Stderr}
	for _, opt := range opts {
		opt(&s)
	}

	base := logrus.New()
	base.SetLevel(logrus.DebugLevel)

	l := &Logger{}
	out := s.out
	if s.filePath != "" {
		f, err := os.OpenFile(s.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: cannot open %s: %v\n", s.filePath, err)
		} else {
			l.file = f
			out = io.MultiWriter(s.out, f)
		}
	}
	base.SetOutput(out)

	if s.json {
		base.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	l.entry = logrus.NewEntry(base)
	return l
}

// Configure replaces the package-level logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// SetDebug enables or disables debug entries for every logger.
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// Close releases the log file opened by WithFile, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), file: l.file}
}

// WithError returns a child logger describing err. Application errors also
// contribute their kind and the path, param or text they carry.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l.With(F("error", "<nil>"))
	}
	fields := []Field{F("error", err.Error())}

	return l.With(append(fields, appErrorFields(err)...)...)
}

// appErrorFields describes the outermost application error in err's chain.
func appErrorFields(err error) []Field {
	for ; err != nil; err = errors.Unwrap(err) {
		switch e := err.(type) {
		case *errors.ParseError:
			return []Field{F("error_kind", int(e.Kind())), F("text", e.Text())}
		case *errors.ConfigError:
			return []Field{F("error_kind", int(e.Kind())), F("param", e.Param())}
		case *errors.FileError:
			return []Field{F("error_kind", int(e.Kind())), F("path", e.Path())}
		}
	}
	return nil
}

func (l *Logger) log(level logrus.Level, skip int, msg string) {
	if level == logrus.DebugLevel && !isDebug.Load() {
		return
	}
	entry := l.entry
	if _, file, line, ok := runtime.Caller(skip); ok {
		entry = entry.WithField("caller", fmt.Sprintf("%s:%d", filepath.Base(file), line))
	}
	entry.Log(level, msg)
}

// Info logs at info level.
func (l *Logger) Info(msg string) { l.log(logrus.InfoLevel, 2, msg) }

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(logrus.InfoLevel, 2, fmt.Sprintf(format, args...))
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string) { l.log(logrus.WarnLevel, 2, msg) }

// Warnf logs a formatted message at warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(logrus.WarnLevel, 2, fmt.Sprintf(format, args...))
}

// Error logs at error level.
func (l *Logger) Error(msg string) { l.log(logrus.ErrorLevel, 2, msg) }

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(logrus.ErrorLevel, 2, fmt.Sprintf(format, args...))
}

// Debug logs at debug level when debugging is enabled.
func (l *Logger) Debug(msg string) { l.log(logrus.DebugLevel, 2, msg) }

// Debugf logs a formatted message at debug level when debugging is enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(logrus.DebugLevel, 2, fmt.Sprintf(format, args...))
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger describing err.
func LogWithError(err error) *Logger {
	return logger.WithError(err)
}

// LogError logs err with a message at error level.
func LogError(err error, msg string) {
	logger.WithError(err).log(logrus.ErrorLevel, 2, msg)
}

func Info(msg string) { logger.log(logrus.InfoLevel, 2, msg) }

func Infof(format string, args ...interface{}) {
	logger.log(logrus.InfoLevel, 2, fmt.Sprintf(format, args...))
}

// Debug logs a message when debugging is enabled
func Debug(msg string) { logger.log(logrus.DebugLevel, 2, msg) }

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	logger.log(logrus.DebugLevel, 2, fmt.Sprintf(format, args...))
}

// Error logs an error message
func Error(msg string) { logger.log(logrus.ErrorLevel, 2, msg) }

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.log(logrus.ErrorLevel, 2, fmt.Sprintf(format, args...))
}

// Warn logs a warning message
func Warn(msg string) { logger.log(logrus.WarnLevel, 2, msg) }

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.log(logrus.WarnLevel, 2, fmt.Sprintf(format, args...))
}
