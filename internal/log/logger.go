package log

import (
	"io"
	"os"

	"keybindings/internal/errors"

	"github.com/sirupsen/logrus"
)

// Field is a single structured logging field.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger writes structured, leveled log entries through logrus.
type Logger struct {
	entry *logrus.Entry
}

type options struct {
	out    io.Writer
	json   bool
	debug  bool
	parent logrus.FieldLogger
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sends log output to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithDebug enables debug level entries.
func WithDebug() Option {
	return func(o *options) {
		o.debug = true
	}
}

// WithFieldLogger logs through an existing logrus logger or entry. Output,
// format and level options are ignored since the parent owns them.
func WithFieldLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.parent = l
	}
}

// NewLogger creates a Logger.
func NewLogger(opts ...Option) *Logger {
	o := &options{out: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	if o.parent != nil {
		return &Logger{entry: o.parent.WithFields(logrus.Fields{})}
	}

	base := logrus.New()
	base.SetOutput(o.out)
	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	if o.debug {
		base.SetLevel(logrus.DebugLevel)
	} else {
		base.SetLevel(logrus.InfoLevel)
	}

	return &Logger{entry: logrus.NewEntry(base)}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return NewLogger(WithOutput(io.Discard))
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(lf)}
}

// WithError returns a child logger describing err: its message, its kind and
// the path, format or param it refers to.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l.With(F("error", "<nil>"))
	}

	fields := []Field{F("error", err.Error()), F("error_kind", errors.KindOf(err).String())}

	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var codecErr *errors.CodecError
	if errors.As(err, &codecErr) && codecErr.Format() != "" {
		fields = append(fields, F("format", codecErr.Format()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}

	return l.With(fields...)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string) {
	l.entry.Debug(msg)
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Info logs a message at info level.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(msg string) {
	l.entry.Warn(msg)
}

// Warnf logs a formatted message at warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Error logs a message at error level.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}
