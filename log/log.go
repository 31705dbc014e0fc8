package log

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

type Logger interface {
	Trace(message string, opts ...interface{})
	Debug(message string, opts ...interface{})
	Info(message string, opts ...interface{})
	Warning(message string, opts ...interface{})
	Error(message string, opts ...interface{})
	Child(opts ...interface{}) Logger
}

type ChildLogger struct {
	l      Logger
	fields []interface{}
}

func (c *ChildLogger) Trace(message string, opts ...interface{}) {
	c.l.Trace(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Debug(message string, opts ...interface{}) {
	c.l.Debug(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Info(message string, opts ...interface{}) {
	c.l.Info(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Warning(message string, opts ...interface{}) {
	c.l.Warning(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Error(message string, opts ...interface{}) {
	c.l.Error(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Child(opts ...interface{}) Logger {
	return &ChildLogger{
		l:      c,
		fields: opts,
	}
}

type rootLogger struct {
	entry *log.Logger
}

func (r *rootLogger) Trace(message string, opts ...interface{}) {
	r.log(log.TraceLevel, message, opts)
}

func (r *rootLogger) Debug(message string, opts ...interface{}) {
	r.log(log.DebugLevel, message, opts)
}

func (r *rootLogger) Info(message string, opts ...interface{}) {
	r.log(log.InfoLevel, message, opts)
}

func (r *rootLogger) Warning(message string, opts ...interface{}) {
	r.log(log.WarnLevel, message, opts)
}

func (r *rootLogger) Error(message string, opts ...interface{}) {
	r.log(log.ErrorLevel, message, opts)
}

func (r *rootLogger) Child(opts ...interface{}) Logger {
	return &ChildLogger{
		l:      r,
		fields: opts,
	}
}

func (r *rootLogger) log(level log.Level, message string, opts []interface{}) {
	if len(opts) > 0 && len(opts)%2 != 0 {
		panic("mismatched log key/value pairs")
	}

	fields := make(log.Fields)
	for i := 0; i < len(opts); i += 2 {
		key, ok := opts[i].(string)
		if !ok {
			panic("log keys must be strings")
		}
		fields[key] = opts[i+1]
	}

	r.entry.WithFields(fields).Log(level, message)
}

var root = &rootLogger{
	entry: newEntry(os.Stderr, log.WarnLevel),
}

func newEntry(w io.Writer, level log.Level) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&log.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	return l
}

// Init configures the level and destination shared by every module logger.
// An empty file keeps logging on stderr.
func Init(level string, file string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return errors.Wrap(err, "error opening log file")
		}
		w = f
	}

	root.entry.SetOutput(w)
	root.entry.SetLevel(lvl)
	return nil
}

// SetOutput redirects all module loggers. Used by tests.
func SetOutput(w io.Writer) {
	root.entry.SetOutput(w)
}

func ParseLevel(level string) (log.Level, error) {
	if level == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid log level %q", level)
	}
	return lvl, nil
}

func ModuleLogger(name string) Logger {
	return root.Child("module", name)
}
