package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/asgardex/asgardex-native/internal/platform"
)

// Options configures the concrete sinks.
type Options struct {
	Level          logrus.Level
	Directory      string // LogDirectory sink
	FileName       string
	MaxSizeMB      int
	MaxBackups     int
	MaxAgeDays     int
	Compress       bool
	WebviewEntries int
	// Stdout overrides os.Stdout, for tests.
	Stdout io.Writer
}

// DefaultOptions returns rotation defaults for a log file in dir.
func DefaultOptions(dir, fileName string) Options {
	return Options{
		Level:          logrus.InfoLevel,
		Directory:      dir,
		FileName:       fileName,
		MaxSizeMB:      10,
		MaxBackups:     10,
		MaxAgeDays:     30,
		Compress:       true,
		WebviewEntries: DefaultWebviewEntries,
	}
}

// Logger is a logrus logger wired to the selected sinks.
type Logger struct {
	*logrus.Logger

	sinks   SinkSet
	file    *lumberjack.Logger
	webview *WebviewHook
}

// Apply builds a logger writing to every sink in sinks.
func Apply(sinks SinkSet, opts Options) (*Logger, error) {
	logger := logrus.New()
	logger.SetLevel(opts.Level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	l := &Logger{Logger: logger, sinks: sinks}
	var writers []io.Writer

	if sinks.Has(Stdout) {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		writers = append(writers, out)
	}

	if sinks.Has(LogDirectory) {
		if opts.Directory == "" || opts.FileName == "" {
			return nil, fmt.Errorf("log directory sink needs a directory and file name")
		}
		if err := platform.CreateDirectoryIfNotExists(opts.Directory); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		l.file = &lumberjack.Logger{
			Filename:   filepath.Join(opts.Directory, opts.FileName),
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		writers = append(writers, l.file)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	if sinks.Has(Webview) {
		l.webview = NewWebviewHook(opts.WebviewEntries)
		logger.AddHook(l.webview)
	}

	return l, nil
}

// Sinks returns the sink set the logger was built from.
func (l *Logger) Sinks() SinkSet {
	return l.sinks
}

// Webview returns the in-app viewer hook, or nil when that sink is off.
func (l *Logger) Webview() *WebviewHook {
	return l.webview
}

// FilePath returns the active log file path, or "" without a LogDirectory sink.
func (l *Logger) FilePath() string {
	if l.file == nil {
		return ""
	}
	return l.file.Filename
}

// Component returns an entry tagged with the component name.
func (l *Logger) Component(name string) *logrus.Entry {
	return l.WithField("component", name)
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
