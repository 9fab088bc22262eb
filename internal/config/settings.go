package config

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"

	"github.com/asgardex/asgardex-native/internal/logging"
)

// Settings keys for Fyne preferences
const (
	KeyLogLevel          = "log_level"
	KeyLogDirectory      = "log_directory"
	KeyLogFileName       = "log_file_name"
	KeyLogMaxSizeMB      = "log_max_size_mb"
	KeyLogMaxBackups     = "log_max_backups"
	KeyLogCompress       = "log_compress"
	KeyWebviewBufferSize = "webview_buffer_size"
)

// Default values
const (
	DefaultLogLevel          = "info"
	DefaultLogFileName       = "asgardex.log"
	DefaultLogMaxSizeMB      = 10
	DefaultLogMaxBackups     = 10
	DefaultLogMaxAgeDays     = 30
	DefaultLogCompress       = true
	DefaultWebviewBufferSize = logging.DefaultWebviewEntries
	LogDirName               = "logs"
)

// Limits
const (
	MinLogMaxSizeMB      = 1
	MaxLogMaxSizeMB      = 100
	MinLogMaxBackups     = 1
	MaxLogMaxBackups     = 50
	MinWebviewBufferSize = 50
	MaxWebviewBufferSize = 5000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() logrus.Level {
	name := s.app.Preferences().String(KeyLogLevel)
	level, err := logrus.ParseLevel(name)
	if name == "" || err != nil {
		s.app.Preferences().SetString(KeyLogLevel, DefaultLogLevel)
		return logrus.InfoLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level logrus.Level) {
	s.app.Preferences().SetString(KeyLogLevel, level.String())
}

// GetLogLevelOptions returns the selectable log levels
func (s *Settings) GetLogLevelOptions() []logrus.Level {
	return []logrus.Level{logrus.ErrorLevel, logrus.WarnLevel, logrus.InfoLevel, logrus.DebugLevel, logrus.TraceLevel}
}

// GetLogDirectory returns the directory of the LogDirectory sink
func (s *Settings) GetLogDirectory() string {
	dir := s.app.Preferences().String(KeyLogDirectory)
	if dir == "" {
		dir = s.defaultLogDirectory()
		s.SetLogDirectory(dir)
	}
	return dir
}

func (s *Settings) defaultLogDirectory() string {
	if storage := s.app.Storage(); storage != nil {
		if root := storage.RootURI(); root != nil {
			return filepath.Join(root.Path(), LogDirName)
		}
	}
	return filepath.Join(os.TempDir(), "asgardex", LogDirName)
}

// SetLogDirectory sets the log directory
func (s *Settings) SetLogDirectory(dir string) {
	s.app.Preferences().SetString(KeyLogDirectory, dir)
}

// GetLogFileName returns the log file name
func (s *Settings) GetLogFileName() string {
	name := s.app.Preferences().String(KeyLogFileName)
	if name == "" {
		s.SetLogFileName(DefaultLogFileName)
		return DefaultLogFileName
	}
	return name
}

// SetLogFileName sets the log file name; empty or path-like names reset it
func (s *Settings) SetLogFileName(name string) {
	if name == "" || filepath.Base(name) != name {
		name = DefaultLogFileName
	}
	s.app.Preferences().SetString(KeyLogFileName, name)
}

// GetLogMaxSizeMB returns the size at which the log file rotates
func (s *Settings) GetLogMaxSizeMB() int {
	value := s.app.Preferences().Int(KeyLogMaxSizeMB)
	if value <= 0 {
		s.SetLogMaxSizeMB(DefaultLogMaxSizeMB)
		return DefaultLogMaxSizeMB
	}
	return value
}

// SetLogMaxSizeMB sets the rotation size
func (s *Settings) SetLogMaxSizeMB(size int) {
	s.app.Preferences().SetInt(KeyLogMaxSizeMB, clamp(size, MinLogMaxSizeMB, MaxLogMaxSizeMB))
}

// GetLogMaxBackups returns how many rotated files are kept
func (s *Settings) GetLogMaxBackups() int {
	value := s.app.Preferences().Int(KeyLogMaxBackups)
	if value <= 0 {
		s.SetLogMaxBackups(DefaultLogMaxBackups)
		return DefaultLogMaxBackups
	}
	return value
}

// SetLogMaxBackups sets how many rotated files are kept
func (s *Settings) SetLogMaxBackups(count int) {
	s.app.Preferences().SetInt(KeyLogMaxBackups, clamp(count, MinLogMaxBackups, MaxLogMaxBackups))
}

// GetLogCompress returns whether rotated files are gzipped
func (s *Settings) GetLogCompress() bool {
	return s.app.Preferences().BoolWithFallback(KeyLogCompress, DefaultLogCompress)
}

// SetLogCompress sets whether rotated files are gzipped
func (s *Settings) SetLogCompress(compress bool) {
	s.app.Preferences().SetBool(KeyLogCompress, compress)
}

// GetWebviewBufferSize returns how many entries the in-app viewer keeps
func (s *Settings) GetWebviewBufferSize() int {
	value := s.app.Preferences().Int(KeyWebviewBufferSize)
	if value <= 0 {
		s.SetWebviewBufferSize(DefaultWebviewBufferSize)
		return DefaultWebviewBufferSize
	}
	return value
}

// SetWebviewBufferSize sets the in-app viewer buffer size
func (s *Settings) SetWebviewBufferSize(size int) {
	s.app.Preferences().SetInt(KeyWebviewBufferSize, clamp(size, MinWebviewBufferSize, MaxWebviewBufferSize))
}

// LoggingOptions assembles the sink options from the stored settings
func (s *Settings) LoggingOptions() logging.Options {
	opts := logging.DefaultOptions(s.GetLogDirectory(), s.GetLogFileName())
	opts.Level = s.GetLogLevel()
	opts.MaxSizeMB = s.GetLogMaxSizeMB()
	opts.MaxBackups = s.GetLogMaxBackups()
	opts.MaxAgeDays = DefaultLogMaxAgeDays
	opts.Compress = s.GetLogCompress()
	opts.WebviewEntries = s.GetWebviewBufferSize()
	return opts
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
