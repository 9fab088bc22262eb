package logging

import (
	"os"
	"strings"
)

// EnvLogToWebview opts into the in-app log viewer sink. Only the exact value
// "true" enables it.
const EnvLogToWebview = "ASGARDEX_LOG_TO_WEBVIEW"

// Sink identifies one log output.
type Sink string

const (
	Stdout       Sink = "stdout"
	LogDirectory Sink = "log-directory"
	Webview      Sink = "webview"
)

// SinkSet is the ordered set of sinks chosen at startup.
type SinkSet struct {
	sinks []Sink
}

// Sinks returns a copy of the sinks in order.
func (s SinkSet) Sinks() []Sink {
	out := make([]Sink, len(s.sinks))
	copy(out, s.sinks)
	return out
}

// Has reports whether sink is selected.
func (s SinkSet) Has(sink Sink) bool {
	for _, v := range s.sinks {
		if v == sink {
			return true
		}
	}
	return false
}

func (s SinkSet) String() string {
	parts := make([]string, len(s.sinks))
	for i, v := range s.sinks {
		parts[i] = string(v)
	}
	return strings.Join(parts, ",")
}

// EnvironmentReader reads process environment variables.
type EnvironmentReader interface {
	LookupEnv(key string) (string, bool)
}

// EnvFunc adapts a lookup function to EnvironmentReader.
type EnvFunc func(key string) (string, bool)

// LookupEnv calls f.
func (f EnvFunc) LookupEnv(key string) (string, bool) {
	return f(key)
}

// OSEnvironment reads the real process environment.
var OSEnvironment EnvironmentReader = EnvFunc(os.LookupEnv)

// MapEnvironment serves variables from a map.
type MapEnvironment map[string]string

// LookupEnv returns the mapped value.
func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// SelectSinks returns Stdout and LogDirectory, plus Webview when
// EnvLogToWebview is exactly "true". This is a string match, not a boolean
// parse: "1" and "True" do not enable the viewer.
func SelectSinks(env EnvironmentReader) SinkSet {
	sinks := []Sink{Stdout, LogDirectory}

	if env != nil {
		if v, ok := env.LookupEnv(EnvLogToWebview); ok && v == "true" {
			sinks = append(sinks, Webview)
		}
	}

	return SinkSet{sinks: sinks}
}
