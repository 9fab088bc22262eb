package integration

import (
	"io"
	"log"
	"os"

	"github.com/asgardex/asgardex-native/internal/capability"
)

// LogProvider publishes the configured logger and routes the standard
// library logger, which fyne reports its own errors through, into it.
type LogProvider struct {
	writer *io.PipeWriter
}

// ID returns the log integration id.
func (p *LogProvider) ID() capability.ID { return capability.Log }

// Attach publishes the host logger and redirects the standard logger into it.
func (p *LogProvider) Attach(h Host) error {
	logger := h.Logger()
	p.writer = logger.Component("host").Writer()
	log.SetFlags(0)
	log.SetOutput(p.writer)

	h.Provide(p.ID(), logger)
	logger.Component("log").Infof("Log sinks: %s", logger.Sinks())
	return nil
}

// Close restores the standard logger output.
func (p *LogProvider) Close() error {
	if p.writer == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	return p.writer.Close()
}
