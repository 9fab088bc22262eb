package host

import (
	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/integration"
	"github.com/asgardex/asgardex-native/internal/logging"
)

// Config is everything the host is built from. It is assembled once before
// the host starts and never changes afterwards.
type Config struct {
	profile      capability.TargetProfile
	integrations capability.Set
	sinks        logging.SinkSet
	options      integration.Options
}

// NewConfig composes the integrations for profile.
func NewConfig(profile capability.TargetProfile, sinks logging.SinkSet, opts integration.Options) Config {
	return Config{
		profile:      profile,
		integrations: capability.Compose(profile),
		sinks:        sinks,
		options:      opts,
	}
}

// Profile returns the target profile.
func (c Config) Profile() capability.TargetProfile { return c.profile }

// Integrations returns the composed integration set.
func (c Config) Integrations() capability.Set { return c.integrations }

// Sinks returns the selected log sinks.
func (c Config) Sinks() logging.SinkSet { return c.sinks }
