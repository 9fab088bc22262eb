package integration

import (
	"context"
	"errors"

	"github.com/asgardex/asgardex-native/internal/capability"
)

// ErrBiometryUnavailable is returned when no biometric prompt is wired in.
var ErrBiometryUnavailable = errors.New("biometric authentication unavailable")

// Prompter shows the OS biometric prompt.
type Prompter interface {
	Authenticate(ctx context.Context, reason string) error
}

// Biometrics gates sensitive actions behind the OS biometric prompt.
type Biometrics struct {
	prompter Prompter
}

// Available reports whether a prompt is wired in.
func (b *Biometrics) Available() bool {
	return b.prompter != nil
}

// Authenticate asks the user to authenticate for reason.
func (b *Biometrics) Authenticate(ctx context.Context, reason string) error {
	if b.prompter == nil {
		return ErrBiometryUnavailable
	}
	return b.prompter.Authenticate(ctx, reason)
}

// BiometricProvider attaches Biometrics.
type BiometricProvider struct {
	Prompter Prompter
}

// ID returns the biometric integration id.
func (p *BiometricProvider) ID() capability.ID { return capability.Biometric }

// Attach publishes Biometrics backed by the configured prompter.
func (p *BiometricProvider) Attach(h Host) error {
	b := &Biometrics{prompter: p.Prompter}
	if !b.Available() {
		h.Logger().Component("biometric").Warn("No biometric prompt wired in; authentication will be refused")
	}
	h.Provide(p.ID(), b)
	return nil
}
