package integration

import (
	"fyne.io/fyne/v2"

	"github.com/asgardex/asgardex-native/internal/capability"
)

// StoreKeyPrefix namespaces application keys inside fyne preferences.
const StoreKeyPrefix = "store."

// Store is a persistent string key/value store backed by fyne preferences.
type Store struct {
	prefs fyne.Preferences
}

// NewStore wraps prefs.
func NewStore(prefs fyne.Preferences) *Store {
	return &Store{prefs: prefs}
}

// Get returns the value for key and whether it was set.
func (s *Store) Get(key string) (string, bool) {
	const unset = "\x00unset"
	v := s.prefs.StringWithFallback(StoreKeyPrefix+key, unset)
	if v == unset {
		return "", false
	}
	return v, true
}

// Set stores value under key.
func (s *Store) Set(key, value string) {
	s.prefs.SetString(StoreKeyPrefix+key, value)
}

// Delete removes key.
func (s *Store) Delete(key string) {
	s.prefs.RemoveValue(StoreKeyPrefix + key)
}

// StoreProvider attaches Store over the app preferences.
type StoreProvider struct{}

// ID returns the store integration id.
func (p *StoreProvider) ID() capability.ID { return capability.Store }

// Attach publishes a Store over the app preferences.
func (p *StoreProvider) Attach(h Host) error {
	h.Provide(p.ID(), NewStore(h.App().Preferences()))
	return nil
}
