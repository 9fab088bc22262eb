package integration

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"filippo.io/age"

	"github.com/asgardex/asgardex-native/internal/capability"
)

// ErrSecretNotFound is returned by SecureStore.Get for unknown keys.
var ErrSecretNotFound = errors.New("secret not found")

const (
	identityFile  = "identity.age-key"
	secretSuffix  = ".age"
	secretPerms   = 0600
	secretDirPerm = 0700
)

// SecureStore keeps small secrets sealed to a device-local age X25519
// identity. Each key is a separate file in dir.
type SecureStore struct {
	dir      string
	identity *age.X25519Identity
	mu       sync.Mutex
}

// OpenSecureStore opens the store in dir, generating the identity on first use.
func OpenSecureStore(dir string) (*SecureStore, error) {
	if err := os.MkdirAll(dir, secretDirPerm); err != nil {
		return nil, fmt.Errorf("creating secure storage dir: %w", err)
	}

	identity, err := loadOrCreateIdentity(filepath.Join(dir, identityFile))
	if err != nil {
		return nil, err
	}
	return &SecureStore{dir: dir, identity: identity}, nil
}

func loadOrCreateIdentity(path string) (*age.X25519Identity, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		identity, err := age.ParseX25519Identity(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("parsing secure storage identity: %w", err)
		}
		return identity, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading secure storage identity: %w", err)
	}

	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating secure storage identity: %w", err)
	}
	if err := os.WriteFile(path, []byte(identity.String()+"\n"), secretPerms); err != nil {
		return nil, fmt.Errorf("writing secure storage identity: %w", err)
	}
	return identity, nil
}

func (s *SecureStore) path(key string) string {
	return filepath.Join(s.dir, base64.RawURLEncoding.EncodeToString([]byte(key))+secretSuffix)
}

// Set seals value under key, replacing any previous value.
func (s *SecureStore) Set(key string, value []byte) error {
	var sealed bytes.Buffer
	w, err := age.Encrypt(&sealed, s.identity.Recipient())
	if err != nil {
		return fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := w.Write(value); err != nil {
		return fmt.Errorf("sealing secret: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing sealed secret: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, sealed.Bytes(), secretPerms); err != nil {
		return fmt.Errorf("writing secret: %w", err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("committing secret: %w", err)
	}
	return nil
}

// Get returns the plaintext stored under key.
func (s *SecureStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	data, err := os.ReadFile(s.path(key))
	s.mu.Unlock()
	if os.IsNotExist(err) {
		return nil, ErrSecretNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading secret: %w", err)
	}

	r, err := age.Decrypt(bytes.NewReader(data), s.identity)
	if err != nil {
		return nil, fmt.Errorf("unsealing secret: %w", err)
	}
	return io.ReadAll(r)
}

// Delete removes key. Deleting an unknown key is not an error.
func (s *SecureStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting secret: %w", err)
	}
	return nil
}

// SecureStorageProvider attaches SecureStore.
type SecureStorageProvider struct {
	Dir string
}

// ID returns the secure-storage integration id.
func (p *SecureStorageProvider) ID() capability.ID { return capability.SecureStorage }

// Attach opens the secure store and publishes it.
func (p *SecureStorageProvider) Attach(h Host) error {
	dir := p.Dir
	if dir == "" {
		root := h.App().Storage().RootURI()
		if root == nil {
			return fmt.Errorf("app storage has no root")
		}
		dir = filepath.Join(root.Path(), "secure")
	}
	store, err := OpenSecureStore(dir)
	if err != nil {
		return err
	}
	h.Provide(p.ID(), store)
	return nil
}
