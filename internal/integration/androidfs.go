package integration

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/export"
	"github.com/asgardex/asgardex-native/internal/platform"
)

// ErrInvalidName is returned for display names that are empty, reserved, or
// contain a path separator.
var ErrInvalidName = errors.New("invalid file name")

const (
	pendingPrefix     = ".pending-"
	maxNameCollisions = 100
)

// PublicStorage writes new files into public collections the way the Android
// media store does: a missing extension is derived from the MIME type, a taken
// name becomes "name (n).ext", and the file only appears under its final name
// once fully written and synced.
type PublicStorage struct {
	roots map[export.PublicDir]string
	scan  MediaScanFunc
	link  func(oldname, newname string) error
	log   *logrus.Entry
}

var _ export.PublicStorage = (*PublicStorage)(nil)

// NewPublicStorage creates public storage rooted at downloadsDir for the
// target d.
func NewPublicStorage(d platform.Descriptor, downloadsDir string, log *logrus.Entry) *PublicStorage {
	return &PublicStorage{
		roots: map[export.PublicDir]string{export.DirDownload: downloadsDir},
		scan: func(path string, log *logrus.Entry) error {
			return platform.NotifyMediaScanner(d, path, log)
		},
		link: os.Link,
		log:  log,
	}
}

// WriteNew writes data as a new file named after name in dir.
func (s *PublicStorage) WriteNew(ctx context.Context, dir export.PublicDir, name, mimeType string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	root, ok := s.roots[dir]
	if !ok {
		return fmt.Errorf("public directory %s is not available", dir)
	}
	if err := validateName(name); err != nil {
		return err
	}
	name = withExtension(name, mimeType)

	if err := platform.CreateDirectoryIfNotExists(root); err != nil {
		return fmt.Errorf("creating %s: %w", root, err)
	}

	pending, err := writePending(root, data)
	if err != nil {
		return err
	}

	final, err := s.commit(root, name, pending)
	os.Remove(pending)
	if err != nil {
		return err
	}

	s.log.Infof("Wrote %d bytes to %s", len(data), final)
	if err := s.scan(final, s.log); err != nil {
		s.log.Warnf("Media scan failed for %s: %v", final, err)
	}
	return nil
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	if strings.HasPrefix(name, pendingPrefix) {
		return fmt.Errorf("%w: %q uses a reserved prefix", ErrInvalidName, name)
	}
	return nil
}

// withExtension appends the MIME type's extension when name has none.
func withExtension(name, mimeType string) string {
	if mimeType == "" || filepath.Ext(name) != "" {
		return name
	}
	exts, err := mime.ExtensionsByType(mimeType)
	if err != nil || len(exts) == 0 {
		return name
	}
	return name + exts[0]
}

// writePending writes data to a hidden pending file in root and syncs it.
func writePending(root string, data []byte) (string, error) {
	path := filepath.Join(root, pendingPrefix+uuid.NewString())
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, platform.DefaultFilePermissions)
	if err != nil {
		return "", fmt.Errorf("creating pending file: %w", err)
	}

	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing pending file: %w", err)
	}
	return path, nil
}

// commit publishes the synced pending file under the first free variant of
// name. Hard links claim the name atomically with the full contents. Where
// the filesystem has no hard links the name is reserved empty and the pending
// file renamed over it.
func (s *PublicStorage) commit(root, name, pending string) (string, error) {
	for n := 0; n <= maxNameCollisions; n++ {
		path := filepath.Join(root, platform.NumberedName(name, n))
		err := s.link(pending, path)
		if err == nil {
			return path, nil
		}
		if os.IsExist(err) {
			continue
		}
		s.log.Debugf("Hard link into %s failed, falling back to rename: %v", root, err)
		return renameIntoPlace(root, name, pending)
	}
	return "", fmt.Errorf("%s: too many files with the same name", name)
}

// renameIntoPlace claims the first free variant of name with an empty file
// and renames pending over it.
func renameIntoPlace(root, name, pending string) (string, error) {
	final, err := reserveName(root, name)
	if err != nil {
		return "", err
	}
	if err := os.Rename(pending, final); err != nil {
		os.Remove(final)
		return "", fmt.Errorf("committing %s: %w", filepath.Base(final), err)
	}
	return final, nil
}

// reserveName claims the first free variant of name in root.
func reserveName(root, name string) (string, error) {
	for n := 0; n <= maxNameCollisions; n++ {
		path := filepath.Join(root, platform.NumberedName(name, n))
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, platform.DefaultFilePermissions)
		if err == nil {
			f.Close()
			return path, nil
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("creating %s: %w", filepath.Base(path), err)
		}
	}
	return "", fmt.Errorf("%s: too many files with the same name", name)
}

// MediaScanFunc indexes a newly written public file.
type MediaScanFunc func(path string, log *logrus.Entry) error

// AndroidFSProvider attaches PublicStorage.
type AndroidFSProvider struct {
	DownloadsDir string
	// MediaScan replaces the platform media scanner when set.
	MediaScan MediaScanFunc
}

// ID returns the android-fs integration id.
func (p *AndroidFSProvider) ID() capability.ID { return capability.AndroidFS }

// Attach publishes public storage rooted at the Download directory.
func (p *AndroidFSProvider) Attach(h Host) error {
	dir := p.DownloadsDir
	if dir == "" {
		var err error
		if dir, err = platform.PublicDownloadsDir(h.Platform()); err != nil {
			return err
		}
	}
	storage := NewPublicStorage(h.Platform(), dir, h.Logger().Component("android-fs"))
	if p.MediaScan != nil {
		storage.scan = p.MediaScan
	}
	h.Provide(p.ID(), storage)
	return nil
}
