package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	AMCommand       = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// AndroidDownloadsDir is the shared Download collection on external storage.
const AndroidDownloadsDir = "/sdcard/Download"

// MediaScannerAction is broadcast so new public files show up in file pickers.
const MediaScannerAction = "android.intent.action.MEDIA_SCANNER_SCAN_FILE"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// RevealInManager opens the system file manager with the file selected where
// the platform supports selection, or its parent directory otherwise.
func RevealInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return revealInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// revealInManagerLinux opens the directory containing the file.
// File selection is not standardized on Linux.
func revealInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// PublicDownloadsDir returns the user-visible Downloads directory for the
// given target.
func PublicDownloadsDir(d Descriptor) (string, error) {
	if d.IsAndroid() {
		return AndroidDownloadsDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// NumberedName returns the n-th collision alternative for name, in the
// "report (1).pdf" form used by the Android media store. n <= 0 returns name.
func NumberedName(name string, n int) string {
	if n <= 0 {
		return name
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" {
		// dotfile such as ".keystore"
		base, ext = name, ""
	}
	return base + " (" + strconv.Itoa(n) + ")" + ext
}

// mediaScannerCommand is the activity manager binary used for the broadcast.
var mediaScannerCommand = AMCommand

// NotifyMediaScanner asks the Android media scanner to index filePath so it
// appears in the system Downloads UI. It is a no-op unless d is Android.
// Broadcast failures are logged to log.
func NotifyMediaScanner(d Descriptor, filePath string, log *logrus.Entry) error {
	if !d.IsAndroid() {
		return nil
	}

	cmd := exec.Command(mediaScannerCommand, "broadcast", "-a", MediaScannerAction, "-d", "file://"+filePath)

	// The file is already durable; indexing must not hold up the caller.
	go func() {
		if err := cmd.Run(); err != nil {
			log.Warnf("Failed to notify media scanner about %s: %v", filePath, err)
		}
	}()

	return nil
}
