package capability

import (
	"fmt"
	"sort"

	"github.com/asgardex/asgardex-native/internal/platform"
)

// Variant names a build of the composer. The variants disagree on the desktop
// opener/shell and notification integrations and on the Android filesystem
// provider, so each keeps its own fixed policy.
type Variant int

const (
	// VariantOpener attaches the opener and notifications everywhere and an
	// Android public-storage provider on Android.
	VariantOpener Variant = iota
	// VariantShell attaches the shell integration, notifications on desktop
	// only, and no Android filesystem provider.
	VariantShell
)

func (v Variant) String() string {
	switch v {
	case VariantOpener:
		return "opener"
	case VariantShell:
		return "shell"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// TargetProfile is a supported build target: a variant plus the platform it
// runs on.
type TargetProfile struct {
	Variant  Variant
	Platform platform.Descriptor
}

// Named profiles.
var (
	ProfileDesktop       = TargetProfile{Variant: VariantOpener, Platform: platform.Desktop}
	ProfileAndroid       = TargetProfile{Variant: VariantOpener, Platform: platform.Android}
	ProfileIOS           = TargetProfile{Variant: VariantOpener, Platform: platform.IOS}
	ProfileLegacyDesktop = TargetProfile{Variant: VariantShell, Platform: platform.Desktop}
	ProfileLegacyAndroid = TargetProfile{Variant: VariantShell, Platform: platform.Android}
	ProfileLegacyIOS     = TargetProfile{Variant: VariantShell, Platform: platform.IOS}
)

var profilesByName = map[string]TargetProfile{
	"desktop":        ProfileDesktop,
	"android":        ProfileAndroid,
	"ios":            ProfileIOS,
	"legacy-desktop": ProfileLegacyDesktop,
	"legacy-android": ProfileLegacyAndroid,
	"legacy-ios":     ProfileLegacyIOS,
}

// CurrentProfile returns the profile of the running build.
func CurrentProfile() TargetProfile {
	return TargetProfile{Variant: VariantOpener, Platform: platform.Detect()}
}

// ParseProfile resolves a profile by name, e.g. "android" or "legacy-desktop".
func ParseProfile(name string) (TargetProfile, error) {
	p, ok := profilesByName[name]
	if !ok {
		return TargetProfile{}, fmt.Errorf("unknown profile %q (known: %v)", name, ProfileNames())
	}
	return p, nil
}

// ProfileNames lists the named profiles, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(profilesByName))
	for name := range profilesByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the registered name of p, or a descriptive fallback.
func (p TargetProfile) Name() string {
	for name, candidate := range profilesByName {
		if candidate == p {
			return name
		}
	}
	return p.Variant.String() + ":" + p.Platform.String()
}
