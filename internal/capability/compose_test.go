package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgardex/asgardex-native/internal/platform"
)

var allProfiles = []TargetProfile{
	ProfileDesktop, ProfileAndroid, ProfileIOS,
	ProfileLegacyDesktop, ProfileLegacyAndroid, ProfileLegacyIOS,
}

// TestComposeOpenerVariant pins the exact attach order of the current build.
func TestComposeOpenerVariant(t *testing.T) {
	tests := []struct {
		profile  TargetProfile
		expected []ID
	}{
		{ProfileDesktop, []ID{Dialog, Opener, FS, Log, Store, Notification, SecureStorage}},
		{ProfileIOS, []ID{Dialog, Opener, FS, Log, Store, Notification, SecureStorage, Biometric, SafeAreaInsets}},
		{ProfileAndroid, []ID{Dialog, Opener, FS, Log, Store, Notification, SecureStorage, Biometric, SafeAreaInsets, AndroidFS}},
	}

	for _, tt := range tests {
		t.Run(tt.profile.Name(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Compose(tt.profile).IDs())
		})
	}
}

// TestComposeShellVariant pins the legacy build policy.
func TestComposeShellVariant(t *testing.T) {
	tests := []struct {
		profile  TargetProfile
		expected []ID
	}{
		{ProfileLegacyDesktop, []ID{Dialog, Shell, FS, Log, Store, SecureStorage, Notification}},
		{ProfileLegacyIOS, []ID{Dialog, Shell, FS, Log, Store, SecureStorage, Biometric, SafeAreaInsets}},
		{ProfileLegacyAndroid, []ID{Dialog, Shell, FS, Log, Store, SecureStorage, Biometric, SafeAreaInsets}},
	}

	for _, tt := range tests {
		t.Run(tt.profile.Name(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Compose(tt.profile).IDs())
		})
	}
}

// TestComposeDeterministic verifies identical inputs give identical sets.
func TestComposeDeterministic(t *testing.T) {
	for _, p := range allProfiles {
		first := Compose(p)
		second := Compose(p)
		assert.True(t, first.Equal(second), "profile %s", p.Name())
	}
}

// TestComposeBaseIsSubset verifies every profile carries its variant base.
func TestComposeBaseIsSubset(t *testing.T) {
	for _, p := range allProfiles {
		set := Compose(p)
		assert.True(t, set.ContainsAll(BaseIDs(p.Variant)), "profile %s: %s", p.Name(), set)
		assert.NotZero(t, set.Len())
	}
}

// TestComposeGating verifies the mobile and android gates.
func TestComposeGating(t *testing.T) {
	for _, p := range allProfiles {
		set := Compose(p)
		assert.Equal(t, p.Platform.IsMobile(), set.Contains(Biometric), "biometric on %s", p.Name())
		assert.Equal(t, p.Platform.IsMobile(), set.Contains(SafeAreaInsets), "insets on %s", p.Name())
		if set.Contains(AndroidFS) {
			assert.True(t, p.Platform.IsAndroid(), "android-fs on %s", p.Name())
		}
	}
}

// TestComposeReturnsFreshSet verifies callers cannot mutate shared state.
func TestComposeReturnsFreshSet(t *testing.T) {
	ids := Compose(ProfileDesktop).IDs()
	ids[0] = "tampered"

	assert.Equal(t, Dialog, Compose(ProfileDesktop).IDs()[0])
	assert.Equal(t, Dialog, BaseIDs(VariantOpener).IDs()[0])
}

// TestComposeFor verifies the class/kind entry point matches the profiles.
func TestComposeFor(t *testing.T) {
	assert.True(t, ComposeFor(platform.ClassDesktop, platform.MobileNone).Equal(Compose(ProfileDesktop)))
	assert.True(t, ComposeFor(platform.ClassMobile, platform.MobileAndroid).Equal(Compose(ProfileAndroid)))
	assert.True(t, ComposeFor(platform.ClassMobile, platform.MobileIOS).Equal(Compose(ProfileIOS)))
	// a mobile kind on a desktop class is ignored
	assert.True(t, ComposeFor(platform.ClassDesktop, platform.MobileAndroid).Equal(Compose(ProfileDesktop)))
}

func TestParseProfile(t *testing.T) {
	for _, name := range ProfileNames() {
		p, err := ParseProfile(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name())
	}

	_, err := ParseProfile("windows-phone")
	assert.Error(t, err)
}

func TestCurrentProfile(t *testing.T) {
	p := CurrentProfile()
	assert.Equal(t, VariantOpener, p.Variant)
	assert.Equal(t, platform.Detect(), p.Platform)
}

func TestNewSetDropsDuplicates(t *testing.T) {
	set := NewSet(Dialog, FS, Dialog, Log)
	assert.Equal(t, []ID{Dialog, FS, Log}, set.IDs())
	assert.Equal(t, "[dialog fs log]", set.String())
}
