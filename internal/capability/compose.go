package capability

import "github.com/asgardex/asgardex-native/internal/platform"

var (
	openerBase = []ID{Dialog, Opener, FS, Log, Store, Notification, SecureStorage}
	shellBase  = []ID{Dialog, Shell, FS, Log, Store, SecureStorage}
	mobileOnly = []ID{Biometric, SafeAreaInsets}
)

// BaseIDs returns the integrations every platform of the variant carries.
func BaseIDs(v Variant) Set {
	if v == VariantShell {
		return NewSet(shellBase...)
	}
	return NewSet(openerBase...)
}

// Compose returns the ordered integration set for p. It never fails and
// returns a fresh Set on every call.
func Compose(p TargetProfile) Set {
	ids := BaseIDs(p.Variant).IDs()

	if p.Platform.IsMobile() {
		ids = append(ids, mobileOnly...)
	}

	switch p.Variant {
	case VariantShell:
		if !p.Platform.IsMobile() {
			ids = append(ids, Notification)
		}
	default:
		if p.Platform.IsAndroid() {
			ids = append(ids, AndroidFS)
		}
	}

	return NewSet(ids...)
}

// ComposeFor composes the current variant for an explicit class and mobile OS.
// A mobile class without a mobile OS kind is not a supported target and
// composes as desktop.
func ComposeFor(class platform.Class, mobile platform.MobileOS) Set {
	d := platform.Desktop
	if class == platform.ClassMobile {
		d = platform.FromMobileOS(mobile)
	}
	return Compose(TargetProfile{Variant: VariantOpener, Platform: d})
}
