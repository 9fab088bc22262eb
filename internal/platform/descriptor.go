package platform

import "runtime"

// Class is the OS family hosting the process.
type Class int

const (
	ClassDesktop Class = iota
	ClassMobile
)

// String returns the device-class literal reported to the application layer.
func (c Class) String() string {
	if c == ClassMobile {
		return "mobile"
	}
	return "desktop"
}

// MobileOS refines ClassMobile. Desktop targets carry MobileNone.
type MobileOS int

const (
	MobileNone MobileOS = iota
	MobileAndroid
	MobileIOS
)

// String returns the GOOS-style name of the mobile OS, or "" for MobileNone.
func (m MobileOS) String() string {
	switch m {
	case MobileAndroid:
		return OSAndroid
	case MobileIOS:
		return OSIOS
	default:
		return ""
	}
}

// Descriptor is the immutable platform fact every other component is
// conditioned on. The zero value describes a desktop target.
type Descriptor struct {
	mobile MobileOS
}

// Desktop, Android and IOS are the descriptors of the supported targets.
var (
	Desktop = Descriptor{mobile: MobileNone}
	Android = Descriptor{mobile: MobileAndroid}
	IOS     = Descriptor{mobile: MobileIOS}
)

// Detect returns the descriptor of the build target.
func Detect() Descriptor {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS classifies a GOOS value. Anything that is not a mobile OS is a
// desktop target.
func FromGOOS(goos string) Descriptor {
	switch goos {
	case OSAndroid:
		return Android
	case OSIOS:
		return IOS
	default:
		return Desktop
	}
}

// FromMobileOS returns the descriptor for a mobile OS kind. MobileNone
// yields Desktop.
func FromMobileOS(m MobileOS) Descriptor {
	switch m {
	case MobileAndroid, MobileIOS:
		return Descriptor{mobile: m}
	default:
		return Desktop
	}
}

// Class returns the OS family.
func (d Descriptor) Class() Class {
	if d.mobile != MobileNone {
		return ClassMobile
	}
	return ClassDesktop
}

// MobileOS returns the mobile OS kind and whether one is present.
func (d Descriptor) MobileOS() (MobileOS, bool) {
	return d.mobile, d.mobile != MobileNone
}

// IsMobile reports whether the descriptor names a mobile OS.
func (d Descriptor) IsMobile() bool {
	return d.mobile != MobileNone
}

// IsAndroid reports whether the target is Android.
func (d Descriptor) IsAndroid() bool {
	return d.mobile == MobileAndroid
}

func (d Descriptor) String() string {
	if d.mobile == MobileNone {
		return d.Class().String()
	}
	return d.Class().String() + "/" + d.mobile.String()
}
