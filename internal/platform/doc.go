package platform

// Package platform describes the OS family hosting the process and contains
// the OS glue the integrations share: public directories, reveal-in-manager,
// and the Android media scanner.
