package capability

// Package capability composes the ordered set of integrations attached to the
// application host. The set is a pure function of a TargetProfile: a base
// set, mobile-only additions, and an Android-only addition, varying by build
// variant.
