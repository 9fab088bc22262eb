package integration

// Package integration holds the OS-capability providers the host can attach:
// dialogs, opener/shell, app-scoped files, logging, key/value store, secure
// storage, notifications, biometrics, safe-area insets, and Android public
// storage. Each provider publishes one service on the host when attached.
