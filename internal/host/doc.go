package host

// Package host assembles the application host from an immutable Config:
// it attaches the composed integrations in order, registers the entitled
// commands, refuses to start when a command lacks its integration, and
// dispatches commands from the application layer.
