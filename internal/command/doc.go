package command

// Package command is the fixed set of named operations the application layer
// may invoke. Which commands exist depends on the platform and the attached
// integrations; a command that is not entitled is never registered.
