package logging

// Package logging selects the log sinks for the process and applies them to a
// logrus logger: stdout, a rotating file in the app log directory, and an
// optional in-app viewer fed through a logrus hook.
