package export

// Package export commits an in-memory base64 document to OS-managed public
// storage. Decoding happens before any storage interaction, so a malformed
// payload never creates a file.
