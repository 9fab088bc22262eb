package export

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// payloadEncoding is standard padded base64 that rejects non-zero trailing
// bits. Line breaks are rejected separately since the decoder skips them.
var payloadEncoding = base64.StdEncoding.Strict()

// PublicDir names a user-visible storage collection.
type PublicDir int

const (
	DirDownload PublicDir = iota
)

func (d PublicDir) String() string {
	if d == DirDownload {
		return "Download"
	}
	return fmt.Sprintf("PublicDir(%d)", int(d))
}

// PublicStorage creates new files in public storage. Implementations own
// naming-collision and partial-write semantics.
type PublicStorage interface {
	WriteNew(ctx context.Context, dir PublicDir, name, mimeType string, data []byte) error
}

// Request is one export call. MIMEHint is optional ("" when absent); Payload
// is standard padded base64.
type Request struct {
	Filename string
	MIMEHint string
	Payload  string
}

// ErrorKind tells decode failures from storage failures.
type ErrorKind int

const (
	DecodeFailed ErrorKind = iota + 1
	StorageFailed
)

func (k ErrorKind) String() string {
	switch k {
	case DecodeFailed:
		return "decode failed"
	case StorageFailed:
		return "storage failed"
	default:
		return "unknown"
	}
}

// Error is returned by Export. Error() is the message handed to the caller.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an export error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Export decodes req.Payload and writes it as a new file in the public
// Download collection. The storage collaborator is called at most once and
// its error message is passed through unchanged.
func Export(ctx context.Context, storage PublicStorage, req Request) error {
	data, err := decodePayload(req.Payload)
	if err != nil {
		return &Error{Kind: DecodeFailed, Err: err}
	}

	if err := storage.WriteNew(ctx, DirDownload, req.Filename, req.MIMEHint, data); err != nil {
		return &Error{Kind: StorageFailed, Err: err}
	}
	return nil
}

func decodePayload(payload string) ([]byte, error) {
	if i := strings.IndexAny(payload, "\r\n"); i >= 0 {
		return nil, base64.CorruptInputError(i)
	}
	return payloadEncoding.DecodeString(payload)
}
