package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/export"
	"github.com/asgardex/asgardex-native/internal/platform"
)

// Command names as invoked by the application layer.
const (
	ResolveDeviceType              = "resolve_device_type"
	SaveKeystoreToDownloadsAndroid = "save_keystore_to_downloads_android"
)

// Services looks up attached integration services.
type Services interface {
	Service(id capability.ID) (any, bool)
}

// Entitled returns the commands the platform is entitled to. The export
// command exists only on Android builds that attached public storage.
func Entitled(d platform.Descriptor, attached capability.Set, services Services) ([]Command, error) {
	cmds := []Command{DeviceType(d)}

	if d.IsAndroid() && attached.Contains(capability.AndroidFS) {
		svc, ok := services.Service(capability.AndroidFS)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no service", ErrMissingIntegration, capability.AndroidFS)
		}
		storage, ok := svc.(export.PublicStorage)
		if !ok {
			return nil, fmt.Errorf("%s service is %T, not public storage", capability.AndroidFS, svc)
		}
		cmds = append(cmds, SaveKeystore(storage))
	}

	return cmds, nil
}

// DeviceType answers "mobile" or "desktop" from the build target alone.
func DeviceType(d platform.Descriptor) Command {
	class := d.Class().String()
	return Command{
		Name: ResolveDeviceType,
		Kind: Sync,
		Handler: func(context.Context, json.RawMessage) (any, error) {
			return class, nil
		},
	}
}

type saveKeystoreArgs struct {
	Filename string  `json:"filename"`
	MIME     *string `json:"mime"`
	DataB64  *string `json:"dataB64"`
}

// SaveKeystore exports a base64 document to the public Download collection.
func SaveKeystore(storage export.PublicStorage) Command {
	return Command{
		Name:     SaveKeystoreToDownloadsAndroid,
		Kind:     Async,
		Requires: []capability.ID{capability.AndroidFS},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var args saveKeystoreArgs
			if len(bytes.TrimSpace(raw)) > 0 {
				if err := json.Unmarshal(raw, &args); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
				}
			}
			if args.Filename == "" {
				return nil, fmt.Errorf("%w: missing filename", ErrInvalidArguments)
			}
			if args.DataB64 == nil {
				return nil, fmt.Errorf("%w: missing dataB64", ErrInvalidArguments)
			}

			req := export.Request{Filename: args.Filename, Payload: *args.DataB64}
			if args.MIME != nil {
				req.MIMEHint = *args.MIME
			}
			return nil, export.Export(ctx, storage, req)
		},
	}
}
