package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/asgardex/asgardex-native/internal/capability"
)

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrDuplicateCommand   = errors.New("duplicate command")
	ErrMissingIntegration = errors.New("command requires an integration that is not attached")
	ErrInvalidArguments   = errors.New("invalid arguments")
)

// Kind tells the dispatcher whether a command may run on the dispatch path.
type Kind int

const (
	Sync Kind = iota
	Async
)

func (k Kind) String() string {
	if k == Async {
		return "async"
	}
	return "sync"
}

// Handler runs a command. args is the raw JSON argument object, possibly empty.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Command is one named operation.
type Command struct {
	Name     string
	Kind     Kind
	Requires []capability.ID
	Handler  Handler
}

// Response is what the application layer receives. Error is empty on success.
type Response struct {
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// OK reports whether the command succeeded.
func (r Response) OK() bool {
	return r.Error == ""
}

// Surface is the immutable registry of commands.
type Surface struct {
	commands map[string]Command
	names    []string
}

// NewSurface registers cmds in order.
func NewSurface(cmds ...Command) (*Surface, error) {
	s := &Surface{commands: make(map[string]Command, len(cmds))}
	for _, cmd := range cmds {
		if cmd.Name == "" || cmd.Handler == nil {
			return nil, fmt.Errorf("command %q: name and handler are required", cmd.Name)
		}
		if _, ok := s.commands[cmd.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.Name)
		}
		s.commands[cmd.Name] = cmd
		s.names = append(s.names, cmd.Name)
	}
	return s, nil
}

// Names returns the registered command names in registration order.
func (s *Surface) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Lookup returns the command registered under name.
func (s *Surface) Lookup(name string) (Command, bool) {
	cmd, ok := s.commands[name]
	return cmd, ok
}

// Validate checks every command's integrations are attached.
func (s *Surface) Validate(attached capability.Set) error {
	for _, name := range s.names {
		for _, id := range s.commands[name].Requires {
			if !attached.Contains(id) {
				return fmt.Errorf("%w: %s needs %s", ErrMissingIntegration, name, id)
			}
		}
	}
	return nil
}

// Invoke runs name and turns every failure, including a handler panic, into
// a Response error string.
func (s *Surface) Invoke(ctx context.Context, name string, args json.RawMessage) (resp Response) {
	cmd, ok := s.commands[name]
	if !ok {
		return Response{Error: fmt.Sprintf("%v: %s", ErrUnknownCommand, name)}
	}

	defer func() {
		if r := recover(); r != nil {
			resp = Response{Error: fmt.Sprintf("command %s panicked: %v", name, r)}
		}
	}()

	value, err := cmd.Handler(ctx, args)
	if err != nil {
		return Response{Error: err.Error()}
	}
	return Response{Value: value}
}
