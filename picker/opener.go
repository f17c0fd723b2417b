package picker

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

// Opener asks the host environment to open a URI in a new context
type Opener interface {
	Open(ctx context.Context, uri string) error
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func(ctx context.Context, uri string) error

// Open calls f
func (f OpenerFunc) Open(ctx context.Context, uri string) error {
	return f(ctx, uri)
}

// CommandOpener hands URIs to the platform URL handler
type CommandOpener struct {
	Command string
	Args    []string
}

// NewCommandOpener returns the opener for the current platform
func NewCommandOpener() *CommandOpener {
	switch runtime.GOOS {
	case "darwin":
		return &CommandOpener{Command: "open"}
	case "windows":
		return &CommandOpener{Command: "rundll32", Args: []string{"url.dll,FileProtocolHandler"}}
	}
	return &CommandOpener{Command: "xdg-open"}
}

// Open starts the handler without waiting for it to exit
func (o *CommandOpener) Open(ctx context.Context, uri string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	args := append(append([]string{}, o.Args...), uri)
	cmd := exec.Command(o.Command, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", o.Command, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// RecordingOpener keeps opened URIs, for headless hosts and tests
type RecordingOpener struct {
	mu   sync.Mutex
	uris []string
}

// Open records uri
func (o *RecordingOpener) Open(_ context.Context, uri string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.uris = append(o.uris, uri)
	return nil
}

// URIs returns the recorded URIs in open order
func (o *RecordingOpener) URIs() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string{}, o.uris...)
}
