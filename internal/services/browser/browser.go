// Package browser opens URLs in the user's default web browser.
package browser

import (
	"context"
	"os/exec"
	"runtime"
)

// Opener launches a URL without waiting for the browser to exit.
type Opener interface {
	Open(url string)
}

// Service implements Opener by invoking the platform's URL handler.
type Service struct{}

// NewService constructs a browser service implementation.
func NewService() *Service {
	return &Service{}
}

// Open fires off the platform opener and returns immediately. Failures are
// deliberately ignored: the URL was already printed for the user.
func (service *Service) Open(url string) {
	var command *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		command = exec.CommandContext(context.Background(), "open", url)
	case "windows":
		command = exec.CommandContext(context.Background(), "cmd", "/c", "start", url)
	default:
		command = exec.CommandContext(context.Background(), "xdg-open", url)
	}
	go func() {
		_ = command.Run()
	}()
}

var _ Opener = (*Service)(nil)

// PrintOpener is an Opener for environments without a display: it only
// reports what would have been opened.
type PrintOpener struct {
	Printf func(format string, arguments ...any)
}

// Open prints the URL through the configured printf.
func (opener PrintOpener) Open(url string) {
	if opener.Printf != nil {
		opener.Printf("Open %s in your browser\n", url)
	}
}

var _ Opener = PrintOpener{}
