// Package clipboard puts rendered describe reports on the system
// clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copier places text on the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service is the atotto/clipboard-backed Copier used by the real CLI.
type Service struct{}

// NewService constructs the system clipboard service.
func NewService() *Service {
	return &Service{}
}

// Copy replaces the clipboard contents with text.
func (service *Service) Copy(text string) error {
	return clipboard.WriteAll(text)
}

var _ Copier = (*Service)(nil)
