// Package affiliate implements the copy-affiliate-link action.
package affiliate

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the OS clipboard (xclip/xsel/wl-copy, pbcopy or the Windows API).
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Notice is a transient confirmation shown to the user. ID lets a UI dismiss
// exactly this notice and not a newer one.
type Notice struct {
	ID    uuid.UUID
	Title string
	Body  string
	Link  string
}

// NewNotice builds the confirmation for label's link without touching any
// clipboard. Remote clients copy Link on their side.
func NewNotice(url, label string) Notice {
	return Notice{
		ID:    uuid.New(),
		Title: "Link copiado!",
		Body:  fmt.Sprintf("Link de afiliado para %q copiado.", label),
		Link:  url,
	}
}

type Service struct {
	clip Clipboard
}

func NewService(clip Clipboard) *Service {
	return &Service{clip: clip}
}

// Copy places url on the clipboard and returns the confirmation for label.
func (s *Service) Copy(url, label string) (Notice, error) {
	if err := s.clip.WriteAll(url); err != nil {
		return Notice{}, fmt.Errorf("copying link: %w", err)
	}

	return NewNotice(url, label), nil
}
