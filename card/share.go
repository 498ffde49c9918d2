package card

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/simukka/jokes101/console"
	"github.com/simukka/jokes101/theme"
)

// ErrNoClipboard is returned by clipboards that cannot take images.
var ErrNoClipboard = errors.New("card: image clipboard unavailable")

// ErrBusy is returned by Share while another share is still running.
var ErrBusy = errors.New("card: share in progress")

// Clipboard places a PNG on the system clipboard. WriteImage blocks until
// the write settles.
type Clipboard interface {
	WriteImage(png []byte) error
}

// Downloader saves bytes as a file offered to the user.
type Downloader interface {
	Download(name string, data []byte) error
}

// Control is the share button and its notification.
type Control interface {
	// SetBusy disables the control and shows progress, or restores it.
	SetBusy(busy bool)
	// Copied announces that the card reached the clipboard.
	Copied()
}

// Outcome tells how a card was delivered.
type Outcome int

const (
	Failed Outcome = iota
	Copied
	Downloaded
)

// Sharer renders cards and delivers them. It must not be copied after
// first use.
type Sharer struct {
	Clipboard  Clipboard
	Downloader Downloader
	Control    Control

	sharing atomic.Bool
}

// Sharing reports whether a share is running.
func (s *Sharer) Sharing() bool {
	return s.sharing.Load()
}

// Share renders the joke and delivers it, preferring the clipboard. The
// control is disabled for the duration and always restored. Only one share
// runs at a time; an overlapping call returns ErrBusy and leaves the
// control alone.
func (s *Sharer) Share(t theme.Theme, setup, punchline string) (Outcome, error) {
	if !s.sharing.CompareAndSwap(false, true) {
		return Failed, ErrBusy
	}
	defer s.sharing.Store(false)

	s.Control.SetBusy(true)
	defer s.Control.SetBusy(false)

	data, err := s.rasterize(t, setup, punchline)
	if err != nil {
		console.Error("share card:", err.Error())
		return Failed, err
	}

	if s.Clipboard != nil {
		err = s.Clipboard.WriteImage(data)
		if err == nil {
			s.Control.Copied()
			return Copied, nil
		}
		console.Warn("clipboard write failed, downloading instead:", err.Error())
	}
	if s.Downloader == nil {
		return Failed, fmt.Errorf("card: no delivery: %w", ErrNoClipboard)
	}
	if err := s.Downloader.Download(Filename, data); err != nil {
		return Failed, fmt.Errorf("card: download: %w", err)
	}
	return Downloaded, nil
}

// rasterize keeps the composition buffer local so it is released once the
// PNG exists.
func (s *Sharer) rasterize(t theme.Theme, setup, punchline string) ([]byte, error) {
	img, err := Render(t, setup, punchline)
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}
