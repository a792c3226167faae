// Package clip provides access to the Windows text clipboard. Build
// constraints select the OS binding:
//
//	native_windows.go — user32/kernel32 via golang.org/x/sys/windows
//	native_other.go   — unsupported stub for every other GOOS
//
// All clipboard logic (retry, memory ownership, UTF-16 marshaling) lives in
// Clipboard and talks to the OS only through the Native interface.
package clip

import "errors"

// ErrUnsupportedPlatform is returned by New on systems without a Windows
// clipboard.
var ErrUnsupportedPlatform = errors.New("clipboard: unsupported platform")

// Backend is the interface the rest of xsel uses to reach the clipboard.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// GetText returns the clipboard's unicode text. ok is false when the
	// clipboard holds no text; that case is not an error.
	GetText() (text string, ok bool, err error)

	// SetText replaces the clipboard contents with text, verbatim.
	SetText(text string) error

	// Clear empties the clipboard.
	Clear() error
}
