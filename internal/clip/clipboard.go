package clip

import (
	"log/slog"
)

// Clipboard implements Backend on top of a Native OS binding. Every
// operation opens the clipboard, does its work, and closes it again before
// returning, whatever the outcome.
type Clipboard struct {
	native Native
	retry  Retry
}

// NewClipboard returns a Clipboard that acquires the OS clipboard with
// retry.
func NewClipboard(native Native, retry Retry) *Clipboard {
	return &Clipboard{native: native, retry: retry}
}

func (c *Clipboard) Name() string { return "Windows Clipboard" }

// SetText replaces the clipboard with text as CF_UNICODETEXT.
func (c *Clipboard) SetText(text string) error {
	const op = "set"

	data, err := encodeUTF16(text)
	if err != nil {
		return newError(TransferFailed, op, err)
	}

	s, err := c.open(op)
	if err != nil {
		return err
	}
	defer s.close()

	if err := c.native.EmptyClipboard(); err != nil {
		return newError(TransferFailed, op, err)
	}

	h, err := c.native.GlobalAlloc(len(data))
	if err != nil {
		return newError(AllocationFailed, op, err)
	}
	mem := &block{native: c.native, h: h}
	defer mem.free()

	view, err := c.native.GlobalLock(h, len(data))
	if err != nil {
		return newError(LockFailed, op, err)
	}
	copy(view, data)
	if err := c.native.GlobalUnlock(h); err != nil {
		slog.Debug("global unlock failed", "err", err)
	}

	if err := c.native.SetClipboardData(FormatUnicodeText, h); err != nil {
		return newError(TransferFailed, op, err)
	}
	mem.release()

	slog.Debug("clipboard set", "bytes", len(data))
	return nil
}

// GetText returns the clipboard's text. An empty clipboard, or one holding
// only other formats, yields ok == false and no error.
func (c *Clipboard) GetText() (string, bool, error) {
	const op = "get"

	if !c.native.IsFormatAvailable(FormatUnicodeText) {
		return "", false, nil
	}

	s, err := c.open(op)
	if err != nil {
		return "", false, err
	}
	defer s.close()

	// The owner may have replaced the contents between the format check
	// and the open.
	h, err := c.native.GetClipboardData(FormatUnicodeText)
	if err != nil || h == 0 {
		slog.Debug("clipboard text vanished", "err", err)
		return "", false, nil
	}

	size, err := c.native.GlobalSize(h)
	if err != nil {
		return "", false, newError(TransferFailed, op, err)
	}

	// h belongs to the clipboard: lock and unlock only.
	view, err := c.native.GlobalLock(h, size)
	if err != nil {
		return "", false, newError(LockFailed, op, err)
	}
	buf := make([]byte, len(view))
	copy(buf, view)
	if err := c.native.GlobalUnlock(h); err != nil {
		slog.Debug("global unlock failed", "err", err)
	}

	text, err := decodeUTF16(buf)
	if err != nil {
		return "", false, newError(TransferFailed, op, err)
	}
	slog.Debug("clipboard read", "bytes", size)
	return text, true, nil
}

// Clear empties the clipboard.
func (c *Clipboard) Clear() error {
	const op = "clear"

	s, err := c.open(op)
	if err != nil {
		return err
	}
	defer s.close()

	if err := c.native.EmptyClipboard(); err != nil {
		return newError(TransferFailed, op, err)
	}
	slog.Debug("clipboard cleared")
	return nil
}

// session is an open clipboard.
type session struct {
	native Native
}

// open acquires the clipboard under c.retry.
func (c *Clipboard) open(op string) (*session, error) {
	if err := c.retry.Do(c.native.OpenClipboard); err != nil {
		return nil, newError(ResourceUnavailable, op, err)
	}
	return &session{native: c.native}, nil
}

func (s *session) close() {
	if err := s.native.CloseClipboard(); err != nil {
		slog.Warn("close clipboard failed", "err", err)
	}
}

// block is a global memory block this process still owns.
type block struct {
	native Native
	h      Handle
}

// release gives up ownership after the clipboard accepted the block.
func (b *block) release() { b.h = 0 }

// free frees the block unless it was released.
func (b *block) free() {
	if b.h == 0 {
		return
	}
	if err := b.native.GlobalFree(b.h); err != nil {
		slog.Warn("global free failed", "err", err)
	}
	b.h = 0
}
