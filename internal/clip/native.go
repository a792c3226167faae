package clip

// Handle is an OS handle: a global memory block or clipboard data handle.
type Handle uintptr

// FormatUnicodeText is CF_UNICODETEXT, null-terminated UTF-16LE text.
const FormatUnicodeText uint32 = 13

// Native is the OS clipboard and global-memory surface Clipboard is built
// on. Methods mirror the user32/kernel32 calls of the same name; failures
// return the calling thread's last error.
type Native interface {
	OpenClipboard() error
	CloseClipboard() error
	EmptyClipboard() error
	IsFormatAvailable(format uint32) bool
	GetClipboardData(format uint32) (Handle, error)

	// SetClipboardData hands h to the clipboard. On success the OS owns
	// the block and it must not be freed.
	SetClipboardData(format uint32, h Handle) error

	// GlobalAlloc allocates a movable block of size bytes.
	GlobalAlloc(size int) (Handle, error)
	GlobalFree(h Handle) error
	GlobalSize(h Handle) (int, error)

	// GlobalLock locks h and returns a view of its first n bytes, valid
	// until GlobalUnlock.
	GlobalLock(h Handle, n int) ([]byte, error)
	GlobalUnlock(h Handle) error
}
