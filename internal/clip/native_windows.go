//go:build windows

package clip

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const gmemMoveable = 0x0002

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard              = user32.NewProc("OpenClipboard")
	procCloseClipboard             = user32.NewProc("CloseClipboard")
	procEmptyClipboard             = user32.NewProc("EmptyClipboard")
	procIsClipboardFormatAvailable = user32.NewProc("IsClipboardFormatAvailable")
	procGetClipboardData           = user32.NewProc("GetClipboardData")
	procSetClipboardData           = user32.NewProc("SetClipboardData")

	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalFree   = kernel32.NewProc("GlobalFree")
	procGlobalSize   = kernel32.NewProc("GlobalSize")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
)

// New returns the Windows clipboard backend.
func New(retry Retry) (Backend, error) {
	if err := user32.Load(); err != nil {
		return nil, err
	}
	return NewClipboard(win32{}, retry), nil
}

// win32 is the Native binding to user32.dll and kernel32.dll.
type win32 struct{}

func (win32) OpenClipboard() error {
	// No owner window.
	r, _, err := procOpenClipboard.Call(0)
	return check(r != 0, err)
}

func (win32) CloseClipboard() error {
	r, _, err := procCloseClipboard.Call()
	return check(r != 0, err)
}

func (win32) EmptyClipboard() error {
	r, _, err := procEmptyClipboard.Call()
	return check(r != 0, err)
}

func (win32) IsFormatAvailable(format uint32) bool {
	r, _, _ := procIsClipboardFormatAvailable.Call(uintptr(format))
	return r != 0
}

func (win32) GetClipboardData(format uint32) (Handle, error) {
	r, _, err := procGetClipboardData.Call(uintptr(format))
	if r == 0 {
		return 0, lastError(err)
	}
	return Handle(r), nil
}

func (win32) SetClipboardData(format uint32, h Handle) error {
	r, _, err := procSetClipboardData.Call(uintptr(format), uintptr(h))
	return check(r != 0, err)
}

func (win32) GlobalAlloc(size int) (Handle, error) {
	r, _, err := procGlobalAlloc.Call(gmemMoveable, uintptr(size))
	if r == 0 {
		return 0, lastError(err)
	}
	return Handle(r), nil
}

func (win32) GlobalFree(h Handle) error {
	// GlobalFree returns NULL on success.
	r, _, err := procGlobalFree.Call(uintptr(h))
	return check(r == 0, err)
}

func (win32) GlobalSize(h Handle) (int, error) {
	r, _, err := procGlobalSize.Call(uintptr(h))
	if r == 0 {
		return 0, lastError(err)
	}
	return int(r), nil
}

func (win32) GlobalLock(h Handle, n int) ([]byte, error) {
	p, _, err := procGlobalLock.Call(uintptr(h))
	if p == 0 {
		return nil, lastError(err)
	}
	return memory(p, n), nil
}

// memory views n bytes at p, an address GlobalLock returned. The memory is
// not Go-managed, so the uintptr round trip cannot lose a moving object.
func memory(p uintptr, n int) []byte {
	return unsafe.Slice((*byte)(*(*unsafe.Pointer)(unsafe.Pointer(&p))), n)
}

func (win32) GlobalUnlock(h Handle) error {
	// Zero with NO_ERROR means the lock count dropped to zero.
	r, _, err := procGlobalUnlock.Call(uintptr(h))
	if r == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno == 0 {
			return nil
		}
		return lastError(err)
	}
	return nil
}

func check(ok bool, err error) error {
	if ok {
		return nil
	}
	return lastError(err)
}

// lastError normalises the error LazyProc.Call returns, which is always
// non-nil and may be ERROR_SUCCESS when the API did not set one.
func lastError(err error) error {
	if errno, ok := err.(syscall.Errno); ok && errno == 0 {
		return syscall.EINVAL
	}
	return err
}
