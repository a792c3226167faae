package clip

import (
	"errors"
	"syscall"
)

const (
	errAccessDenied = syscall.Errno(5)
	errNotEnoughMem = syscall.Errno(8)
	errInvalidData  = syscall.Errno(13)
)

var errNotOpen = errors.New("fake: clipboard not open")

// fakeNative is an in-memory Native that tracks ownership of every block.
type fakeNative struct {
	openFails  int // fail the first openFails OpenClipboard calls
	openCalls  int
	closeCalls int
	open       bool

	failEmpty error
	failAlloc error
	failLock  error
	failSet   error

	data   map[uint32]Handle
	blocks map[Handle][]byte
	locks  map[Handle]int
	freed  []Handle
	next   Handle
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		data:   make(map[uint32]Handle),
		blocks: make(map[Handle][]byte),
		locks:  make(map[Handle]int),
	}
}

// put stores raw bytes as the clipboard's unicode text, bypassing
// Clipboard.
func (f *fakeNative) put(raw []byte) {
	f.next++
	f.blocks[f.next] = raw
	f.data[FormatUnicodeText] = f.next
}

func (f *fakeNative) OpenClipboard() error {
	f.openCalls++
	if f.openCalls <= f.openFails {
		return errAccessDenied
	}
	if f.open {
		return errAccessDenied
	}
	f.open = true
	return nil
}

func (f *fakeNative) CloseClipboard() error {
	if !f.open {
		return errNotOpen
	}
	f.open = false
	f.closeCalls++
	return nil
}

func (f *fakeNative) EmptyClipboard() error {
	if !f.open {
		return errNotOpen
	}
	if f.failEmpty != nil {
		return f.failEmpty
	}
	for format, h := range f.data {
		delete(f.blocks, h)
		delete(f.data, format)
	}
	return nil
}

func (f *fakeNative) IsFormatAvailable(format uint32) bool {
	_, ok := f.data[format]
	return ok
}

func (f *fakeNative) GetClipboardData(format uint32) (Handle, error) {
	if !f.open {
		return 0, errNotOpen
	}
	h, ok := f.data[format]
	if !ok {
		return 0, errInvalidData
	}
	return h, nil
}

func (f *fakeNative) SetClipboardData(format uint32, h Handle) error {
	if !f.open {
		return errNotOpen
	}
	if f.failSet != nil {
		return f.failSet
	}
	f.data[format] = h
	return nil
}

func (f *fakeNative) GlobalAlloc(size int) (Handle, error) {
	if f.failAlloc != nil {
		return 0, f.failAlloc
	}
	f.next++
	f.blocks[f.next] = make([]byte, size)
	return f.next, nil
}

func (f *fakeNative) GlobalFree(h Handle) error {
	if _, ok := f.blocks[h]; !ok {
		return errInvalidData
	}
	delete(f.blocks, h)
	f.freed = append(f.freed, h)
	return nil
}

func (f *fakeNative) GlobalSize(h Handle) (int, error) {
	b, ok := f.blocks[h]
	if !ok {
		return 0, errInvalidData
	}
	return len(b), nil
}

func (f *fakeNative) GlobalLock(h Handle, n int) ([]byte, error) {
	if f.failLock != nil {
		return nil, f.failLock
	}
	b, ok := f.blocks[h]
	if !ok {
		return nil, errInvalidData
	}
	f.locks[h]++
	return b[:n], nil
}

func (f *fakeNative) GlobalUnlock(h Handle) error {
	if f.locks[h] == 0 {
		return errInvalidData
	}
	f.locks[h]--
	return nil
}

// lockedBlocks counts blocks that are still locked.
func (f *fakeNative) lockedBlocks() int {
	n := 0
	for _, c := range f.locks {
		if c > 0 {
			n++
		}
	}
	return n
}
