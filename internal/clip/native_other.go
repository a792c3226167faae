//go:build !windows

package clip

// New reports ErrUnsupportedPlatform: xsel drives the Windows clipboard
// and must run as a Windows executable (for example from WSL interop).
func New(_ Retry) (Backend, error) {
	return nil, ErrUnsupportedPlatform
}
