package mode

import (
	"os"

	"github.com/mattn/go-isatty"
)

// DetectTerminal reports whether stdin and stdout are terminals. Under WSL
// interop a Windows executable sees both streams as redirected as soon as
// either one is, so a false here is not conclusive; see Stdin.Ready.
func DetectTerminal(stdin, stdout *os.File) Terminal {
	return Terminal{Stdin: isTerminal(stdin), Stdout: isTerminal(stdout)}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
