package mode

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// DefaultProbeTimeout is how long Ready waits for stdin.
const DefaultProbeTimeout = 50 * time.Millisecond

const probeBufSize = 4096

// Stdin wraps standard input so it can be probed for readiness without
// losing input. The probe is one background Read; whatever it returns is
// replayed by the first calls to Read, so the wrapped reader is never used
// from two goroutines at once.
type Stdin struct {
	r io.Reader

	done    chan struct{} // closed when the probe read returns; nil if never probed
	buf     []byte
	err     error
	drained bool
}

// NewStdin wraps r.
func NewStdin(r io.Reader) *Stdin {
	return &Stdin{r: r}
}

// Ready reports whether stdin produced data, EOF or an error within
// timeout. It is a heuristic: a pipe whose writer is slow to start looks
// like a terminal. If the wait expires the probe read keeps running in the
// background and its bytes are still delivered by Read.
func (s *Stdin) Ready(ctx context.Context, timeout time.Duration) bool {
	if s.done == nil {
		s.done = make(chan struct{})
		go s.probe()
	}

	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case <-s.done:
		return true
	case <-t.C:
		slog.Debug("stdin not ready, assuming terminal", "timeout", timeout)
		return false
	case <-ctx.Done():
		return false
	}
}

func (s *Stdin) probe() {
	defer close(s.done)
	b := make([]byte, probeBufSize)
	n, err := s.r.Read(b)
	s.buf, s.err = b[:n], err
}

// Read implements io.Reader. After a probe it first waits for the probe
// read and returns its bytes and error.
func (s *Stdin) Read(p []byte) (int, error) {
	if s.done != nil && !s.drained {
		<-s.done
		if len(s.buf) > 0 {
			n := copy(p, s.buf)
			s.buf = s.buf[n:]
			return n, nil
		}
		s.drained = true
		if s.err != nil {
			return 0, s.err
		}
	}
	return s.r.Read(p)
}

// ProbeStdinReady returns the readiness signal Resolve needs. Interactive
// invocations never probe.
func ProbeStdinReady(ctx context.Context, term Terminal, stdin *Stdin, timeout time.Duration) bool {
	if term.Interactive() {
		return false
	}
	return stdin.Ready(ctx, timeout)
}
