// Package runner carries out a resolved mode.Mode against a clipboard
// backend and the standard streams.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.klb.dev/xsel/internal/clip"
	"go.klb.dev/xsel/internal/mode"
	"go.klb.dev/xsel/internal/textnorm"
)

// Run executes m. When both output and input are requested the current
// clipboard is written to stdout before it is replaced.
func Run(ctx context.Context, cb clip.Backend, m mode.Mode, stdin io.Reader, stdout io.Writer) error {
	slog.Debug("resolved mode", "mode", m, "backend", cb.Name())

	if m.NoOp {
		return nil
	}

	var (
		old     string
		fetched bool
	)
	if m.ReadOutput {
		var err error
		if old, err = getText(cb, m); err != nil {
			return err
		}
		fetched = true
		if _, err := io.WriteString(stdout, old); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	switch {
	case m.Clear:
		if err := cb.Clear(); err != nil {
			return fmt.Errorf("clear clipboard: %w", err)
		}
	case m.WriteInput:
		var sel string
		if m.Append {
			if !fetched {
				var err error
				if old, err = getText(cb, m); err != nil {
					return err
				}
			}
			sel = old
		}

		in, err := readAll(ctx, stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		sel = textnorm.ComposeAppend(sel, string(in))
		if m.Trim {
			sel = textnorm.TrimTrailingNewline(sel)
		}
		if err := cb.SetText(sel); err != nil {
			return fmt.Errorf("write clipboard: %w", err)
		}
	}
	return nil
}

// readAll reads r to EOF, returning early with ctx's error once ctx is
// done. The pending read is abandoned, which is fine for a process about to
// exit.
func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	type result struct {
		b   []byte
		err error
	}
	ch := make(chan result, 1)
	go func() {
		b, err := io.ReadAll(r)
		ch <- result{b, err}
	}()

	select {
	case res := <-ch:
		return res.b, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// getText reads the clipboard as it is shown to the user: line endings
// canonicalised unless KeepCRLF, trailing newlines dropped if Trim. An
// empty clipboard reads as "".
func getText(cb clip.Backend, m mode.Mode) (string, error) {
	text, _, err := cb.GetText()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	if !m.KeepCRLF {
		text = textnorm.CanonicalizeLineEndings(text)
	}
	if m.Trim {
		text = textnorm.TrimTrailingNewline(text)
	}
	return text, nil
}
