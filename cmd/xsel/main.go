// xsel: xsel-compatible command line access to the Windows clipboard.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/xsel/internal/clip"
	"go.klb.dev/xsel/internal/mode"
	"go.klb.dev/xsel/internal/runner"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

// env is everything the command touches outside the process.
type env struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	terminal func() mode.Terminal
	backend  func(clip.Retry) (clip.Backend, error)
}

func osEnv() env {
	return env{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		terminal: func() mode.Terminal { return mode.DetectTerminal(os.Stdin, os.Stdout) },
		backend:  clip.New,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	// A second interrupt kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()
	code := execute(ctx, os.Args[1:], osEnv())
	stop()
	os.Exit(code)
}

// execute runs one invocation and returns the exit status.
func execute(ctx context.Context, args []string, e env) int {
	cmd := newRootCmd(e)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	// cobra answers -h before validating arguments.
	var argErr error
	help := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, a []string) {
		if argErr = rejectArgs(c, c.Flags().Args()); argErr != nil {
			return
		}
		help(c, a)
	})

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		err = argErr
	}
	if err != nil {
		fmt.Fprintf(e.stderr, "xsel: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(e env) *cobra.Command {
	v := viper.New()
	var intents []mode.Flag

	cmd := &cobra.Command{
		Use:           "xsel [options]",
		Short:         "Manipulate the Windows clipboard like xsel",
		Long:          usage,
		Args:          rejectArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if version, _ := cmd.Flags().GetBool("version"); version {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), versionFormat, Version)
				return err
			}
			if err := bindViper(cmd, v); err != nil {
				return err
			}
			return run(cmd.Context(), v, e, intents)
		},
	}
	cmd.SetIn(e.stdin)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	cmd.SetHelpTemplate("{{.Long}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &unsupportedOptionError{option: optionFromFlagError(err), err: err}
	})

	addIntentFlags(cmd, &intents)
	addIgnoredFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func run(ctx context.Context, v *viper.Viper, e env, intents []mode.Flag) error {
	setupLogging(v, e.stderr)

	// Config-file and XSEL_* defaults for the shaping flags.
	if v.GetBool("trim") {
		intents = append(intents, mode.FlagTrim)
	}
	if v.GetBool("keep-crlf") {
		intents = append(intents, mode.FlagKeepCRLF)
	}

	term := e.terminal()
	stdin := mode.NewStdin(e.stdin)
	ready := mode.ProbeStdinReady(ctx, term, stdin, v.GetDuration("probe-timeout"))
	m := mode.Resolve(term, ready, intents)
	if m.NoOp {
		return nil
	}

	backend, err := e.backend(clip.Retry{
		Attempts: v.GetInt("retry-attempts"),
		Delay:    v.GetDuration("retry-delay"),
	})
	if err != nil {
		return err
	}
	return runner.Run(ctx, backend, m, stdin, e.stdout)
}

// unsupportedOptionError is any option or argument xsel does not accept.
type unsupportedOptionError struct {
	option string
	err    error
}

func (e *unsupportedOptionError) Error() string {
	if e.option == "" && e.err != nil {
		return "unsupported option: " + e.err.Error()
	}
	return "unsupported option: " + e.option
}

func (e *unsupportedOptionError) Unwrap() error { return e.err }

// rejectArgs refuses positional arguments.
func rejectArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &unsupportedOptionError{option: args[0]}
	}
	return nil
}

// optionFromFlagError recovers the offending option from a pflag parse
// error, or returns "" if the message has an unexpected shape.
func optionFromFlagError(err error) string {
	msg := err.Error()
	if s, ok := strings.CutPrefix(msg, "unknown flag: "); ok {
		return s
	}
	if s, ok := strings.CutPrefix(msg, "unknown shorthand flag: "); ok {
		if q, _, found := strings.Cut(s, " in "); found {
			if r, err := strconv.Unquote(q); err == nil {
				return "-" + r
			}
		}
	}
	return ""
}
