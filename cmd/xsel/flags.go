package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.klb.dev/xsel/internal/mode"
)

// intentValue is a boolean flag that records itself in scan order, which
// mode.Resolve needs: later intent flags override earlier ones.
type intentValue struct {
	flag mode.Flag
	seq  *[]mode.Flag
	set  bool
}

func (v *intentValue) String() string { return strconv.FormatBool(v.set) }
func (v *intentValue) Type() string   { return "bool" }

func (v *intentValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	v.set = b
	if b {
		*v.seq = append(*v.seq, v.flag)
	}
	return nil
}

func intentFlag(f *pflag.FlagSet, seq *[]mode.Flag, flag mode.Flag, shorthand, usage string) {
	pf := f.VarPF(&intentValue{flag: flag, seq: seq}, flag.String(), shorthand, usage)
	pf.NoOptDefVal = "true"
}

// addIntentFlags registers the options that shape the clipboard operation.
func addIntentFlags(cmd *cobra.Command, seq *[]mode.Flag) {
	f := cmd.Flags()
	intentFlag(f, seq, mode.FlagAppend, "a", "append standard input to the clipboard")
	intentFlag(f, seq, mode.FlagInput, "i", "read standard input into the clipboard")
	intentFlag(f, seq, mode.FlagOutput, "o", "write the clipboard to standard output")
	intentFlag(f, seq, mode.FlagClear, "c", "clear the clipboard")
	intentFlag(f, seq, mode.FlagTrim, "", "remove trailing newlines from input and output")
	intentFlag(f, seq, mode.FlagKeepCRLF, "", "do not convert CRLF to LF when pasting")
	intentFlag(f, seq, mode.FlagKeep, "k", "no-op")
	intentFlag(f, seq, mode.FlagExchange, "x", "no-op")
}

// addIgnoredFlags registers options accepted for xsel compatibility that
// do not shape the clipboard operation. There is one Windows clipboard, so every selection maps
// to it.
func addIgnoredFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolP("primary", "p", false, "ignored: same as --clipboard")
	f.BoolP("secondary", "s", false, "ignored: same as --clipboard")
	f.BoolP("clipboard", "b", false, "operate on the clipboard")
	f.BoolP("nodetach", "n", false, "ignored")
	f.BoolP("verbose", "v", false, "debug logging on stderr")
	f.Bool("version", false, "output version information and exit")
}
