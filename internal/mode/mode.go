// Package mode decides what one xsel invocation does to the clipboard:
// print it, replace it, append to it or clear it.
//
// The decision starts from a default derived from how stdin and stdout are
// attached, then applies the intent flags in the order they were given.
// Resolve is pure; the only I/O is the stdin probe in Stdin.
package mode

import "log/slog"

// Flag is an intent option, recorded in command-line order.
type Flag int

const (
	FlagAppend Flag = iota + 1
	FlagInput
	FlagOutput
	FlagClear
	FlagTrim
	FlagKeepCRLF
	FlagKeep
	FlagExchange
)

var flagNames = map[Flag]string{
	FlagAppend:   "append",
	FlagInput:    "input",
	FlagOutput:   "output",
	FlagClear:    "clear",
	FlagTrim:     "trim",
	FlagKeepCRLF: "keep-crlf",
	FlagKeep:     "keep",
	FlagExchange: "exchange",
}

func (f Flag) String() string {
	if s, ok := flagNames[f]; ok {
		return s
	}
	return "unknown"
}

// Terminal reports which standard streams are attached to a terminal.
type Terminal struct {
	Stdin  bool
	Stdout bool
}

// Interactive is true when neither stream is redirected.
func (t Terminal) Interactive() bool { return t.Stdin && t.Stdout }

// Mode is the resolved plan for one invocation.
type Mode struct {
	ReadOutput bool // print the current clipboard
	WriteInput bool // replace the clipboard with stdin
	Append     bool // prefix stdin with the current clipboard
	Clear      bool // empty the clipboard; wins over WriteInput
	Trim       bool // drop trailing "\n" from output and new value
	KeepCRLF   bool // leave line endings of output untouched
	NoOp       bool // -k/-x: exit without touching the clipboard
}

// LogValue implements slog.LogValuer.
func (m Mode) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("output", m.ReadOutput),
		slog.Bool("input", m.WriteInput),
		slog.Bool("append", m.Append),
		slog.Bool("clear", m.Clear),
		slog.Bool("trim", m.Trim),
		slog.Bool("keep_crlf", m.KeepCRLF),
		slog.Bool("noop", m.NoOp),
	)
}

// Resolve computes the Mode. stdinReady is the probe result and is only
// consulted when term is not interactive.
//
// Later flags override earlier ones on the same axis, except that an
// explicit -o and an explicit -i/-a both stay in force, in either order: the
// old clipboard is printed and then replaced. -i/-a cancel only the
// default output, never an explicit -o.
func Resolve(term Terminal, stdinReady bool, flags []Flag) Mode {
	var doInput, doOutput bool
	if term.Interactive() {
		doOutput = true
	} else {
		doInput = stdinReady
		doOutput = !stdinReady
	}

	var m Mode
	var forceInput, forceOutput bool
	for _, f := range flags {
		switch f {
		case FlagAppend:
			forceInput = true
			doOutput = false
			m.Append = true
		case FlagInput:
			forceInput = true
			doOutput = false
		case FlagOutput:
			doInput = false
			forceOutput = true
		case FlagClear:
			doOutput = false
			m.Clear = true
		case FlagTrim:
			m.Trim = true
		case FlagKeepCRLF:
			m.KeepCRLF = true
		case FlagKeep, FlagExchange:
			m.NoOp = true
		}
	}

	m.ReadOutput = doOutput || forceOutput
	m.WriteInput = !m.Clear && (doInput || forceInput)
	m.Append = m.Append && m.WriteInput
	return m
}
