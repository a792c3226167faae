package main

const versionFormat = "xsel %s\nxsel shim for the Windows clipboard\n"

const usage = `Usage: xsel [options]
Manipulate the Windows clipboard from WSL, so that Linux programs which use
xsel for copy and paste work against the Windows clipboard.

By default the clipboard is output and not modified if both standard input
and standard output are terminals. Otherwise the clipboard is set from
standard input if standard input has data ready, and output if it does not.
If any input or output option is given, only the requested mode runs.

NOTE: a Windows program started from WSL cannot reliably tell which of its
streams is a terminal, so detection waits briefly for standard input and
assumes a terminal if nothing arrives. Prefer -i/-o in scripts.

If both input and output are requested, the previous clipboard is output
before it is replaced by standard input.

Input options
  -a, --append          Append standard input to the clipboard
  -i, --input           Read standard input into the clipboard

Output options
  -o, --output          Write the clipboard to standard output
      --keep-crlf       Keep CRLF line endings when pasting (by default
                        they are replaced with LF)

Action options
  -c, --clear           Clear the clipboard

Selection options
  -p, --primary         Windows has one clipboard. PRIMARY and SECONDARY
  -s, --secondary       are treated as the clipboard, as clipboard
  -b, --clipboard       managers that sync the selections would do.

  -k, --keep            No-op
  -x, --exchange        No-op

Miscellaneous options
      --trim            Remove trailing newlines from input and output
  -n, --nodetach        Ignored
  -v, --verbose         Log debug information to standard error
      --config FILE     Config file (overrides XSEL_CONFIG)
  -h, --help            Display this help and exit
      --version         Output version information and exit

Not supported: -f/--follow, -z/--zeroflush, -d/--delete, --display,
-m/--name, -t/--selectionTimeout, -l/--logfile.

Environment
  XSEL_CONFIG           Config file (default ~/.config/xsel/xsel.toml)
  XSEL_LOG_LEVEL        debug|info|warn|error (default warn)
  XSEL_LOG_FORMAT       auto|text|json
  XSEL_RETRY_ATTEMPTS   Attempts to open a busy clipboard (default 10)
  XSEL_RETRY_DELAY      Delay between attempts (default 100ms)
  XSEL_PROBE_TIMEOUT    Wait for standard input (default 50ms)
  XSEL_TRIM, XSEL_KEEP_CRLF
                        Defaults for --trim and --keep-crlf`
