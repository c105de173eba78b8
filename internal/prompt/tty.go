package prompt

import (
	"os"

	"golang.org/x/term"
)

// isTerminalFunc is swapped in tests.
var isTerminalFunc = term.IsTerminal

// Interactive reports whether both stdin and stdout are terminals, which
// the input prompt and the selection menu require.
func Interactive() bool {
	return isTerminalFunc(int(os.Stdin.Fd())) && isTerminalFunc(int(os.Stdout.Fd()))
}
