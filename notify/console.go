// Package notify provides user-notification surfaces for the fail-fast
// shutdown sequence.
package notify

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/devguard"
)

// Console is a blocking console notifier. Notify prints the notice and
// waits for the user to press Enter, standing in for the modal message box
// a windowed host would show.
//
// The zero value writes to stderr and reads from stdin. When stdin is not
// a terminal (headless runs, CI), Notify prints the notice and returns
// immediately so the shutdown sequence never hangs unattended.
type Console struct {
	// Out receives the notice. Defaults to os.Stderr.
	Out io.Writer

	// In is read for the acknowledgment. Defaults to os.Stdin.
	In io.Reader
}

var _ devguard.Notifier = (*Console)(nil)

// Notify prints the notice and blocks until acknowledged.
func (c *Console) Notify(title, message string) {
	out := c.Out
	if out == nil {
		out = os.Stderr
	}

	fmt.Fprintf(out, "\n=== %s ===\n%s\n", title, message)

	in := c.In
	if in == nil {
		if !stdinInteractive() {
			return
		}
		in = os.Stdin
	}

	fmt.Fprint(out, "Press Enter to exit. ")
	_, _ = bufio.NewReader(in).ReadString('\n')
}

// stdinInteractive reports whether stdin is attached to a terminal.
func stdinInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
