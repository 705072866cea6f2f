// Package console prints coloured banners and diagnostics to a terminal.
package console

import (
	"fmt"
	"io"
)

// ANSI colour sequences.
const (
	White  = "\033[1;97m"
	Red    = "\033[1;31m"
	Cyan   = "\033[1;36m"
	Yellow = "\033[1;33m"
)

// Welcome prints a greeting followed by msg.
func Welcome(w io.Writer, msg string) {
	fmt.Fprintln(w, Cyan+"Welcome!")
	fmt.Fprintln(w, msg+White)
}

// Error reports a failure of the program itself, such as unreadable arguments.
func Error(w io.Writer, msg string) {
	fmt.Fprintln(w, Red+"There occurred an error:")
	fmt.Fprintln(w, msg+White)
}

// Exception reports a game rule violation, such as an out-of-range value.
func Exception(w io.Writer, msg string) {
	fmt.Fprintln(w, Yellow+"There occurred a game exception:")
	fmt.Fprintln(w, msg+White)
}
