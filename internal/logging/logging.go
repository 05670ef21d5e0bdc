package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ColorYellow = "\033[1;33m"
	ColorRed    = "\033[1;31m"
	ColorReset  = "\033[0m"

	ColorWarning = ColorYellow
	ColorFailure = ColorRed
)

// Out receives user facing messages
var Out io.Writer = os.Stderr

// NoColor disables ANSI colors, it follows https://no-color.org by default
var NoColor = os.Getenv("NO_COLOR") != ""

func Colorize(color, text string) string {
	if NoColor {
		return text
	}
	return strings.Join([]string{color, text, ColorReset}, "")
}

// UserWarning prints a colorized warning message
func UserWarning(msg string, format ...interface{}) {
	msg = fmt.Sprintf("WARNING: "+msg, format...)
	fmt.Fprintln(Out, Colorize(ColorWarning, msg))
}

// UserFailure prints a colorized failure message
func UserFailure(msg string, format ...interface{}) {
	msg = fmt.Sprintf("ERROR: "+msg, format...)
	fmt.Fprintln(Out, Colorize(ColorFailure, msg))
}
