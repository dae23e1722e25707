package ui

import (
	"fmt"
	"io"
	"os"
)

// Status lines go to Stdout/Stderr; tests swap them.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func OK(msg string)   { fmt.Fprintln(Stdout, Current().Success.Render(Current().SymDone+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Stderr, Current().Error.Render("✖ "+msg)) }
func Hint(msg string) { fmt.Fprintln(Stderr, Current().Muted.Render(msg)) }
