package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes leveled diagnostics to stderr.
// Info messages need Verbose, debug messages need Debug, warnings and errors are always shown.
type Logger struct {
	Verbose bool
	Debug   bool
	Out     io.Writer
}

func (l Logger) out() io.Writer {
	if l.Out == nil {
		return os.Stderr
	}
	return l.Out
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		_, _ = fmt.Fprintf(l.out(), color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		_, _ = fmt.Fprintf(l.out(), color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	_, _ = fmt.Fprintf(l.out(), color.YellowString("[warn] ")+msg+"\n", args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	_, _ = fmt.Fprintf(l.out(), color.RedString("[error] ")+msg+"\n", args...)
}
