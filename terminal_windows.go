//go:build windows

package siltin

import (
	"io"
	"syscall"
)

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	var st uint32
	return syscall.GetConsoleMode(syscall.Handle(f.Fd()), &st) == nil
}
