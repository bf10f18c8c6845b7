package controller

import (
	"io"
	"os"
)

// NewUI returns the interactive TUI writing to w when useTTY is set and the
// plain-text SimpleUI otherwise.
func NewUI(w io.Writer, useTTY bool) UI {
	if !useTTY {
		return NewSimpleUI(w)
	}

	return NewTUI(w)
}

// IsTTY reports whether w is a character device. Buffers, pipes and regular
// files are not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
