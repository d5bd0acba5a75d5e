package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/linecov/internal/config"
)

// NewUI creates a UI for the requested format.
// JSON output wins over the interactive viewer; when interactive is true it
// returns a TUI (Bubble Tea), otherwise a SimpleUI (plain text table).
func NewUI(cmd *cobra.Command, format string, interactive bool) UI {
	switch {
	case format == config.FormatJSON:
		return NewJSONUI(cmd.OutOrStdout())
	case interactive:
		return NewTUI(cmd.OutOrStdout())
	default:
		return NewSimpleUI(cmd)
	}
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
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
