package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the bitlab ASCII art banner and version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Cyan to teal, matching the widget headings
	lines := []struct {
		text  string
		color string
	}{
		{"  _     _ _   _       _     ", "#22d3ee"},
		{" | |__ (_) |_| | __ _| |__  ", "#06b6d4"},
		{" | '_ \\| | __| |/ _` | '_ \\ ", "#0891b2"},
		{" | |_) | | |_| | (_| | |_) |", "#0e7490"},
		{" |_.__/|_|\\__|_|\\__,_|_.__/ ", "#155e75"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, "  %s\n\n", termenv.String("v"+version).Faint())
}
