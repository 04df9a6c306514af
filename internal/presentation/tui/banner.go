package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the spotlight banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`                 _   _ _       _     _   `, "#34d399"},
		{` ___ _ __   ___ | |_| (_) __ _| |__ | |_ `, "#2dd4bf"},
		{`/ __| '_ \ / _ \| __| | |/ _' | '_ \| __|`, "#22d3ee"},
		{`\__ \ |_) | (_) | |_| | | (_| | | | | |_ `, "#38bdf8"},
		{`|___/ .__/ \___/ \__|_|_|\__, |_| |_|\__|`, "#60a5fa"},
		{`    |_|                  |___/           `, "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
