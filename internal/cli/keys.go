package cli

import (
	"strings"

	"github.com/aretw0/spotlight/pkg/domain"
)

// InputKind classifies one user input during a simulation.
type InputKind int

const (
	InputNone InputKind = iota
	// InputKey is a keyboard key the engine handles itself.
	InputKey
	// InputButton presses a tooltip button.
	InputButton
	// InputPrimary presses the step's main button (Enter).
	InputPrimary
	// InputToggle flips the "don't show again" checkbox.
	InputToggle
	// InputQuit stops the simulation.
	InputQuit
)

// Input is a decoded user input.
type Input struct {
	Kind   InputKind
	Key    domain.Key
	Button domain.ButtonKind
}

const esc = 0x1b

// ParseKeys decodes raw terminal bytes. Arrow keys arrive as CSI sequences
// (ESC [ A..D); a lone ESC is the Escape key.
func ParseKeys(buf []byte) []Input {
	var out []Input
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == esc:
			if i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				if k, ok := arrow(buf[i+2]); ok {
					out = append(out, Input{Kind: InputKey, Key: k})
				}
				i += 2
				continue
			}
			out = append(out, Input{Kind: InputKey, Key: domain.KeyEscape})
		case b == '\r' || b == '\n':
			out = append(out, Input{Kind: InputPrimary})
		case b == 'd' || b == 'D' || b == ' ':
			out = append(out, Input{Kind: InputToggle})
		case b == 's' || b == 'S':
			out = append(out, Input{Kind: InputButton, Button: domain.ButtonSkip})
		case b == 'q' || b == 'Q' || b == 0x03 || b == 0x04:
			out = append(out, Input{Kind: InputQuit})
		case b == 'l':
			out = append(out, Input{Kind: InputKey, Key: domain.KeyArrowRight})
		case b == 'h':
			out = append(out, Input{Kind: InputKey, Key: domain.KeyArrowLeft})
		}
	}
	return out
}

func arrow(b byte) (domain.Key, bool) {
	switch b {
	case 'A':
		return domain.KeyArrowUp, true
	case 'B':
		return domain.KeyArrowDown, true
	case 'C':
		return domain.KeyArrowRight, true
	case 'D':
		return domain.KeyArrowLeft, true
	}
	return "", false
}

// ParseCommand decodes one line typed in line mode.
func ParseCommand(line string) Input {
	word := strings.ToLower(strings.TrimSpace(line))
	switch word {
	case "":
		return Input{Kind: InputPrimary}
	case "n", "next", "right", "down":
		return Input{Kind: InputKey, Key: domain.KeyArrowRight}
	case "p", "prev", "previous", "back", "left", "up":
		return Input{Kind: InputKey, Key: domain.KeyArrowLeft}
	case "esc", "escape":
		return Input{Kind: InputKey, Key: domain.KeyEscape}
	case "d", "toggle", "dont-show":
		return Input{Kind: InputToggle}
	case "q", "quit", "exit":
		return Input{Kind: InputQuit}
	}
	if b := domain.ButtonKind(word); b.Valid() {
		return Input{Kind: InputButton, Button: b}
	}
	return Input{Kind: InputNone}
}
