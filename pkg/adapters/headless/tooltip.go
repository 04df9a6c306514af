package headless

import (
	"strings"

	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	tooltipFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#18CB96")).
			Padding(1, 2)

	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	primaryStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#18CB96")).
			Padding(0, 2)
	secondaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
)

// RenderTooltip lays out tooltip content as a terminal box no wider than maxCells.
func RenderTooltip(content domain.TooltipContent, maxCells int) string {
	var lines []string
	if content.Progress != "" {
		lines = append(lines, progressStyle.Render(content.Progress))
	}
	lines = append(lines, titleStyle.Render(content.Title))
	if content.Description != "" {
		lines = append(lines, content.Description)
	}

	var controls []string
	var checkbox string
	for _, b := range content.Buttons {
		switch b {
		case domain.ButtonSkip:
			controls = append(controls, secondaryStyle.Render(b.Label()))
		case domain.ButtonDontShowAgain:
			mark := "[ ]"
			if content.DontShowAgain {
				mark = "[x]"
			}
			checkbox = mark + " " + b.Label()
		default:
			controls = append(controls, primaryStyle.Render(b.Label()))
		}
	}
	if checkbox != "" {
		lines = append(lines, "", checkbox)
	}
	if len(controls) > 0 {
		lines = append(lines, "", strings.Join(controls, " "))
	}

	body := strings.Join(lines, "\n")
	inner := maxCells - tooltipFrame.GetHorizontalFrameSize()
	if inner > 0 && lipgloss.Width(body) > inner {
		body = lipgloss.NewStyle().Width(inner).Render(body)
	}
	return tooltipFrame.Render(body)
}

// MeasureTooltip returns the pixel size of the rendered tooltip box.
func MeasureTooltip(content domain.TooltipContent, maxCells int, cell domain.Size) domain.Size {
	box := RenderTooltip(content, maxCells)
	return domain.Size{
		Width:  float64(lipgloss.Width(box)) * cell.Width,
		Height: float64(lipgloss.Height(box)) * cell.Height,
	}
}
