package terminal

import (
	"github.com/charmbracelet/lipgloss"
)

// Vercel-inspired color palette
var (
	// Text and chrome
	colorFg        = lipgloss.Color("#EDEDED")
	colorMuted     = lipgloss.Color("#666666")
	colorBorder    = lipgloss.Color("#333333")
	colorHighlight = lipgloss.Color("#0070F3") // Vercel blue

	// Action status colors
	colorSuccess = lipgloss.Color("#50E3C2") // teal, action acknowledged
	colorError   = lipgloss.Color("#E00")    // red, board rejected or timed out
	colorRunning = lipgloss.Color("#0070F3") // blue, messages in flight
	colorPending = lipgloss.Color("#666666") // gray, not started or skipped
	colorWarning = lipgloss.Color("#F5A623") // orange, waiting to quit

	// backlit STN green for the preview
	colorLCDFg = lipgloss.Color("#1B2A0C")
	colorLCDBg = lipgloss.Color("#9BBC0F")
)

// Layout styles
var (
	// Bordered box around the action list
	containerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	// "LCDCLOCK" title line
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg).
			Padding(0, 1)

	// Secondary text, e.g. "No serial ports found"
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Key bindings at the bottom of every view
	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Connection and selection errors above the view
	errorTextStyle = lipgloss.NewStyle().
			Foreground(colorError)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Italic(true)
)

// List styles
var (
	// Port or action under the cursor
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorHighlight).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	cursorStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)
)

// Status indicator styles
var (
	pendingStyle = lipgloss.NewStyle().
			Foreground(colorPending)

	runningStyle = lipgloss.NewStyle().
			Foreground(colorRunning).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)

// Runner log styles
var (
	// One "[Command]: ..." line from the commander
	logContentStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	// Log lines sit under their action's name
	logIndent = "   "
)

// Preview styles
var (
	// Pixel art of the 2x16 screen, padded like the glass around the LCD
	lcdStyle = lipgloss.NewStyle().
			Foreground(colorLCDFg).
			Background(colorLCDBg).
			Padding(1, 2)
)

// Status icons
const (
	iconPending = "○"
	iconSuccess = "✓"
	iconFail    = "✕"
	// the running icon is the spinner's current frame
)

// Helper functions
func renderCursor(active bool) string {
	if active {
		return cursorStyle.Render("▸")
	}
	return " "
}

func renderCheckbox(checked bool) string {
	if checked {
		return successStyle.Render("[✓]")
	}
	return mutedStyle.Render("[ ]")
}

func renderItem(name string, active bool) string {
	if active {
		return selectedItemStyle.Render(name)
	}
	return normalItemStyle.Render(name)
}

func renderStatusIcon(status ActionStatus, spinnerView string) string {
	switch status {
	case StatusRunning:
		return runningStyle.Render(spinnerView)
	case StatusPass:
		return successStyle.Render(iconSuccess)
	case StatusFail:
		return errorStyle.Render(iconFail)
	default:
		return pendingStyle.Render(iconPending)
	}
}

func renderActionName(name string, status ActionStatus) string {
	switch status {
	case StatusPass:
		return successStyle.Render(name)
	case StatusFail:
		return errorStyle.Render(name)
	case StatusRunning:
		return runningStyle.Render(name)
	default:
		return mutedStyle.Render(name)
	}
}

func renderHint(text string) string {
	return hintStyle.Render(text)
}

func renderWarning(text string) string {
	return warningStyle.Render(text)
}
