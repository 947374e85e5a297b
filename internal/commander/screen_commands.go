package commander

import (
	"UCLA-Rocket-Project/LCDCLOCK/internal/globals"
	"UCLA-Rocket-Project/LCDCLOCK/internal/glyphs"
	"UCLA-Rocket-Project/LCDCLOCK/internal/render"
	"fmt"
	"io"
	"time"
)

var rowAddresses = [glyphs.Rows]byte{0x00, globals.LCD_ROW_1_ADDRESS}

// writes both rows of a screen. custom glyph codes only look right once
// LoadGlyphsCommand has run
func ShowScreenCommand(conn SerialReaderWriter, log io.Writer, screen glyphs.Screen) bool {
	for i, row := range screen {
		if !sendInstruction(conn, log, "Show Screen", globals.LCD_SET_DDRAM|rowAddresses[i]) {
			fmt.Fprintf(log, "[Show Screen]: Could not move to row %d\n", i)
			return false
		}

		if !sendData(conn, log, "Show Screen", render.RowBytes(row)) {
			fmt.Fprintf(log, "[Show Screen]: Could not write row %d\n", i)
			return false
		}
	}

	return true
}

func ShowGreetingCommand(conn SerialReaderWriter, log io.Writer) bool {
	fmt.Fprintf(log, "[Show Greeting]: Loading custom characters\n")
	if !LoadGlyphsCommand(conn, log) {
		fmt.Fprintf(log, "[Show Greeting]: Failed to load custom characters\n")
		return false
	}

	fmt.Fprintf(log, "[Show Greeting]: Writing greeting\n")
	if !ShowScreenCommand(conn, log, glyphs.GreetingMessage()) {
		fmt.Fprintf(log, "[Show Greeting]: Failed to write greeting\n")
		return false
	}

	return true
}

func ShowMenuCommand(conn SerialReaderWriter, log io.Writer) bool {
	fmt.Fprintf(log, "[Show Menu]: Writing menu screen\n")
	if !ShowScreenCommand(conn, log, glyphs.MenuScreen()) {
		fmt.Fprintf(log, "[Show Menu]: Failed to write menu screen\n")
		return false
	}

	return true
}

func ShowClockCommand(conn SerialReaderWriter, log io.Writer, now time.Time, twelveHour bool) bool {
	fmt.Fprintf(log, "[Show Clock]: Loading custom characters\n")
	if !LoadGlyphsCommand(conn, log) {
		fmt.Fprintf(log, "[Show Clock]: Failed to load custom characters\n")
		return false
	}

	fmt.Fprintf(log, "[Show Clock]: Drawing %s\n", now.Format("15:04"))
	if !ShowScreenCommand(conn, log, render.Clock(now, twelveHour, true)) {
		fmt.Fprintf(log, "[Show Clock]: Failed to draw clock\n")
		return false
	}

	return true
}

func ShowDateCommand(conn SerialReaderWriter, log io.Writer, now time.Time) bool {
	fmt.Fprintf(log, "[Show Date]: Drawing %s\n", now.Format("Mon Jan 02 2006"))
	if !ShowScreenCommand(conn, log, render.Date(now)) {
		fmt.Fprintf(log, "[Show Date]: Failed to draw date\n")
		return false
	}

	return true
}

func ShowNumberCommand(conn SerialReaderWriter, log io.Writer, n int) bool {
	screen, err := render.BigNumber(n)
	if err != nil {
		fmt.Fprintf(log, "[Show Number]: %v\n", err)
		return false
	}

	fmt.Fprintf(log, "[Show Number]: Loading custom characters\n")
	if !LoadGlyphsCommand(conn, log) {
		fmt.Fprintf(log, "[Show Number]: Failed to load custom characters\n")
		return false
	}

	fmt.Fprintf(log, "[Show Number]: Drawing %d\n", n)
	if !ShowScreenCommand(conn, log, screen) {
		fmt.Fprintf(log, "[Show Number]: Failed to draw %d\n", n)
		return false
	}

	return true
}
