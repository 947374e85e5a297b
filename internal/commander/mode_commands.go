package commander

import (
	"UCLA-Rocket-Project/LCDCLOCK/internal/globals"
	"fmt"
	"io"
)

func PingCommand(conn SerialReaderWriter, log io.Writer) bool {
	fmt.Fprintf(log, "[Ping]: Checking that the backpack is listening\n")

	if !dispatch(conn, log, "Ping", globals.OP_PING) {
		fmt.Fprintf(log, "[Ping]: No answer from the backpack\n")
		return false
	}

	fmt.Fprintf(log, "[Ping]: Backpack acknowledged\n")
	return true
}

// puts the controller into a known state, the same sequence the clock runs at power up
func InitDisplayCommand(conn SerialReaderWriter, log io.Writer) bool {
	steps := []struct {
		name        string
		instruction byte
	}{
		{"function set", globals.LCD_FUNCTION_SET},
		{"display on", globals.LCD_DISPLAY_ON},
		{"entry mode", globals.LCD_ENTRY_MODE},
		{"clear", globals.LCD_CLEAR},
	}

	for _, step := range steps {
		fmt.Fprintf(log, "[Init Display]: Sending %s\n", step.name)
		if !sendInstruction(conn, log, "Init Display", step.instruction) {
			fmt.Fprintf(log, "[Init Display]: Failed on %s\n", step.name)
			return false
		}
	}

	fmt.Fprintf(log, "[Init Display]: Display initialised\n")
	return true
}

func ClearCommand(conn SerialReaderWriter, log io.Writer) bool {
	fmt.Fprintf(log, "[Clear]: Clearing the display\n")

	if !sendInstruction(conn, log, "Clear", globals.LCD_CLEAR) {
		fmt.Fprintf(log, "[Clear]: Could not clear the display\n")
		return false
	}

	return true
}

func BacklightCommand(conn SerialReaderWriter, log io.Writer, on bool) bool {
	var state byte
	label := "off"
	if on {
		state = 1
		label = "on"
	}

	fmt.Fprintf(log, "[Backlight]: Switching backlight %s\n", label)
	if !dispatch(conn, log, "Backlight", globals.OP_BACKLIGHT, state) {
		fmt.Fprintf(log, "[Backlight]: Could not switch backlight %s\n", label)
		return false
	}

	return true
}
