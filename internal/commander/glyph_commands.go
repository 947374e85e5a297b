package commander

import (
	"UCLA-Rocket-Project/LCDCLOCK/internal/globals"
	"UCLA-Rocket-Project/LCDCLOCK/internal/glyphs"
	"fmt"
	"io"
)

func cgramAddress(slot glyphs.Code) byte {
	return globals.LCD_SET_CGRAM | byte(slot)<<3
}

// writes the eight custom characters into CGRAM. the controller forgets them
// on power loss so this runs before anything that draws big digits
func LoadGlyphsCommand(conn SerialReaderWriter, log io.Writer) bool {
	fmt.Fprintf(log, "[Load Glyphs]: Uploading %d custom characters\n", glyphs.GlyphCount)

	for slot := glyphs.GlyphA; slot <= glyphs.GlyphH; slot++ {
		if !sendInstruction(conn, log, "Load Glyphs", cgramAddress(slot)) {
			fmt.Fprintf(log, "[Load Glyphs]: Could not address slot %d\n", slot)
			return false
		}

		bitmap := glyphs.Glyph(slot)
		if !sendData(conn, log, "Load Glyphs", bitmap[:]) {
			fmt.Fprintf(log, "[Load Glyphs]: Could not write slot %d\n", slot)
			return false
		}
	}

	// leave the address counter in DDRAM so text writes land on screen
	if !sendInstruction(conn, log, "Load Glyphs", globals.LCD_HOME) {
		return false
	}

	fmt.Fprintf(log, "[Load Glyphs]: All custom characters uploaded\n")
	return true
}
