/**
Custom character table for the alarm clock's 16x2 LCD

The HD44780 has eight CGRAM slots for user defined 5x8 characters. The glyphs
below are the pieces big two-row digits are built from: every digit is three
cells wide and two cells tall. Everything in here is constant, lookups hand
back copies.
*/

package glyphs

const (
	Rows    = 2
	Columns = 16

	GlyphCount   = 8
	GlyphRows    = 8
	DigitCells   = 6
	DigitColumns = 3

	// only the low five bits of a glyph row are pixels
	PixelMask = 0b00011111
)

// Code is one cell of a display row. Values below GlyphCount select a CGRAM
// slot, everything else is a character from the LCD's ROM.
type Code byte

const (
	GlyphA Code = iota // left bar
	GlyphB             // right bar
	GlyphC             // top bar
	GlyphD             // bottom bar
	GlyphE             // top and bottom bars
	GlyphF             // top left corner
	GlyphG             // top right corner
	GlyphH             // bottom right corner

	// Space renders blank, it is the ASCII space so it can go to the LCD as is
	Space Code = ' '
)

// IsGlyph reports whether c refers to a custom character slot.
func (c Code) IsGlyph() bool {
	return c < GlyphCount
}

type Bitmap [GlyphRows]byte
type DigitLayout [DigitCells]Code
type Row [Columns]Code
type Screen [Rows]Row

var customGlyphs = [GlyphCount]Bitmap{
	GlyphA: {
		0b00000001,
		0b00000011,
		0b00000011,
		0b00000011,
		0b00000011,
		0b00000011,
		0b00000011,
		0b00000001,
	},
	GlyphB: {
		0b00010000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00010000,
	},
	GlyphC: {
		0b00011111,
		0b00011111,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	GlyphD: {
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00011111,
		0b00011111,
	},
	GlyphE: {
		0b00011111,
		0b00011111,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00011111,
		0b00011111,
	},
	GlyphF: {
		0b00000001,
		0b00000011,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	GlyphG: {
		0b00010000,
		0b00011000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	GlyphH: {
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00010000,
		0b00011000,
	},
}

// top row first, then bottom row
var digitGlyphMap = [10]DigitLayout{
	{GlyphA, GlyphC, GlyphB, GlyphA, GlyphD, GlyphB}, // 0
	{Space, GlyphA, Space, Space, GlyphA, Space},     // 1
	{GlyphF, GlyphE, GlyphB, GlyphA, GlyphD, GlyphH}, // 2
	{GlyphF, GlyphE, GlyphB, Space, GlyphD, GlyphB},  // 3
	{GlyphA, GlyphD, GlyphB, Space, Space, GlyphB},   // 4
	{GlyphA, GlyphE, GlyphG, Space, GlyphD, GlyphB},  // 5
	{GlyphA, GlyphE, GlyphG, GlyphA, GlyphD, GlyphB}, // 6
	{GlyphF, GlyphC, GlyphB, Space, GlyphA, Space},   // 7
	{GlyphA, GlyphE, GlyphB, GlyphA, GlyphD, GlyphB}, // 8
	{GlyphA, GlyphE, GlyphB, Space, Space, GlyphB},   // 9
}

// Monday first, R and U keep Thursday and Sunday apart
const weekdayLetters = "MTWRFSU"

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// "HELLO!" in big letters
var greetingMessage = Screen{
	{GlyphA, GlyphD, GlyphB, GlyphA, GlyphE, GlyphG, GlyphA, Space, GlyphA, Space, Space, GlyphA, GlyphC, GlyphB, Space, GlyphB},
	{GlyphA, Space, GlyphB, GlyphA, GlyphD, GlyphH, GlyphA, GlyphD, GlyphA, GlyphD, GlyphH, GlyphA, GlyphD, GlyphB, Space, GlyphH},
}

var menuScreen = Screen{
	TextRow(">Alarm   Time   "),
	TextRow(" Back           "),
}

// Glyph returns the pixel rows of custom character i. Panics if i is not a
// glyph slot.
func Glyph(i Code) Bitmap {
	return customGlyphs[i]
}

// Digit returns how digit d is drawn, panics outside 0-9.
func Digit(d int) DigitLayout {
	return digitGlyphMap[d]
}

// Top and Bottom split a layout into its two character rows.
func (l DigitLayout) Top() [DigitColumns]Code {
	return [DigitColumns]Code{l[0], l[1], l[2]}
}

func (l DigitLayout) Bottom() [DigitColumns]Code {
	return [DigitColumns]Code{l[3], l[4], l[5]}
}

// WeekdayLetter takes 0 for Monday through 6 for Sunday.
func WeekdayLetter(day int) byte {
	return weekdayLetters[day]
}

func WeekdayLetters() string {
	return weekdayLetters
}

// MonthName takes 0 for January through 11 for December.
func MonthName(month int) string {
	return monthNames[month]
}

func GreetingMessage() Screen {
	return greetingMessage
}

func MenuScreen() Screen {
	return menuScreen
}

// TextRow turns plain text into a row of ROM characters, padding with spaces
// and cutting anything past the last column.
func TextRow(text string) Row {
	var row Row
	for i := range row {
		row[i] = Space
		if i < len(text) {
			row[i] = Code(text[i])
		}
	}
	return row
}
