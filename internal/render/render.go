// Package render lays out full 16x2 screens for the clock: big digits built
// from the custom glyphs, the date screen and plain text. It also draws
// screens as text so they can be checked without the hardware.
package render

import (
	"UCLA-Rocket-Project/LCDCLOCK/internal/globals"
	"UCLA-Rocket-Project/LCDCLOCK/internal/glyphs"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MaxBigNumber = 9999

	// Pixel characters used by Preview.
	PixelOn  = '#'
	PixelOff = ' '

	cellWidth = 5
	middleRow = 3
)

var ErrOutOfRange = errors.New("value out of displayable range")

// first column of each big digit in HH:MM
var clockColumns = [4]int{0, 4, 9, 13}

const colonColumn = 8

var numberColumns = [4]int{1, 5, 9, 13}

// Blank returns a screen of spaces.
func Blank() glyphs.Screen {
	return glyphs.Screen{glyphs.TextRow(""), glyphs.TextRow("")}
}

func putDigit(s *glyphs.Screen, col int, d int) {
	layout := glyphs.Digit(d)
	top, bottom := layout.Top(), layout.Bottom()
	copy(s[0][col:col+glyphs.DigitColumns], top[:])
	copy(s[1][col:col+glyphs.DigitColumns], bottom[:])
}

// Clock draws t as big HH:MM. With twelveHour the hour runs 1-12 and its
// leading zero is left blank.
func Clock(t time.Time, twelveHour bool, colon bool) glyphs.Screen {
	s := Blank()
	hour, minute := t.Hour(), t.Minute()

	if twelveHour {
		hour %= 12
		if hour == 0 {
			hour = 12
		}
	}

	if !twelveHour || hour >= 10 {
		putDigit(&s, clockColumns[0], hour/10)
	}
	putDigit(&s, clockColumns[1], hour%10)
	putDigit(&s, clockColumns[2], minute/10)
	putDigit(&s, clockColumns[3], minute%10)

	if colon {
		s[0][colonColumn] = globals.LCD_MIDDLE_DOT
		s[1][colonColumn] = globals.LCD_MIDDLE_DOT
	}

	return s
}

// BigNumber draws n right aligned in big digits.
func BigNumber(n int) (glyphs.Screen, error) {
	if n < 0 || n > MaxBigNumber {
		return glyphs.Screen{}, fmt.Errorf("big number %d: %w", n, ErrOutOfRange)
	}

	s := Blank()
	for i := len(numberColumns) - 1; i >= 0; i-- {
		putDigit(&s, numberColumns[i], n%10)
		n /= 10
		if n == 0 {
			break
		}
	}

	return s, nil
}

// WeekdayIndex converts Go's Sunday based weekday to the Monday based index
// the weekday letters use.
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// Date shows the weekday letters with a marker in front of today, and the
// date underneath.
func Date(t time.Time) glyphs.Screen {
	var top glyphs.Row
	for i := range top {
		top[i] = glyphs.Space
	}
	for i := 0; i < len(glyphs.WeekdayLetters()); i++ {
		top[1+2*i] = glyphs.Code(glyphs.WeekdayLetter(i))
	}
	top[2*WeekdayIndex(t.Weekday())] = '>'

	date := fmt.Sprintf("%s %02d %04d", glyphs.MonthName(int(t.Month())-1), t.Day(), t.Year())
	pad := max((glyphs.Columns-len(date))/2, 0)

	return glyphs.Screen{top, glyphs.TextRow(strings.Repeat(" ", pad) + date)}
}

func Text(line0, line1 string) glyphs.Screen {
	return glyphs.Screen{glyphs.TextRow(line0), glyphs.TextRow(line1)}
}

// RowBytes is what gets written to DDRAM for a row.
func RowBytes(row glyphs.Row) []byte {
	out := make([]byte, len(row))
	for i, c := range row {
		out[i] = byte(c)
	}
	return out
}

// Preview draws a screen as text, eight lines per LCD row. Custom glyph
// cells are drawn from their bitmaps; ROM characters are not known here so
// they show as the character itself in the middle of the cell.
func Preview(s glyphs.Screen) []string {
	lines := make([]string, 0, glyphs.Rows*glyphs.GlyphRows)

	for _, row := range s {
		for pixelRow := 0; pixelRow < glyphs.GlyphRows; pixelRow++ {
			var sb strings.Builder
			for col, c := range row {
				if col > 0 {
					sb.WriteByte(' ')
				}
				writeCellRow(&sb, c, pixelRow)
			}
			lines = append(lines, sb.String())
		}
	}

	return lines
}

func writeCellRow(sb *strings.Builder, c glyphs.Code, pixelRow int) {
	if c.IsGlyph() {
		bits := glyphs.Glyph(c)[pixelRow]
		for x := cellWidth - 1; x >= 0; x-- {
			if bits&(1<<x) != 0 {
				sb.WriteByte(PixelOn)
			} else {
				sb.WriteByte(PixelOff)
			}
		}
		return
	}

	if c == glyphs.Space || pixelRow != middleRow {
		sb.WriteString(strings.Repeat(string(PixelOff), cellWidth))
		return
	}

	sb.WriteString(strings.Repeat(string(PixelOff), cellWidth/2))
	sb.WriteRune(romRune(c))
	sb.WriteString(strings.Repeat(string(PixelOff), cellWidth/2))
}

// printable stand-in for a ROM character
func romRune(c glyphs.Code) rune {
	switch {
	case c == globals.LCD_MIDDLE_DOT:
		return '·'
	case c >= 0x21 && c <= 0x7E:
		return rune(c)
	default:
		return '?'
	}
}
