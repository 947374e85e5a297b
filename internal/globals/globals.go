package globals

// backpack message opcodes
const (
	OP_PING        = 0xF0
	OP_BACKLIGHT   = 0xFC
	OP_DATA        = 0xFD
	OP_INSTRUCTION = 0xFE
)

// acknowledgement status byte
const (
	ACK_OK = 0x00
)

// HD44780 instructions
const (
	LCD_CLEAR         = 0x01
	LCD_HOME          = 0x02
	LCD_ENTRY_MODE    = 0x06 // increment, no shift
	LCD_DISPLAY_ON    = 0x0C // cursor and blink off
	LCD_FUNCTION_SET  = 0x38 // 8 bit bus, 2 lines, 5x8 font
	LCD_SET_CGRAM     = 0x40
	LCD_SET_DDRAM     = 0x80
	LCD_ROW_1_ADDRESS = 0x40
)

// ROM characters outside of ASCII
const (
	LCD_MIDDLE_DOT = 0xA5
)

const MAX_DATA_PAYLOAD = 32
