package commander

import (
	"UCLA-Rocket-Project/LCDCLOCK/internal/globals"
	"fmt"
	"io"
)

const MESSAGE_HEADER_SIZE = 2
const STOP_SEQUENCE_SIZE = 2
const ACK_SIZE = 2

type SerialReaderWriter interface {
	WriteSingleMessage(message []byte, size int)
	ReadSingleOrTimeout() ([]byte, error)
}

// [op, payload length, payload..., \r, \n]
func getDispatchMessage(op byte, payload ...byte) []byte {
	msg := make([]byte, 0, MESSAGE_HEADER_SIZE+len(payload)+STOP_SEQUENCE_SIZE)
	msg = append(msg, op, byte(len(payload)))
	msg = append(msg, payload...)
	// for consistency with the other direction, close with a carriage return
	return append(msg, '\r', '\n')
}

// sends one message and waits for the board to acknowledge it
func dispatch(conn SerialReaderWriter, log io.Writer, tag string, op byte, payload ...byte) bool {
	if len(payload) > globals.MAX_DATA_PAYLOAD {
		fmt.Fprintf(log, "[%s]: Payload of %d bytes is too large\n", tag, len(payload))
		return false
	}

	msg := getDispatchMessage(op, payload...)
	conn.WriteSingleMessage(msg, len(msg))

	res, err := conn.ReadSingleOrTimeout()
	if err != nil {
		fmt.Fprintf(log, "[%s]: Read timed out\n", tag)
		return false
	}

	if len(res) < ACK_SIZE || res[0] != op {
		fmt.Fprintf(log, "[%s]: Unexpected response %X\n", tag, res)
		return false
	}

	if res[1] != globals.ACK_OK {
		fmt.Fprintf(log, "[%s]: Board rejected message with status %#02x\n", tag, res[1])
		return false
	}

	return true
}

func sendInstruction(conn SerialReaderWriter, log io.Writer, tag string, instruction byte) bool {
	return dispatch(conn, log, tag, globals.OP_INSTRUCTION, instruction)
}

func sendData(conn SerialReaderWriter, log io.Writer, tag string, data []byte) bool {
	return dispatch(conn, log, tag, globals.OP_DATA, data...)
}
