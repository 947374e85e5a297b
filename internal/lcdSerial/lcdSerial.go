/**
Serial link to the LCD backpack board

This wrapper should:
1. Be able to list all the open ports and connect to one
2. Frame messages for the backpack and send them through the serial port
3. Read back the acknowledgements, giving up after a read timeout
*/

package lcdSerial

import (
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const TEMP_BUF_SIZE = 256
const STOP_SEQUENCE_SIZE = 2

var ErrReadTimeout = errors.New("read timed out")

type LCDSerial struct {
	serial.Port

	logger       *zap.Logger
	stopSequence [STOP_SEQUENCE_SIZE]byte
}

func NewLCDSerial(portName string, baudrate int, readTimeout time.Duration, logger *zap.Logger) (*LCDSerial, error) {
	mode := &serial.Mode{
		BaudRate: baudrate,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		logger.Error("Error opening serial port", zap.Error(err), zap.String("portName", portName))
		return nil, fmt.Errorf("open %s: %w", portName, err)
	}

	if err := port.SetReadTimeout(readTimeout); err != nil {
		return nil, multierr.Append(fmt.Errorf("set read timeout: %w", err), port.Close())
	}

	logger.Info("Opened serial port", zap.String("portName", portName), zap.Int("baudrate", baudrate))
	return newLCDSerial(port, logger), nil
}

func newLCDSerial(port serial.Port, logger *zap.Logger) *LCDSerial {
	return &LCDSerial{
		Port:         port,
		logger:       logger,
		stopSequence: [STOP_SEQUENCE_SIZE]byte{'\r', '\n'},
	}
}

// drop bytes until the next \r\n so the following read starts on a message boundary
func (l *LCDSerial) sync() error {
	l.logger.Warn("Resyncing serial port")
	twoBytes := [2]byte{0x0, 0x0}
	oneByte := [1]byte{}

	for twoBytes != l.stopSequence {
		n, err := l.Read(oneByte[:])
		if err != nil {
			l.logger.Warn("Error while resyncing serial port", zap.Error(err))
			return err
		}
		if n == 0 {
			return ErrReadTimeout
		}

		// update the two byte sequence
		twoBytes[0] = twoBytes[1]
		twoBytes[1] = oneByte[0]
	}

	return nil
}

// reads one message up to \r\n, with the stop sequence removed. timeouts are
// reported to the caller instead of retried
func (l *LCDSerial) ReadSingleOrTimeout() ([]byte, error) {
	tempBufIdx := 0
	tempBuf := [TEMP_BUF_SIZE]byte{}

	for {
		n, err := l.Read(tempBuf[tempBufIdx : tempBufIdx+1])
		if err != nil {
			l.logger.Error("Error while trying to read new sequence", zap.Error(err))
			if syncErr := l.sync(); syncErr != nil {
				return nil, fmt.Errorf("read: %w", multierr.Append(err, syncErr))
			}
			tempBufIdx = 0
			continue
		}
		if n == 0 {
			l.logger.Debug("Read timed out", zap.Int("bytesBuffered", tempBufIdx))
			return nil, ErrReadTimeout
		}
		tempBufIdx++

		if tempBufIdx >= 2 && tempBuf[tempBufIdx-2] == '\r' && tempBuf[tempBufIdx-1] == '\n' {
			break
		}

		// handle overflow
		if tempBufIdx >= TEMP_BUF_SIZE {
			l.logger.Warn("Buffer overflow, forcefully terminating")
			return tempBuf[:], nil
		}
	}

	return tempBuf[:tempBufIdx-2], nil
}

// like ReadSingleOrTimeout but keeps waiting through timeouts. returns nil
// once the port itself fails
func (l *LCDSerial) ReadSingleMessage() []byte {
	for {
		msg, err := l.ReadSingleOrTimeout()
		if err == nil {
			return msg
		}
		if !errors.Is(err, ErrReadTimeout) {
			l.logger.Error("Giving up on serial read", zap.Error(err))
			return nil
		}
	}
}

func (l *LCDSerial) WriteSingleMessage(message []byte, size int) {
	n, err := l.Write(message[:size])

	if err != nil {
		l.logger.Error("Error while trying to send message", zap.Error(err))
	} else {
		l.logger.Debug("Wrote message to serial port", zap.Int("bytesWritten", n), zap.Binary("message", message[:size]))
	}
}

func (l *LCDSerial) Close() error {
	err := l.Drain()
	err = multierr.Append(err, l.Port.Close())
	if err != nil {
		l.logger.Warn("Error while closing serial port", zap.Error(err))
	}
	return err
}

func ListPorts() ([]string, error) {
	return serial.GetPortsList()
}
