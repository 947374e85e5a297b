package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	MAX_LOG_SIZE_MB = 10
	MAX_LOG_BACKUPS = 3
)

// NewLogger logs to a rotating file, plus any extra sinks. stdout is not
// included by default since the TUI owns it.
func NewLogger(logFilePath string, level zapcore.Level, extraSinks ...io.Writer) (*zap.Logger, error) {
	logFile, err := openLogFile(logFilePath)
	if err != nil {
		return nil, err
	}

	return newTeeLogger(level, append([]io.Writer{logFile}, extraSinks...)...), nil
}

func openLogFile(logFilePath string) (*lumberjack.Logger, error) {
	logFile := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    MAX_LOG_SIZE_MB,
		MaxBackups: MAX_LOG_BACKUPS,
	}

	// lumberjack opens lazily, an empty write surfaces a bad path now
	if _, err := logFile.Write(nil); err != nil {
		return nil, err
	}

	return logFile, nil
}

func newTeeLogger(level zapcore.Level, sinks ...io.Writer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentConfig()

	encoder := zapcore.NewConsoleEncoder(encoderConfig.EncoderConfig)

	cores := make([]zapcore.Core, 0, len(sinks))
	for _, sink := range sinks {
		cores = append(cores, zapcore.NewCore(
			encoder,
			zapcore.AddSync(sink),
			level,
		))
	}

	core := zapcore.NewTee(cores...)

	return zap.New(
		core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.WarnLevel),
		zap.Development(),
	)
}
