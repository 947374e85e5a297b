package main

import (
	"UCLA-Rocket-Project/LCDCLOCK/internal/commander"
	"UCLA-Rocket-Project/LCDCLOCK/internal/config"
	"UCLA-Rocket-Project/LCDCLOCK/internal/lcdSerial"
	"UCLA-Rocket-Project/LCDCLOCK/internal/logger"
	"UCLA-Rocket-Project/LCDCLOCK/internal/terminal"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(config.DefaultEnvFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	connector := func(port string) (commander.SerialReaderWriter, error) {
		conn, err := lcdSerial.NewLCDSerial(port, cfg.BaudRate, cfg.ReadTimeout, log)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}

	opts := terminal.Options{
		Port:       cfg.Port,
		TwelveHour: cfg.TwelveHour,
	}

	if err := terminal.StartApplication(lcdSerial.ListPorts, connector, opts, log); err != nil {
		log.Error("LCDCLOCK exited with an error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		log.Sync()
		os.Exit(1)
	}
}
