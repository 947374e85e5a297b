package terminal

import (
	"UCLA-Rocket-Project/LCDCLOCK/internal/commander"
	"UCLA-Rocket-Project/LCDCLOCK/internal/glyphs"
	"UCLA-Rocket-Project/LCDCLOCK/internal/render"
	"io"
	"time"
)

type ActionStatus int

const (
	StatusPending ActionStatus = iota
	StatusRunning
	StatusPass
	StatusFail
)

// something the runner can do to the display. preview is nil for actions
// that don't leave a screen behind
type action struct {
	name    string
	run     func(conn commander.SerialReaderWriter, log io.Writer) bool
	preview func() glyphs.Screen
}

type ActionResult struct {
	Name   string
	Status ActionStatus
	Logs   []string
}

const SELECT_ALL_IDX = 0

func newActions(now func() time.Time, twelveHour bool) []action {
	return []action{
		SELECT_ALL_IDX: {name: "Select All"},
		{
			name: "Ping Backpack",
			run:  commander.PingCommand,
		},
		{
			name: "Initialise Display",
			run:  commander.InitDisplayCommand,
			preview: func() glyphs.Screen {
				return render.Blank()
			},
		},
		{
			name: "Backlight On",
			run: func(conn commander.SerialReaderWriter, log io.Writer) bool {
				return commander.BacklightCommand(conn, log, true)
			},
		},
		{
			name: "Load Custom Glyphs",
			run:  commander.LoadGlyphsCommand,
		},
		{
			name:    "Show Greeting",
			run:     commander.ShowGreetingCommand,
			preview: glyphs.GreetingMessage,
		},
		{
			name: "Show Clock",
			run: func(conn commander.SerialReaderWriter, log io.Writer) bool {
				return commander.ShowClockCommand(conn, log, now(), twelveHour)
			},
			preview: func() glyphs.Screen {
				return render.Clock(now(), twelveHour, true)
			},
		},
		{
			name: "Show Date",
			run: func(conn commander.SerialReaderWriter, log io.Writer) bool {
				return commander.ShowDateCommand(conn, log, now())
			},
			preview: func() glyphs.Screen {
				return render.Date(now())
			},
		},
		{
			name: "Show Year",
			run: func(conn commander.SerialReaderWriter, log io.Writer) bool {
				return commander.ShowNumberCommand(conn, log, now().Year())
			},
			preview: func() glyphs.Screen {
				screen, err := render.BigNumber(now().Year())
				if err != nil {
					return render.Text("Year out of", "range")
				}
				return screen
			},
		},
		{
			name:    "Show Menu",
			run:     commander.ShowMenuCommand,
			preview: glyphs.MenuScreen,
		},
		{
			name: "Clear Display",
			run:  commander.ClearCommand,
			preview: func() glyphs.Screen {
				return render.Blank()
			},
		},
	}
}
