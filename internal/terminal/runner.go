package terminal

import (
	"UCLA-Rocket-Project/LCDCLOCK/internal/commander"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type LogMsg string

type ActionStartMsg struct {
	Index int
}

type ActionResultMsg struct {
	Index   int
	Success bool
}

type runnerDoneMsg struct{}

// hands everything the commander prints to the TUI as log messages
type chanWriter struct {
	ch chan<- any
}

func (w *chanWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.ch <- LogMsg(line)
	}
	return len(p), nil
}

func waitForLog(ch <-chan any) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return runnerDoneMsg{}
		}
		return msg
	}
}

// runs the selected actions in order, reporting through ch, and closes ch when
// done. Once stop is closed the remaining actions are skipped; the one in
// flight always finishes.
func runActions(conn commander.SerialReaderWriter, actions []action, selected []int, stop <-chan struct{}, ch chan<- any) {
	defer close(ch)
	w := &chanWriter{ch: ch}

	for resultIdx, idx := range selected {
		select {
		case <-stop:
			return
		default:
		}

		ch <- ActionStartMsg{Index: resultIdx}
		success := actions[idx].run(conn, w)
		ch <- ActionResultMsg{Index: resultIdx, Success: success}
	}
}
