package terminal

import (
	"UCLA-Rocket-Project/LCDCLOCK/internal/commander"
	"UCLA-Rocket-Project/LCDCLOCK/internal/render"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

type UIState int

const (
	VIEW_LIST_PORTS UIState = iota
	VIEW_LOADING
	VIEW_SELECT_ACTIONS
	VIEW_RUNNER
)

const DEFAULT_WIDTH = 100

var errNothingSelected = errors.New("select at least one action")

type connectionSuccessMsg struct {
	conn commander.SerialReaderWriter
}
type connectionErrorMsg struct {
	err error
}

type PortLister func() ([]string, error)
type PortConnector func(string) (commander.SerialReaderWriter, error)

type Options struct {
	// connect straight away instead of listing ports
	Port       string
	TwelveHour bool
	Now        func() time.Time
}

// defines the internal state of the TUI
type model struct {
	// global internal state
	uiState UIState
	cursor  int
	err     error
	width   int
	logger  *zap.Logger

	// connect to port internal state
	potentialPorts []string
	portName       string
	portLister     PortLister
	connector      PortConnector
	serial         commander.SerialReaderWriter

	// select actions internal state
	actions  []action
	selected map[int]struct{}

	// runner internal state
	results  []ActionResult
	logChan  chan any
	stop     chan struct{}
	done     bool
	quitting bool
	spinner  spinner.Model
}

// StartApplication runs the TUI until the user quits and closes the
// connection if one was made. Quitting during a run waits for the action in
// flight, so the port is never closed under the runner.
func StartApplication(portLister PortLister, connector PortConnector, opts Options, logger *zap.Logger) error {
	m, err := initialModel(portLister, connector, opts, logger)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		logger.Error("Error running TUI program", zap.Error(err))
		return err
	}

	if fm, ok := final.(model); ok && fm.serial != nil {
		if closer, ok := fm.serial.(io.Closer); ok {
			return closer.Close()
		}
	}
	return nil
}

// TUI tries to use functional programming paradigms, so you return a new model everytime, rather
// then modify a pointer
func initialModel(portLister PortLister, connector PortConnector, opts Options, logger *zap.Logger) (model, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := model{
		uiState:    VIEW_LIST_PORTS,
		width:      DEFAULT_WIDTH,
		logger:     logger,
		portLister: portLister,
		connector:  connector,
		portName:   opts.Port,
		actions:    newActions(opts.Now, opts.TwelveHour),
		selected:   make(map[int]struct{}),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(runningStyle)),
	}

	// ports are listed later, only if the configured one fails
	if opts.Port != "" {
		m.uiState = VIEW_LOADING
		return m, nil
	}

	ports, err := fetchPorts(portLister)
	if err != nil {
		return model{}, err
	}
	m.potentialPorts = ports

	return m, nil
}

func fetchPorts(portLister PortLister) ([]string, error) {
	ports, err := portLister()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}

func connectToPort(connector PortConnector, port string) tea.Cmd {
	return func() tea.Msg {
		connection, err := connector(port)
		if err != nil {
			return connectionErrorMsg{err: err}
		}
		return connectionSuccessMsg{conn: connection}
	}
}

func (m model) Init() tea.Cmd {
	if m.uiState == VIEW_LOADING {
		return connectToPort(m.connector, m.portName)
	}
	return nil
}

// indices of the selected actions in list order
func (m model) selectedActions() []int {
	out := make([]int, 0, len(m.selected))
	for idx := range m.selected {
		if idx != SELECT_ALL_IDX {
			out = append(out, idx)
		}
	}
	sort.Ints(out)
	return out
}

func (m model) View() string {
	s := headerStyle.Render("LCDCLOCK") + "\n\n"
	if m.err != nil {
		s += errorTextStyle.Render(fmt.Sprintf("Error %v", m.err)) + "\n\n"
	}

	switch m.uiState {
	case VIEW_LIST_PORTS:
		s += m.viewPorts()
	case VIEW_LOADING:
		s += fmt.Sprintf("Connecting to %s...\n", m.portName)
	case VIEW_SELECT_ACTIONS:
		s += m.viewSelectActions()
	case VIEW_RUNNER:
		s += m.viewRunner()
	}

	return s
}

func (m model) viewPorts() string {
	if len(m.potentialPorts) == 0 {
		return mutedStyle.Render("No serial ports found") + "\n\n" + renderHint("q to quit")
	}

	s := "Select a port:\n\n"
	for i, port := range m.potentialPorts {
		s += fmt.Sprintf("%s %s\n", renderCursor(i == m.cursor), renderItem(port, i == m.cursor))
	}
	return s + "\n" + renderHint("↑/↓ move • enter connect • q quit")
}

func (m model) viewSelectActions() string {
	var list strings.Builder
	fmt.Fprintf(&list, "Connected to %s\n\n", m.portName)
	for i, a := range m.actions {
		_, checked := m.selected[i]
		fmt.Fprintf(&list, "%s %s %s\n", renderCursor(i == m.cursor), renderCheckbox(checked), renderItem(a.name, i == m.cursor))
	}

	s := containerStyle.Render(strings.TrimRight(list.String(), "\n")) + "\n"

	if preview := m.actions[m.cursor].preview; preview != nil {
		lines := render.Preview(preview())
		s += "\n" + mutedStyle.Render("Preview") + "\n" + lcdStyle.Render(strings.Join(lines, "\n")) + "\n"
	}

	return s + "\n" + renderHint("↑/↓ move • space select • enter run • q quit")
}

func (m model) viewRunner() string {
	var rows []string
	for _, r := range m.results {
		rows = append(rows, fmt.Sprintf("%s %s", renderStatusIcon(r.Status, m.spinner.View()), renderActionName(r.Name, r.Status)))
		for _, line := range r.Logs {
			rows = append(rows, logIndent+logContentStyle.Render(ansi.Truncate(line, m.width-len(logIndent), "…")))
		}
	}

	s := lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n\n"
	switch {
	case m.done:
		return s + renderHint("esc back • q quit")
	case m.quitting:
		return s + renderWarning("stopping after the current action...")
	default:
		return s + renderHint("running... • q stop and quit")
	}
}
