package terminal

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.uiState == VIEW_RUNNER && !m.done {
				// the runner still owns the port, let it finish first
				if !m.quitting {
					m.quitting = true
					close(m.stop)
				}
				return m, nil
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if m.uiState != VIEW_RUNNER || m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case LogMsg:
		// Find currently running action and append log
		for i := range m.results {
			if m.results[i].Status == StatusRunning {
				m.results[i].Logs = append(m.results[i].Logs, string(msg))
				break
			}
		}
		return m, waitForLog(m.logChan)
	case ActionStartMsg:
		if msg.Index >= 0 && msg.Index < len(m.results) {
			m.results[msg.Index].Status = StatusRunning
		}
		return m, waitForLog(m.logChan)
	case ActionResultMsg:
		if msg.Index >= 0 && msg.Index < len(m.results) {
			if msg.Success {
				m.results[msg.Index].Status = StatusPass
			} else {
				m.results[msg.Index].Status = StatusFail
			}
			m.logger.Info("Action finished", zap.String("action", m.results[msg.Index].Name), zap.Bool("success", msg.Success))
		}
		return m, waitForLog(m.logChan)
	case runnerDoneMsg:
		m.done = true
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.uiState {
	case VIEW_LIST_PORTS:
		return m.updatePortSelection(msg)
	case VIEW_LOADING:
		return m.updateLoading(msg)
	case VIEW_SELECT_ACTIONS:
		return m.updateSelectActions(msg)
	case VIEW_RUNNER:
		return m.updateRunner(msg)
	}

	return m, nil
}

func (m model) updatePortSelection(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.potentialPorts)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.potentialPorts) == 0 {
				return m, nil
			}
			m.uiState = VIEW_LOADING
			m.portName = m.potentialPorts[m.cursor]
			m.err = nil
			return m, connectToPort(m.connector, m.portName)
		}
	}

	return m, nil
}

func (m model) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case connectionSuccessMsg:
		m.logger.Info("Connected to display", zap.String("port", m.portName))
		m.serial = msg.conn
		m.cursor = 0
		m.uiState = VIEW_SELECT_ACTIONS
		return m, nil
	case connectionErrorMsg:
		m.logger.Warn("Could not connect to display", zap.String("port", m.portName), zap.Error(msg.err))
		m.err = msg.err
		m.cursor = 0
		m.uiState = VIEW_LIST_PORTS
		if m.potentialPorts == nil {
			ports, err := fetchPorts(m.portLister)
			if err != nil {
				m.logger.Warn("Could not list serial ports", zap.Error(err))
				m.err = multierr.Append(msg.err, err)
				return m, nil
			}
			m.potentialPorts = ports
		}
		return m, nil
	}
	return m, nil
}

func (m model) updateSelectActions(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.actions)-1 {
				m.cursor++
			}
		case " ":
			m.toggleSelection()
		case "enter":
			selected := m.selectedActions()
			if len(selected) == 0 {
				m.err = errNothingSelected
				return m, nil
			}
			m.err = nil
			m.uiState = VIEW_RUNNER
			m.done = false
			m.quitting = false
			m.logChan = make(chan any)
			m.stop = make(chan struct{})

			m.results = make([]ActionResult, 0, len(selected))
			for _, idx := range selected {
				m.results = append(m.results, ActionResult{
					Name:   m.actions[idx].name,
					Status: StatusPending,
					Logs:   []string{},
				})
			}

			go runActions(m.serial, m.actions, selected, m.stop, m.logChan)

			return m, tea.Batch(waitForLog(m.logChan), m.spinner.Tick)
		}
	}

	return m, nil
}

// the selection map is shared between model copies, so mutating it through a
// value receiver is fine
func (m model) toggleSelection() {
	if m.cursor == SELECT_ALL_IDX {
		if _, ok := m.selected[SELECT_ALL_IDX]; !ok {
			for i := range m.actions {
				m.selected[i] = struct{}{}
			}
		} else {
			for i := range m.actions {
				delete(m.selected, i)
			}
		}
		return
	}

	if _, ok := m.selected[m.cursor]; !ok {
		m.selected[m.cursor] = struct{}{}
	} else {
		delete(m.selected, m.cursor)
		delete(m.selected, SELECT_ALL_IDX)
	}
}

func (m model) updateRunner(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" && m.done {
			m.uiState = VIEW_SELECT_ACTIONS
			m.results = nil
			return m, nil
		}
	}

	return m, nil
}
