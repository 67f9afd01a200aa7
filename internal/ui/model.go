package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pump_base/internal/app"
	"pump_base/internal/common"
	"pump_base/internal/create"
	"pump_base/internal/model"
)

type focusArea int

const (
	focusGrid focusArea = iota
	focusSearch
)

// eventMsg 控制器事件队列里的一条消息
type eventMsg struct {
	msg *model.QueueMessage
}

// queueStoppedMsg 控制器关闭后不再有事件
type queueStoppedMsg struct{}

// Model 终端界面，所有状态修改都经过 app.Controller
type Model struct {
	ctrl    *app.Controller
	search  textinput.Model
	spinner spinner.Model
	form    formModel
	focus   focusArea
	status  string
	width   int
	height  int
	now     func() time.Time
}

func New(ctrl *app.Controller) Model {
	search := textinput.New()
	search.Prompt = "⌕ "
	search.Placeholder = "search for token"

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	return Model{
		ctrl:    ctrl,
		search:  search,
		spinner: sp,
		form:    newFormModel(),
		width:   defaultWidth,
		now:     time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	m.ctrl.Start()
	return tea.Batch(m.spinner.Tick, waitForEvent(m.ctrl))
}

// waitForEvent 阻塞读取下一条事件并交给 Update
func waitForEvent(ctrl *app.Controller) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-ctrl.Events():
			return eventMsg{msg: msg}
		case <-ctrl.Done():
			return queueStoppedMsg{}
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case eventMsg:
		wasOpen := m.ctrl.State().ShowCreate
		if err := m.ctrl.Apply(msg.msg); err != nil {
			common.Log.WithError(err).Error("处理事件失败")
			m.status = err.Error()
		} else if msg.msg.Type == model.MessageTypeCreated && wasOpen && !m.ctrl.State().ShowCreate {
			m.status = "token launched"
		}
		return m, waitForEvent(m.ctrl)

	case queueStoppedMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.ctrl.State().ShowCreate {
			return m.updateForm(msg)
		}
		if m.focus == focusSearch {
			return m.updateSearch(msg)
		}
		return m.updateGrid(msg)
	}
	return m, nil
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.focus = focusSearch
		return m, m.search.Focus()
	case "esc":
		m.search.SetValue("")
		m.ctrl.SetQuery("")
		m.status = ""
	case "c":
		if err := m.ctrl.OpenCreate(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		return m, m.form.open()
	case "w":
		m.ctrl.ToggleWallet()
	case "1", "2", "3", "4":
		opts := common.SortOptions()
		m.setSort(opts[int(msg.String()[0]-'1')])
	case "left", "h":
		m.shiftSort(-1)
	case "right", "l":
		m.shiftSort(1)
	}
	return m, nil
}

func (m *Model) setSort(opt common.SortOption) {
	if err := m.ctrl.SetSort(opt); err != nil {
		m.status = err.Error()
	}
}

func (m *Model) shiftSort(dir int) {
	opts := common.SortOptions()
	current := 0
	for i, opt := range opts {
		if opt == m.ctrl.State().SortBy {
			current = i
		}
	}
	m.setSort(opts[(current+dir+len(opts))%len(opts)])
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		m.search.Blur()
		m.focus = focusGrid
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.ctrl.SetQuery(m.search.Value())
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ctrl.CloseCreate()
		m.form = newFormModel()
		m.status = ""
		return m, nil
	case "tab", "down":
		return m, m.form.setFocus(m.form.focus + 1)
	case "shift+tab", "up":
		return m, m.form.setFocus(m.form.focus - 1)
	case "enter":
		err := m.ctrl.Submit()
		switch {
		case err == nil:
			m.status = "launching..."
		case errors.Is(err, create.ErrMissingField):
			m.status = "name, ticker and description are required"
		default:
			m.status = err.Error()
		}
		return m, nil
	}
	return m, m.form.update(msg, m.ctrl.Form())
}
