package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pump_base/internal/create"
)

const (
	fieldName = iota
	fieldTicker
	fieldDescription
	fieldCount
)

// formModel 创建代币弹窗里的三个输入框
type formModel struct {
	name        textinput.Model
	ticker      textinput.Model
	description textarea.Model
	focus       int
}

func newFormModel() formModel {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Based Pepe"

	ticker := textinput.New()
	ticker.Prompt = "$ "
	ticker.Placeholder = "BPEPE"

	desc := textarea.New()
	desc.Placeholder = "the most based frog on base chain"
	desc.ShowLineNumbers = false
	desc.SetWidth(44)
	desc.SetHeight(3)

	return formModel{name: name, ticker: ticker, description: desc}
}

// open 清空输入并聚焦第一个输入框
func (f *formModel) open() tea.Cmd {
	*f = newFormModel()
	return f.setFocus(fieldName)
}

func (f *formModel) setFocus(field int) tea.Cmd {
	f.name.Blur()
	f.ticker.Blur()
	f.description.Blur()
	f.focus = (field + fieldCount) % fieldCount

	switch f.focus {
	case fieldName:
		return f.name.Focus()
	case fieldTicker:
		return f.ticker.Focus()
	default:
		return f.description.Focus()
	}
}

// update 把按键交给当前输入框，并把输入同步到表单草稿
func (f *formModel) update(msg tea.Msg, draft *create.Form) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
		draft.SetName(f.name.Value())
	case fieldTicker:
		f.ticker, cmd = f.ticker.Update(msg)
		draft.SetTicker(f.ticker.Value())
		// 输入时即转为大写并截断
		if f.ticker.Value() != draft.Ticker() {
			f.ticker.SetValue(draft.Ticker())
			f.ticker.CursorEnd()
		}
	default:
		f.description, cmd = f.description.Update(msg)
		draft.SetDescription(f.description.Value())
	}
	return cmd
}
