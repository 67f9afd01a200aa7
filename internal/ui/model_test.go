package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pump_base/internal/app"
	"pump_base/internal/common"
	"pump_base/internal/generator"
)

func loadedModel(t *testing.T) Model {
	t.Helper()
	ctrl := app.NewController(app.Options{}, generator.NewSeeded(99, common.CHAIN_BASE))
	t.Cleanup(ctrl.Close)

	m := New(ctrl)
	m.Init()
	m = nextEvent(t, m)
	require.False(t, ctrl.State().Loading)
	return m
}

// nextEvent 读取一条控制器事件并交给 Update
func nextEvent(t *testing.T, m Model) Model {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	select {
	case msg := <-m.ctrl.Events():
		next, _ := m.Update(eventMsg{msg: msg})
		return next.(Model)
	case <-ctx.Done():
		t.Fatal("等待事件超时")
	}
	return m
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = press(m, string(r))
	}
	return m
}

func TestModel_LoadingView(t *testing.T) {
	ctrl := app.NewController(app.Options{LoadDelay: time.Hour}, generator.NewSeeded(1, common.CHAIN_BASE))
	defer ctrl.Close()

	m := New(ctrl)
	m.Init()
	out := m.View()
	assert.Contains(t, out, "loading tokens")
	assert.NotContains(t, out, "no tokens found ser")
}

func TestModel_GridAndSearch(t *testing.T) {
	m := loadedModel(t)
	out := m.View()
	assert.Contains(t, out, "Based Pepe")
	assert.Contains(t, out, "BONDING CURVE")

	m = press(m, "/")
	m = typeText(m, "PEPE")
	assert.Equal(t, "PEPE", m.ctrl.State().Query)
	snap := m.ctrl.View()
	require.Len(t, snap.Tokens, 1)
	assert.Equal(t, "BPEPE", snap.Tokens[0].Ticker)

	m = press(m, "enter")
	assert.Equal(t, focusGrid, m.focus)

	m = press(m, "/")
	m = typeText(m, "zzz")
	out = m.View()
	assert.Contains(t, out, "no tokens found ser")

	m = press(m, "esc", "esc")
	assert.Equal(t, "", m.ctrl.State().Query)
}

func TestModel_SortKeys(t *testing.T) {
	m := loadedModel(t)

	m = press(m, "4")
	assert.Equal(t, common.SORT_MARKET_CAP, m.ctrl.State().SortBy)
	m = press(m, "right")
	assert.Equal(t, common.SORT_BUMP, m.ctrl.State().SortBy)
	m = press(m, "left")
	assert.Equal(t, common.SORT_MARKET_CAP, m.ctrl.State().SortBy)
	m = press(m, "2")
	assert.Equal(t, common.SORT_CREATION, m.ctrl.State().SortBy)
	assert.Contains(t, m.View(), "CREATION")
}

func TestModel_WalletToggle(t *testing.T) {
	m := loadedModel(t)
	assert.Contains(t, m.View(), "connect")

	m = press(m, "w")
	w := m.ctrl.State().Wallet
	require.True(t, w.Connected)
	assert.Contains(t, m.View(), w.Address)

	m = press(m, "w")
	assert.False(t, m.ctrl.State().Wallet.Connected)
}

func TestModel_CreateFlow(t *testing.T) {
	m := loadedModel(t)

	m = press(m, "c")
	require.True(t, m.ctrl.State().ShowCreate)
	assert.Contains(t, m.View(), "create token")

	// 空表单提交被拒绝，弹窗保持打开
	m = press(m, "enter")
	assert.True(t, m.ctrl.State().ShowCreate)
	assert.False(t, m.ctrl.State().Submitting)
	assert.Contains(t, m.status, "required")

	m = typeText(m, "Test")
	m = press(m, "tab")
	m = typeText(m, "tstlongticker")
	assert.Equal(t, "TSTLONGT", m.ctrl.Form().Ticker())
	assert.Equal(t, "TSTLONGT", m.form.ticker.Value())
	m = press(m, "tab")
	m = typeText(m, "x")

	m = press(m, "enter")
	require.True(t, m.ctrl.State().Submitting)
	assert.Contains(t, m.View(), "launching...")

	m = nextEvent(t, m)
	assert.False(t, m.ctrl.State().ShowCreate)
	assert.Equal(t, "token launched", m.status)
	assert.Equal(t, 13, m.ctrl.View().Total)
}

func TestModel_CreateCancelled(t *testing.T) {
	m := loadedModel(t)

	m = press(m, "c")
	m = typeText(m, "Test")
	m = press(m, "esc")
	assert.False(t, m.ctrl.State().ShowCreate)
	assert.Equal(t, "", m.ctrl.Form().Name())

	m = press(m, "c")
	assert.Equal(t, "", m.form.name.Value(), "重新打开时表单为空")
}

func TestModel_OpenCreateWhileLoading(t *testing.T) {
	ctrl := app.NewController(app.Options{LoadDelay: time.Hour}, generator.NewSeeded(1, common.CHAIN_BASE))
	defer ctrl.Close()

	m := New(ctrl)
	m.Init()
	m = press(m, "c")
	assert.False(t, ctrl.State().ShowCreate)
	assert.Equal(t, app.ErrNotLoaded.Error(), m.status)
}

func TestModel_GridColumns(t *testing.T) {
	m := loadedModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	m = next.(Model)
	wide := strings.Count(m.View(), "\n")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 50})
	m = next.(Model)
	narrow := strings.Count(m.View(), "\n")
	assert.Greater(t, narrow, wide, "窄屏时每行卡片更少，总行数更多")
}

func TestProgressBarAndTruncate(t *testing.T) {
	assert.Equal(t, barWidth, len([]rune(stripANSI(progressBar(50)))))
	assert.Equal(t, strings.Repeat("█", barWidth), stripANSI(progressBar(150)))
	assert.Equal(t, strings.Repeat("░", barWidth), stripANSI(progressBar(-3)))

	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "", truncate("abc", 0))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
