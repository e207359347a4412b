/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-14 09:40:27
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 17:20:48
 * @FilePath: \go-wsc-echo\tui\model.go
 * @Description: 终端界面 - 一个输入框、三个按钮和滚动日志区域
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	echo "github.com/kamalyes/go-wsc-echo"
)

// Actions 界面可触发的控制器操作
type Actions interface {
	Connect()
	Disconnect()
	Send(text string)
}

// focus 当前焦点
type focus int

const (
	focusInput focus = iota
	focusConnect
	focusDisconnect
	focusSend
	focusCount
)

// 除日志区域外占用的行数：标题、按钮（含边框）、输入框、帮助
const chromeHeight = 8

// Model bubbletea 模型
type Model struct {
	actions  Actions
	url      string
	input    textinput.Model
	viewport viewport.Model
	lines    []string
	state    echo.UIState
	focus    focus
	ready    bool
}

// New 创建界面模型，初始为未连接状态
func New(actions Actions, url string) Model {
	input := textinput.New()
	input.Placeholder = "Type a message"
	input.Prompt = "> "
	input.CharLimit = 4096
	input.Focus()

	return Model{
		actions:  actions,
		url:      url,
		input:    input,
		viewport: viewport.New(80, 12),
		state:    echo.UIStateFor(false),
		focus:    focusInput,
	}
}

// Init 实现 tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update 实现 tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case LogLineMsg:
		m.lines = append(m.lines, string(msg))
		m.refreshLog()
		return m, nil

	case UIStateMsg:
		m.state = echo.UIState(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case "ctrl+o":
		return m, m.press(focusConnect)
	case "ctrl+d":
		return m, m.press(focusDisconnect)
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case "enter":
		if m.focus == focusInput {
			return m, m.press(focusSend)
		}
		return m, m.press(m.focus)
	}

	if m.focus != focusInput {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// press 触发按钮，禁用的按钮不做任何事
func (m *Model) press(button focus) tea.Cmd {
	actions := m.actions
	switch button {
	case focusConnect:
		if !m.state.ConnectEnabled {
			return nil
		}
		return func() tea.Msg { actions.Connect(); return nil }
	case focusDisconnect:
		if !m.state.DisconnectEnabled {
			return nil
		}
		return func() tea.Msg { actions.Disconnect(); return nil }
	case focusSend:
		if !m.state.SendEnabled {
			return nil
		}
		text := m.input.Value()
		if text == "" {
			return nil
		}
		m.input.SetValue("")
		return func() tea.Msg { actions.Send(text); return nil }
	}
	return nil
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) resize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(height-chromeHeight, 3)
	m.input.Width = max(width-4, 10)
	m.ready = true
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

// Lines 已显示的日志行
func (m Model) Lines() []string {
	return m.lines
}

// State 当前按钮状态
func (m Model) State() echo.UIState {
	return m.state
}

// View 实现 tea.Model
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("WebSocket echo client") + " " + urlStyle.Render(m.url))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderButton("Connect", focusConnect, m.state.ConnectEnabled),
		m.renderButton("Disconnect", focusDisconnect, m.state.DisconnectEnabled),
		m.renderButton("Send", focusSend, m.state.SendEnabled),
	))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(logStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: focus • enter: press/send • ctrl+o: connect • ctrl+d: disconnect • pgup/pgdown: scroll • esc: quit"))
	return b.String()
}

func (m Model) renderButton(label string, button focus, enabled bool) string {
	switch {
	case !enabled:
		return buttonDisabledStyle.Render(label)
	case m.focus == button:
		return buttonFocusedStyle.Render(label)
	default:
		return buttonEnabledStyle.Render(label)
	}
}
