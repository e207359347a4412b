/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-14 10:12:03
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 17:25:31
 * @FilePath: \go-wsc-echo\tui\model_test.go
 * @Description: 终端界面模型测试
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	echo "github.com/kamalyes/go-wsc-echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingActions struct {
	calls []string
}

func (r *recordingActions) Connect()         { r.calls = append(r.calls, "connect") }
func (r *recordingActions) Disconnect()      { r.calls = append(r.calls, "disconnect") }
func (r *recordingActions) Send(text string) { r.calls = append(r.calls, "send:"+text) }

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// press 发送按键并同步执行返回的命令
func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	m, cmd := update(t, m, key)
	if cmd != nil {
		cmd()
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func connected(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, UIStateMsg(echo.UIStateFor(true)))
	return m
}

func TestModelInitialState(t *testing.T) {
	m := New(&recordingActions{}, echo.DefaultURL)
	assert.Equal(t, echo.UIStateFor(false), m.State())
	assert.Empty(t, m.Lines())
	assert.Contains(t, m.View(), echo.DefaultURL)
}

func TestModelLogLinesAppend(t *testing.T) {
	m := New(&recordingActions{}, echo.DefaultURL)
	m, _ = update(t, m, LogLineMsg("Connecting to x..."))
	m, _ = update(t, m, LogLineMsg("Connected"))
	assert.Equal(t, []string{"Connecting to x...", "Connected"}, m.Lines())
}

func TestModelCtrlOConnects(t *testing.T) {
	actions := &recordingActions{}
	m := New(actions, echo.DefaultURL)
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Equal(t, []string{"connect"}, actions.calls)
}

func TestModelDisabledButtonsDoNothing(t *testing.T) {
	actions := &recordingActions{}
	m := New(actions, echo.DefaultURL)

	// 未连接：断开与发送不可用
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	m = typeText(t, m, "hi")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, actions.calls)

	// 已连接：连接不可用
	m = connected(t, m)
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Empty(t, actions.calls)
}

func TestModelEnterSendsAndClearsInput(t *testing.T) {
	actions := &recordingActions{}
	m := connected(t, New(actions, echo.DefaultURL))

	m = typeText(t, m, "hello")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"send:hello"}, actions.calls)
	assert.Empty(t, m.input.Value())

	// 空输入不发送
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"send:hello"}, actions.calls)
}

func TestModelFocusCycleAndActivate(t *testing.T) {
	actions := &recordingActions{}
	m := New(actions, echo.DefaultURL)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusConnect, m.focus)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"connect"}, actions.calls)

	m = connected(t, m)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusDisconnect, m.focus)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"connect", "disconnect"}, actions.calls)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusInput, m.focus)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusSend, m.focus)
}

func TestModelTypingIgnoredWhenButtonFocused(t *testing.T) {
	m := New(&recordingActions{}, echo.DefaultURL)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "abc")
	assert.Empty(t, m.input.Value())
}

func TestModelQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m := New(&recordingActions{}, echo.DefaultURL)
		_, cmd := update(t, m, key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModelResize(t *testing.T) {
	m := New(&recordingActions{}, echo.DefaultURL)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.True(t, m.ready)
	assert.Equal(t, 100, m.viewport.Width)
	assert.Equal(t, 30-chromeHeight, m.viewport.Height)
}

func TestProgramViewWithoutProgram(t *testing.T) {
	v := NewProgramView()
	assert.NotPanics(t, func() {
		v.AppendLog("dropped")
		v.SetUIState(echo.UIStateFor(true))
	})
}
