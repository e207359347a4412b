/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-14 09:20:40
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 17:02:55
 * @FilePath: \go-wsc-echo\tui\program_view.go
 * @Description: 控制器界面实现 - 将日志与按钮状态投递到 bubbletea 程序
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	echo "github.com/kamalyes/go-wsc-echo"
)

// LogLineMsg 追加一行日志
type LogLineMsg string

// UIStateMsg 更新按钮状态
type UIStateMsg echo.UIState

// ProgramView 实现 echo.View
// 控制器在自己的事件循环中调用，这里把更新作为消息交给 bubbletea 的主循环处理
type ProgramView struct {
	mu      sync.RWMutex
	program *tea.Program
}

// NewProgramView 创建未绑定程序的界面
func NewProgramView() *ProgramView {
	return &ProgramView{}
}

// Attach 绑定程序，绑定之前的更新会被丢弃
func (v *ProgramView) Attach(p *tea.Program) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.program = p
}

// AppendLog 实现 echo.View
func (v *ProgramView) AppendLog(line string) {
	v.send(LogLineMsg(line))
}

// SetUIState 实现 echo.View
func (v *ProgramView) SetUIState(state echo.UIState) {
	v.send(UIStateMsg(state))
}

func (v *ProgramView) send(msg tea.Msg) {
	v.mu.RLock()
	p := v.program
	v.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}
