/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 10:40:52
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-15 20:11:06
 * @FilePath: \go-wsc-echo\ui_state.go
 * @Description: 界面状态与日志缓冲
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package echo

import "strings"

// UIState 三个按钮的可用状态，完全由是否持有连接句柄决定
type UIState struct {
	ConnectEnabled    bool
	DisconnectEnabled bool
	SendEnabled       bool
}

// UIStateFor 根据连接状态计算按钮状态
func UIStateFor(connected bool) UIState {
	return UIState{
		ConnectEnabled:    !connected,
		DisconnectEnabled: connected,
		SendEnabled:       connected,
	}
}

// Connected 是否处于已连接的界面状态
func (s UIState) Connected() bool {
	return s.DisconnectEnabled && s.SendEnabled && !s.ConnectEnabled
}

// LogBuffer 只追加的日志行序列
type LogBuffer struct {
	lines []string
}

// Append 追加一行
func (b *LogBuffer) Append(line string) {
	b.lines = append(b.lines, line)
}

// Len 行数
func (b *LogBuffer) Len() int {
	return len(b.lines)
}

// Last 最后一行，空缓冲返回空字符串
func (b *LogBuffer) Last() string {
	if len(b.lines) == 0 {
		return ""
	}
	return b.lines[len(b.lines)-1]
}

// Lines 返回副本
func (b *LogBuffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// String 按行拼接，用于日志区域渲染
func (b *LogBuffer) String() string {
	return strings.Join(b.lines, "\n")
}

// Snapshot 控制器状态快照
type Snapshot struct {
	Log       []string // 全部日志行
	State     UIState  // 按钮状态
	Connected bool     // 是否持有连接句柄
	SocketID  string   // 当前连接句柄 ID
}

// View 界面抽象
// 所有方法都在控制器事件循环中按顺序调用，实现方不应阻塞太久
type View interface {
	AppendLog(line string)
	SetUIState(state UIState)
}

// nopView 无界面时使用
type nopView struct{}

func (nopView) AppendLog(string)   {}
func (nopView) SetUIState(UIState) {}
