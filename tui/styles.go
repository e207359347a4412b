/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-14 09:05:13
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-14 09:05:13
 * @FilePath: \go-wsc-echo\tui\styles.go
 * @Description: 终端界面样式
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	urlStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	buttonStyle         = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	buttonEnabledStyle  = buttonStyle.Foreground(lipgloss.Color("255")).BorderForeground(lipgloss.Color("39"))
	buttonDisabledStyle = buttonStyle.Foreground(lipgloss.Color("240")).BorderForeground(lipgloss.Color("238"))
	buttonFocusedStyle  = buttonEnabledStyle.Bold(true).Reverse(true)

	logStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(lipgloss.Color("238"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
