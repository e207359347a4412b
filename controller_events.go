/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 14:26:03
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 16:40:37
 * @FilePath: \go-wsc-echo\controller_events.go
 * @Description: 传输层事件到日志与按钮状态的投影
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package echo

import (
	"encoding/hex"
	"fmt"
)

// handleEvent 在事件循环中处理传输层事件
// 只有当前句柄产生的事件会改变句柄和按钮状态，其他连接的迟到事件只记录日志
func (c *Controller) handleEvent(ev Event) {
	current := c.isCurrent(ev.Socket)
	if !current {
		c.logger.WarnKV("收到非当前连接的事件", "event", ev.String(), "conn_id", socketID(ev.Socket))
	}

	switch ev.Kind {
	case EventKindOpen:
		if current {
			c.socket = ev.Socket
			c.setConnected(true)
		}
		c.appendLog(LogConnected)

	case EventKindTextMessage:
		c.appendLog("Received (text): " + ev.Text)

	case EventKindBinaryMessage:
		c.appendLog("Received (bytes): " + hex.EncodeToString(ev.Data))

	case EventKindClosing:
		// 关闭握手期间仍保持已连接状态，等待 Closed
		c.appendLog(fmt.Sprintf("Closing: %d / %s", ev.Code, ev.Reason))

	case EventKindClosed:
		c.appendLog(fmt.Sprintf("Disconnected: %d / %s", ev.Code, ev.Reason))
		if current {
			c.clearSocket()
		}

	case EventKindFailure:
		c.appendLog("Connection failed: " + errorMessage(ev.Err))
		if current {
			c.clearSocket()
		}

	default:
		c.logger.WarnKV("未知事件类型", "kind", ev.Kind)
	}
}

// isCurrent 事件是否来自当前句柄
func (c *Controller) isCurrent(s Socket) bool {
	return c.socket != nil && s != nil && c.socket.ID() == s.ID()
}

// clearSocket 清除句柄并恢复未连接的按钮状态
func (c *Controller) clearSocket() {
	c.logger.InfoKV("连接已结束", "conn_id", socketID(c.socket))
	c.socket = nil
	c.setConnected(false)
}

func errorMessage(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
