/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 10:20:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-14 18:42:10
 * @FilePath: \go-wsc-echo\models\enums.go
 * @Description: 枚举类型定义
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package models

// ConnectionStatus 连接状态
type ConnectionStatus string

const (
	ConnectionStatusConnecting   ConnectionStatus = "connecting"   // 连接中
	ConnectionStatusConnected    ConnectionStatus = "connected"    // 已连接
	ConnectionStatusClosing      ConnectionStatus = "closing"      // 关闭握手中
	ConnectionStatusDisconnected ConnectionStatus = "disconnected" // 已断开
	ConnectionStatusError        ConnectionStatus = "error"        // 连接错误
)

// String 实现Stringer接口
func (s ConnectionStatus) String() string {
	return string(s)
}

// IsValid 检查连接状态是否有效
func (s ConnectionStatus) IsValid() bool {
	return ConnectionStatusValidator.IsValid(s)
}

// IsTerminal 是否为终态（连接不会再产生事件）
func (s ConnectionStatus) IsTerminal() bool {
	return s == ConnectionStatusDisconnected || s == ConnectionStatusError
}

// EventKind 传输层事件类型
type EventKind string

const (
	EventKindOpen          EventKind = "open"           // 连接建立
	EventKindTextMessage   EventKind = "text_message"   // 收到文本消息
	EventKindBinaryMessage EventKind = "binary_message" // 收到二进制消息
	EventKindClosing       EventKind = "closing"        // 收到对端关闭帧
	EventKindClosed        EventKind = "closed"         // 关闭握手完成
	EventKindFailure       EventKind = "failure"        // 连接失败或异常断开
)

// String 实现Stringer接口
func (k EventKind) String() string {
	return string(k)
}

// IsValid 检查事件类型是否有效
func (k EventKind) IsValid() bool {
	return EventKindValidator.IsValid(k)
}

// IsTerminal 终态事件之后同一连接不会再有事件
func (k EventKind) IsTerminal() bool {
	return k == EventKindClosed || k == EventKindFailure
}

// WebSocket 关闭状态码
const (
	CloseNormalClosure   = 1000 // 正常关闭
	CloseGoingAway       = 1001 // 端点离开
	CloseNoStatus        = 1005 // 未携带状态码
	CloseAbnormalClosure = 1006 // 异常关闭
	MaxCloseReasonBytes  = 123  // 关闭原因最大字节数
)
