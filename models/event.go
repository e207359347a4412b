/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 10:35:21
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-15 09:12:40
 * @FilePath: \go-wsc-echo\models\event.go
 * @Description: 传输层事件 - 以单一事件类型替代多回调监听器
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package models

import (
	"fmt"
	"net/http"
	"time"
)

// Socket 一个已发起的 WebSocket 会话句柄
type Socket interface {
	// ID 连接唯一标识
	ID() string
	// URL 连接地址
	URL() string
	// Send 非阻塞地将文本消息放入发送队列，队列已满或连接已关闭时返回 false
	Send(text string) bool
	// Close 发起正常关闭握手，已请求关闭或连接已关闭时返回 false
	Close(code int, reason string) bool
}

// Event 传输层事件
// 按 Kind 区分，只有与 Kind 对应的字段有意义
type Event struct {
	Kind     EventKind      // 事件类型
	Socket   Socket         // 产生事件的连接
	Text     string         // EventKindTextMessage
	Data     []byte         // EventKindBinaryMessage
	Code     int            // EventKindClosing / EventKindClosed
	Reason   string         // EventKindClosing / EventKindClosed
	Err      error          // EventKindFailure
	Response *http.Response // EventKindOpen / EventKindFailure（可能为 nil）
	Time     time.Time      // 事件产生时间
}

// NewOpenEvent 创建连接建立事件
func NewOpenEvent(s Socket, resp *http.Response) Event {
	return Event{Kind: EventKindOpen, Socket: s, Response: resp, Time: time.Now()}
}

// NewTextEvent 创建文本消息事件
func NewTextEvent(s Socket, text string) Event {
	return Event{Kind: EventKindTextMessage, Socket: s, Text: text, Time: time.Now()}
}

// NewBinaryEvent 创建二进制消息事件
func NewBinaryEvent(s Socket, data []byte) Event {
	return Event{Kind: EventKindBinaryMessage, Socket: s, Data: data, Time: time.Now()}
}

// NewClosingEvent 创建关闭中事件
func NewClosingEvent(s Socket, code int, reason string) Event {
	return Event{Kind: EventKindClosing, Socket: s, Code: code, Reason: reason, Time: time.Now()}
}

// NewClosedEvent 创建已关闭事件
func NewClosedEvent(s Socket, code int, reason string) Event {
	return Event{Kind: EventKindClosed, Socket: s, Code: code, Reason: reason, Time: time.Now()}
}

// NewFailureEvent 创建失败事件
func NewFailureEvent(s Socket, err error, resp *http.Response) Event {
	return Event{Kind: EventKindFailure, Socket: s, Err: err, Response: resp, Time: time.Now()}
}

// String 调试输出
func (e Event) String() string {
	switch e.Kind {
	case EventKindTextMessage:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	case EventKindBinaryMessage:
		return fmt.Sprintf("%s(%d bytes)", e.Kind, len(e.Data))
	case EventKindClosing, EventKindClosed:
		return fmt.Sprintf("%s(%d, %q)", e.Kind, e.Code, e.Reason)
	case EventKindFailure:
		return fmt.Sprintf("%s(%v)", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}
