/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 11:48:02
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 10:39:57
 * @FilePath: \go-wsc-echo\client\websocket.go
 * @Description: Conn 连接句柄及其对外方法
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package client

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
	"github.com/kamalyes/go-toolbox/pkg/syncx"
	"github.com/kamalyes/go-wsc-echo/models"
)

// ClientMessage 结构体表示待写出的 WebSocket 消息
type ClientMessage struct {
	T   int    // 消息类型
	Msg []byte // 消息内容
}

// Conn 一次连接尝试对应的句柄，实现 models.Socket
// 从 Connect 返回起即可使用：连接建立前写入的消息会在握手成功后按序发出
type Conn struct {
	id     string
	url    string
	wsc    *Wsc
	events chan<- Event

	stateMachine *syncx.StateMachine[ConnectionStatus] // 连接状态机

	connMu sync.RWMutex
	ws     *websocket.Conn
	resp   *http.Response

	sendChan  chan *ClientMessage // 发送消息缓冲池
	closeChan chan *ClientMessage // 关闭帧，只会写入一次

	closeRequested atomic.Bool                // 本端已请求关闭
	closeSent      atomic.Bool                // 本端已发出关闭帧
	awaitingPong   atomic.Bool                // 已发 ping 未收到 pong
	pongCount      atomic.Int64               // 收到的 pong 数
	closeTimer     atomic.Pointer[time.Timer] // 关闭握手超时定时器

	done          chan struct{}
	terminateOnce sync.Once
}

func newConn(wsc *Wsc, id, url string, events chan<- Event) *Conn {
	sm := syncx.NewStateMachine(ConnectionStatusConnecting)
	sm.AllowTransitions(ConnectionStatusConnecting, ConnectionStatusConnected, ConnectionStatusDisconnected, ConnectionStatusError)
	sm.AllowTransitions(ConnectionStatusConnected, ConnectionStatusClosing, ConnectionStatusDisconnected, ConnectionStatusError)
	sm.AllowTransitions(ConnectionStatusClosing, ConnectionStatusDisconnected, ConnectionStatusError)

	return &Conn{
		id:           id,
		url:          url,
		wsc:          wsc,
		events:       events,
		stateMachine: sm,
		sendChan:     make(chan *ClientMessage, wsc.Config.MessageBufferSize),
		closeChan:    make(chan *ClientMessage, 1),
		done:         make(chan struct{}),
	}
}

// ID 连接唯一标识
func (c *Conn) ID() string {
	return c.id
}

// URL 连接地址
func (c *Conn) URL() string {
	return c.url
}

// Status 当前连接状态
func (c *Conn) Status() ConnectionStatus {
	return c.stateMachine.CurrentState()
}

// Response 握手响应，连接建立前为 nil
func (c *Conn) Response() *http.Response {
	c.connMu.RLock()
	defer c.connMu.RUnlock()
	return c.resp
}

// Done 连接进入终态后关闭
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// PongCount 收到的 pong 数量
func (c *Conn) PongCount() int64 {
	return c.pongCount.Load()
}

// QueueSize 发送队列中尚未写出的消息数
func (c *Conn) QueueSize() int {
	return len(c.sendChan)
}

// Send 发送文本消息，消息入队即返回 true
func (c *Conn) Send(text string) bool {
	return c.SendText(text) == nil
}

// SendText 发送文本消息
// 连接已终止返回 ErrConnectionClosed，已请求关闭返回 ErrCloseRequested，队列满返回 ErrMessageBufferFull
func (c *Conn) SendText(text string) error {
	if c.isTerminated() {
		return ErrConnectionClosed
	}
	if c.closeRequested.Load() || c.closeSent.Load() {
		return ErrCloseRequested
	}
	select {
	case c.sendChan <- &ClientMessage{T: websocket.TextMessage, Msg: []byte(text)}:
		return nil
	default:
		return ErrMessageBufferFull
	}
}

// Close 发起正常关闭握手，关闭帧入队即返回 true
func (c *Conn) Close(code int, reason string) bool {
	return c.CloseWithError(code, reason) == nil
}

// CloseWithError 发起关闭握手
// 关闭帧排在已入队消息之后发出；对端回应关闭帧后投递 Closed 事件
func (c *Conn) CloseWithError(code int, reason string) error {
	if !models.IsValidCloseCode(code) {
		return errorx.NewError(ErrTypeInvalidCloseCode, code)
	}
	if len(reason) > models.MaxCloseReasonBytes {
		return errorx.NewError(ErrTypeCloseReasonTooLong, len(reason))
	}
	if c.isTerminated() {
		return ErrConnectionClosed
	}
	if !c.closeRequested.CompareAndSwap(false, true) {
		return ErrCloseRequested
	}
	c.closeChan <- &ClientMessage{
		T:   websocket.CloseMessage,
		Msg: websocket.FormatCloseMessage(code, reason),
	}
	c.wsc.logger.DebugKV("请求关闭WebSocket连接", "conn_id", c.id, "code", code, "reason", reason)
	return nil
}

// isTerminated 连接是否已进入终态
func (c *Conn) isTerminated() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
