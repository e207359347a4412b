/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 12:30:47
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 11:02:18
 * @FilePath: \go-wsc-echo\client\connection.go
 * @Description: 连接管理逻辑 - 拨号、读写协程、关闭握手
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package client

import (
	"context"
	"errors"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
	"github.com/kamalyes/go-wsc-echo/models"
)

// run 拨号并在成功后进入读循环，直到连接进入终态
func (c *Conn) run() {
	ws, ok := c.dial()
	if !ok {
		return
	}

	// 设置支持接受的消息最大长度
	ws.SetReadLimit(c.wsc.Config.MaxMessageSize)
	// 设置关闭、ping 和 pong 处理
	c.setupHandlers(ws)

	_ = c.stateMachine.TransitionTo(ConnectionStatusConnected)
	c.wsc.logger.InfoKV("WebSocket连接成功", "conn_id", c.id, "url", c.url)
	c.emit(models.NewOpenEvent(c, c.Response()))

	c.wsc.wg.Add(1)
	go func() {
		defer c.wsc.wg.Done()
		c.writeMessages(ws)
	}()
	c.readMessages(ws)
}

// dial 建立 WebSocket 连接
func (c *Conn) dial() (*websocket.Conn, bool) {
	ctx, cancel := context.WithTimeout(c.wsc.ctx, c.wsc.Config.HandshakeTimeout)
	defer cancel()

	ws, resp, err := c.wsc.Dialer.DialContext(ctx, c.url, c.wsc.RequestHeader)
	if err != nil {
		c.wsc.logger.WarnKV("WebSocket连接失败", "conn_id", c.id, "url", c.url, "error", err)
		c.terminate(models.NewFailureEvent(c, err, resp))
		return nil, false
	}

	c.connMu.Lock()
	defer c.connMu.Unlock()
	if c.isTerminated() {
		// 拨号期间传输层已停止
		_ = ws.Close()
		return nil, false
	}
	c.ws = ws
	c.resp = resp
	return ws, true
}

// setupHandlers 设置关闭、ping 和 pong 的处理函数
func (c *Conn) setupHandlers(ws *websocket.Conn) {
	// 收到对端关闭帧：先通知 Closing，本端尚未发送关闭帧时回应同一状态码
	ws.SetCloseHandler(func(code int, text string) error {
		_ = c.stateMachine.TransitionTo(ConnectionStatusClosing)
		c.emit(models.NewClosingEvent(c, code, text))
		if c.closeSent.CompareAndSwap(false, true) {
			deadline := time.Now().Add(c.wsc.Config.WriteTimeout)
			_ = ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, ""), deadline)
		}
		return nil
	})

	ws.SetPongHandler(func(string) error {
		c.awaitingPong.Store(false)
		c.pongCount.Add(1)
		return nil
	})
}

// readMessages 读循环，运行在连接自身的协程中
func (c *Conn) readMessages(ws *websocket.Conn) {
	for {
		messageType, message, err := ws.ReadMessage()
		if err != nil {
			c.handleReadError(err)
			return
		}
		switch messageType {
		case websocket.TextMessage:
			c.emit(models.NewTextEvent(c, string(message)))
		case websocket.BinaryMessage:
			c.emit(models.NewBinaryEvent(c, message))
		}
	}
}

// handleReadError 读错误：关闭帧视为正常关闭，其他一律视为失败
func (c *Conn) handleReadError(err error) {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		c.terminate(models.NewClosedEvent(c, closeErr.Code, closeErr.Text))
		return
	}
	c.terminate(models.NewFailureEvent(c, err, nil))
}

// writeMessages 写协程
// 按入队顺序写出消息；关闭帧在清空已入队消息后写出
func (c *Conn) writeMessages(ws *websocket.Conn) {
	var ping <-chan time.Time
	if c.wsc.Config.PingInterval > 0 {
		ticker := time.NewTicker(c.wsc.Config.PingInterval)
		defer ticker.Stop()
		ping = ticker.C
	}

	for {
		var err error
		select {
		case <-c.done:
			return
		case msg := <-c.sendChan:
			err = c.write(ws, msg)
		case msg := <-c.closeChan:
			if err = c.drainSendChan(ws); err == nil {
				err = c.writeClose(ws, msg)
			}
		case <-ping:
			err = c.writePing(ws)
		}
		if err != nil {
			c.wsc.logger.WarnKV("WebSocket写入失败", "conn_id", c.id, "error", err)
			c.terminate(models.NewFailureEvent(c, err, nil))
			return
		}
	}
}

// drainSendChan 写出关闭帧之前已入队的消息
func (c *Conn) drainSendChan(ws *websocket.Conn) error {
	for {
		select {
		case msg := <-c.sendChan:
			if err := c.write(ws, msg); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// write 写出一条数据消息，关闭帧发出后的消息直接丢弃
func (c *Conn) write(ws *websocket.Conn, msg *ClientMessage) error {
	if c.closeSent.Load() {
		return nil
	}
	_ = ws.SetWriteDeadline(time.Now().Add(c.wsc.Config.WriteTimeout))
	return ws.WriteMessage(msg.T, msg.Msg)
}

// writeClose 写出关闭帧并启动关闭握手超时
func (c *Conn) writeClose(ws *websocket.Conn, msg *ClientMessage) error {
	if !c.closeSent.CompareAndSwap(false, true) {
		// 对端先发起关闭，关闭帧已由关闭处理函数回应
		return nil
	}
	_ = c.stateMachine.TransitionTo(ConnectionStatusClosing)

	timer := time.AfterFunc(c.wsc.Config.CloseTimeout, func() {
		c.wsc.logger.WarnKV("WebSocket关闭握手超时", "conn_id", c.id, "timeout", c.wsc.Config.CloseTimeout)
		c.terminate(models.NewFailureEvent(c, ErrCloseTimeout, nil))
	})
	c.closeTimer.Store(timer)

	return ws.WriteControl(websocket.CloseMessage, msg.Msg, time.Now().Add(c.wsc.Config.WriteTimeout))
}

// writePing 发送 ping，上一个 ping 尚未收到 pong 时判定连接超时
func (c *Conn) writePing(ws *websocket.Conn) error {
	if c.awaitingPong.Load() {
		return errorx.NewError(ErrTypeConnectionTimeout)
	}
	c.awaitingPong.Store(true)
	return ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.wsc.Config.WriteTimeout))
}

// terminate 连接进入终态：释放底层连接并投递唯一的终态事件
func (c *Conn) terminate(ev Event) {
	c.terminateOnce.Do(func() {
		close(c.done)
		if timer := c.closeTimer.Load(); timer != nil {
			timer.Stop()
		}

		c.connMu.RLock()
		ws := c.ws
		c.connMu.RUnlock()
		if ws != nil {
			_ = ws.Close()
		}

		if ev.Kind == models.EventKindFailure {
			_ = c.stateMachine.TransitionTo(ConnectionStatusError)
			c.wsc.logger.DebugKV("WebSocket连接异常终止", "conn_id", c.id, "error", ev.Err)
		} else {
			_ = c.stateMachine.TransitionTo(ConnectionStatusDisconnected)
			c.wsc.logger.InfoKV("WebSocket连接已关闭", "conn_id", c.id, "code", ev.Code, "reason", ev.Reason)
		}
		c.emit(ev)
	})
}

// emit 投递事件；传输层停止后不再投递
func (c *Conn) emit(ev Event) {
	if c.events == nil || c.wsc.ctx.Err() != nil {
		return
	}
	select {
	case c.events <- ev:
	case <-c.wsc.ctx.Done():
	}
}
