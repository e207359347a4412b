/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 11:15:37
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-14 17:52:29
 * @FilePath: \go-wsc-echo\transport.go
 * @Description: 控制器依赖的传输层抽象
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package echo

import (
	"github.com/kamalyes/go-wsc-echo/client"
)

// Transport 控制器使用的 WebSocket 传输层
type Transport interface {
	// Connect 异步连接，事件写入 events
	Connect(url string, events chan<- Event) Socket
	// Shutdown 释放所有传输层资源
	Shutdown()
}

// wscTransport 基于 client.Wsc 的传输层
type wscTransport struct {
	wsc *client.Wsc
}

// NewTransport 将 client.Wsc 包装为 Transport
func NewTransport(wsc *client.Wsc) Transport {
	return &wscTransport{wsc: wsc}
}

func (t *wscTransport) Connect(url string, events chan<- Event) Socket {
	return t.wsc.Connect(url, events)
}

func (t *wscTransport) Shutdown() {
	t.wsc.Shutdown()
}
