/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 11:20:15
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 10:41:33
 * @FilePath: \go-wsc-echo\client\wsc.go
 * @Description: Wsc 传输层客户端 - 负责拨号并托管所有连接的后台协程
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package client

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kamalyes/go-logger"
	"github.com/kamalyes/go-wsc-echo/models"
)

// Wsc 结构体表示 WebSocket 传输层客户端
// 一个 Wsc 可以发起多个连接，所有连接的读写协程都由它托管，Shutdown 时统一回收
type Wsc struct {
	Config        *Config           // 传输层配置
	Dialer        *websocket.Dialer // WebSocket 拨号器
	RequestHeader http.Header       // 握手请求头

	logger   logger.ILogger
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	mu       sync.RWMutex
	conns    map[string]*Conn
	shutdown atomic.Bool
}

// New 创建一个新的 Wsc 客户端
// 参数 config: 传输层配置，nil 时使用默认配置
func New(config *Config) *Wsc {
	config = mergeConfig(config)
	ctx, cancel := context.WithCancel(context.Background())
	return &Wsc{
		Config: config,
		Dialer: &websocket.Dialer{
			Proxy:             http.ProxyFromEnvironment,
			HandshakeTimeout:  config.HandshakeTimeout,
			EnableCompression: config.EnableCompression,
		},
		RequestHeader: http.Header{},
		logger:        logger.NewEmptyLogger(),
		ctx:           ctx,
		cancel:        cancel,
		conns:         make(map[string]*Conn),
	}
}

// WithLogger 设置日志器
func (wsc *Wsc) WithLogger(l logger.ILogger) *Wsc {
	if l != nil {
		wsc.logger = l
	}
	return wsc
}

// WithDialer 设置自定义的 WebSocket 拨号器
func (wsc *Wsc) WithDialer(dialer *websocket.Dialer) *Wsc {
	if dialer != nil {
		wsc.Dialer = dialer
	}
	return wsc
}

// WithRequestHeader 设置握手请求头
func (wsc *Wsc) WithRequestHeader(header http.Header) *Wsc {
	wsc.RequestHeader = header
	return wsc
}

// Connect 异步发起连接，立即返回连接句柄
// 连接结果和后续消息通过 events 通道以事件形式投递，events 在传输层协程中写入
func (wsc *Wsc) Connect(url string, events chan<- Event) *Conn {
	c := newConn(wsc, uuid.NewString(), url, events)

	// 与 Shutdown 互斥，保证已登记的连接一定会被回收
	wsc.mu.Lock()
	if wsc.shutdown.Load() {
		wsc.mu.Unlock()
		c.terminate(models.NewFailureEvent(c, ErrTransportShutdown, nil))
		return c
	}
	wsc.conns[c.id] = c
	wsc.wg.Add(1)
	wsc.mu.Unlock()

	go func() {
		defer wsc.wg.Done()
		defer wsc.untrack(c)
		c.run()
	}()

	wsc.logger.DebugKV("发起WebSocket连接", "conn_id", c.id, "url", url)
	return c
}

// ActiveConnections 当前存活的连接数
func (wsc *Wsc) ActiveConnections() int {
	wsc.mu.RLock()
	defer wsc.mu.RUnlock()
	return len(wsc.conns)
}

// IsShutdown 是否已停止
func (wsc *Wsc) IsShutdown() bool {
	return wsc.shutdown.Load()
}

// Shutdown 停止传输层：取消进行中的拨号，强制断开所有连接并等待后台协程退出
// 不会发送关闭帧，也不再投递事件
func (wsc *Wsc) Shutdown() {
	wsc.mu.Lock()
	if !wsc.shutdown.CompareAndSwap(false, true) {
		wsc.mu.Unlock()
		return
	}
	wsc.cancel()
	live := make([]*Conn, 0, len(wsc.conns))
	for _, c := range wsc.conns {
		live = append(live, c)
	}
	wsc.mu.Unlock()

	for _, c := range live {
		c.terminate(models.NewFailureEvent(c, ErrTransportShutdown, nil))
	}

	wsc.wg.Wait()
	wsc.logger.InfoKV("WebSocket传输层已停止", "closed_connections", len(live))
}

func (wsc *Wsc) untrack(c *Conn) {
	wsc.mu.Lock()
	delete(wsc.conns, c.id)
	wsc.mu.Unlock()
}

// IsNormalClose 检查WebSocket关闭是否为正常关闭
func IsNormalClose(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
