/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 13:08:19
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 16:45:12
 * @FilePath: \go-wsc-echo\controller.go
 * @Description: 回显客户端控制器 - 连接、断开、发送与日志投影
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package echo

import (
	"context"
	"sync/atomic"

	wscconfig "github.com/kamalyes/go-config/pkg/wsc"
	"github.com/kamalyes/go-toolbox/pkg/syncx"
	"github.com/kamalyes/go-wsc-echo/client"
)

// DefaultURL 默认回显服务地址
const DefaultURL = "wss://echo.websocket.org"

// DisconnectReason 用户主动断开时附带的关闭原因
const DisconnectReason = "Disconnect requested by user."

// 控制器写入日志区域的固定文本
const (
	LogAlreadyConnected = "Already connected or connecting."
	LogConnected        = "Connected"
	LogNotConnected     = "Not connected to send message."
)

const defaultTaskBufferSize = 64

// Controller 回显客户端控制器
//
// 连接句柄、日志缓冲和按钮状态只在控制器自己的事件循环中读写：
// 界面操作以任务形式投递，传输层事件经 events 通道进入同一个循环。
type Controller struct {
	url       string
	transport Transport
	view      View
	logger    EchoLogger

	tasks    chan func()
	events   chan Event
	eventBuf int

	ctx      context.Context
	cancel   context.CancelFunc
	stopped  chan struct{}
	tornDown atomic.Bool

	// 以下字段仅在事件循环中访问
	socket Socket
	log    LogBuffer
	state  UIState
}

// Option 控制器选项
type Option func(*Controller)

// WithURL 设置连接地址
func WithURL(url string) Option {
	return func(c *Controller) {
		if url != "" {
			c.url = url
		}
	}
}

// WithTransport 设置传输层
func WithTransport(t Transport) Option {
	return func(c *Controller) {
		c.transport = t
	}
}

// WithView 设置界面
func WithView(v View) Option {
	return func(c *Controller) {
		c.view = v
	}
}

// WithLogger 设置日志器
func WithLogger(l EchoLogger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEventBuffer 设置传输层事件通道的缓冲长度，默认无缓冲
func WithEventBuffer(size int) Option {
	return func(c *Controller) {
		if size >= 0 {
			c.eventBuf = size
		}
	}
}

// New 创建控制器并启动事件循环
// 未指定传输层时使用默认配置的 client.Wsc
func New(opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		url:     DefaultURL,
		view:    nopView{},
		logger:  NewNoOpLogger(),
		tasks:   make(chan func(), defaultTaskBufferSize),
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
		state:   UIStateFor(false),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewTransport(client.New(nil).WithLogger(c.logger))
	}
	if c.view == nil {
		c.view = nopView{}
	}
	c.events = make(chan Event, c.eventBuf)

	go c.run()
	return c
}

// NewFromConfig 根据 go-config 的 wsc 配置段创建控制器
// 日志器与传输层配置都从 cfg 中读取，opts 可以覆盖
func NewFromConfig(cfg *wscconfig.WSC, opts ...Option) *Controller {
	l := initLogger(cfg)
	wsc := client.New(client.FromWSC(cfg)).WithLogger(l)
	base := []Option{WithLogger(l), WithTransport(NewTransport(wsc))}
	return New(append(base, opts...)...)
}

// run 事件循环，直到 Teardown
func (c *Controller) run() {
	defer close(c.stopped)

	c.view.SetUIState(c.state)

	syncx.NewEventLoop(c.ctx).
		// 界面操作
		OnChannel(c.tasks, c.runTask).
		// 传输层事件
		OnChannel(c.events, c.handleEvent).
		OnPanic(func(r any) {
			c.logger.ErrorKV("控制器事件循环panic", "panic", r)
		}).
		OnShutdown(func() {
			c.logger.InfoKV("控制器事件循环已停止", "log_lines", c.log.Len())
		}).
		Run()
}

// runTask 执行投递到事件循环的任务
func (c *Controller) runTask(task func()) {
	task()
}

// post 投递任务，控制器已停止时返回 false
func (c *Controller) post(task func()) bool {
	select {
	case <-c.ctx.Done():
		return false
	default:
	}
	select {
	case c.tasks <- task:
		return true
	case <-c.ctx.Done():
		return false
	}
}

// URL 连接地址
func (c *Controller) URL() string {
	return c.url
}

// Connect 发起连接；已持有句柄（已连接或连接中）时只记录一行日志
func (c *Controller) Connect() {
	c.post(c.connect)
}

// Disconnect 请求正常关闭；状态在收到 Closed 事件后才会改变
func (c *Controller) Disconnect() {
	c.post(c.disconnect)
}

// Send 发送文本消息，空字符串由调用方过滤
func (c *Controller) Send(text string) {
	c.post(func() { c.sendMessage(text) })
}

// Snapshot 在事件循环中读取当前状态
func (c *Controller) Snapshot() Snapshot {
	result := make(chan Snapshot, 1)
	if c.post(func() { result <- c.snapshot() }) {
		select {
		case s := <-result:
			return s
		case <-c.stopped:
		}
	}
	// 事件循环已退出，状态不会再变化
	<-c.stopped
	return c.snapshot()
}

// Teardown 释放传输层资源并停止事件循环
// 不主动关闭进行中的连接，由传输层停止时一并断开
func (c *Controller) Teardown() {
	if !c.tornDown.CompareAndSwap(false, true) {
		return
	}
	c.transport.Shutdown()
	c.cancel()
	<-c.stopped
}

// Done 事件循环退出后关闭
func (c *Controller) Done() <-chan struct{} {
	return c.stopped
}

func (c *Controller) connect() {
	if c.socket != nil {
		c.appendLog(LogAlreadyConnected)
		return
	}
	c.appendLog("Connecting to " + c.url + "...")
	c.socket = c.transport.Connect(c.url, c.events)
	c.logger.InfoKV("发起连接", "url", c.url, "conn_id", socketID(c.socket))
}

func (c *Controller) disconnect() {
	if c.socket == nil {
		return
	}
	if !c.socket.Close(CloseNormalClosure, DisconnectReason) {
		c.logger.DebugKV("关闭请求被忽略", "conn_id", c.socket.ID())
	}
}

func (c *Controller) sendMessage(text string) {
	if c.socket == nil {
		c.appendLog(LogNotConnected)
		return
	}
	if c.socket.Send(text) {
		c.appendLog("Sent: " + text)
		return
	}
	c.appendLog("Failed to send: " + text + " (queue full or socket closed)")
}

// appendLog 追加日志并通知界面
func (c *Controller) appendLog(line string) {
	c.log.Append(line)
	c.logger.DebugKV("日志", "line", line)
	c.view.AppendLog(line)
}

// setConnected 更新按钮状态并通知界面
func (c *Controller) setConnected(connected bool) {
	c.state = UIStateFor(connected)
	c.view.SetUIState(c.state)
}

func (c *Controller) snapshot() Snapshot {
	return Snapshot{
		Log:       c.log.Lines(),
		State:     c.state,
		Connected: c.socket != nil,
		SocketID:  socketID(c.socket),
	}
}

func socketID(s Socket) string {
	if s == nil {
		return ""
	}
	return s.ID()
}
