/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 09:14:26
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 14:20:05
 * @FilePath: \go-wsc-echo\server\echo.go
 * @Description: 本地回显服务 - 原样返回收到的文本和二进制帧，用于离线演示和测试
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package server

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kamalyes/go-logger"
)

// DefaultCloseCommand 收到该文本时由服务端发起关闭
const DefaultCloseCommand = "/close"

// EchoServer WebSocket 回显服务
type EchoServer struct {
	router       *gin.Engine
	upgrader     *websocket.Upgrader
	logger       logger.ILogger
	greeting     string
	closeCommand string
	limiter      *RateLimiter
	writeTimeout time.Duration
	active       atomic.Int64
	served       atomic.Int64
}

// Option 回显服务选项
type Option func(*EchoServer)

// WithLogger 设置日志器
func WithLogger(l logger.ILogger) Option {
	return func(s *EchoServer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGreeting 连接建立后先发送一条欢迎文本，空字符串表示不发送
func WithGreeting(greeting string) Option {
	return func(s *EchoServer) {
		s.greeting = greeting
	}
}

// WithCloseCommand 设置触发服务端关闭的文本，空字符串表示禁用
func WithCloseCommand(command string) Option {
	return func(s *EchoServer) {
		s.closeCommand = command
	}
}

// WithRateLimit 按连接限制消息频率，超限时以 1008 关闭连接
func WithRateLimit(config *RateLimiterConfig) Option {
	return func(s *EchoServer) {
		s.limiter = NewRateLimiter(config)
	}
}

// WithOrigins 限制允许的 Origin，包含 "*" 时允许所有来源
func WithOrigins(origins ...string) Option {
	return func(s *EchoServer) {
		if len(origins) == 0 {
			return
		}
		s.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range origins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		}
	}
}

// New 创建回显服务，路由 "/" 与 "/ws" 均可升级
func New(opts ...Option) *EchoServer {
	gin.SetMode(gin.ReleaseMode)

	s := &EchoServer{
		router: gin.New(),
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // 默认允许所有来源
			},
		},
		logger:       logger.NewEmptyLogger(),
		closeCommand: DefaultCloseCommand,
		writeTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(gin.Recovery())
	s.router.GET("/", s.ServeWS)
	s.router.GET("/ws", s.ServeWS)
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "active": s.active.Load(), "served": s.served.Load()})
	})
	return s
}

// Handler 返回 http.Handler，便于挂载到 httptest
func (s *EchoServer) Handler() http.Handler {
	return s.router
}

// Run 监听地址并阻塞
func (s *EchoServer) Run(addr string) error {
	s.logger.InfoKV("🚀 回显服务启动", "addr", addr)
	return s.router.Run(addr)
}

// ActiveConnections 当前连接数
func (s *EchoServer) ActiveConnections() int64 {
	return s.active.Load()
}

// ServeWS 升级并回显
func (s *EchoServer) ServeWS(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.WarnKV("WebSocket升级失败", "remote", c.Request.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	s.active.Add(1)
	s.served.Add(1)
	defer s.active.Add(-1)
	defer s.limiter.Forget(id)
	s.logger.InfoKV("客户端已连接", "conn_id", id, "remote", conn.RemoteAddr().String())

	// 回应关闭帧时带回对端的状态码和原因
	conn.SetCloseHandler(func(code int, text string) error {
		msg := websocket.FormatCloseMessage(code, text)
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(s.writeTimeout))
		return nil
	})

	if s.greeting != "" {
		if err := s.write(conn, websocket.TextMessage, []byte(s.greeting)); err != nil {
			return
		}
	}

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			s.logger.InfoKV("客户端已断开", "conn_id", id, "error", err)
			return
		}

		if allowed, count := s.limiter.Allow(id); !allowed {
			s.logger.WarnKV("消息频率超限", "conn_id", id, "count", count)
			s.closeFromServer(conn, id, websocket.ClosePolicyViolation, RateLimitCloseReason)
			continue
		}

		if messageType == websocket.TextMessage && s.closeCommand != "" && string(message) == s.closeCommand {
			s.closeFromServer(conn, id, websocket.CloseNormalClosure, "server closing")
			continue
		}

		if err := s.write(conn, messageType, message); err != nil {
			s.logger.WarnKV("回显失败", "conn_id", id, "error", err)
			return
		}
	}
}

// closeFromServer 服务端发起关闭，继续读取直到收到客户端的关闭帧
func (s *EchoServer) closeFromServer(conn *websocket.Conn, id string, code int, reason string) {
	s.logger.InfoKV("服务端发起关闭", "conn_id", id, "code", code)
	conn.SetCloseHandler(func(int, string) error { return nil })
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(s.writeTimeout))
}

func (s *EchoServer) write(conn *websocket.Conn, messageType int, data []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	return conn.WriteMessage(messageType, data)
}
