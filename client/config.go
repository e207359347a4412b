/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 11:05:44
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-15 16:27:09
 * @FilePath: \go-wsc-echo\client\config.go
 * @Description: 传输层配置
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package client

import (
	"time"

	wscconfig "github.com/kamalyes/go-config/pkg/wsc"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
	"github.com/kamalyes/go-toolbox/pkg/mathx"
	"github.com/kamalyes/go-toolbox/pkg/safe"
)

// Config 结构体表示 WebSocket 传输层的配置
type Config struct {
	HandshakeTimeout  time.Duration // 握手超时
	WriteTimeout      time.Duration // 写超时
	CloseTimeout      time.Duration // 关闭握手超时，超时后判定为失败
	PingInterval      time.Duration // 心跳间隔，0 表示不发送 ping
	MaxMessageSize    int64         // 最大消息长度
	MessageBufferSize int           // 发送队列长度
	EnableCompression bool          // 是否协商 permessage-deflate
}

// NewDefaultConfig 创建默认配置
func NewDefaultConfig() *Config {
	return &Config{
		HandshakeTimeout:  10 * time.Second,
		WriteTimeout:      10 * time.Second,
		CloseTimeout:      60 * time.Second,
		PingInterval:      0,
		MaxMessageSize:    1 << 20,
		MessageBufferSize: 256,
	}
}

// FromWSC 从 go-config 的 wsc 配置段构建传输层配置
// 未设置的字段使用默认值
func FromWSC(cfg *wscconfig.WSC) *Config {
	defaults := NewDefaultConfig()
	if cfg == nil {
		return defaults
	}
	return &Config{
		HandshakeTimeout:  defaults.HandshakeTimeout,
		WriteTimeout:      mathx.IfNotZero(cfg.WriteTimeout, defaults.WriteTimeout),
		CloseTimeout:      defaults.CloseTimeout,
		MaxMessageSize:    mathx.IfNotZero(cfg.MaxMessageSize, defaults.MaxMessageSize),
		MessageBufferSize: mathx.IfNotZero(cfg.MessageBufferSize, defaults.MessageBufferSize),
	}
}

// mergeConfig 合并用户配置与默认配置
func mergeConfig(cfg *Config) *Config {
	return safe.MergeWithDefaults(cfg, NewDefaultConfig())
}

// WithHandshakeTimeout 设置握手超时并返回当前配置对象
func (c *Config) WithHandshakeTimeout(d time.Duration) *Config {
	c.HandshakeTimeout = d
	return c
}

// WithWriteTimeout 设置写超时并返回当前配置对象
func (c *Config) WithWriteTimeout(d time.Duration) *Config {
	c.WriteTimeout = d
	return c
}

// WithCloseTimeout 设置关闭握手超时并返回当前配置对象
func (c *Config) WithCloseTimeout(d time.Duration) *Config {
	c.CloseTimeout = d
	return c
}

// WithPingInterval 设置心跳间隔并返回当前配置对象
func (c *Config) WithPingInterval(d time.Duration) *Config {
	c.PingInterval = d
	return c
}

// WithMaxMessageSize 设置最大消息长度并返回当前配置对象
func (c *Config) WithMaxMessageSize(size int64) *Config {
	c.MaxMessageSize = size
	return c
}

// WithMessageBufferSize 设置发送队列长度并返回当前配置对象
func (c *Config) WithMessageBufferSize(size int) *Config {
	c.MessageBufferSize = size
	return c
}

// WithEnableCompression 设置是否启用压缩并返回当前配置对象
func (c *Config) WithEnableCompression(enabled bool) *Config {
	c.EnableCompression = enabled
	return c
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch {
	case c.HandshakeTimeout <= 0:
		return errorx.NewError(ErrTypeConfigValidationFailed, "handshake timeout must be positive")
	case c.WriteTimeout <= 0:
		return errorx.NewError(ErrTypeConfigValidationFailed, "write timeout must be positive")
	case c.CloseTimeout <= 0:
		return errorx.NewError(ErrTypeConfigValidationFailed, "close timeout must be positive")
	case c.PingInterval < 0:
		return errorx.NewError(ErrTypeConfigValidationFailed, "ping interval must not be negative")
	case c.MaxMessageSize <= 0:
		return errorx.NewError(ErrTypeConfigValidationFailed, "max message size must be positive")
	case c.MessageBufferSize <= 0:
		return errorx.NewError(ErrTypeConfigValidationFailed, "message buffer size must be positive")
	}
	return nil
}
