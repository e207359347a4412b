/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-15 10:26:13
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 14:48:02
 * @FilePath: \go-wsc-echo\server\rate_limiter.go
 * @Description: 回显频率限制 - 按连接统计固定窗口内的消息数，超限后由服务端关闭连接
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package server

import (
	"sync"
	"time"
)

// RateLimitCloseReason 超限关闭时附带的原因
const RateLimitCloseReason = "message rate exceeded"

// RateLimiterConfig 频率限制配置
type RateLimiterConfig struct {
	MaxMessages int           // 窗口内最大消息数，<=0 表示不限制
	Window      time.Duration // 统计窗口
}

// DefaultRateLimiterConfig 默认每分钟 120 条
func DefaultRateLimiterConfig() *RateLimiterConfig {
	return &RateLimiterConfig{
		MaxMessages: 120,
		Window:      time.Minute,
	}
}

// RateLimiter 频率限制器
type RateLimiter struct {
	config   *RateLimiterConfig
	now      func() time.Time
	counters map[string]*connCounter
	mu       sync.Mutex
}

// connCounter 单个连接的窗口计数
type connCounter struct {
	count       int
	windowStart time.Time
}

// NewRateLimiter 创建频率限制器
func NewRateLimiter(config *RateLimiterConfig) *RateLimiter {
	if config == nil {
		config = DefaultRateLimiterConfig()
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	return &RateLimiter{
		config:   config,
		now:      time.Now,
		counters: make(map[string]*connCounter),
	}
}

// Allow 记录一条消息，返回是否允许以及当前窗口计数
func (r *RateLimiter) Allow(connID string) (bool, int) {
	if r == nil || r.config.MaxMessages <= 0 {
		return true, 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	counter, exists := r.counters[connID]
	if !exists {
		counter = &connCounter{windowStart: now}
		r.counters[connID] = counter
	}

	// 窗口过期则重新计数
	if now.Sub(counter.windowStart) >= r.config.Window {
		counter.count = 0
		counter.windowStart = now
	}
	counter.count++

	return counter.count <= r.config.MaxMessages, counter.count
}

// Count 当前窗口计数
func (r *RateLimiter) Count(connID string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if counter, ok := r.counters[connID]; ok {
		return counter.count
	}
	return 0
}

// Forget 连接断开时释放计数器
func (r *RateLimiter) Forget(connID string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	delete(r.counters, connID)
	r.mu.Unlock()
}
