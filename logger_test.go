/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 10:20:35
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-15 19:42:18
 * @FilePath: \go-wsc-echo\logger_test.go
 * @Description: 日志测试
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package echo

import (
	"path/filepath"
	"testing"

	wscconfig "github.com/kamalyes/go-config/pkg/wsc"
	"github.com/kamalyes/go-logger"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultEchoLogger(t *testing.T) {
	l := NewDefaultEchoLogger()
	assert.NotNil(t, l)

	l.InfoKV("测试键值对日志", "key1", "value1", "key2", 123)
	l.DebugKV("调试日志不输出")
}

func TestNoOpLogger(t *testing.T) {
	l := NewNoOpLogger()
	assert.NotNil(t, l)
	assert.NotPanics(t, func() {
		l.InfoKV("这条消息不应该输出", "conn_id", "x")
		l.ErrorKV("这条也不应该输出")
	})
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "echo.log")
	l := NewFileLogger(path, "debug")
	assert.NotNil(t, l)
	assert.NotPanics(t, func() {
		l.DebugKV("写入文件", "path", path)
	})
}

func TestInitLogger(t *testing.T) {
	assert.NotNil(t, initLogger(nil))

	cfg := wscconfig.Default()
	assert.NotNil(t, initLogger(cfg))

	if cfg.Logging != nil {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "warn"
		cfg.Logging.Output = "console"
		assert.NotNil(t, initLogger(cfg))

		cfg.Logging.Output = "file"
		cfg.Logging.FilePath = filepath.Join(t.TempDir(), "wsc.log")
		cfg.Logging.MaxSize = 0
		assert.NotNil(t, initLogger(cfg))
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logger.LogLevel
	}{
		{"debug", logger.DEBUG},
		{"INFO", logger.INFO},
		{"warning", logger.WARN},
		{"error", logger.ERROR},
		{"fatal", logger.FATAL},
		{"unknown", logger.INFO},
		{"", logger.INFO},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}
