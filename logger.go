/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 10:02:11
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-15 19:30:44
 * @FilePath: \go-wsc-echo\logger.go
 * @Description: 日志接口，直接复用 go-logger
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package echo

import (
	"os"
	"time"

	wscconfig "github.com/kamalyes/go-config/pkg/wsc"
	"github.com/kamalyes/go-logger"
)

// EchoLogger 直接使用 go-logger.ILogger
type EchoLogger = logger.ILogger

// NewEchoLogger 创建新的日志器，基于 go-logger
func NewEchoLogger(config *logger.LogConfig) EchoLogger {
	return logger.NewLogger(config)
}

// NewDefaultEchoLogger 创建默认配置的日志器
func NewDefaultEchoLogger() EchoLogger {
	config := logger.DefaultConfig().
		WithLevel(logger.INFO).
		WithPrefix("[ECHO] ").
		WithShowCaller(false).
		WithColorful(true).
		WithTimeFormat(time.DateTime)

	return logger.NewLogger(config)
}

// NewNoOpLogger 创建空日志实例
func NewNoOpLogger() EchoLogger {
	return logger.NewEmptyLogger()
}

// NewFileLogger 创建写入文件的日志器，终端界面占用标准输出时使用
func NewFileLogger(path string, level string) EchoLogger {
	config := logger.DefaultConfig().
		WithLevel(parseLogLevel(level)).
		WithPrefix("[ECHO] ").
		WithShowCaller(false).
		WithColorful(false).
		WithTimeFormat(time.DateTime).
		WithOutput(logger.NewFileWriter(path))

	return logger.NewLogger(config)
}

// initLogger 根据 go-config 的 wsc 配置段初始化日志器
func initLogger(config *wscconfig.WSC) EchoLogger {
	if config == nil || config.Logging == nil || !config.Logging.Enabled {
		return NewNoOpLogger()
	}

	loggerConfig := logger.DefaultConfig().
		WithLevel(parseLogLevel(config.Logging.Level)).
		WithPrefix("[ECHO] ").
		WithShowCaller(false).
		WithColorful(true).
		WithTimeFormat(time.DateTime)

	// 根据输出类型配置输出
	switch config.Logging.Output {
	case "file":
		if config.Logging.FilePath != "" {
			if config.Logging.MaxSize > 0 && config.Logging.MaxBackups > 0 {
				rotateWriter := logger.NewRotateWriter(
					config.Logging.FilePath,
					int64(config.Logging.MaxSize)*1024*1024, // 转换为字节
					config.Logging.MaxBackups,
				)
				loggerConfig = loggerConfig.WithColorful(false).WithOutput(rotateWriter)
			} else {
				loggerConfig = loggerConfig.WithColorful(false).WithOutput(logger.NewFileWriter(config.Logging.FilePath))
			}
		}
	default:
		loggerConfig = loggerConfig.WithOutput(logger.NewConsoleWriter(os.Stderr))
	}

	return logger.NewLogger(loggerConfig)
}

// parseLogLevel 解析日志级别字符串
func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug", "DEBUG":
		return logger.DEBUG
	case "info", "INFO":
		return logger.INFO
	case "warn", "WARN", "warning", "WARNING":
		return logger.WARN
	case "error", "ERROR":
		return logger.ERROR
	case "fatal", "FATAL":
		return logger.FATAL
	default:
		return logger.INFO
	}
}
