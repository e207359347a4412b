/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 10:20:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-12 10:20:00
 * @FilePath: \go-wsc-echo\models\validator.go
 * @Description: 枚举验证器集中管理
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package models

import (
	"github.com/kamalyes/go-toolbox/pkg/types"
)

// 全局枚举验证器实例
var (
	// ConnectionStatusValidator 连接状态验证器
	ConnectionStatusValidator = types.NewEnumValidator(
		ConnectionStatusConnecting,
		ConnectionStatusConnected,
		ConnectionStatusClosing,
		ConnectionStatusDisconnected,
		ConnectionStatusError,
	)

	// EventKindValidator 事件类型验证器
	EventKindValidator = types.NewEnumValidator(
		EventKindOpen,
		EventKindTextMessage,
		EventKindBinaryMessage,
		EventKindClosing,
		EventKindClosed,
		EventKindFailure,
	)
)

// IsValidCloseCode 检查客户端可发送的关闭状态码 (RFC 6455 7.4)
func IsValidCloseCode(code int) bool {
	switch {
	case code < 1000 || code >= 5000:
		return false
	case code >= 1004 && code <= 1006:
		return false
	case code >= 1015 && code < 3000:
		// 保留区间
		return false
	}
	return true
}
