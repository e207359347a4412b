/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 11:06:30
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-14 20:13:52
 * @FilePath: \go-wsc-echo\client\aliases.go
 * @Description: Client 类型别名 - 为 models 包中的类型创建别名，便于在 client 层使用
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package client

import (
	"github.com/kamalyes/go-wsc-echo/models"
)

// ============================================================================
// 类型别名 - 从 models 包导入
// ============================================================================

type (
	ConnectionStatus = models.ConnectionStatus
	Event            = models.Event
	EventKind        = models.EventKind
	Socket           = models.Socket
)

// 常量别名
const (
	ConnectionStatusConnecting   = models.ConnectionStatusConnecting
	ConnectionStatusConnected    = models.ConnectionStatusConnected
	ConnectionStatusClosing      = models.ConnectionStatusClosing
	ConnectionStatusDisconnected = models.ConnectionStatusDisconnected
	ConnectionStatusError        = models.ConnectionStatusError

	ErrTypeConfigValidationFailed = models.ErrTypeConfigValidationFailed
	ErrTypeConnectionTimeout      = models.ErrTypeConnectionTimeout
	ErrTypeInvalidCloseCode       = models.ErrTypeInvalidCloseCode
	ErrTypeCloseReasonTooLong     = models.ErrTypeCloseReasonTooLong
)

// 错误别名
var (
	ErrConnectionClosed  = models.ErrConnectionClosed
	ErrTransportShutdown = models.ErrTransportShutdown
	ErrCloseRequested    = models.ErrCloseRequested
	ErrCloseTimeout      = models.ErrCloseTimeout
	ErrMessageBufferFull = models.ErrMessageBufferFull
)
