/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 11:20:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-15 09:30:18
 * @FilePath: \go-wsc-echo\exports_models.go
 * @Description: Models 包的类型和常量导出
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package echo

import (
	"github.com/kamalyes/go-wsc-echo/models"
)

// ============================================================================
// Models 类型导出
// ============================================================================

type (
	ConnectionStatus = models.ConnectionStatus
	EventKind        = models.EventKind
	Event            = models.Event
	Socket           = models.Socket
	ErrorType        = models.ErrorType
)

// ============================================================================
// 常量导出
// ============================================================================

const (
	ConnectionStatusConnecting   = models.ConnectionStatusConnecting
	ConnectionStatusConnected    = models.ConnectionStatusConnected
	ConnectionStatusClosing      = models.ConnectionStatusClosing
	ConnectionStatusDisconnected = models.ConnectionStatusDisconnected
	ConnectionStatusError        = models.ConnectionStatusError

	EventKindOpen          = models.EventKindOpen
	EventKindTextMessage   = models.EventKindTextMessage
	EventKindBinaryMessage = models.EventKindBinaryMessage
	EventKindClosing       = models.EventKindClosing
	EventKindClosed        = models.EventKindClosed
	EventKindFailure       = models.EventKindFailure

	CloseNormalClosure = models.CloseNormalClosure
)

// ============================================================================
// 函数与错误导出
// ============================================================================

var (
	NewOpenEvent    = models.NewOpenEvent
	NewTextEvent    = models.NewTextEvent
	NewBinaryEvent  = models.NewBinaryEvent
	NewClosingEvent = models.NewClosingEvent
	NewClosedEvent  = models.NewClosedEvent
	NewFailureEvent = models.NewFailureEvent

	IsSendRejected = models.IsSendRejected

	ErrConnectionClosed  = models.ErrConnectionClosed
	ErrTransportShutdown = models.ErrTransportShutdown
	ErrCloseRequested    = models.ErrCloseRequested
	ErrCloseTimeout      = models.ErrCloseTimeout
	ErrMessageBufferFull = models.ErrMessageBufferFull
)
