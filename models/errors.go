/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 10:50:02
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-15 11:03:27
 * @FilePath: \go-wsc-echo\models\errors.go
 * @Description: 回显客户端错误定义 - 基于errorx.BaseError模式
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package models

import (
	"github.com/kamalyes/go-toolbox/pkg/errorx"
)

// 错误类型定义，基于errorx.ErrorType
type ErrorType = errorx.ErrorType

// 错误码常量，沿用 8xxxx 区间
const (
	// 连接相关错误 (80100-80199)
	ErrTypeConnectionClosed  ErrorType = 80101 // 连接已关闭
	ErrTypeConnectionTimeout ErrorType = 80103 // 连接超时
	ErrTypeTransportShutdown ErrorType = 80106 // 传输层已停止
	ErrTypeCloseRequested    ErrorType = 80107 // 已请求关闭
	ErrTypeCloseTimeout      ErrorType = 80108 // 关闭握手超时

	// 队列和缓冲区错误 (80200-80299)
	ErrTypeMessageBufferFull ErrorType = 80202 // 消息缓冲区已满

	// 消息错误 (80400-80499)
	ErrTypeInvalidCloseCode   ErrorType = 80406 // 无效的关闭状态码
	ErrTypeCloseReasonTooLong ErrorType = 80407 // 关闭原因过长

	// 配置相关错误 (81100-81199)
	ErrTypeConfigValidationFailed ErrorType = 81102 // 配置验证失败
)

func init() {
	errorx.RegisterError(ErrTypeConnectionClosed, "connection closed")
	errorx.RegisterError(ErrTypeConnectionTimeout, "connection timeout")
	errorx.RegisterError(ErrTypeTransportShutdown, "transport shut down")
	errorx.RegisterError(ErrTypeCloseRequested, "close already requested")
	errorx.RegisterError(ErrTypeCloseTimeout, "close handshake timed out")

	errorx.RegisterError(ErrTypeMessageBufferFull, "message buffer is full")

	errorx.RegisterError(ErrTypeInvalidCloseCode, "invalid close code: %d")
	errorx.RegisterError(ErrTypeCloseReasonTooLong, "close reason too long: %d bytes")

	errorx.RegisterError(ErrTypeConfigValidationFailed, "config validation failed: %s")
}

// 错误变量
var (
	ErrConnectionClosed  = errorx.NewError(ErrTypeConnectionClosed)
	ErrTransportShutdown = errorx.NewError(ErrTypeTransportShutdown)
	ErrCloseRequested    = errorx.NewError(ErrTypeCloseRequested)
	ErrCloseTimeout      = errorx.NewError(ErrTypeCloseTimeout)
	ErrMessageBufferFull = errorx.NewError(ErrTypeMessageBufferFull)
)

// IsSendRejected 判断是否为发送被拒绝（队列满或连接不可写）
func IsSendRejected(err error) bool {
	if err == nil {
		return false
	}
	if errxErr, ok := err.(interface{ Type() ErrorType }); ok {
		switch errxErr.Type() {
		case ErrTypeMessageBufferFull, ErrTypeConnectionClosed, ErrTypeCloseRequested, ErrTypeTransportShutdown:
			return true
		}
		return false
	}
	return err == ErrMessageBufferFull || err == ErrConnectionClosed ||
		err == ErrCloseRequested || err == ErrTransportShutdown
}
