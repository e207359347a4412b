/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 11:22:41
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-14 17:55:02
 * @FilePath: \go-wsc-echo\exports_client.go
 * @Description: Client 包的类型和函数导出
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package echo

import (
	"github.com/kamalyes/go-wsc-echo/client"
)

// ============================================================================
// Client 类型导出
// ============================================================================

type (
	Wsc             = client.Wsc
	Conn            = client.Conn
	TransportConfig = client.Config
)

// ============================================================================
// Client 函数导出
// ============================================================================

var (
	NewWsc                    = client.New
	NewDefaultTransportConfig = client.NewDefaultConfig
	TransportConfigFromWSC    = client.FromWSC
	IsNormalClose             = client.IsNormalClose
)
