/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 09:58:40
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 14:31:17
 * @FilePath: \go-wsc-echo\server\echo_test.go
 * @Description: 本地回显服务测试
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, opts ...Option) (*EchoServer, *httptest.Server) {
	t.Helper()
	s := New(opts...)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func dial(t *testing.T, ts *httptest.Server, path string, header http.Header) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestEchoServerEchoesTextAndBinary(t *testing.T) {
	_, ts := startServer(t)

	for _, path := range []string{"/", "/ws"} {
		conn := dial(t, ts, path, nil)

		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello")))
		mt, data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, websocket.TextMessage, mt)
		assert.Equal(t, "hello", string(data))

		require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{0x01, 0xab, 0xff}))
		mt, data, err = conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, websocket.BinaryMessage, mt)
		assert.Equal(t, []byte{0x01, 0xab, 0xff}, data)
	}
}

func TestEchoServerGreeting(t *testing.T) {
	_, ts := startServer(t, WithGreeting("welcome"))
	conn := dial(t, ts, "/ws", nil)

	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "welcome", string(data))
}

func TestEchoServerEchoesCloseCode(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts, "/ws", nil)

	msg := websocket.FormatCloseMessage(4000, "bye")
	require.NoError(t, conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)))

	_, _, err := conn.ReadMessage()
	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, 4000, closeErr.Code)
	assert.Equal(t, "bye", closeErr.Text)
}

func TestEchoServerCloseCommand(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts, "/ws", nil)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(DefaultCloseCommand)))
	_, _, err := conn.ReadMessage()
	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.CloseNormalClosure, closeErr.Code)
	assert.Equal(t, "server closing", closeErr.Text)
}

func TestEchoServerCloseCommandDisabled(t *testing.T) {
	_, ts := startServer(t, WithCloseCommand(""))
	conn := dial(t, ts, "/ws", nil)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(DefaultCloseCommand)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, DefaultCloseCommand, string(data))
}

func TestEchoServerRejectsOrigin(t *testing.T) {
	_, ts := startServer(t, WithOrigins("http://allowed.example"))
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn := dial(t, ts, "/ws", http.Header{"Origin": []string{"http://allowed.example"}})
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ok")))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}

func TestEchoServerHealthz(t *testing.T) {
	s, ts := startServer(t)
	conn := dial(t, ts, "/ws", nil)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	_, _, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.ActiveConnections())

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var health map[string]any
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "ok", health["status"])
	assert.EqualValues(t, 1, health["served"])
}
