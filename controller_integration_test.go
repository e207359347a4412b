package echo

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	wscconfig "github.com/kamalyes/go-config/pkg/wsc"
	"github.com/kamalyes/go-wsc-echo/client"
	"github.com/kamalyes/go-wsc-echo/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startEchoServer(t *testing.T, opts ...server.Option) string {
	t.Helper()
	srv := httptest.NewServer(server.New(opts...).Handler())
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

// waitForLog 等待日志中出现指定行
func waitForLog(t *testing.T, c *Controller, line string) Snapshot {
	t.Helper()
	var snap Snapshot
	require.Eventually(t, func() bool {
		snap = c.Snapshot()
		for _, l := range snap.Log {
			if l == line {
				return true
			}
		}
		return false
	}, 3*time.Second, 10*time.Millisecond, "log line %q not found", line)
	return snap
}

func TestEchoRoundTripAgainstLocalServer(t *testing.T) {
	url := startEchoServer(t)
	c := New(
		WithURL(url),
		WithTransport(NewTransport(client.New(nil))),
		WithEventBuffer(16),
	)
	t.Cleanup(c.Teardown)

	c.Connect()
	snap := waitForLog(t, c, LogConnected)
	assert.Equal(t, connectedState, snap.State)

	c.Send("hi")
	snap = waitForLog(t, c, "Received (text): hi")
	assert.Contains(t, snap.Log, "Sent: hi")

	c.Disconnect()
	snap = waitForLog(t, c, "Disconnected: 1000 / "+DisconnectReason)
	assert.Contains(t, snap.Log, "Closing: 1000 / "+DisconnectReason)
	assert.False(t, snap.Connected)
	assert.Equal(t, disconnectedState, snap.State)
}

func TestServerInitiatedCloseAgainstLocalServer(t *testing.T) {
	url := startEchoServer(t, server.WithGreeting("Request served by test"))
	c := New(WithURL(url), WithTransport(NewTransport(client.New(nil))))
	t.Cleanup(c.Teardown)

	c.Connect()
	waitForLog(t, c, "Received (text): Request served by test")

	c.Send(server.DefaultCloseCommand)
	snap := waitForLog(t, c, "Disconnected: 1000 / server closing")
	assert.Contains(t, snap.Log, "Closing: 1000 / server closing")
	assert.Equal(t, disconnectedState, snap.State)
}

func TestConnectFailureAgainstClosedServer(t *testing.T) {
	srv := httptest.NewServer(server.New().Handler())
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	srv.Close()

	c := New(WithURL(url), WithTransport(NewTransport(client.New(nil))))
	t.Cleanup(c.Teardown)

	c.Connect()
	require.Eventually(t, func() bool {
		snap := c.Snapshot()
		return len(snap.Log) == 2 && strings.HasPrefix(snap.Log[1], "Connection failed: ")
	}, 3*time.Second, 10*time.Millisecond)
	assert.False(t, c.Snapshot().Connected)
}

func TestNewFromConfig(t *testing.T) {
	url := startEchoServer(t)
	cfg := wscconfig.Default()
	cfg.MessageBufferSize = 8

	c := NewFromConfig(cfg, WithURL(url))
	t.Cleanup(c.Teardown)

	c.Connect()
	waitForLog(t, c, LogConnected)
	c.Send("configured")
	waitForLog(t, c, "Received (text): configured")
}
