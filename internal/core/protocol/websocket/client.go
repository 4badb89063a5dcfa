// Package websocket carries bridge frames over gorilla/websocket. The Client
// is used by the controlling process as its native.Invoker and memory.Reader;
// the Server exposes a simulation host to such clients.
package websocket

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/zeusync/actorproxy/internal/core/memory"
	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/observability/log"
	"github.com/zeusync/actorproxy/internal/core/protocol"
)

var (
	_ native.Invoker = (*Client)(nil)
	_ memory.Reader  = (*Client)(nil)
)

// Config holds the transport settings shared by Client and Server.
type Config struct {
	URL          string
	Listen       string
	Path         string
	CallTimeout  time.Duration
	WriteTimeout time.Duration
	MaxFrameSize int64
}

func (c Config) withDefaults() Config {
	if c.CallTimeout <= 0 {
		c.CallTimeout = 250 * time.Millisecond
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = time.Second
	}
	if c.MaxFrameSize <= 0 {
		c.MaxFrameSize = 1 << 20
	}
	if c.Path == "" {
		c.Path = "/bridge"
	}
	return c
}

// Client is one bridge connection. Calls are serialized: each one writes a
// request and waits for the response with the same id, up to CallTimeout.
// The proxy-facing methods never fail; a failed call logs a warning and
// answers the zero value.
type Client struct {
	conn   *websocket.Conn
	config Config
	codec  protocol.Codec
	logger log.Log

	callMu  sync.Mutex
	pending *xsync.MapOf[string, chan protocol.Response]

	closed atomic.Bool
	done   chan struct{}

	calls    atomic.Uint64
	failures atomic.Uint64
}

// Dial connects to a bridge server at config.URL.
func Dial(ctx context.Context, config Config, logger log.Log) (*Client, error) {
	config = config.withDefaults()
	if logger == nil {
		logger = log.NewNop()
	}

	dialer := websocket.Dialer{HandshakeTimeout: config.WriteTimeout}
	conn, resp, err := dialer.DialContext(ctx, config.URL, http.Header{})
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial bridge %s", config.URL)
	}
	conn.SetReadLimit(config.MaxFrameSize)

	c := &Client{
		conn:    conn,
		config:  config,
		codec:   protocol.JSONCodec{},
		logger:  logger.With(log.String("component", "bridge-client"), log.String("url", config.URL)),
		pending: xsync.NewMapOf[string, chan protocol.Response](),
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// readLoop routes responses to the waiting call. Responses nobody waits for
// any more (the call timed out) are dropped.
func (c *Client) readLoop() {
	defer close(c.done)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !c.closed.Load() {
				c.logger.Warn("bridge connection lost", log.Error(err))
			}
			c.closed.Store(true)
			_ = c.conn.Close()
			return
		}
		resp, err := c.codec.DecodeResponse(data)
		if err != nil {
			c.logger.Warn("dropping undecodable frame", log.Error(err))
			continue
		}
		if ch, ok := c.pending.LoadAndDelete(resp.ID); ok {
			ch <- resp
		}
	}
}

// Do performs one round trip. It is the error-returning form the proxy-facing
// methods are built on.
func (c *Client) Do(ctx context.Context, req protocol.Request) (protocol.Response, error) {
	if c.closed.Load() {
		return protocol.Response{}, protocol.ErrClosed
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	data, err := c.codec.EncodeRequest(req)
	if err != nil {
		return protocol.Response{}, errors.Wrap(err, "failed to encode request")
	}

	c.callMu.Lock()
	defer c.callMu.Unlock()

	ch := make(chan protocol.Response, 1)
	c.pending.Store(req.ID, ch)
	defer c.pending.Delete(req.ID)

	_ = c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
	if err = c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return protocol.Response{}, errors.Wrap(err, "failed to write request")
	}

	timer := time.NewTimer(c.config.CallTimeout)
	defer timer.Stop()

	select {
	case resp := <-ch:
		if resp.Err != "" {
			return resp, errors.Errorf("bridge rejected %s: %s", req.Op, resp.Err)
		}
		return resp, nil
	case <-timer.C:
		return protocol.Response{}, errors.Wrapf(protocol.ErrTimeout, "%s after %s", req.Op, c.config.CallTimeout)
	case <-c.done:
		return protocol.Response{}, errors.Wrap(protocol.ErrClosed, "connection lost during call")
	case <-ctx.Done():
		return protocol.Response{}, ctx.Err()
	}
}

func (c *Client) do(req protocol.Request, fields ...log.Field) (protocol.Response, bool) {
	c.calls.Add(1)
	resp, err := c.Do(context.Background(), req)
	if err != nil {
		c.failures.Add(1)
		c.logger.Warn("bridge call failed", append(fields, log.String("op", string(req.Op)), log.Error(err))...)
		return protocol.Response{}, false
	}
	return resp, true
}

// Invoke implements native.Invoker.
func (c *Client) Invoke(n *native.Native, args ...native.Value) native.Value {
	if n == nil {
		return native.Void()
	}
	resp, ok := c.do(protocol.Request{Op: protocol.OpCall, Hash: n.Hash, Args: args}, log.String("native", n.Name))
	if !ok {
		return native.Void()
	}
	return resp.Value
}

// BaseAddress implements memory.Reader.
func (c *Client) BaseAddress(handle int32) memory.Address {
	resp, ok := c.do(protocol.Request{Op: protocol.OpBase, Handle: handle}, log.Int32("handle", handle))
	if !ok {
		return 0
	}
	return memory.Address(resp.Addr)
}

func (c *Client) ReadByte(addr memory.Address) uint8 {
	resp, ok := c.do(protocol.Request{Op: protocol.OpRead8, Addr: uint64(addr)})
	if !ok {
		return 0
	}
	return uint8(resp.Int)
}

func (c *Client) ReadInt32(addr memory.Address) int32 {
	resp, ok := c.do(protocol.Request{Op: protocol.OpRead32, Addr: uint64(addr)})
	if !ok {
		return 0
	}
	return resp.Int
}

// Stats reports how many proxy-facing calls were made and how many failed.
func (c *Client) Stats() (calls, failures uint64) {
	return c.calls.Load(), c.failures.Load()
}

// Close sends a close frame and waits for the read loop to stop.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(c.config.WriteTimeout))
	err := c.conn.Close()
	<-c.done
	if err != nil {
		return errors.Wrap(err, "failed to close bridge connection")
	}
	return nil
}
