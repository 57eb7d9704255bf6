// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ws provides a WebSocket subscription client for Solana nodes,
// covering the signature notifications consumed by the transaction
// confirmation subsystem
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/blinklabs-io/gosolana/rpc"
)

// unsubscribeTimeout bounds the best-effort unsubscribe exchange during
// subscription teardown
const unsubscribeTimeout = 5 * time.Second

// Client is a JSON-RPC subscription client over a single WebSocket
// connection. It is safe for concurrent use
type Client struct {
	conn      *websocket.Conn
	logger    *slog.Logger
	nextID    atomic.Uint64
	doneChan  chan struct{}
	onceStop  sync.Once
	errorChan chan error

	mutex   sync.Mutex
	pending map[uint64]chan *wsMessage
	subs    map[uint64]*Subscription
	// parked holds notifications that arrived before the subscribe response
	// was processed, keyed by subscription ID
	parked map[uint64]json.RawMessage
}

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*Client)

// WithLogger specifies the logger to use. If none is provided,
// slog.Default() is used
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}

// Connect dials the given WebSocket endpoint and starts the receive loop
func Connect(
	ctx context.Context,
	endpoint string,
	options ...ClientOptionFunc,
) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ws connect: %w", err)
	}
	c := &Client{
		conn:      conn,
		doneChan:  make(chan struct{}),
		errorChan: make(chan error, 10),
		pending:   map[uint64]chan *wsMessage{},
		subs:      map[uint64]*Subscription{},
		parked:    map[uint64]json.RawMessage{},
	}
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	// Start our receiver Goroutine
	go c.readLoop()
	return c, nil
}

// Close shuts down the connection and receive loop. It is safe to call
// multiple times
func (c *Client) Close() error {
	var err error
	c.onceStop.Do(func() {
		close(c.doneChan)
		err = c.conn.Close()
	})
	return err
}

// ErrorChan returns the channel carrying async receive-loop errors. The
// channel is closed when the client shuts down
func (c *Client) ErrorChan() <-chan error {
	return c.errorChan
}

func (c *Client) sendError(err error) {
	// Immediately return if we're already shutting down
	select {
	case <-c.doneChan:
		return
	default:
	}
	c.errorChan <- err
}

// wsMessage is the union of response and notification shapes arriving on
// the connection
type wsMessage struct {
	ID     uint64          `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *rpc.RPCError   `json:"error,omitempty"`
	Params *struct {
		Result       json.RawMessage `json:"result"`
		Subscription uint64          `json:"subscription"`
	} `json:"params,omitempty"`
}

type wsRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

func (c *Client) readLoop() {
	defer close(c.errorChan)
	for {
		var msg wsMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			// A read error after Close() is expected teardown, not a fault
			select {
			case <-c.doneChan:
			default:
				c.sendError(err)
				c.Close()
			}
			return
		}
		switch {
		case msg.Method != "" && msg.Params != nil:
			c.dispatchNotification(&msg)
		case msg.ID != 0:
			c.mutex.Lock()
			respChan, ok := c.pending[msg.ID]
			delete(c.pending, msg.ID)
			c.mutex.Unlock()
			if ok {
				respChan <- &msg
			}
		default:
			c.logger.Debug(
				"ignoring unexpected ws message",
				"component", "ws",
				"method", msg.Method,
			)
		}
	}
}

func (c *Client) dispatchNotification(msg *wsMessage) {
	c.mutex.Lock()
	sub, ok := c.subs[msg.Params.Subscription]
	if !ok {
		// The node can fire a notification before the subscribe response has
		// been processed. Park it so registration can pick it up
		c.parked[msg.Params.Subscription] = msg.Params.Result
		c.mutex.Unlock()
		return
	}
	c.mutex.Unlock()
	sub.deliver(msg.Params.Result)
}

// request performs a single request/response exchange over the connection
func (c *Client) request(
	ctx context.Context,
	method string,
	params []any,
) (json.RawMessage, error) {
	id := c.nextID.Add(1)
	respChan := make(chan *wsMessage, 1)
	c.mutex.Lock()
	c.pending[id] = respChan
	err := c.conn.WriteJSON(wsRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  params,
	})
	c.mutex.Unlock()
	if err != nil {
		c.mutex.Lock()
		delete(c.pending, id)
		c.mutex.Unlock()
		return nil, err
	}
	select {
	case <-ctx.Done():
		c.mutex.Lock()
		delete(c.pending, id)
		c.mutex.Unlock()
		return nil, ctx.Err()
	case <-c.doneChan:
		return nil, fmt.Errorf("ws connection closed")
	case resp := <-respChan:
		if resp.Error != nil {
			return nil, resp.Error
		}
		return resp.Result, nil
	}
}
