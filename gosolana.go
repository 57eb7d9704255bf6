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

// Package gosolana bundles the RPC client, the WebSocket subscription
// client, and the transaction confirmation subsystem behind a single
// connection-style entry point
package gosolana

import (
	"context"
	"errors"

	"github.com/blinklabs-io/gosolana/confirm"
	"github.com/blinklabs-io/gosolana/rpc"
	"github.com/blinklabs-io/gosolana/rpc/ws"
	"github.com/blinklabs-io/gosolana/tx"
)

// Client wraps an RPC client, an optional WebSocket subscription client,
// and a confirmer bound to them
type Client struct {
	ClientConfig
	rpcClient *rpc.Client
	wsClient  *ws.Client
	confirmer *confirm.Confirmer
}

// New returns a new Client object with the specified options. When
// subscriptions are enabled the WebSocket endpoint is dialed immediately
func New(options ...ClientOptionFunc) (*Client, error) {
	c := &Client{
		ClientConfig: NewClientConfig(options...),
	}
	if err := c.setup(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) setup() error {
	rpcOptions := []rpc.ClientOptionFunc{}
	if c.cluster != rpc.ClusterInvalid && c.cluster.Name != "" {
		rpcOptions = append(rpcOptions, rpc.WithCluster(c.cluster))
	}
	if c.endpoint != "" {
		rpcOptions = append(rpcOptions, rpc.WithEndpoint(c.endpoint))
	}
	if c.logger != nil {
		rpcOptions = append(rpcOptions, rpc.WithLogger(c.logger))
	}
	rpcClient, err := rpc.NewClient(rpcOptions...)
	if err != nil {
		return err
	}
	c.rpcClient = rpcClient
	confirmerOptions := []confirm.ConfirmerOptionFunc{}
	if c.logger != nil {
		confirmerOptions = append(
			confirmerOptions,
			confirm.WithConfirmerLogger(c.logger),
		)
	}
	if c.pollInterval > 0 {
		confirmerOptions = append(
			confirmerOptions,
			confirm.WithConfirmerPollInterval(c.pollInterval),
		)
	}
	if c.defaultCommitment != "" {
		confirmerOptions = append(
			confirmerOptions,
			confirm.WithDefaultCommitment(c.defaultCommitment),
		)
	}
	if c.subscriptions {
		wsEndpoint := c.wsEndpoint
		if wsEndpoint == "" {
			wsEndpoint = c.cluster.WSEndpoint
		}
		if wsEndpoint == "" {
			return errors.New("no WebSocket endpoint configured")
		}
		wsOptions := []ws.ClientOptionFunc{}
		if c.logger != nil {
			wsOptions = append(wsOptions, ws.WithLogger(c.logger))
		}
		wsClient, err := ws.Connect(
			context.Background(),
			wsEndpoint,
			wsOptions...,
		)
		if err != nil {
			return err
		}
		c.wsClient = wsClient
		confirmerOptions = append(
			confirmerOptions,
			confirm.WithWSClient(wsClient),
		)
	}
	c.confirmer = confirm.NewConfirmer(rpcClient, confirmerOptions...)
	return nil
}

// RPC returns the underlying RPC client
func (c *Client) RPC() *rpc.Client {
	return c.rpcClient
}

// WS returns the underlying WebSocket subscription client, or nil when
// subscriptions are not enabled
func (c *Client) WS() *ws.Client {
	return c.wsClient
}

// Confirmer returns the transaction confirmer
func (c *Client) Confirmer() *confirm.Confirmer {
	return c.confirmer
}

// SendAndConfirm submits a signed transaction and blocks until its fate is
// decided
func (c *Client) SendAndConfirm(
	ctx context.Context,
	transaction *tx.Transaction,
	opts *rpc.SendTransactionOpts,
) (rpc.Signature, error) {
	return c.confirmer.SendAndConfirm(ctx, transaction, opts)
}

// Close shuts down the WebSocket connection, if any. It is safe to call
// multiple times
func (c *Client) Close() error {
	if c.wsClient != nil {
		return c.wsClient.Close()
	}
	return nil
}
