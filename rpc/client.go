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

// Package rpc provides a JSON-RPC client for Solana nodes covering the
// methods consumed by the transaction confirmation subsystem
package rpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// Client is a JSON-RPC client bound to a single node endpoint. It is safe
// for concurrent use
type Client struct {
	endpoint   string
	cluster    Cluster
	httpClient *http.Client
	logger     *slog.Logger
	nextID     atomic.Uint64
}

// NewClient returns a client for the given options. An endpoint must be
// provided, either directly or via a cluster
func NewClient(options ...ClientOptionFunc) (*Client, error) {
	c := &Client{}
	for _, option := range options {
		option(c)
	}
	if c.endpoint == "" {
		return nil, errors.New("no endpoint or cluster specified")
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c, nil
}

// Cluster returns the cluster the client was configured with, or
// ClusterInvalid when only a bare endpoint was provided
func (c *Client) Cluster() Cluster {
	if c.cluster.Name == "" {
		return ClusterInvalid
	}
	return c.cluster
}

// Endpoint returns the HTTP endpoint the client sends requests to
func (c *Client) Endpoint() string {
	return c.endpoint
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// contextualResult is the envelope used by methods whose result carries the
// slot context it was computed at
type contextualResult[T any] struct {
	Context struct {
		Slot uint64 `json:"slot"`
	} `json:"context"`
	Value T `json:"value"`
}

// call performs a single JSON-RPC request, honoring context cancellation,
// and unmarshals the result into result when it is non-nil
func (c *Client) call(
	ctx context.Context,
	method string,
	params []any,
	result any,
) error {
	reqBody, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}
	c.logger.Debug(
		"sending rpc request",
		"component", "rpc",
		"method", method,
		"endpoint", c.endpoint,
	)
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint,
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"%s: unexpected HTTP status %d",
			method,
			resp.StatusCode,
		)
	}
	var rpcResp rpcResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return fmt.Errorf("%s: malformed response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("%s: malformed result: %w", method, err)
		}
	}
	return nil
}

// GetEpochInfo returns epoch information, including the current block
// height, at the given commitment
func (c *Client) GetEpochInfo(
	ctx context.Context,
	opts *CommitmentOpts,
) (*EpochInfo, error) {
	params := []any{}
	if config := opts.configObject(); len(config) > 0 {
		params = append(params, config)
	}
	var result EpochInfo
	if err := c.call(ctx, "getEpochInfo", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBlockHeight returns the current block height at the given commitment
func (c *Client) GetBlockHeight(
	ctx context.Context,
	opts *CommitmentOpts,
) (uint64, error) {
	params := []any{}
	if config := opts.configObject(); len(config) > 0 {
		params = append(params, config)
	}
	var result uint64
	if err := c.call(ctx, "getBlockHeight", params, &result); err != nil {
		return 0, err
	}
	return result, nil
}

// GetLatestBlockhash returns the most recent blockhash and the last block
// height at which a transaction bound to it remains valid
func (c *Client) GetLatestBlockhash(
	ctx context.Context,
	opts *CommitmentOpts,
) (*LatestBlockhash, error) {
	params := []any{}
	if config := opts.configObject(); len(config) > 0 {
		params = append(params, config)
	}
	var result contextualResult[LatestBlockhash]
	if err := c.call(ctx, "getLatestBlockhash", params, &result); err != nil {
		return nil, err
	}
	return &result.Value, nil
}

// GetSignatureStatuses returns the status of each given signature. Entries
// are nil for signatures the node has not yet observed
func (c *Client) GetSignatureStatuses(
	ctx context.Context,
	signatures []Signature,
	opts *SignatureStatusOpts,
) ([]*SignatureStatus, error) {
	params := []any{signatures}
	if opts != nil && opts.SearchTransactionHistory {
		params = append(params, map[string]any{
			"searchTransactionHistory": true,
		})
	}
	var result contextualResult[[]*SignatureStatus]
	if err := c.call(ctx, "getSignatureStatuses", params, &result); err != nil {
		return nil, err
	}
	return result.Value, nil
}

// SendTransaction submits a signed, wire-encoded transaction and returns
// its signature. Acceptance by this method does not mean the transaction
// has been confirmed
func (c *Client) SendTransaction(
	ctx context.Context,
	wireTx []byte,
	opts *SendTransactionOpts,
) (Signature, error) {
	config := map[string]any{
		"encoding": "base64",
	}
	if opts != nil {
		if opts.SkipPreflight {
			config["skipPreflight"] = true
		}
		if opts.PreflightCommitment != "" {
			config["preflightCommitment"] = opts.PreflightCommitment
		}
		if opts.MaxRetries != nil {
			config["maxRetries"] = *opts.MaxRetries
		}
		if opts.MinContextSlot > 0 {
			config["minContextSlot"] = opts.MinContextSlot
		}
	}
	params := []any{
		base64.StdEncoding.EncodeToString(wireTx),
		config,
	}
	var result Signature
	if err := c.call(ctx, "sendTransaction", params, &result); err != nil {
		return "", err
	}
	return result, nil
}
