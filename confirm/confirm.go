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

package confirm

import (
	"context"
	"log/slog"
	"time"

	"github.com/blinklabs-io/gosolana/rpc"
	"github.com/blinklabs-io/gosolana/rpc/ws"
	"github.com/blinklabs-io/gosolana/tx"
)

// TransactionSender is the RPC capability consumed by SendAndConfirm. It is
// satisfied by rpc.Client
type TransactionSender interface {
	SendTransaction(
		ctx context.Context,
		wireTx []byte,
		opts *rpc.SendTransactionOpts,
	) (rpc.Signature, error)
}

// RPC is the full set of RPC capabilities the orchestrator consumes. It is
// satisfied by rpc.Client
type RPC interface {
	EpochInfoFetcher
	SignatureStatusFetcher
	TransactionSender
}

// SignatureSubscription is a live subscription delivering at most one
// signature notification. It is satisfied by ws.Subscription
type SignatureSubscription interface {
	Notifications() <-chan *ws.SignatureResult
	Unsubscribe()
}

// SubscribeFunc opens a signature subscription at the given commitment
type SubscribeFunc func(
	ctx context.Context,
	signature rpc.Signature,
	commitment rpc.Commitment,
) (SignatureSubscription, error)

// Confirmer races confirmation strategies to decide the fate of a
// submitted transaction. The block-height strategy always runs; the
// signature strategy polls over RPC unless a subscription transport is
// configured, in which case it waits for the node's notification instead
type Confirmer struct {
	rpc               RPC
	blockHeightWaiter BlockHeightExceedenceWaiter
	signatureWaiter   SignatureConfirmationWaiter
	subscribe         SubscribeFunc
	logger            *slog.Logger
	defaultCommitment rpc.Commitment
}

type confirmerConfig struct {
	logger            *slog.Logger
	pollInterval      time.Duration
	subscribe         SubscribeFunc
	defaultCommitment rpc.Commitment
}

// ConfirmerOptionFunc is a type that represents functions that modify a
// confirmer config
type ConfirmerOptionFunc func(*confirmerConfig)

// WithConfirmerLogger specifies the logger to use. If none is provided,
// slog.Default() is used
func WithConfirmerLogger(logger *slog.Logger) ConfirmerOptionFunc {
	return func(cfg *confirmerConfig) {
		cfg.logger = logger
	}
}

// WithConfirmerPollInterval specifies the delay between polls for both
// polling strategies. The default is one second
func WithConfirmerPollInterval(interval time.Duration) ConfirmerOptionFunc {
	return func(cfg *confirmerConfig) {
		cfg.pollInterval = interval
	}
}

// WithWSClient routes signature confirmation through the given WebSocket
// client's subscriptions instead of status polling
func WithWSClient(client *ws.Client) ConfirmerOptionFunc {
	return func(cfg *confirmerConfig) {
		cfg.subscribe = func(
			ctx context.Context,
			signature rpc.Signature,
			commitment rpc.Commitment,
		) (SignatureSubscription, error) {
			return client.SignatureSubscribe(ctx, signature, commitment)
		}
	}
}

// WithSignatureSubscriber routes signature confirmation through an
// arbitrary subscription transport
func WithSignatureSubscriber(subscribe SubscribeFunc) ConfirmerOptionFunc {
	return func(cfg *confirmerConfig) {
		cfg.subscribe = subscribe
	}
}

// WithDefaultCommitment specifies the commitment used when a confirmation
// request doesn't name one. The default is confirmed
func WithDefaultCommitment(commitment rpc.Commitment) ConfirmerOptionFunc {
	return func(cfg *confirmerConfig) {
		cfg.defaultCommitment = commitment
	}
}

// NewConfirmer returns a confirmer bound to the given RPC capabilities
func NewConfirmer(rpcClient RPC, options ...ConfirmerOptionFunc) *Confirmer {
	cfg := confirmerConfig{
		logger:            slog.Default(),
		pollInterval:      DefaultPollInterval,
		defaultCommitment: rpc.CommitmentConfirmed,
	}
	for _, option := range options {
		option(&cfg)
	}
	waiterOptions := []WaiterOptionFunc{
		WithWaiterLogger(cfg.logger),
		WithPollInterval(cfg.pollInterval),
	}
	return &Confirmer{
		rpc:               rpcClient,
		blockHeightWaiter: NewBlockHeightExceedenceWaiter(rpcClient, waiterOptions...),
		signatureWaiter:   NewSignatureConfirmationWaiter(rpcClient, waiterOptions...),
		subscribe:         cfg.subscribe,
		logger:            cfg.logger,
		defaultCommitment: cfg.defaultCommitment,
	}
}

// ConfirmParams identifies the transaction to confirm and the lifetime
// window to confirm it within
type ConfirmParams struct {
	Signature            rpc.Signature
	LastValidBlockHeight uint64
	// Commitment falls back to the confirmer's default when empty
	Commitment rpc.Commitment
}

// Confirm blocks until the signature reaches the requested commitment, the
// transaction's lifetime window closes, the transaction fails on chain, or
// the context is cancelled. Only a confirmed transaction returns nil
func (c *Confirmer) Confirm(ctx context.Context, params ConfirmParams) error {
	commitment := params.Commitment
	if commitment == "" {
		commitment = c.defaultCommitment
	}
	signatureStrategy := func(ctx context.Context) error {
		return c.signatureWaiter(ctx, SignatureConfirmationParams{
			Commitment: commitment,
			Signature:  params.Signature,
		})
	}
	if c.subscribe != nil {
		signatureStrategy = func(ctx context.Context) error {
			return c.waitForNotification(ctx, params.Signature, commitment)
		}
	}
	return race(
		ctx,
		func(ctx context.Context) error {
			return c.blockHeightWaiter(ctx, BlockHeightExceedenceParams{
				Commitment:           commitment,
				LastValidBlockHeight: params.LastValidBlockHeight,
			})
		},
		signatureStrategy,
	)
}

// waitForNotification opens a signature subscription and blocks until the
// node's single notification arrives or the context is cancelled
func (c *Confirmer) waitForNotification(
	ctx context.Context,
	signature rpc.Signature,
	commitment rpc.Commitment,
) error {
	sub, err := c.subscribe(ctx, signature, commitment)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case result := <-sub.Notifications():
		if result.Err != nil {
			return result.Err
		}
		c.logger.Debug(
			"signature confirmed",
			"component", "confirm",
			"signature", signature,
			"commitment", commitment,
		)
		return nil
	}
}

// SendAndConfirm submits a signed transaction and blocks until its fate is
// decided. The signature is returned even when confirmation fails so
// callers can keep tracking the transaction
func (c *Confirmer) SendAndConfirm(
	ctx context.Context,
	transaction *tx.Transaction,
	opts *rpc.SendTransactionOpts,
) (rpc.Signature, error) {
	wireTx, err := transaction.Encode()
	if err != nil {
		return "", err
	}
	signature, err := c.rpc.SendTransaction(ctx, wireTx, opts)
	if err != nil {
		return "", err
	}
	c.logger.Debug(
		"transaction submitted",
		"component", "confirm",
		"signature", signature,
	)
	err = c.Confirm(ctx, ConfirmParams{
		Signature:            signature,
		LastValidBlockHeight: transaction.LastValidBlockHeight,
	})
	return signature, err
}
