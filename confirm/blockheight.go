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
	"fmt"
	"time"

	"github.com/blinklabs-io/gosolana/rpc"
)

// EpochInfoFetcher is the RPC capability consumed by the block-height
// strategy. It is satisfied by rpc.Client
type EpochInfoFetcher interface {
	GetEpochInfo(
		ctx context.Context,
		opts *rpc.CommitmentOpts,
	) (*rpc.EpochInfo, error)
}

// BlockHeightExceededError reports that the network block height has passed
// a transaction's last valid block height, closing its lifetime window.
// This is always fatal to the confirmation attempt
type BlockHeightExceededError struct {
	CurrentBlockHeight   uint64
	LastValidBlockHeight uint64
}

func (e BlockHeightExceededError) Error() string {
	return fmt.Sprintf(
		"block height exceeded: current height %d is past last valid block height %d",
		e.CurrentBlockHeight,
		e.LastValidBlockHeight,
	)
}

// BlockHeightExceedenceParams configures a single block-height wait
type BlockHeightExceedenceParams struct {
	Commitment           rpc.Commitment
	LastValidBlockHeight uint64
	// PollInterval overrides the waiter's configured interval when positive
	PollInterval time.Duration
}

// BlockHeightExceedenceWaiter blocks until the network block height
// exceeds the given ceiling. It never returns nil: the only outcomes are a
// BlockHeightExceededError, a context error, or a transport error
type BlockHeightExceedenceWaiter func(
	ctx context.Context,
	params BlockHeightExceedenceParams,
) error

// NewBlockHeightExceedenceWaiter returns a waiter that polls epoch info
// until the block height passes the ceiling. The height is fetched once
// immediately, then on every poll interval. Each wait owns a derived
// context chained to the caller's so in-flight fetches stop the moment the
// caller cancels
func NewBlockHeightExceedenceWaiter(
	fetcher EpochInfoFetcher,
	options ...WaiterOptionFunc,
) BlockHeightExceedenceWaiter {
	cfg := newWaiterConfig(options)
	return func(ctx context.Context, params BlockHeightExceedenceParams) error {
		interval := cfg.pollInterval
		if params.PollInterval > 0 {
			interval = params.PollInterval
		}
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		for {
			info, err := fetcher.GetEpochInfo(
				ctx,
				&rpc.CommitmentOpts{Commitment: params.Commitment},
			)
			if err != nil {
				return err
			}
			if info.BlockHeight > params.LastValidBlockHeight {
				cfg.logger.Debug(
					"block height exceeded",
					"component", "confirm",
					"currentBlockHeight", info.BlockHeight,
					"lastValidBlockHeight", params.LastValidBlockHeight,
				)
				return BlockHeightExceededError{
					CurrentBlockHeight:   info.BlockHeight,
					LastValidBlockHeight: params.LastValidBlockHeight,
				}
			}
			if err := sleep(ctx, interval); err != nil {
				return err
			}
		}
	}
}
