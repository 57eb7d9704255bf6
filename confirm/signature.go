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
	"time"

	"github.com/blinklabs-io/gosolana/rpc"
)

// SignatureStatusFetcher is the RPC capability consumed by the signature
// confirmation strategy. It is satisfied by rpc.Client
type SignatureStatusFetcher interface {
	GetSignatureStatuses(
		ctx context.Context,
		signatures []rpc.Signature,
		opts *rpc.SignatureStatusOpts,
	) ([]*rpc.SignatureStatus, error)
}

// SignatureConfirmationParams configures a single signature wait
type SignatureConfirmationParams struct {
	Commitment rpc.Commitment
	Signature  rpc.Signature
	// PollInterval overrides the waiter's configured interval when positive
	PollInterval time.Duration
}

// SignatureConfirmationWaiter blocks until the signature's reported status
// reaches at least the requested commitment. It returns nil on
// confirmation, the network's transaction error when the transaction
// failed, or a context error on cancellation
type SignatureConfirmationWaiter func(
	ctx context.Context,
	params SignatureConfirmationParams,
) error

// NewSignatureConfirmationWaiter returns a waiter that polls the signature
// status on an interval. A missing status means the node hasn't observed
// the signature yet and polling continues; a status carrying a transaction
// error stops the wait immediately
func NewSignatureConfirmationWaiter(
	fetcher SignatureStatusFetcher,
	options ...WaiterOptionFunc,
) SignatureConfirmationWaiter {
	cfg := newWaiterConfig(options)
	return func(ctx context.Context, params SignatureConfirmationParams) error {
		interval := cfg.pollInterval
		if params.PollInterval > 0 {
			interval = params.PollInterval
		}
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		for {
			statuses, err := fetcher.GetSignatureStatuses(
				ctx,
				[]rpc.Signature{params.Signature},
				nil,
			)
			if err != nil {
				return err
			}
			var status *rpc.SignatureStatus
			if len(statuses) > 0 {
				status = statuses[0]
			}
			if status != nil {
				if status.Err != nil {
					return status.Err
				}
				if status.ConfirmationStatus.AtLeast(params.Commitment) {
					cfg.logger.Debug(
						"signature confirmed",
						"component", "confirm",
						"signature", params.Signature,
						"confirmationStatus", status.ConfirmationStatus,
					)
					return nil
				}
			}
			if err := sleep(ctx, interval); err != nil {
				return err
			}
		}
	}
}
