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
	"errors"
	"sync"
	"testing"

	"github.com/blinklabs-io/gosolana/rpc"
)

// fakeSignatureStatusFetcher serves a scripted sequence of statuses and
// repeats the last one once the script runs out
type fakeSignatureStatusFetcher struct {
	mutex    sync.Mutex
	statuses []*rpc.SignatureStatus
	calls    int
}

func (f *fakeSignatureStatusFetcher) GetSignatureStatuses(
	ctx context.Context,
	signatures []rpc.Signature,
	opts *rpc.SignatureStatusOpts,
) ([]*rpc.SignatureStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mutex.Lock()
	defer f.mutex.Unlock()
	idx := min(f.calls, len(f.statuses)-1)
	f.calls++
	return []*rpc.SignatureStatus{f.statuses[idx]}, nil
}

func (f *fakeSignatureStatusFetcher) callCount() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.calls
}

func TestSignatureConfirmedAfterPolling(t *testing.T) {
	fetcher := &fakeSignatureStatusFetcher{
		statuses: []*rpc.SignatureStatus{
			{ConfirmationStatus: rpc.CommitmentProcessed},
			{ConfirmationStatus: rpc.CommitmentConfirmed},
		},
	}
	waiter := NewSignatureConfirmationWaiter(
		fetcher,
		WithPollInterval(testPollInterval),
	)
	err := waiter(context.Background(), SignatureConfirmationParams{
		Commitment: rpc.CommitmentConfirmed,
		Signature:  "test-signature",
	})
	if err != nil {
		t.Fatalf("unexpected error waiting for confirmation: %s", err)
	}
	if fetcher.callCount() != 2 {
		t.Fatalf(
			"did not get expected fetch count: got %d, wanted 2",
			fetcher.callCount(),
		)
	}
}

func TestSignatureConfirmedAtHigherCommitment(t *testing.T) {
	// A finalized status satisfies a request for confirmed
	fetcher := &fakeSignatureStatusFetcher{
		statuses: []*rpc.SignatureStatus{
			{ConfirmationStatus: rpc.CommitmentFinalized},
		},
	}
	waiter := NewSignatureConfirmationWaiter(
		fetcher,
		WithPollInterval(testPollInterval),
	)
	err := waiter(context.Background(), SignatureConfirmationParams{
		Commitment: rpc.CommitmentConfirmed,
		Signature:  "test-signature",
	})
	if err != nil {
		t.Fatalf("unexpected error waiting for confirmation: %s", err)
	}
}

func TestSignatureTransactionError(t *testing.T) {
	txErr := rpc.NewTransactionError([]byte(`{"InstructionError":[0,"Custom"]}`))
	fetcher := &fakeSignatureStatusFetcher{
		statuses: []*rpc.SignatureStatus{
			{
				ConfirmationStatus: rpc.CommitmentProcessed,
				Err:                txErr,
			},
		},
	}
	waiter := NewSignatureConfirmationWaiter(
		fetcher,
		WithPollInterval(testPollInterval),
	)
	err := waiter(context.Background(), SignatureConfirmationParams{
		Commitment: rpc.CommitmentFinalized,
		Signature:  "test-signature",
	})
	var gotErr *rpc.TransactionError
	if !errors.As(err, &gotErr) {
		t.Fatalf("did not get expected error, got: %v", err)
	}
	if fetcher.callCount() != 1 {
		t.Fatalf(
			"did not get expected fetch count: got %d, wanted 1",
			fetcher.callCount(),
		)
	}
}

func TestSignatureMissingStatusKeepsPolling(t *testing.T) {
	// A nil status means the node hasn't seen the signature yet
	fetcher := &fakeSignatureStatusFetcher{
		statuses: []*rpc.SignatureStatus{
			nil,
			nil,
			{ConfirmationStatus: rpc.CommitmentConfirmed},
		},
	}
	waiter := NewSignatureConfirmationWaiter(
		fetcher,
		WithPollInterval(testPollInterval),
	)
	err := waiter(context.Background(), SignatureConfirmationParams{
		Commitment: rpc.CommitmentConfirmed,
		Signature:  "test-signature",
	})
	if err != nil {
		t.Fatalf("unexpected error waiting for confirmation: %s", err)
	}
	if fetcher.callCount() != 3 {
		t.Fatalf(
			"did not get expected fetch count: got %d, wanted 3",
			fetcher.callCount(),
		)
	}
}

func TestSignatureWaiterCancellation(t *testing.T) {
	fetcher := &fakeSignatureStatusFetcher{
		statuses: []*rpc.SignatureStatus{nil},
	}
	waiter := NewSignatureConfirmationWaiter(
		fetcher,
		WithPollInterval(testPollInterval),
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := waiter(ctx, SignatureConfirmationParams{
		Commitment: rpc.CommitmentConfirmed,
		Signature:  "test-signature",
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("did not get expected error, got: %v", err)
	}
}
