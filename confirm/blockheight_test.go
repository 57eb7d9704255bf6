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
	"time"

	"github.com/blinklabs-io/gosolana/rpc"
)

const testPollInterval = 2 * time.Millisecond

// fakeEpochInfoFetcher serves a scripted sequence of block heights and
// repeats the last one once the script runs out
type fakeEpochInfoFetcher struct {
	mutex   sync.Mutex
	heights []uint64
	calls   int
	err     error
}

func (f *fakeEpochInfoFetcher) GetEpochInfo(
	ctx context.Context,
	opts *rpc.CommitmentOpts,
) (*rpc.EpochInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	idx := min(f.calls, len(f.heights)-1)
	f.calls++
	return &rpc.EpochInfo{BlockHeight: f.heights[idx]}, nil
}

func (f *fakeEpochInfoFetcher) callCount() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.calls
}

func TestBlockHeightExceededImmediately(t *testing.T) {
	fetcher := &fakeEpochInfoFetcher{heights: []uint64{101}}
	waiter := NewBlockHeightExceedenceWaiter(
		fetcher,
		WithPollInterval(testPollInterval),
	)
	err := waiter(context.Background(), BlockHeightExceedenceParams{
		LastValidBlockHeight: 100,
	})
	var exceededErr BlockHeightExceededError
	if !errors.As(err, &exceededErr) {
		t.Fatalf("did not get expected error, got: %v", err)
	}
	if exceededErr.CurrentBlockHeight != 101 {
		t.Fatalf(
			"did not get expected current block height: got %d, wanted 101",
			exceededErr.CurrentBlockHeight,
		)
	}
	if exceededErr.LastValidBlockHeight != 100 {
		t.Fatalf(
			"did not get expected last valid block height: got %d, wanted 100",
			exceededErr.LastValidBlockHeight,
		)
	}
	if fetcher.callCount() != 1 {
		t.Fatalf(
			"did not get expected fetch count: got %d, wanted 1",
			fetcher.callCount(),
		)
	}
}

func TestBlockHeightExceededAfterOnePoll(t *testing.T) {
	fetcher := &fakeEpochInfoFetcher{heights: []uint64{99, 101}}
	waiter := NewBlockHeightExceedenceWaiter(
		fetcher,
		WithPollInterval(testPollInterval),
	)
	err := waiter(context.Background(), BlockHeightExceedenceParams{
		LastValidBlockHeight: 100,
	})
	var exceededErr BlockHeightExceededError
	if !errors.As(err, &exceededErr) {
		t.Fatalf("did not get expected error, got: %v", err)
	}
	if fetcher.callCount() != 2 {
		t.Fatalf(
			"did not get expected fetch count: got %d, wanted 2",
			fetcher.callCount(),
		)
	}
}

func TestBlockHeightExceededAfterPolling(t *testing.T) {
	// Height 100 equals the ceiling, so the first two fetches keep waiting
	fetcher := &fakeEpochInfoFetcher{heights: []uint64{99, 100, 101}}
	waiter := NewBlockHeightExceedenceWaiter(
		fetcher,
		WithPollInterval(testPollInterval),
	)
	err := waiter(context.Background(), BlockHeightExceedenceParams{
		LastValidBlockHeight: 100,
	})
	var exceededErr BlockHeightExceededError
	if !errors.As(err, &exceededErr) {
		t.Fatalf("did not get expected error, got: %v", err)
	}
	if fetcher.callCount() != 3 {
		t.Fatalf(
			"did not get expected fetch count: got %d, wanted 3",
			fetcher.callCount(),
		)
	}
}

func TestBlockHeightWaiterCancellation(t *testing.T) {
	fetcher := &fakeEpochInfoFetcher{heights: []uint64{50}}
	waiter := NewBlockHeightExceedenceWaiter(
		fetcher,
		WithPollInterval(time.Minute),
	)
	ctx, cancel := context.WithCancel(context.Background())
	resultChan := make(chan error, 1)
	go func() {
		resultChan <- waiter(ctx, BlockHeightExceedenceParams{
			LastValidBlockHeight: 100,
		})
	}()
	cancel()
	select {
	case err := <-resultChan:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("did not get expected error, got: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for waiter to observe cancellation")
	}
}

func TestBlockHeightWaiterTransportError(t *testing.T) {
	transportErr := errors.New("connection refused")
	fetcher := &fakeEpochInfoFetcher{err: transportErr}
	waiter := NewBlockHeightExceedenceWaiter(
		fetcher,
		WithPollInterval(testPollInterval),
	)
	err := waiter(context.Background(), BlockHeightExceedenceParams{
		LastValidBlockHeight: 100,
	})
	if !errors.Is(err, transportErr) {
		t.Fatalf("did not get expected error, got: %v", err)
	}
}
