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
	"sync"
	"time"
)

// race runs the given functions concurrently against a shared derived
// context and returns the first result to settle. The remaining functions
// are cancelled the instant a winner is determined and their results are
// discarded, so exactly one outcome surfaces. race does not return until
// every function has exited
func race(
	ctx context.Context,
	fns ...func(context.Context) error,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	resultChan := make(chan error, len(fns))
	var wg sync.WaitGroup
	for _, fn := range fns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resultChan <- fn(ctx)
		}()
	}
	result := <-resultChan
	// Cancel the losers and wait for them to wind down so no polling
	// continues past the decision
	cancel()
	wg.Wait()
	return result
}

// sleep pauses for the given duration racing against context cancellation.
// It returns the context error when cancelled mid-sleep
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
