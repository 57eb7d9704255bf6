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

package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/blinklabs-io/gosolana/rpc"
)

// SignatureResult is the payload of a signature notification. A nil Err
// means the transaction succeeded
type SignatureResult struct {
	Err *rpc.TransactionError `json:"err"`
}

// Subscription is a live signature subscription. The node fires at most one
// notification per signature subscription, after which the server side is
// automatically cancelled
type Subscription struct {
	client     *Client
	id         uint64
	notifyChan chan *SignatureResult
	onceUnsub  sync.Once
}

// Notifications returns the channel delivering the subscription's
// notification
func (s *Subscription) Notifications() <-chan *SignatureResult {
	return s.notifyChan
}

// Unsubscribe tears down the subscription. It is safe to call multiple
// times and after the notification has fired
func (s *Subscription) Unsubscribe() {
	s.onceUnsub.Do(func() {
		s.client.mutex.Lock()
		delete(s.client.subs, s.id)
		delete(s.client.parked, s.id)
		s.client.mutex.Unlock()
		// Best effort: the connection may already be gone
		ctx, cancel := context.WithTimeout(
			context.Background(),
			unsubscribeTimeout,
		)
		defer cancel()
		_, _ = s.client.request(
			ctx,
			"signatureUnsubscribe",
			[]any{s.id},
		)
	})
}

func (s *Subscription) deliver(result json.RawMessage) {
	var envelope struct {
		Value SignatureResult `json:"value"`
	}
	if err := json.Unmarshal(result, &envelope); err != nil {
		s.client.sendError(err)
		return
	}
	// Non-blocking: the channel holds the single expected notification and
	// a consumer that already went away must not stall the receive loop
	select {
	case s.notifyChan <- &envelope.Value:
	default:
	}
}

// SignatureSubscribe subscribes to the notification fired when the given
// signature reaches the given commitment
func (c *Client) SignatureSubscribe(
	ctx context.Context,
	signature rpc.Signature,
	commitment rpc.Commitment,
) (*Subscription, error) {
	config := map[string]any{}
	if commitment != "" {
		config["commitment"] = commitment
	}
	result, err := c.request(
		ctx,
		"signatureSubscribe",
		[]any{signature, config},
	)
	if err != nil {
		return nil, err
	}
	var subID uint64
	if err := json.Unmarshal(result, &subID); err != nil {
		return nil, err
	}
	sub := &Subscription{
		client:     c,
		id:         subID,
		notifyChan: make(chan *SignatureResult, 1),
	}
	c.mutex.Lock()
	c.subs[subID] = sub
	early, hasEarly := c.parked[subID]
	delete(c.parked, subID)
	c.mutex.Unlock()
	if hasEarly {
		sub.deliver(early)
	}
	c.logger.Debug(
		"subscribed to signature",
		"component", "ws",
		"signature", signature,
		"subscription", subID,
	)
	return sub, nil
}
