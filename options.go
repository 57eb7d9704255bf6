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

package gosolana

import (
	"log/slog"
	"time"

	"github.com/blinklabs-io/gosolana/rpc"
)

// ClientConfig holds the configuration assembled from client options
type ClientConfig struct {
	cluster           rpc.Cluster
	endpoint          string
	wsEndpoint        string
	logger            *slog.Logger
	subscriptions     bool
	pollInterval      time.Duration
	defaultCommitment rpc.Commitment
}

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*ClientConfig)

// NewClientConfig returns a config populated from the given options
func NewClientConfig(options ...ClientOptionFunc) ClientConfig {
	cfg := ClientConfig{}
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

// WithCluster specifies a predefined cluster whose public endpoints the
// client will use
func WithCluster(cluster rpc.Cluster) ClientOptionFunc {
	return func(c *ClientConfig) {
		c.cluster = cluster
	}
}

// WithEndpoint specifies the HTTP RPC endpoint, overriding any cluster
// endpoint
func WithEndpoint(endpoint string) ClientOptionFunc {
	return func(c *ClientConfig) {
		c.endpoint = endpoint
	}
}

// WithWSEndpoint specifies the WebSocket endpoint, overriding any cluster
// endpoint
func WithWSEndpoint(endpoint string) ClientOptionFunc {
	return func(c *ClientConfig) {
		c.wsEndpoint = endpoint
	}
}

// WithLogger specifies the logger to use. If none is provided,
// slog.Default() is used
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *ClientConfig) {
		c.logger = logger
	}
}

// WithSubscriptions enables the WebSocket subscription client. Confirmation
// then waits on signature notifications instead of status polling
func WithSubscriptions(subscriptions bool) ClientOptionFunc {
	return func(c *ClientConfig) {
		c.subscriptions = subscriptions
	}
}

// WithPollInterval specifies the delay between confirmation polls. The
// default is one second
func WithPollInterval(interval time.Duration) ClientOptionFunc {
	return func(c *ClientConfig) {
		c.pollInterval = interval
	}
}

// WithDefaultCommitment specifies the commitment used when a confirmation
// request doesn't name one. The default is confirmed
func WithDefaultCommitment(commitment rpc.Commitment) ClientOptionFunc {
	return func(c *ClientConfig) {
		c.defaultCommitment = commitment
	}
}
