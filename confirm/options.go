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
	"log/slog"
	"time"

	"github.com/blinklabs-io/gosolana/rpc"
)

// DefaultPollInterval is the delay between polls when none is configured
const DefaultPollInterval = 1000 * time.Millisecond

type waiterConfig struct {
	logger       *slog.Logger
	pollInterval time.Duration
	cluster      rpc.Cluster
}

// WaiterOptionFunc is a type that represents functions that modify a waiter config
type WaiterOptionFunc func(*waiterConfig)

func newWaiterConfig(options []WaiterOptionFunc) waiterConfig {
	cfg := waiterConfig{
		logger:       slog.Default(),
		pollInterval: DefaultPollInterval,
	}
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

// WithWaiterLogger specifies the logger to use. If none is provided,
// slog.Default() is used
func WithWaiterLogger(logger *slog.Logger) WaiterOptionFunc {
	return func(cfg *waiterConfig) {
		cfg.logger = logger
	}
}

// WithPollInterval specifies the delay between polls. The default is one
// second
func WithPollInterval(interval time.Duration) WaiterOptionFunc {
	return func(cfg *waiterConfig) {
		cfg.pollInterval = interval
	}
}

// WithWaiterCluster tags the waiter with the cluster its RPC capability is
// bound to. This restricts call sites by configuration and has no effect on
// the polling behavior
func WithWaiterCluster(cluster rpc.Cluster) WaiterOptionFunc {
	return func(cfg *waiterConfig) {
		cfg.cluster = cluster
	}
}
