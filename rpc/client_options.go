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

package rpc

import (
	"log/slog"
	"net/http"
)

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*Client)

// WithCluster specifies a predefined cluster whose public endpoint the
// client will use
func WithCluster(cluster Cluster) ClientOptionFunc {
	return func(c *Client) {
		c.cluster = cluster
		c.endpoint = cluster.Endpoint
	}
}

// WithEndpoint specifies the HTTP endpoint directly, overriding any cluster
// endpoint
func WithEndpoint(endpoint string) ClientOptionFunc {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient specifies the HTTP client to use. If none is provided,
// http.DefaultClient is used
func WithHTTPClient(httpClient *http.Client) ClientOptionFunc {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger specifies the logger to use. If none is provided,
// slog.Default() is used
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}
