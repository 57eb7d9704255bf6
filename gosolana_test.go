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
	"testing"

	"github.com/blinklabs-io/gosolana/rpc"
)

func TestNewWithCluster(t *testing.T) {
	client, err := New(WithCluster(rpc.ClusterDevnet))
	if err != nil {
		t.Fatalf("unexpected error creating client: %s", err)
	}
	defer client.Close()
	if client.RPC() == nil {
		t.Fatalf("did not get expected RPC client")
	}
	if client.RPC().Endpoint() != rpc.ClusterDevnet.Endpoint {
		t.Fatalf(
			"did not get expected endpoint: got %s, wanted %s",
			client.RPC().Endpoint(),
			rpc.ClusterDevnet.Endpoint,
		)
	}
	if client.Confirmer() == nil {
		t.Fatalf("did not get expected confirmer")
	}
	if client.WS() != nil {
		t.Fatalf("did not expect a WebSocket client")
	}
}

func TestNewWithEndpointOverride(t *testing.T) {
	client, err := New(
		WithCluster(rpc.ClusterDevnet),
		WithEndpoint("http://localhost:8899"),
	)
	if err != nil {
		t.Fatalf("unexpected error creating client: %s", err)
	}
	defer client.Close()
	if client.RPC().Endpoint() != "http://localhost:8899" {
		t.Fatalf(
			"did not get expected endpoint: got %s",
			client.RPC().Endpoint(),
		)
	}
}

func TestNewWithoutEndpoint(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("did not get expected error creating client")
	}
}

func TestNewSubscriptionsWithoutWSEndpoint(t *testing.T) {
	_, err := New(
		WithEndpoint("http://localhost:8899"),
		WithSubscriptions(true),
	)
	if err == nil {
		t.Fatalf("did not get expected error creating client")
	}
}

func TestCloseIdempotent(t *testing.T) {
	client, err := New(WithCluster(rpc.ClusterLocalnet))
	if err != nil {
		t.Fatalf("unexpected error creating client: %s", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("unexpected error closing client: %s", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("unexpected error closing client again: %s", err)
	}
}
