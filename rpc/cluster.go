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

// Cluster definitions
var (
	ClusterMainnetBeta = Cluster{
		Name:       "mainnet-beta",
		Endpoint:   "https://api.mainnet-beta.solana.com",
		WSEndpoint: "wss://api.mainnet-beta.solana.com",
	}
	ClusterDevnet = Cluster{
		Name:       "devnet",
		Endpoint:   "https://api.devnet.solana.com",
		WSEndpoint: "wss://api.devnet.solana.com",
	}
	ClusterTestnet = Cluster{
		Name:       "testnet",
		Endpoint:   "https://api.testnet.solana.com",
		WSEndpoint: "wss://api.testnet.solana.com",
	}
	ClusterLocalnet = Cluster{
		Name:       "localnet",
		Endpoint:   "http://127.0.0.1:8899",
		WSEndpoint: "ws://127.0.0.1:8900",
	}

	ClusterInvalid = Cluster{
		Name: "invalid",
	} // ClusterInvalid is used as a return value for lookup functions when a cluster isn't found
)

// List of valid clusters for use in lookup functions
var clusters = []Cluster{
	ClusterMainnetBeta,
	ClusterDevnet,
	ClusterTestnet,
	ClusterLocalnet,
}

// Cluster represents a named network with its public RPC endpoints
type Cluster struct {
	Name       string
	Endpoint   string
	WSEndpoint string
}

func (c Cluster) String() string {
	return c.Name
}

// ClusterByName returns a predefined cluster by name
func ClusterByName(name string) Cluster {
	for _, cluster := range clusters {
		if cluster.Name == name {
			return cluster
		}
	}
	return ClusterInvalid
}

// Clusters returns the predefined clusters
func Clusters() []Cluster {
	return clusters[:]
}
