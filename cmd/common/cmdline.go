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

package common

import (
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gosolana/rpc"
)

type GlobalFlags struct {
	Flagset  *flag.FlagSet
	Endpoint string
	Cluster  string
	cluster  rpc.Cluster
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Endpoint,
		"endpoint",
		"",
		"RPC endpoint URL. this overrides the -cluster option",
	)
	f.Flagset.StringVar(
		&f.Cluster,
		"cluster",
		"devnet",
		"specifies cluster to connect to",
	)
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.Endpoint == "" {
		cluster := rpc.ClusterByName(f.Cluster)
		if cluster == rpc.ClusterInvalid {
			fmt.Printf("Invalid cluster specified: %s\n", f.Cluster)
			os.Exit(1)
		}
		f.cluster = cluster
	}
}

// CreateClient builds an RPC client from the parsed flags
func CreateClient(f *GlobalFlags) *rpc.Client {
	var options []rpc.ClientOptionFunc
	if f.Endpoint != "" {
		options = append(options, rpc.WithEndpoint(f.Endpoint))
	} else {
		options = append(options, rpc.WithCluster(f.cluster))
	}
	client, err := rpc.NewClient(options...)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	return client
}
