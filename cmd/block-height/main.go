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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/blinklabs-io/gosolana/cmd/common"
)

type blockHeightFlags struct {
	*common.GlobalFlags
}

func main() {
	// Parse commandline
	f := blockHeightFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Parse()
	// Create client
	client := common.CreateClient(f.GlobalFlags)
	ctx := context.Background()

	info, err := client.GetEpochInfo(ctx, nil)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	blockhash, err := client.GetLatestBlockhash(ctx, nil)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	fmt.Print("Current cluster state:\n\n")
	fmt.Printf("Epoch: %d\n", info.Epoch)
	fmt.Printf("Slot: %d\n", info.AbsoluteSlot)
	fmt.Printf("Block height: %d\n", info.BlockHeight)
	fmt.Printf("Latest blockhash: %s\n", blockhash.Blockhash)
	fmt.Printf("Last valid block height: %d\n", blockhash.LastValidBlockHeight)
}
