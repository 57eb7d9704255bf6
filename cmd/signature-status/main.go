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
	"github.com/blinklabs-io/gosolana/confirm"
	"github.com/blinklabs-io/gosolana/rpc"
)

type signatureStatusFlags struct {
	*common.GlobalFlags
	wait                 bool
	commitment           string
	lastValidBlockHeight uint64
}

func main() {
	// Parse commandline
	f := signatureStatusFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.BoolVar(
		&f.wait,
		"wait",
		false,
		"wait for the signature to reach the given commitment",
	)
	f.Flagset.StringVar(
		&f.commitment,
		"commitment",
		"confirmed",
		"commitment level to wait for",
	)
	f.Flagset.Uint64Var(
		&f.lastValidBlockHeight,
		"last-valid-block-height",
		0,
		"give up waiting once the block height passes this value",
	)
	f.Parse()
	if f.Flagset.NArg() < 1 {
		fmt.Println("ERROR: no signature specified")
		os.Exit(1)
	}
	signature := rpc.Signature(f.Flagset.Arg(0))
	// Create client
	client := common.CreateClient(f.GlobalFlags)
	ctx := context.Background()

	if f.wait {
		if f.lastValidBlockHeight == 0 {
			// Default to the typical blockhash validity window of 150 blocks
			// past the current height
			info, err := client.GetEpochInfo(ctx, nil)
			if err != nil {
				fmt.Printf("ERROR: %s\n", err)
				os.Exit(1)
			}
			f.lastValidBlockHeight = info.BlockHeight + 150
		}
		confirmer := confirm.NewConfirmer(client)
		err := confirmer.Confirm(ctx, confirm.ConfirmParams{
			Signature:            signature,
			LastValidBlockHeight: f.lastValidBlockHeight,
			Commitment:           rpc.Commitment(f.commitment),
		})
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Signature %s reached commitment %s\n", signature, f.commitment)
		return
	}

	statuses, err := client.GetSignatureStatuses(
		ctx,
		[]rpc.Signature{signature},
		&rpc.SignatureStatusOpts{SearchTransactionHistory: true},
	)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if len(statuses) == 0 || statuses[0] == nil {
		fmt.Printf("Signature %s not found\n", signature)
		return
	}
	status := statuses[0]
	fmt.Printf("Signature: %s\n", signature)
	fmt.Printf("Slot: %d\n", status.Slot)
	fmt.Printf("Confirmation status: %s\n", status.ConfirmationStatus)
	if status.Confirmations != nil {
		fmt.Printf("Confirmations: %d\n", *status.Confirmations)
	}
	if status.Err != nil {
		fmt.Printf("Transaction error: %s\n", status.Err)
	}
}
