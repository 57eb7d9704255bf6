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

// Commitment is a network-defined confidence level indicating how durably a
// piece of ledger state is settled
type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)

// rank orders commitments by strength. Unknown commitments rank below
// processed
func (c Commitment) rank() int {
	switch c {
	case CommitmentProcessed:
		return 1
	case CommitmentConfirmed:
		return 2
	case CommitmentFinalized:
		return 3
	default:
		return 0
	}
}

// AtLeast returns true when c is at least as strong as other
func (c Commitment) AtLeast(other Commitment) bool {
	return c.rank() >= other.rank()
}

// Signature is the base58-rendered signature identifying a submitted
// transaction, as it travels in RPC requests and responses
type Signature string

// Blockhash is a base58-rendered recent blockhash
type Blockhash string

// EpochInfo is the result of the getEpochInfo method
type EpochInfo struct {
	AbsoluteSlot uint64 `json:"absoluteSlot"`
	BlockHeight  uint64 `json:"blockHeight"`
	Epoch        uint64 `json:"epoch"`
	SlotIndex    uint64 `json:"slotIndex"`
	SlotsInEpoch uint64 `json:"slotsInEpoch"`
}

// SignatureStatus is the per-signature result of the getSignatureStatuses
// method. A nil entry in the result list means the node has not yet observed
// the signature
type SignatureStatus struct {
	Slot               uint64            `json:"slot"`
	Confirmations      *uint64           `json:"confirmations"`
	ConfirmationStatus Commitment        `json:"confirmationStatus"`
	Err                *TransactionError `json:"err"`
}

// LatestBlockhash is the result of the getLatestBlockhash method. The
// blockhash binds a transaction lifetime that expires once the network block
// height passes LastValidBlockHeight
type LatestBlockhash struct {
	Blockhash            Blockhash `json:"blockhash"`
	LastValidBlockHeight uint64    `json:"lastValidBlockHeight"`
}

// CommitmentOpts filters a query by commitment and minimum context slot
type CommitmentOpts struct {
	Commitment     Commitment
	MinContextSlot uint64
}

func (o *CommitmentOpts) configObject() map[string]any {
	config := map[string]any{}
	if o == nil {
		return config
	}
	if o.Commitment != "" {
		config["commitment"] = o.Commitment
	}
	if o.MinContextSlot > 0 {
		config["minContextSlot"] = o.MinContextSlot
	}
	return config
}

// SignatureStatusOpts configures the getSignatureStatuses method
type SignatureStatusOpts struct {
	// SearchTransactionHistory allows the node to search its ledger cache
	// for signatures not found in the recent status cache
	SearchTransactionHistory bool
}

// SendTransactionOpts configures the sendTransaction method
type SendTransactionOpts struct {
	SkipPreflight       bool
	PreflightCommitment Commitment
	MaxRetries          *uint64
	MinContextSlot      uint64
}
