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

// Package tx models legacy transaction messages and their wire encoding
package tx

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/blinklabs-io/gosolana/keys"
)

// HashLength is the byte length of a blockhash
const HashLength = 32

// Hash is a 32-byte blockhash, rendered as base58 in string contexts
type Hash [HashLength]byte

// HashFromBytes builds a hash from a 32-byte slice
func HashFromBytes(data []byte) (Hash, error) {
	var h Hash
	if len(data) != HashLength {
		return h, fmt.Errorf(
			"invalid hash length: expected %d bytes, got %d",
			HashLength,
			len(data),
		)
	}
	copy(h[:], data)
	return h, nil
}

// HashFromBase58 parses a base58-rendered blockhash
func HashFromBase58(encoded string) (Hash, error) {
	return HashFromBytes(base58.Decode(encoded))
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return base58.Encode(h[:])
}

// MessageHeader counts the signing and read-only accounts at the front of
// the account key list
type MessageHeader struct {
	NumRequiredSignatures       uint8
	NumReadonlySignedAccounts   uint8
	NumReadonlyUnsignedAccounts uint8
}

// Instruction references its program and accounts by index into the
// message's account key list
type Instruction struct {
	ProgramIDIndex uint8
	AccountIndexes []uint8
	Data           []byte
}

// Message is a legacy transaction message: the payload that gets signed
type Message struct {
	Header          MessageHeader
	AccountKeys     []keys.PublicKey
	RecentBlockhash Hash
	Instructions    []Instruction
}

// Encode serializes the message to its wire format
func (m *Message) Encode() ([]byte, error) {
	return MessageCodec().Encode(*m)
}

// DecodeMessage deserializes a message from its wire format
func DecodeMessage(data []byte) (*Message, error) {
	message, err := MessageCodec().Decode(data)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Transaction is a (possibly partially) signed message. Its lifetime is
// bound to the message's recent blockhash: once the network block height
// passes LastValidBlockHeight, the transaction can no longer land
type Transaction struct {
	Signatures []keys.Signature
	Message    Message
	// LastValidBlockHeight is the ceiling of the blockhash lifetime. It
	// travels with the transaction for confirmation but is not part of the
	// wire encoding
	LastValidBlockHeight uint64
}

// Encode serializes the transaction to its wire format
func (t *Transaction) Encode() ([]byte, error) {
	return TransactionCodec().Encode(*t)
}

// DecodeTransaction deserializes a transaction from its wire format. The
// lifetime ceiling is not part of the wire format and is left zero
func DecodeTransaction(data []byte) (*Transaction, error) {
	transaction, err := TransactionCodec().Decode(data)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Signature returns the transaction's identifying signature: the one
// produced by the fee payer, which is always first
func (t *Transaction) Signature() (keys.Signature, error) {
	if len(t.Signatures) == 0 {
		return keys.Signature{}, errors.New("transaction has no signatures")
	}
	return t.Signatures[0], nil
}

// Sign signs the message with each given keypair and stores the signatures
// at the positions matching each signer's index in the account key list
func (t *Transaction) Sign(signers ...*keys.Keypair) error {
	numSigners := int(t.Message.Header.NumRequiredSignatures)
	if len(t.Message.AccountKeys) < numSigners {
		return fmt.Errorf(
			"message declares %d signers but carries %d account keys",
			numSigners,
			len(t.Message.AccountKeys),
		)
	}
	if len(t.Signatures) != numSigners {
		t.Signatures = make([]keys.Signature, numSigners)
	}
	message, err := t.Message.Encode()
	if err != nil {
		return err
	}
	for _, signer := range signers {
		pk := signer.PublicKey()
		idx := -1
		for i := range numSigners {
			if t.Message.AccountKeys[i] == pk {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%s is not a required signer of this message", pk)
		}
		t.Signatures[idx] = signer.Sign(message)
	}
	return nil
}
