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

// Package keys provides ed25519 keypairs, base58-rendered addresses, and
// transaction signatures
package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	// PublicKeyLength is the byte length of an ed25519 public key
	PublicKeyLength = 32

	// SignatureLength is the byte length of an ed25519 signature
	SignatureLength = 64

	// SeedLength is the byte length of an ed25519 private key seed
	SeedLength = 32
)

// PublicKey is a 32-byte ed25519 public key, rendered as base58 in string
// contexts. It doubles as an account address
type PublicKey [PublicKeyLength]byte

// PublicKeyFromBytes builds a public key from a 32-byte slice
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	var pk PublicKey
	if len(data) != PublicKeyLength {
		return pk, fmt.Errorf(
			"invalid public key length: expected %d bytes, got %d",
			PublicKeyLength,
			len(data),
		)
	}
	copy(pk[:], data)
	return pk, nil
}

// PublicKeyFromBase58 parses a base58-rendered public key
func PublicKeyFromBase58(encoded string) (PublicKey, error) {
	return PublicKeyFromBytes(base58.Decode(encoded))
}

func (pk PublicKey) Bytes() []byte {
	return pk[:]
}

func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

// IsOnCurve returns true when the public key bytes decompress to a valid
// point on the ed25519 curve. Program-derived addresses are deliberately
// constructed to fail this check
func (pk PublicKey) IsOnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(pk[:])
	return err == nil
}

// Signature is a 64-byte ed25519 signature, rendered as base58 in string
// contexts. The first signature of a transaction is its network-wide
// identifier
type Signature [SignatureLength]byte

// SignatureFromBytes builds a signature from a 64-byte slice
func SignatureFromBytes(data []byte) (Signature, error) {
	var sig Signature
	if len(data) != SignatureLength {
		return sig, fmt.Errorf(
			"invalid signature length: expected %d bytes, got %d",
			SignatureLength,
			len(data),
		)
	}
	copy(sig[:], data)
	return sig, nil
}

// SignatureFromBase58 parses a base58-rendered signature
func SignatureFromBase58(encoded string) (Signature, error) {
	return SignatureFromBytes(base58.Decode(encoded))
}

func (sig Signature) Bytes() []byte {
	return sig[:]
}

func (sig Signature) String() string {
	return base58.Encode(sig[:])
}

// Keypair wraps an ed25519 private key for signing transaction messages
type Keypair struct {
	priv ed25519.PrivateKey
}

// NewKeypair generates a keypair from the system entropy source
func NewKeypair() (*Keypair, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Keypair{priv: priv}, nil
}

// KeypairFromSeed builds a keypair from a 32-byte private key seed
func KeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf(
			"invalid seed length: expected %d bytes, got %d",
			SeedLength,
			len(seed),
		)
	}
	return &Keypair{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// PublicKey returns the public half of the keypair
func (k *Keypair) PublicKey() PublicKey {
	var pk PublicKey
	copy(pk[:], k.priv.Public().(ed25519.PublicKey))
	return pk
}

// Sign signs the given message bytes
func (k *Keypair) Sign(message []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(k.priv, message))
	return sig
}

// Verify reports whether sig is a valid signature of message by pk
func Verify(pk PublicKey, message []byte, sig Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pk[:]), message, sig[:])
}
