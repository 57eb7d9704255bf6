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

package tx

import (
	"github.com/blinklabs-io/gosolana/codec"
	"github.com/blinklabs-io/gosolana/keys"
)

// PublicKeyCodec encodes a public key as its raw 32 bytes
func PublicKeyCodec() *codec.Codec[keys.PublicKey] {
	return codec.TransformCodec(
		codec.FixCodec(codec.BytesCodec(), keys.PublicKeyLength),
		func(pk keys.PublicKey) []byte { return pk.Bytes() },
		func(data []byte) keys.PublicKey {
			var pk keys.PublicKey
			copy(pk[:], data)
			return pk
		},
	)
}

// SignatureCodec encodes a signature as its raw 64 bytes
func SignatureCodec() *codec.Codec[keys.Signature] {
	return codec.TransformCodec(
		codec.FixCodec(codec.BytesCodec(), keys.SignatureLength),
		func(sig keys.Signature) []byte { return sig.Bytes() },
		func(data []byte) keys.Signature {
			var sig keys.Signature
			copy(sig[:], data)
			return sig
		},
	)
}

// HashCodec encodes a blockhash as its raw 32 bytes
func HashCodec() *codec.Codec[Hash] {
	return codec.TransformCodec(
		codec.FixCodec(codec.BytesCodec(), HashLength),
		func(h Hash) []byte { return h.Bytes() },
		func(data []byte) Hash {
			var h Hash
			copy(h[:], data)
			return h
		},
	)
}

// MessageHeaderCodec encodes the three header counts as consecutive bytes
func MessageHeaderCodec() *codec.Codec[MessageHeader] {
	return codec.TransformCodec(
		codec.Tuple3Codec(codec.U8Codec(), codec.U8Codec(), codec.U8Codec()),
		func(h MessageHeader) codec.Tuple3[uint8, uint8, uint8] {
			return codec.Tuple3[uint8, uint8, uint8]{
				First:  h.NumRequiredSignatures,
				Second: h.NumReadonlySignedAccounts,
				Third:  h.NumReadonlyUnsignedAccounts,
			}
		},
		func(t codec.Tuple3[uint8, uint8, uint8]) MessageHeader {
			return MessageHeader{
				NumRequiredSignatures:       t.First,
				NumReadonlySignedAccounts:   t.Second,
				NumReadonlyUnsignedAccounts: t.Third,
			}
		},
	)
}

// InstructionCodec encodes an instruction as a program index byte, a
// short-u16-counted list of account indexes, and short-u16-size-prefixed
// instruction data
func InstructionCodec() *codec.Codec[Instruction] {
	return codec.TransformCodec(
		codec.Tuple3Codec(
			codec.U8Codec(),
			codec.ArrayCodec(
				codec.U8Codec(),
				codec.WithCountCodec(codec.ShortU16Count()),
			),
			codec.SizePrefixCodec(codec.BytesCodec(), codec.ShortU16Count()),
		),
		func(in Instruction) codec.Tuple3[uint8, []uint8, []byte] {
			return codec.Tuple3[uint8, []uint8, []byte]{
				First:  in.ProgramIDIndex,
				Second: in.AccountIndexes,
				Third:  in.Data,
			}
		},
		func(t codec.Tuple3[uint8, []uint8, []byte]) Instruction {
			return Instruction{
				ProgramIDIndex: t.First,
				AccountIndexes: t.Second,
				Data:           t.Third,
			}
		},
	)
}

// MessageCodec encodes a legacy message as a header, a short-u16-counted
// account key list, a recent blockhash, and a short-u16-counted instruction
// list
func MessageCodec() *codec.Codec[Message] {
	type body = codec.Tuple3[[]keys.PublicKey, Hash, []Instruction]
	return codec.TransformCodec(
		codec.Tuple2Codec(
			MessageHeaderCodec(),
			codec.Tuple3Codec(
				codec.ArrayCodec(
					PublicKeyCodec(),
					codec.WithCountCodec(codec.ShortU16Count()),
				),
				HashCodec(),
				codec.ArrayCodec(
					InstructionCodec(),
					codec.WithCountCodec(codec.ShortU16Count()),
				),
			),
		),
		func(m Message) codec.Tuple2[MessageHeader, body] {
			return codec.Tuple2[MessageHeader, body]{
				First: m.Header,
				Second: body{
					First:  m.AccountKeys,
					Second: m.RecentBlockhash,
					Third:  m.Instructions,
				},
			}
		},
		func(t codec.Tuple2[MessageHeader, body]) Message {
			return Message{
				Header:          t.First,
				AccountKeys:     t.Second.First,
				RecentBlockhash: t.Second.Second,
				Instructions:    t.Second.Third,
			}
		},
	)
}

// TransactionCodec encodes a transaction as a short-u16-counted signature
// list followed by the message
func TransactionCodec() *codec.Codec[Transaction] {
	return codec.TransformCodec(
		codec.Tuple2Codec(
			codec.ArrayCodec(
				SignatureCodec(),
				codec.WithCountCodec(codec.ShortU16Count()),
			),
			MessageCodec(),
		),
		func(t Transaction) codec.Tuple2[[]keys.Signature, Message] {
			return codec.Tuple2[[]keys.Signature, Message]{
				First:  t.Signatures,
				Second: t.Message,
			}
		},
		func(t codec.Tuple2[[]keys.Signature, Message]) Transaction {
			return Transaction{
				Signatures: t.First,
				Message:    t.Second,
			}
		},
	)
}
