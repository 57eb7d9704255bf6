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
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/blinklabs-io/gosolana/internal/test"
	"github.com/blinklabs-io/gosolana/keys"
)

func repeatByte(b string, count int) string {
	return strings.Repeat(b, count)
}

func testKey(fill byte) keys.PublicKey {
	var pk keys.PublicKey
	for i := range pk {
		pk[i] = fill
	}
	return pk
}

func testHash(fill byte) Hash {
	var h Hash
	for i := range h {
		h[i] = fill
	}
	return h
}

var testMessage = Message{
	Header: MessageHeader{
		NumRequiredSignatures:       1,
		NumReadonlySignedAccounts:   0,
		NumReadonlyUnsignedAccounts: 1,
	},
	AccountKeys: []keys.PublicKey{
		testKey(0x01),
		testKey(0x02),
		testKey(0x03),
	},
	RecentBlockhash: testHash(0x04),
	Instructions: []Instruction{
		{
			ProgramIDIndex: 2,
			AccountIndexes: []uint8{0, 1},
			Data:           []byte{0xaa, 0xbb, 0xcc},
		},
	},
}

var testMessageHex = "010001" + // header
	"03" + // account key count
	repeatByte("01", 32) +
	repeatByte("02", 32) +
	repeatByte("03", 32) +
	repeatByte("04", 32) + // recent blockhash
	"01" + // instruction count
	"02" + // program ID index
	"020001" + // account index count + indexes
	"03aabbcc" // data size + data

func TestInstructionCodec(t *testing.T) {
	testDefs := []struct {
		instruction Instruction
		expectedHex string
	}{
		{
			instruction: Instruction{
				ProgramIDIndex: 2,
				AccountIndexes: []uint8{0, 1},
				Data:           []byte{0xaa, 0xbb, 0xcc},
			},
			expectedHex: "0202000103aabbcc",
		},
		{
			instruction: Instruction{
				ProgramIDIndex: 0,
				AccountIndexes: []uint8{},
				Data:           []byte{},
			},
			expectedHex: "000000",
		},
	}
	for _, testDef := range testDefs {
		encoded, err := InstructionCodec().Encode(testDef.instruction)
		if err != nil {
			t.Fatalf("unexpected error encoding instruction: %s", err)
		}
		expected := test.DecodeHexString(testDef.expectedHex)
		if !bytes.Equal(encoded, expected) {
			t.Fatalf(
				"did not get expected encoding\n  got:    %x\n  wanted: %x",
				encoded,
				expected,
			)
		}
		decoded, err := InstructionCodec().Decode(encoded)
		if err != nil {
			t.Fatalf("unexpected error decoding instruction: %s", err)
		}
		if !reflect.DeepEqual(decoded, testDef.instruction) {
			t.Fatalf(
				"did not get expected instruction\n  got:    %#v\n  wanted: %#v",
				decoded,
				testDef.instruction,
			)
		}
	}
}

func TestMessageEncode(t *testing.T) {
	encoded, err := testMessage.Encode()
	if err != nil {
		t.Fatalf("unexpected error encoding message: %s", err)
	}
	expected := test.DecodeHexString(testMessageHex)
	if !bytes.Equal(encoded, expected) {
		t.Fatalf(
			"did not get expected encoding\n  got:    %x\n  wanted: %x",
			encoded,
			expected,
		)
	}
}

func TestMessageDecode(t *testing.T) {
	decoded, err := DecodeMessage(test.DecodeHexString(testMessageHex))
	if err != nil {
		t.Fatalf("unexpected error decoding message: %s", err)
	}
	if !reflect.DeepEqual(*decoded, testMessage) {
		t.Fatalf(
			"did not get expected message\n  got:    %#v\n  wanted: %#v",
			*decoded,
			testMessage,
		)
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	var sig keys.Signature
	for i := range sig {
		sig[i] = 0x05
	}
	transaction := Transaction{
		Signatures: []keys.Signature{sig},
		Message:    testMessage,
	}
	encoded, err := transaction.Encode()
	if err != nil {
		t.Fatalf("unexpected error encoding transaction: %s", err)
	}
	expected := test.DecodeHexString(
		"01" + repeatByte("05", 64) + testMessageHex,
	)
	if !bytes.Equal(encoded, expected) {
		t.Fatalf(
			"did not get expected encoding\n  got:    %x\n  wanted: %x",
			encoded,
			expected,
		)
	}
	decoded, err := DecodeTransaction(encoded)
	if err != nil {
		t.Fatalf("unexpected error decoding transaction: %s", err)
	}
	if !reflect.DeepEqual(*decoded, transaction) {
		t.Fatalf(
			"did not get expected transaction\n  got:    %#v\n  wanted: %#v",
			*decoded,
			transaction,
		)
	}
}

func TestTransactionSign(t *testing.T) {
	seed := make([]byte, keys.SeedLength)
	for i := range seed {
		seed[i] = byte(i)
	}
	signer, err := keys.KeypairFromSeed(seed)
	if err != nil {
		t.Fatalf("unexpected error building keypair: %s", err)
	}
	transaction := Transaction{
		Message: Message{
			Header: MessageHeader{
				NumRequiredSignatures:       1,
				NumReadonlyUnsignedAccounts: 1,
			},
			AccountKeys: []keys.PublicKey{
				signer.PublicKey(),
				testKey(0x02),
			},
			RecentBlockhash: testHash(0x04),
			Instructions: []Instruction{
				{
					ProgramIDIndex: 1,
					AccountIndexes: []uint8{0},
					Data:           []byte{0x01},
				},
			},
		},
	}
	if err := transaction.Sign(signer); err != nil {
		t.Fatalf("unexpected error signing transaction: %s", err)
	}
	if len(transaction.Signatures) != 1 {
		t.Fatalf(
			"did not get expected signature count: got %d, wanted 1",
			len(transaction.Signatures),
		)
	}
	message, err := transaction.Message.Encode()
	if err != nil {
		t.Fatalf("unexpected error encoding message: %s", err)
	}
	sig, err := transaction.Signature()
	if err != nil {
		t.Fatalf("unexpected error fetching signature: %s", err)
	}
	if !keys.Verify(signer.PublicKey(), message, sig) {
		t.Fatalf("signature did not verify against signed message")
	}
}

func TestTransactionSignNotASigner(t *testing.T) {
	signer, err := keys.NewKeypair()
	if err != nil {
		t.Fatalf("unexpected error building keypair: %s", err)
	}
	transaction := Transaction{
		Message: Message{
			Header: MessageHeader{
				NumRequiredSignatures: 1,
			},
			AccountKeys: []keys.PublicKey{
				testKey(0x01),
			},
		},
	}
	if err := transaction.Sign(signer); err == nil {
		t.Fatalf("did not get expected error signing with non-signer keypair")
	}
}

func TestHashBase58RoundTrip(t *testing.T) {
	h := testHash(0x07)
	decoded, err := HashFromBase58(h.String())
	if err != nil {
		t.Fatalf("unexpected error parsing hash: %s", err)
	}
	if decoded != h {
		t.Fatalf(
			"did not get expected hash: got %s, wanted %s",
			decoded,
			h,
		)
	}
}
