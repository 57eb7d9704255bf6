// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package codec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/blinklabs-io/gosolana/internal/test"
)

func TestTuple2(t *testing.T) {
	c := Tuple2Codec(U8Codec(), U16Codec(binary.LittleEndian))
	if !c.IsFixedSize() || c.FixedSize() != 3 {
		t.Fatalf("expected fixed size 3, got %d", c.FixedSize())
	}
	value := Tuple2[uint8, uint16]{First: 0x07, Second: 0x1234}
	data, err := c.Encode(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(data, test.DecodeHexString("073412")) {
		t.Fatalf("expected 073412, got %x", data)
	}
	decoded, err := c.Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != value {
		t.Fatalf("expected %v, got %v", value, decoded)
	}
}

func TestTuple3VariableMember(t *testing.T) {
	c := Tuple3Codec(U8Codec(), ShortU16Codec(), U8Codec())
	if c.IsFixedSize() {
		t.Fatal("expected variable size")
	}
	value := Tuple3[uint8, uint16, uint8]{First: 1, Second: 300, Third: 2}
	if size := c.EncodedSize(value); size != 4 {
		t.Fatalf("expected encoded size 4, got %d", size)
	}
	data, err := c.Encode(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(data, test.DecodeHexString("01ac0202")) {
		t.Fatalf("expected 01ac0202, got %x", data)
	}
	decoded, err := c.Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != value {
		t.Fatalf("expected %v, got %v", value, decoded)
	}
}
