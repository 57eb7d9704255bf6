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
	"encoding/binary"
	"errors"
	"testing"
)

func TestCombineFixedSizeMismatch(t *testing.T) {
	enc := NewEncoder(
		"test",
		4,
		func(_ uint32, data []byte, offset int) (int, error) {
			return offset + 4, nil
		},
	)
	dec := NewDecoder(
		"test",
		8,
		func(_ []byte, offset int) (uint32, int, error) {
			return 0, offset + 8, nil
		},
	)
	if _, err := Combine(enc, dec); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestCombineFixedVsVariable(t *testing.T) {
	enc := U32Encoder(binary.LittleEndian)
	dec := NewVariableDecoder(
		"test",
		func(_ []byte, offset int) (uint32, int, error) {
			return 0, offset + 4, nil
		},
	)
	if _, err := Combine(enc, dec); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestCombineMatching(t *testing.T) {
	c, err := Combine(U32Encoder(binary.LittleEndian), U32Decoder(binary.LittleEndian))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsFixedSize() || c.FixedSize() != 4 {
		t.Fatalf("expected fixed size 4, got %d", c.FixedSize())
	}
}

// The per-value size function must be invoked at most once per encode pass
func TestEncodedSizeComputedOnce(t *testing.T) {
	sizeCalls := 0
	enc := NewVariableEncoder(
		"test",
		func(value []byte) int {
			sizeCalls++
			return len(value)
		},
		func(value []byte, data []byte, offset int) (int, error) {
			copy(data[offset:], value)
			return offset + len(value), nil
		},
	)
	if _, err := enc.Encode([]byte{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sizeCalls != 1 {
		t.Fatalf("expected size function to be called once, got %d calls", sizeCalls)
	}
}

func TestNotEnoughBytesDetails(t *testing.T) {
	dec := U32Decoder(binary.LittleEndian)
	_, _, err := dec.Read([]byte{0x01, 0x02, 0x03}, 1)
	if !errors.Is(err, ErrNotEnoughBytes) {
		t.Fatalf("expected ErrNotEnoughBytes, got %v", err)
	}
	var notEnough NotEnoughBytesError
	if !errors.As(err, &notEnough) {
		t.Fatalf("expected NotEnoughBytesError, got %T", err)
	}
	if notEnough.Codec != "u32" {
		t.Errorf("expected codec name u32, got %s", notEnough.Codec)
	}
	if notEnough.Expected != 4 {
		t.Errorf("expected 4 expected bytes, got %d", notEnough.Expected)
	}
	if notEnough.Actual != 2 {
		t.Errorf("expected 2 available bytes, got %d", notEnough.Actual)
	}
	if notEnough.Offset != 1 {
		t.Errorf("expected offset 1, got %d", notEnough.Offset)
	}
}

// A fixed-size encoder must write exactly its declared size for every value
func TestEncodeSizeInvariantViolation(t *testing.T) {
	enc := NewEncoder(
		"bad",
		4,
		func(_ uint32, _ []byte, offset int) (int, error) {
			// Writes fewer bytes than declared
			return offset + 2, nil
		},
	)
	if _, err := enc.Encode(7); err == nil {
		t.Fatal("expected error for size invariant violation")
	}
}
