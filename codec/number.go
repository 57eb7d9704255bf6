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

package codec

import (
	"encoding/binary"
	"fmt"
)

// U8Encoder returns an encoder for a single unsigned byte
func U8Encoder() *Encoder[uint8] {
	return NewEncoder(
		"u8",
		1,
		func(value uint8, data []byte, offset int) (int, error) {
			if err := checkAvailable("u8", data, offset, 1); err != nil {
				return 0, err
			}
			data[offset] = value
			return offset + 1, nil
		},
	)
}

// U8Decoder returns a decoder for a single unsigned byte
func U8Decoder() *Decoder[uint8] {
	return NewDecoder(
		"u8",
		1,
		func(data []byte, offset int) (uint8, int, error) {
			if err := checkAvailable("u8", data, offset, 1); err != nil {
				return 0, 0, err
			}
			return data[offset], offset + 1, nil
		},
	)
}

// U8Codec returns a codec for a single unsigned byte
func U8Codec() *Codec[uint8] {
	return mustCombine(U8Encoder(), U8Decoder())
}

// U16Encoder returns an encoder for an unsigned 16-bit integer in the given
// byte order
func U16Encoder(order binary.ByteOrder) *Encoder[uint16] {
	return NewEncoder(
		"u16",
		2,
		func(value uint16, data []byte, offset int) (int, error) {
			if err := checkAvailable("u16", data, offset, 2); err != nil {
				return 0, err
			}
			order.PutUint16(data[offset:], value)
			return offset + 2, nil
		},
	)
}

// U16Decoder returns a decoder for an unsigned 16-bit integer in the given
// byte order
func U16Decoder(order binary.ByteOrder) *Decoder[uint16] {
	return NewDecoder(
		"u16",
		2,
		func(data []byte, offset int) (uint16, int, error) {
			if err := checkAvailable("u16", data, offset, 2); err != nil {
				return 0, 0, err
			}
			return order.Uint16(data[offset:]), offset + 2, nil
		},
	)
}

// U16Codec returns a codec for an unsigned 16-bit integer in the given byte
// order
func U16Codec(order binary.ByteOrder) *Codec[uint16] {
	return mustCombine(U16Encoder(order), U16Decoder(order))
}

// U32Encoder returns an encoder for an unsigned 32-bit integer in the given
// byte order
func U32Encoder(order binary.ByteOrder) *Encoder[uint32] {
	return NewEncoder(
		"u32",
		4,
		func(value uint32, data []byte, offset int) (int, error) {
			if err := checkAvailable("u32", data, offset, 4); err != nil {
				return 0, err
			}
			order.PutUint32(data[offset:], value)
			return offset + 4, nil
		},
	)
}

// U32Decoder returns a decoder for an unsigned 32-bit integer in the given
// byte order
func U32Decoder(order binary.ByteOrder) *Decoder[uint32] {
	return NewDecoder(
		"u32",
		4,
		func(data []byte, offset int) (uint32, int, error) {
			if err := checkAvailable("u32", data, offset, 4); err != nil {
				return 0, 0, err
			}
			return order.Uint32(data[offset:]), offset + 4, nil
		},
	)
}

// U32Codec returns a codec for an unsigned 32-bit integer in the given byte
// order
func U32Codec(order binary.ByteOrder) *Codec[uint32] {
	return mustCombine(U32Encoder(order), U32Decoder(order))
}

// U64Encoder returns an encoder for an unsigned 64-bit integer in the given
// byte order
func U64Encoder(order binary.ByteOrder) *Encoder[uint64] {
	return NewEncoder(
		"u64",
		8,
		func(value uint64, data []byte, offset int) (int, error) {
			if err := checkAvailable("u64", data, offset, 8); err != nil {
				return 0, err
			}
			order.PutUint64(data[offset:], value)
			return offset + 8, nil
		},
	)
}

// U64Decoder returns a decoder for an unsigned 64-bit integer in the given
// byte order
func U64Decoder(order binary.ByteOrder) *Decoder[uint64] {
	return NewDecoder(
		"u64",
		8,
		func(data []byte, offset int) (uint64, int, error) {
			if err := checkAvailable("u64", data, offset, 8); err != nil {
				return 0, 0, err
			}
			return order.Uint64(data[offset:]), offset + 8, nil
		},
	)
}

// U64Codec returns a codec for an unsigned 64-bit integer in the given byte
// order
func U64Codec(order binary.ByteOrder) *Codec[uint64] {
	return mustCombine(U64Encoder(order), U64Decoder(order))
}

const shortU16MaxBytes = 3

func shortU16Size(value uint16) int {
	switch {
	case value < 1<<7:
		return 1
	case value < 1<<14:
		return 2
	default:
		return 3
	}
}

// ShortU16Encoder returns an encoder for the compact-u16 format used by
// transaction messages: a little-endian base-128 varint of one to three
// bytes
func ShortU16Encoder() *Encoder[uint16] {
	return NewVariableEncoder(
		"shortU16",
		shortU16Size,
		func(value uint16, data []byte, offset int) (int, error) {
			if err := checkAvailable("shortU16", data, offset, shortU16Size(value)); err != nil {
				return 0, err
			}
			remaining := value
			for {
				b := byte(remaining & 0x7f)
				remaining >>= 7
				if remaining == 0 {
					data[offset] = b
					return offset + 1, nil
				}
				data[offset] = b | 0x80
				offset++
			}
		},
	).WithMaxSize(shortU16MaxBytes)
}

// ShortU16Decoder returns a decoder for the compact-u16 format
func ShortU16Decoder() *Decoder[uint16] {
	return NewVariableDecoder(
		"shortU16",
		func(data []byte, offset int) (uint16, int, error) {
			var value uint16
			for i := range shortU16MaxBytes {
				if err := checkAvailable("shortU16", data, offset, 1); err != nil {
					return 0, 0, err
				}
				b := data[offset]
				offset++
				value |= uint16(b&0x7f) << (i * 7)
				if b&0x80 == 0 {
					return value, offset, nil
				}
				// The third byte carries the top two bits and must not
				// signal a continuation
				if i == shortU16MaxBytes-1 {
					return 0, 0, fmt.Errorf(
						"codec [shortU16]: value exceeds %d bytes",
						shortU16MaxBytes,
					)
				}
			}
			return value, offset, nil
		},
	).WithMaxSize(shortU16MaxBytes)
}

// ShortU16Codec returns a codec for the compact-u16 format
func ShortU16Codec() *Codec[uint16] {
	return mustCombine(ShortU16Encoder(), ShortU16Decoder())
}

// U32Count returns a count codec for length prefixes: a little-endian
// unsigned 32-bit item count widened to uint64. This is the default array
// length prefix
func U32Count() *Codec[uint64] {
	enc := TransformEncoder(
		U32Encoder(binary.LittleEndian),
		func(count uint64) uint32 { return uint32(count) },
	)
	dec := TransformDecoder(
		U32Decoder(binary.LittleEndian),
		func(count uint32) uint64 { return uint64(count) },
	)
	return mustCombine(enc, dec)
}

// ShortU16Count returns a count codec for length prefixes in the compact-u16
// format used by transaction messages
func ShortU16Count() *Codec[uint64] {
	enc := TransformEncoder(
		ShortU16Encoder(),
		func(count uint64) uint16 { return uint16(count) },
	)
	dec := TransformDecoder(
		ShortU16Decoder(),
		func(count uint16) uint64 { return uint64(count) },
	)
	return mustCombine(enc, dec)
}
