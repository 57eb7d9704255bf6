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

import "bytes"

// Void codecs encode and decode no caller-visible value. They are the
// building blocks for hidden prefix and suffix composition.

// UnitEncoder returns a zero-size encoder that writes nothing
func UnitEncoder() *Encoder[struct{}] {
	return NewEncoder(
		"unit",
		0,
		func(_ struct{}, _ []byte, offset int) (int, error) {
			return offset, nil
		},
	)
}

// UnitDecoder returns a zero-size decoder that reads nothing
func UnitDecoder() *Decoder[struct{}] {
	return NewDecoder(
		"unit",
		0,
		func(_ []byte, offset int) (struct{}, int, error) {
			return struct{}{}, offset, nil
		},
	)
}

// UnitCodec returns a zero-size codec
func UnitCodec() *Codec[struct{}] {
	return mustCombine(UnitEncoder(), UnitDecoder())
}

// ConstantEncoder returns an encoder that always writes the given byte
// sequence
func ConstantEncoder(constant []byte) *Encoder[struct{}] {
	return NewEncoder(
		"constant",
		len(constant),
		func(_ struct{}, data []byte, offset int) (int, error) {
			if err := checkAvailable("constant", data, offset, len(constant)); err != nil {
				return 0, err
			}
			copy(data[offset:], constant)
			return offset + len(constant), nil
		},
	)
}

// ConstantDecoder returns a decoder that consumes the given byte sequence,
// failing with an InvalidConstantError when the input bytes differ
func ConstantDecoder(constant []byte) *Decoder[struct{}] {
	return NewDecoder(
		"constant",
		len(constant),
		func(data []byte, offset int) (struct{}, int, error) {
			if err := checkAvailable("constant", data, offset, len(constant)); err != nil {
				return struct{}{}, 0, err
			}
			actual := data[offset : offset+len(constant)]
			if !bytes.Equal(actual, constant) {
				return struct{}{}, 0, InvalidConstantError{
					Expected: constant,
					Actual:   actual,
				}
			}
			return struct{}{}, offset + len(constant), nil
		},
	)
}

// ConstantCodec returns a codec for a fixed byte sequence
func ConstantCodec(constant []byte) *Codec[struct{}] {
	return mustCombine(ConstantEncoder(constant), ConstantDecoder(constant))
}
