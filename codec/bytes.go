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

// BytesEncoder returns an encoder that writes a byte slice as-is. The
// encoded size is the length of the value
func BytesEncoder() *Encoder[[]byte] {
	return NewVariableEncoder(
		"bytes",
		func(value []byte) int { return len(value) },
		func(value []byte, data []byte, offset int) (int, error) {
			if err := checkAvailable("bytes", data, offset, len(value)); err != nil {
				return 0, err
			}
			copy(data[offset:], value)
			return offset + len(value), nil
		},
	)
}

// BytesDecoder returns a decoder that consumes all remaining bytes from the
// given offset to the end of the input. Callers that need bounded reads wrap
// it with FixDecoder or SizePrefixDecoder
func BytesDecoder() *Decoder[[]byte] {
	return NewVariableDecoder(
		"bytes",
		func(data []byte, offset int) ([]byte, int, error) {
			if err := checkAvailable("bytes", data, offset, 0); err != nil {
				return nil, 0, err
			}
			value := make([]byte, len(data)-offset)
			copy(value, data[offset:])
			return value, len(data), nil
		},
	)
}

// BytesCodec returns an identity pass-through codec for byte slices
func BytesCodec() *Codec[[]byte] {
	return mustCombine(BytesEncoder(), BytesDecoder())
}
