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

// BitArrayEncoder returns an encoder that packs booleans into size bytes,
// eight booleans per byte. With backward false, the first boolean of each
// group of eight lands in the most significant bit of its byte. With
// backward true, bits fill from the least significant bit instead and the
// byte order of the output is reversed. Missing trailing booleans are
// treated as false
func BitArrayEncoder(size int, backward bool) *Encoder[[]bool] {
	return NewEncoder(
		"bitArray",
		size,
		func(value []bool, data []byte, offset int) (int, error) {
			if err := checkAvailable("bitArray", data, offset, size); err != nil {
				return 0, err
			}
			for group := range size {
				var b byte
				for bit := range 8 {
					idx := group*8 + bit
					set := idx < len(value) && value[idx]
					if backward {
						if set {
							b |= 1 << bit
						}
					} else {
						b <<= 1
						if set {
							b |= 1
						}
					}
				}
				pos := group
				if backward {
					pos = size - 1 - group
				}
				data[offset+pos] = b
			}
			return offset + size, nil
		},
	)
}

// BitArrayDecoder returns the exact inverse of BitArrayEncoder: it expands
// size bytes into size*8 booleans honoring the backward flag
func BitArrayDecoder(size int, backward bool) *Decoder[[]bool] {
	return NewDecoder(
		"bitArray",
		size,
		func(data []byte, offset int) ([]bool, int, error) {
			if err := checkAvailable("bitArray", data, offset, size); err != nil {
				return nil, 0, err
			}
			value := make([]bool, size*8)
			for group := range size {
				pos := group
				if backward {
					pos = size - 1 - group
				}
				b := data[offset+pos]
				for bit := range 8 {
					if backward {
						value[group*8+bit] = b&(1<<bit) != 0
					} else {
						value[group*8+bit] = b&(1<<(7-bit)) != 0
					}
				}
			}
			return value, offset + size, nil
		},
	)
}

// BitArrayCodec returns a codec that packs booleans into size bytes
func BitArrayCodec(size int, backward bool) *Codec[[]bool] {
	return mustCombine(
		BitArrayEncoder(size, backward),
		BitArrayDecoder(size, backward),
	)
}
