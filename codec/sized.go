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

// FixEncoder bounds a variable-size encoder to exactly size bytes. Encoded
// content longer than size is truncated and shorter content is zero-padded
func FixEncoder[T any](enc *Encoder[T], size int) *Encoder[T] {
	return NewEncoder(
		enc.Name(),
		size,
		func(value T, data []byte, offset int) (int, error) {
			if err := checkAvailable(enc.Name(), data, offset, size); err != nil {
				return 0, err
			}
			encoded, err := enc.Encode(value)
			if err != nil {
				return 0, err
			}
			if len(encoded) > size {
				encoded = encoded[:size]
			}
			copy(data[offset:offset+size], encoded)
			return offset + size, nil
		},
	)
}

// FixDecoder bounds a variable-size decoder to exactly size bytes. The
// wrapped decoder sees only that window of the input
func FixDecoder[T any](dec *Decoder[T], size int) *Decoder[T] {
	return NewDecoder(
		dec.Name(),
		size,
		func(data []byte, offset int) (T, int, error) {
			var zero T
			if err := checkAvailable(dec.Name(), data, offset, size); err != nil {
				return zero, 0, err
			}
			value, err := dec.Decode(data[offset : offset+size])
			if err != nil {
				return zero, 0, err
			}
			return value, offset + size, nil
		},
	)
}

// FixCodec bounds a variable-size codec to exactly size bytes
func FixCodec[T any](c *Codec[T], size int) *Codec[T] {
	return mustCombine(FixEncoder(c.Encoder(), size), FixDecoder(c.Decoder(), size))
}

// SizePrefixEncoder prepends the encoded byte count of each value, written
// with the given count encoder
func SizePrefixEncoder[T any](
	enc *Encoder[T],
	count *Encoder[uint64],
) *Encoder[T] {
	return NewVariableEncoder(
		enc.Name(),
		func(value T) int {
			size := enc.EncodedSize(value)
			return count.EncodedSize(uint64(size)) + size
		},
		func(value T, data []byte, offset int) (int, error) {
			size := enc.EncodedSize(value)
			offset, err := count.Write(uint64(size), data, offset)
			if err != nil {
				return 0, err
			}
			return enc.Write(value, data, offset)
		},
	)
}

// SizePrefixDecoder reads a byte count with the given count decoder, then
// decodes the value from exactly that many following bytes
func SizePrefixDecoder[T any](
	dec *Decoder[T],
	count *Decoder[uint64],
) *Decoder[T] {
	return NewVariableDecoder(
		dec.Name(),
		func(data []byte, offset int) (T, int, error) {
			var zero T
			size, offset, err := count.Read(data, offset)
			if err != nil {
				return zero, 0, err
			}
			if err := checkAvailable(dec.Name(), data, offset, int(size)); err != nil {
				return zero, 0, err
			}
			value, err := dec.Decode(data[offset : offset+int(size)])
			if err != nil {
				return zero, 0, err
			}
			return value, offset + int(size), nil
		},
	)
}

// SizePrefixCodec wraps a codec with a byte-count prefix
func SizePrefixCodec[T any](c *Codec[T], count *Codec[uint64]) *Codec[T] {
	return mustCombine(
		SizePrefixEncoder(c.Encoder(), count.Encoder()),
		SizePrefixDecoder(c.Decoder(), count.Decoder()),
	)
}
