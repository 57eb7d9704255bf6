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

// TransformEncoder adapts an encoder for type T into an encoder for type U
// by mapping each value through fn before encoding. Size metadata is carried
// over from the wrapped encoder
func TransformEncoder[T, U any](enc *Encoder[T], fn func(U) T) *Encoder[U] {
	write := func(value U, data []byte, offset int) (int, error) {
		return enc.Write(fn(value), data, offset)
	}
	if enc.IsFixedSize() {
		return NewEncoder(enc.Name(), enc.FixedSize(), write)
	}
	out := NewVariableEncoder(
		enc.Name(),
		func(value U) int { return enc.EncodedSize(fn(value)) },
		write,
	)
	return out.WithMaxSize(enc.MaxSize())
}

// TransformDecoder adapts a decoder for type T into a decoder for type U by
// mapping each decoded value through fn. Size metadata is carried over from
// the wrapped decoder
func TransformDecoder[T, U any](dec *Decoder[T], fn func(T) U) *Decoder[U] {
	read := func(data []byte, offset int) (U, int, error) {
		value, next, err := dec.Read(data, offset)
		if err != nil {
			var zero U
			return zero, 0, err
		}
		return fn(value), next, nil
	}
	if dec.IsFixedSize() {
		return NewDecoder(dec.Name(), dec.FixedSize(), read)
	}
	return NewVariableDecoder(dec.Name(), read).WithMaxSize(dec.MaxSize())
}

// TransformCodec adapts a codec for type T into a codec for type U using the
// given mapping functions
func TransformCodec[T, U any](
	c *Codec[T],
	toWire func(U) T,
	fromWire func(T) U,
) *Codec[U] {
	return mustCombine(
		TransformEncoder(c.Encoder(), toWire),
		TransformDecoder(c.Decoder(), fromWire),
	)
}
