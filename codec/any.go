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

import "fmt"

// AnyEncoder erases the value type of an encoder so encoders of different
// types can be sequenced together. Encoding a value of any other type is an
// error
func AnyEncoder[T any](enc *Encoder[T]) *Encoder[any] {
	write := func(value any, data []byte, offset int) (int, error) {
		typed, ok := value.(T)
		if !ok {
			return 0, fmt.Errorf(
				"codec %s: cannot encode value of type %T",
				enc.Name(),
				value,
			)
		}
		return enc.Write(typed, data, offset)
	}
	if enc.IsFixedSize() {
		return NewEncoder(enc.Name(), enc.FixedSize(), write)
	}
	out := NewVariableEncoder(
		enc.Name(),
		func(value any) int {
			typed, ok := value.(T)
			if !ok {
				// A zero size still reaches Write, which reports the real
				// error
				return 0
			}
			return enc.EncodedSize(typed)
		},
		write,
	)
	return out.WithMaxSize(enc.MaxSize())
}

// AnyDecoder erases the value type of a decoder
func AnyDecoder[T any](dec *Decoder[T]) *Decoder[any] {
	return TransformDecoder(dec, func(value T) any { return value })
}

// AnyCodec erases the value type of a codec
func AnyCodec[T any](c *Codec[T]) *Codec[any] {
	return mustCombine(AnyEncoder(c.Encoder()), AnyDecoder(c.Decoder()))
}

// TupleEncoder returns an encoder for a heterogeneous sequence of values,
// one per member encoder, encoded as the concatenation of the members'
// encodings. Encoding a slice of any other length is an error. The result
// is fixed-size only when every member encoder is fixed-size
func TupleEncoder(members ...*Encoder[any]) *Encoder[[]any] {
	write := func(value []any, data []byte, offset int) (int, error) {
		if len(value) != len(members) {
			return 0, InvalidArrayLengthError{
				Codec:    "tuple",
				Expected: len(members),
				Actual:   len(value),
			}
		}
		var err error
		for i, member := range members {
			offset, err = member.Write(value[i], data, offset)
			if err != nil {
				return 0, err
			}
		}
		return offset, nil
	}
	fixedSize := 0
	allFixed := true
	for _, member := range members {
		if !member.IsFixedSize() {
			allFixed = false
			break
		}
		fixedSize += member.FixedSize()
	}
	if allFixed {
		return NewEncoder("tuple", fixedSize, write)
	}
	return NewVariableEncoder(
		"tuple",
		func(value []any) int {
			size := 0
			for i, member := range members {
				if i >= len(value) {
					break
				}
				size += member.EncodedSize(value[i])
			}
			return size
		},
		write,
	)
}

// TupleDecoder returns a decoder for a heterogeneous sequence of values,
// one per member decoder
func TupleDecoder(members ...*Decoder[any]) *Decoder[[]any] {
	read := func(data []byte, offset int) ([]any, int, error) {
		value := make([]any, 0, len(members))
		for _, member := range members {
			entry, next, err := member.Read(data, offset)
			if err != nil {
				return nil, 0, err
			}
			value = append(value, entry)
			offset = next
		}
		return value, offset, nil
	}
	fixedSize := 0
	allFixed := true
	for _, member := range members {
		if !member.IsFixedSize() {
			allFixed = false
			break
		}
		fixedSize += member.FixedSize()
	}
	if allFixed {
		return NewDecoder("tuple", fixedSize, read)
	}
	return NewVariableDecoder("tuple", read)
}

// TupleCodec returns a codec for a heterogeneous sequence of values
func TupleCodec(members ...*Codec[any]) *Codec[[]any] {
	encoders := make([]*Encoder[any], 0, len(members))
	decoders := make([]*Decoder[any], 0, len(members))
	for _, member := range members {
		encoders = append(encoders, member.Encoder())
		decoders = append(decoders, member.Decoder())
	}
	return mustCombine(TupleEncoder(encoders...), TupleDecoder(decoders...))
}
