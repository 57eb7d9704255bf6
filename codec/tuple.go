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

// Tuple2 is a heterogeneous pair encoded as the concatenation of its
// members' encodings
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple2Encoder returns an encoder for a pair of values. The result is
// fixed-size only when both member encoders are fixed-size
func Tuple2Encoder[A, B any](a *Encoder[A], b *Encoder[B]) *Encoder[Tuple2[A, B]] {
	write := func(value Tuple2[A, B], data []byte, offset int) (int, error) {
		offset, err := a.Write(value.First, data, offset)
		if err != nil {
			return 0, err
		}
		return b.Write(value.Second, data, offset)
	}
	if a.IsFixedSize() && b.IsFixedSize() {
		return NewEncoder("tuple", a.FixedSize()+b.FixedSize(), write)
	}
	return NewVariableEncoder(
		"tuple",
		func(value Tuple2[A, B]) int {
			return a.EncodedSize(value.First) + b.EncodedSize(value.Second)
		},
		write,
	)
}

// Tuple2Decoder returns a decoder for a pair of values
func Tuple2Decoder[A, B any](a *Decoder[A], b *Decoder[B]) *Decoder[Tuple2[A, B]] {
	read := func(data []byte, offset int) (Tuple2[A, B], int, error) {
		var value Tuple2[A, B]
		first, offset, err := a.Read(data, offset)
		if err != nil {
			return value, 0, err
		}
		second, offset, err := b.Read(data, offset)
		if err != nil {
			return value, 0, err
		}
		value.First = first
		value.Second = second
		return value, offset, nil
	}
	if a.IsFixedSize() && b.IsFixedSize() {
		return NewDecoder("tuple", a.FixedSize()+b.FixedSize(), read)
	}
	return NewVariableDecoder("tuple", read)
}

// Tuple2Codec returns a codec for a pair of values
func Tuple2Codec[A, B any](a *Codec[A], b *Codec[B]) *Codec[Tuple2[A, B]] {
	return mustCombine(
		Tuple2Encoder(a.Encoder(), b.Encoder()),
		Tuple2Decoder(a.Decoder(), b.Decoder()),
	)
}

// Tuple3 is a heterogeneous triple encoded as the concatenation of its
// members' encodings
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple3Encoder returns an encoder for a triple of values
func Tuple3Encoder[A, B, C any](
	a *Encoder[A],
	b *Encoder[B],
	c *Encoder[C],
) *Encoder[Tuple3[A, B, C]] {
	write := func(value Tuple3[A, B, C], data []byte, offset int) (int, error) {
		offset, err := a.Write(value.First, data, offset)
		if err != nil {
			return 0, err
		}
		offset, err = b.Write(value.Second, data, offset)
		if err != nil {
			return 0, err
		}
		return c.Write(value.Third, data, offset)
	}
	if a.IsFixedSize() && b.IsFixedSize() && c.IsFixedSize() {
		return NewEncoder(
			"tuple",
			a.FixedSize()+b.FixedSize()+c.FixedSize(),
			write,
		)
	}
	return NewVariableEncoder(
		"tuple",
		func(value Tuple3[A, B, C]) int {
			return a.EncodedSize(value.First) +
				b.EncodedSize(value.Second) +
				c.EncodedSize(value.Third)
		},
		write,
	)
}

// Tuple3Decoder returns a decoder for a triple of values
func Tuple3Decoder[A, B, C any](
	a *Decoder[A],
	b *Decoder[B],
	c *Decoder[C],
) *Decoder[Tuple3[A, B, C]] {
	read := func(data []byte, offset int) (Tuple3[A, B, C], int, error) {
		var value Tuple3[A, B, C]
		first, offset, err := a.Read(data, offset)
		if err != nil {
			return value, 0, err
		}
		second, offset, err := b.Read(data, offset)
		if err != nil {
			return value, 0, err
		}
		third, offset, err := c.Read(data, offset)
		if err != nil {
			return value, 0, err
		}
		value.First = first
		value.Second = second
		value.Third = third
		return value, offset, nil
	}
	if a.IsFixedSize() && b.IsFixedSize() && c.IsFixedSize() {
		return NewDecoder(
			"tuple",
			a.FixedSize()+b.FixedSize()+c.FixedSize(),
			read,
		)
	}
	return NewVariableDecoder("tuple", read)
}

// Tuple3Codec returns a codec for a triple of values
func Tuple3Codec[A, B, C any](
	a *Codec[A],
	b *Codec[B],
	c *Codec[C],
) *Codec[Tuple3[A, B, C]] {
	return mustCombine(
		Tuple3Encoder(a.Encoder(), b.Encoder(), c.Encoder()),
		Tuple3Decoder(a.Decoder(), b.Decoder(), c.Decoder()),
	)
}
