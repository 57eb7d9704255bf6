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

// WriteFunc serializes a value into data starting at offset and returns the
// offset immediately after the last byte written
type WriteFunc[T any] func(value T, data []byte, offset int) (int, error)

// ReadFunc deserializes a value from data starting at offset and returns the
// value along with the offset immediately after the last byte read
type ReadFunc[T any] func(data []byte, offset int) (T, int, error)

// Encoder serializes values of type T to bytes. An encoder is either
// fixed-size (every value encodes to the same number of bytes) or
// variable-size (the size is computed per value)
type Encoder[T any] struct {
	name          string
	fixedSize     int
	maxSize       int
	sizeFromValue func(T) int
	write         WriteFunc[T]
}

// NewEncoder returns a fixed-size encoder. The write function must write
// exactly size bytes for every value
func NewEncoder[T any](name string, size int, write WriteFunc[T]) *Encoder[T] {
	return &Encoder[T]{
		name:      name,
		fixedSize: size,
		maxSize:   size,
		write:     write,
	}
}

// NewVariableEncoder returns a variable-size encoder. The size function must
// return the exact number of bytes that write will produce for a given value
func NewVariableEncoder[T any](
	name string,
	sizeFromValue func(T) int,
	write WriteFunc[T],
) *Encoder[T] {
	return &Encoder[T]{
		name:          name,
		fixedSize:     -1,
		maxSize:       -1,
		sizeFromValue: sizeFromValue,
		write:         write,
	}
}

// WithMaxSize sets an upper bound on the encoded size of a variable-size
// encoder
func (e *Encoder[T]) WithMaxSize(maxSize int) *Encoder[T] {
	e.maxSize = maxSize
	return e
}

func (e *Encoder[T]) Name() string { return e.name }

// IsFixedSize returns true when every value encodes to the same number of
// bytes
func (e *Encoder[T]) IsFixedSize() bool { return e.fixedSize >= 0 }

// FixedSize returns the encoded size of a fixed-size encoder, or -1 for a
// variable-size encoder
func (e *Encoder[T]) FixedSize() int { return e.fixedSize }

// MaxSize returns the upper bound on the encoded size, or -1 when no bound
// is known
func (e *Encoder[T]) MaxSize() int { return e.maxSize }

// EncodedSize returns the number of bytes that Encode will produce for the
// given value. The per-value size function is invoked at most once
func (e *Encoder[T]) EncodedSize(value T) int {
	if e.fixedSize >= 0 {
		return e.fixedSize
	}
	return e.sizeFromValue(value)
}

// Encode serializes the value into a newly allocated byte slice
func (e *Encoder[T]) Encode(value T) ([]byte, error) {
	size := e.EncodedSize(value)
	data := make([]byte, size)
	offset, err := e.write(value, data, 0)
	if err != nil {
		return nil, err
	}
	if offset != size {
		return nil, fmt.Errorf(
			"codec [%s]: encoder wrote %d bytes, expected %d",
			e.name,
			offset,
			size,
		)
	}
	return data, nil
}

// Write serializes the value into data starting at offset and returns the
// offset immediately after the last byte written
func (e *Encoder[T]) Write(value T, data []byte, offset int) (int, error) {
	return e.write(value, data, offset)
}

// Decoder deserializes values of type T from bytes, carrying the same size
// metadata contract as Encoder
type Decoder[T any] struct {
	name      string
	fixedSize int
	maxSize   int
	read      ReadFunc[T]
}

// NewDecoder returns a fixed-size decoder. The read function must consume
// exactly size bytes
func NewDecoder[T any](name string, size int, read ReadFunc[T]) *Decoder[T] {
	return &Decoder[T]{
		name:      name,
		fixedSize: size,
		maxSize:   size,
		read:      read,
	}
}

// NewVariableDecoder returns a variable-size decoder
func NewVariableDecoder[T any](name string, read ReadFunc[T]) *Decoder[T] {
	return &Decoder[T]{
		name:      name,
		fixedSize: -1,
		maxSize:   -1,
		read:      read,
	}
}

// WithMaxSize sets an upper bound on the encoded size of a variable-size
// decoder
func (d *Decoder[T]) WithMaxSize(maxSize int) *Decoder[T] {
	d.maxSize = maxSize
	return d
}

func (d *Decoder[T]) Name() string { return d.name }

// IsFixedSize returns true when every value decodes from the same number of
// bytes
func (d *Decoder[T]) IsFixedSize() bool { return d.fixedSize >= 0 }

// FixedSize returns the encoded size of a fixed-size decoder, or -1 for a
// variable-size decoder
func (d *Decoder[T]) FixedSize() int { return d.fixedSize }

// MaxSize returns the upper bound on the encoded size, or -1 when no bound
// is known
func (d *Decoder[T]) MaxSize() int { return d.maxSize }

// Decode deserializes a value from the start of data
func (d *Decoder[T]) Decode(data []byte) (T, error) {
	value, _, err := d.read(data, 0)
	return value, err
}

// DecodeAt deserializes a value from data starting at offset
func (d *Decoder[T]) DecodeAt(data []byte, offset int) (T, error) {
	value, _, err := d.read(data, offset)
	return value, err
}

// Read deserializes a value from data starting at offset and returns the
// value along with the offset immediately after the last byte read
func (d *Decoder[T]) Read(data []byte, offset int) (T, int, error) {
	return d.read(data, offset)
}

// Codec pairs an encoder and decoder for the same type. The size metadata of
// the two halves is checked to match when the codec is constructed
type Codec[T any] struct {
	enc *Encoder[T]
	dec *Decoder[T]
}

// Combine merges an encoder and decoder into a codec. It returns an error
// when one half is fixed-size and the other is not, or when both are
// fixed-size but declare different sizes
func Combine[T any](enc *Encoder[T], dec *Decoder[T]) (*Codec[T], error) {
	if enc.IsFixedSize() != dec.IsFixedSize() {
		return nil, fmt.Errorf(
			"codec [%s]: %w: encoder fixed-size is %v, decoder fixed-size is %v",
			enc.name,
			ErrSizeMismatch,
			enc.IsFixedSize(),
			dec.IsFixedSize(),
		)
	}
	if enc.IsFixedSize() && enc.fixedSize != dec.fixedSize {
		return nil, fmt.Errorf(
			"codec [%s]: %w: encoder declares %d bytes, decoder declares %d bytes",
			enc.name,
			ErrSizeMismatch,
			enc.fixedSize,
			dec.fixedSize,
		)
	}
	return &Codec[T]{enc: enc, dec: dec}, nil
}

// mustCombine is used by codec constructors whose encoder and decoder halves
// are built together and cannot disagree on size
func mustCombine[T any](enc *Encoder[T], dec *Decoder[T]) *Codec[T] {
	c, err := Combine(enc, dec)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Codec[T]) Name() string { return c.enc.name }

// Encoder returns the encoder half of the codec
func (c *Codec[T]) Encoder() *Encoder[T] { return c.enc }

// Decoder returns the decoder half of the codec
func (c *Codec[T]) Decoder() *Decoder[T] { return c.dec }

func (c *Codec[T]) IsFixedSize() bool { return c.enc.IsFixedSize() }

func (c *Codec[T]) FixedSize() int { return c.enc.FixedSize() }

func (c *Codec[T]) MaxSize() int { return c.enc.MaxSize() }

func (c *Codec[T]) EncodedSize(value T) int { return c.enc.EncodedSize(value) }

func (c *Codec[T]) Encode(value T) ([]byte, error) { return c.enc.Encode(value) }

func (c *Codec[T]) Write(value T, data []byte, offset int) (int, error) {
	return c.enc.Write(value, data, offset)
}

func (c *Codec[T]) Decode(data []byte) (T, error) { return c.dec.Decode(data) }

func (c *Codec[T]) DecodeAt(data []byte, offset int) (T, error) {
	return c.dec.DecodeAt(data, offset)
}

func (c *Codec[T]) Read(data []byte, offset int) (T, int, error) {
	return c.dec.Read(data, offset)
}
