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

// Hidden prefix and suffix codecs wrap a main codec so that a fixed
// sequence of void codecs is transparently written around the main value on
// encode and consumed (and discarded) on decode. Decoding is intentionally
// lossy: the affix bytes never surface to the caller, so these codecs are
// exempt from the round-trip law at the byte level while preserving it at
// the value level.

func affixesFixedSize[T any](encoders []*Encoder[T]) (int, bool) {
	total := 0
	for _, enc := range encoders {
		if !enc.IsFixedSize() {
			return 0, false
		}
		total += enc.FixedSize()
	}
	return total, true
}

func affixDecodersFixedSize[T any](decoders []*Decoder[T]) (int, bool) {
	total := 0
	for _, dec := range decoders {
		if !dec.IsFixedSize() {
			return 0, false
		}
		total += dec.FixedSize()
	}
	return total, true
}

// HiddenSuffixEncoder wraps an encoder so the given void encoders are
// written immediately after each value
func HiddenSuffixEncoder[T any](
	enc *Encoder[T],
	suffixes ...*Encoder[struct{}],
) *Encoder[T] {
	write := func(value T, data []byte, offset int) (int, error) {
		offset, err := enc.Write(value, data, offset)
		if err != nil {
			return 0, err
		}
		for _, suffix := range suffixes {
			offset, err = suffix.Write(struct{}{}, data, offset)
			if err != nil {
				return 0, err
			}
		}
		return offset, nil
	}
	suffixSize, suffixFixed := affixesFixedSize(suffixes)
	if enc.IsFixedSize() && suffixFixed {
		return NewEncoder("hiddenSuffix", enc.FixedSize()+suffixSize, write)
	}
	return NewVariableEncoder(
		"hiddenSuffix",
		func(value T) int {
			size := enc.EncodedSize(value)
			for _, suffix := range suffixes {
				size += suffix.EncodedSize(struct{}{})
			}
			return size
		},
		write,
	)
}

// HiddenSuffixDecoder wraps a decoder so the given void decoders consume the
// bytes immediately after each value. The suffix values are discarded
func HiddenSuffixDecoder[T any](
	dec *Decoder[T],
	suffixes ...*Decoder[struct{}],
) *Decoder[T] {
	read := func(data []byte, offset int) (T, int, error) {
		value, offset, err := dec.Read(data, offset)
		if err != nil {
			var zero T
			return zero, 0, err
		}
		for _, suffix := range suffixes {
			_, offset, err = suffix.Read(data, offset)
			if err != nil {
				var zero T
				return zero, 0, err
			}
		}
		return value, offset, nil
	}
	suffixSize, suffixFixed := affixDecodersFixedSize(suffixes)
	if dec.IsFixedSize() && suffixFixed {
		return NewDecoder("hiddenSuffix", dec.FixedSize()+suffixSize, read)
	}
	return NewVariableDecoder("hiddenSuffix", read)
}

// HiddenSuffixCodec wraps a codec with void codecs appended after the main
// value
func HiddenSuffixCodec[T any](
	c *Codec[T],
	suffixes ...*Codec[struct{}],
) *Codec[T] {
	encoders := make([]*Encoder[struct{}], 0, len(suffixes))
	decoders := make([]*Decoder[struct{}], 0, len(suffixes))
	for _, suffix := range suffixes {
		encoders = append(encoders, suffix.Encoder())
		decoders = append(decoders, suffix.Decoder())
	}
	return mustCombine(
		HiddenSuffixEncoder(c.Encoder(), encoders...),
		HiddenSuffixDecoder(c.Decoder(), decoders...),
	)
}

// HiddenPrefixEncoder wraps an encoder so the given void encoders are
// written immediately before each value
func HiddenPrefixEncoder[T any](
	enc *Encoder[T],
	prefixes ...*Encoder[struct{}],
) *Encoder[T] {
	write := func(value T, data []byte, offset int) (int, error) {
		var err error
		for _, prefix := range prefixes {
			offset, err = prefix.Write(struct{}{}, data, offset)
			if err != nil {
				return 0, err
			}
		}
		return enc.Write(value, data, offset)
	}
	prefixSize, prefixFixed := affixesFixedSize(prefixes)
	if enc.IsFixedSize() && prefixFixed {
		return NewEncoder("hiddenPrefix", enc.FixedSize()+prefixSize, write)
	}
	return NewVariableEncoder(
		"hiddenPrefix",
		func(value T) int {
			size := enc.EncodedSize(value)
			for _, prefix := range prefixes {
				size += prefix.EncodedSize(struct{}{})
			}
			return size
		},
		write,
	)
}

// HiddenPrefixDecoder wraps a decoder so the given void decoders consume the
// bytes immediately before each value. The prefix values are discarded
func HiddenPrefixDecoder[T any](
	dec *Decoder[T],
	prefixes ...*Decoder[struct{}],
) *Decoder[T] {
	read := func(data []byte, offset int) (T, int, error) {
		var err error
		for _, prefix := range prefixes {
			_, offset, err = prefix.Read(data, offset)
			if err != nil {
				var zero T
				return zero, 0, err
			}
		}
		return dec.Read(data, offset)
	}
	prefixSize, prefixFixed := affixDecodersFixedSize(prefixes)
	if dec.IsFixedSize() && prefixFixed {
		return NewDecoder("hiddenPrefix", dec.FixedSize()+prefixSize, read)
	}
	return NewVariableDecoder("hiddenPrefix", read)
}

// HiddenPrefixCodec wraps a codec with void codecs prepended before the main
// value
func HiddenPrefixCodec[T any](
	c *Codec[T],
	prefixes ...*Codec[struct{}],
) *Codec[T] {
	encoders := make([]*Encoder[struct{}], 0, len(prefixes))
	decoders := make([]*Decoder[struct{}], 0, len(prefixes))
	for _, prefix := range prefixes {
		encoders = append(encoders, prefix.Encoder())
		decoders = append(decoders, prefix.Decoder())
	}
	return mustCombine(
		HiddenPrefixEncoder(c.Encoder(), encoders...),
		HiddenPrefixDecoder(c.Decoder(), decoders...),
	)
}
