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

type arraySizeMode int

const (
	arraySizePrefixed arraySizeMode = iota
	arraySizeFixed
	arraySizeRemainder
)

type arrayConfig struct {
	mode       arraySizeMode
	fixedCount int
	countCodec *Codec[uint64]
}

// ArrayOption modifies the size strategy of an array codec
type ArrayOption func(*arrayConfig)

// WithFixedCount declares an array of exactly count items with no length
// prefix. Encoding an array of any other length is an error
func WithFixedCount(count int) ArrayOption {
	return func(c *arrayConfig) {
		c.mode = arraySizeFixed
		c.fixedCount = count
	}
}

// WithRemainder declares an array with no length prefix whose decoder
// consumes items until the input is exhausted
func WithRemainder() ArrayOption {
	return func(c *arrayConfig) {
		c.mode = arraySizeRemainder
	}
}

// WithCountCodec selects the codec used for the item-count prefix. The
// default is a little-endian unsigned 32-bit count
func WithCountCodec(count *Codec[uint64]) ArrayOption {
	return func(c *arrayConfig) {
		c.mode = arraySizePrefixed
		c.countCodec = count
	}
}

func newArrayConfig(opts []ArrayOption) arrayConfig {
	cfg := arrayConfig{
		mode:       arraySizePrefixed,
		countCodec: U32Count(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ArrayEncoder returns an encoder for a sequence of items. The size strategy
// defaults to a little-endian unsigned 32-bit count prefix and can be
// changed with WithFixedCount, WithRemainder, or WithCountCodec
func ArrayEncoder[T any](item *Encoder[T], opts ...ArrayOption) *Encoder[[]T] {
	cfg := newArrayConfig(opts)
	writeItems := func(value []T, data []byte, offset int) (int, error) {
		var err error
		for _, entry := range value {
			offset, err = item.Write(entry, data, offset)
			if err != nil {
				return 0, err
			}
		}
		return offset, nil
	}
	itemsSize := func(value []T) int {
		if item.IsFixedSize() {
			return len(value) * item.FixedSize()
		}
		size := 0
		for _, entry := range value {
			size += item.EncodedSize(entry)
		}
		return size
	}
	switch cfg.mode {
	case arraySizeFixed:
		write := func(value []T, data []byte, offset int) (int, error) {
			if len(value) != cfg.fixedCount {
				return 0, InvalidArrayLengthError{
					Codec:    "array",
					Expected: cfg.fixedCount,
					Actual:   len(value),
				}
			}
			return writeItems(value, data, offset)
		}
		// A zero-count array is fixed-size zero even when the item codec
		// is variable
		if item.IsFixedSize() || cfg.fixedCount == 0 {
			return NewEncoder("array", cfg.fixedCount*max(item.FixedSize(), 0), write)
		}
		return NewVariableEncoder("array", itemsSize, write)
	case arraySizeRemainder:
		return NewVariableEncoder("array", itemsSize, writeItems)
	default:
		return NewVariableEncoder(
			"array",
			func(value []T) int {
				return cfg.countCodec.EncodedSize(uint64(len(value))) + itemsSize(value)
			},
			func(value []T, data []byte, offset int) (int, error) {
				offset, err := cfg.countCodec.Write(uint64(len(value)), data, offset)
				if err != nil {
					return 0, err
				}
				return writeItems(value, data, offset)
			},
		)
	}
}

// ArrayDecoder returns a decoder for a sequence of items using the same size
// strategies as ArrayEncoder
func ArrayDecoder[T any](item *Decoder[T], opts ...ArrayOption) *Decoder[[]T] {
	cfg := newArrayConfig(opts)
	readItems := func(count int, data []byte, offset int) ([]T, int, error) {
		// Cap the allocation hint so a corrupt count prefix can't trigger a
		// huge allocation before the item reads fail
		value := make([]T, 0, min(count, 1024))
		for range count {
			entry, next, err := item.Read(data, offset)
			if err != nil {
				return nil, 0, err
			}
			value = append(value, entry)
			offset = next
		}
		return value, offset, nil
	}
	switch cfg.mode {
	case arraySizeFixed:
		read := func(data []byte, offset int) ([]T, int, error) {
			return readItems(cfg.fixedCount, data, offset)
		}
		if item.IsFixedSize() || cfg.fixedCount == 0 {
			return NewDecoder("array", cfg.fixedCount*max(item.FixedSize(), 0), read)
		}
		return NewVariableDecoder("array", read)
	case arraySizeRemainder:
		return NewVariableDecoder(
			"array",
			func(data []byte, offset int) ([]T, int, error) {
				value := []T{}
				for offset < len(data) {
					entry, next, err := item.Read(data, offset)
					if err != nil {
						return nil, 0, err
					}
					value = append(value, entry)
					offset = next
				}
				return value, offset, nil
			},
		)
	default:
		return NewVariableDecoder(
			"array",
			func(data []byte, offset int) ([]T, int, error) {
				count, offset, err := cfg.countCodec.Read(data, offset)
				if err != nil {
					return nil, 0, err
				}
				return readItems(int(count), data, offset)
			},
		)
	}
}

// ArrayCodec returns a codec for a sequence of items
func ArrayCodec[T any](item *Codec[T], opts ...ArrayOption) *Codec[[]T] {
	return mustCombine(
		ArrayEncoder(item.Encoder(), opts...),
		ArrayDecoder(item.Decoder(), opts...),
	)
}
