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

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	// ErrNotEnoughBytes is returned when fewer bytes remain in the input than
	// a decoder needs
	ErrNotEnoughBytes = errors.New("not enough bytes to decode")

	// ErrSizeMismatch is returned by Combine when the encoder and decoder
	// halves disagree about their size metadata
	ErrSizeMismatch = errors.New("encoder and decoder size mismatch")
)

// NotEnoughBytesError reports a decode attempt that ran past the end of the
// input. It wraps ErrNotEnoughBytes
type NotEnoughBytesError struct {
	Codec    string
	Expected int
	Actual   int
	Offset   int
}

func (e NotEnoughBytesError) Error() string {
	return fmt.Sprintf(
		"codec [%s]: not enough bytes to decode: expected %d bytes, got %d at offset %d",
		e.Codec,
		e.Expected,
		e.Actual,
		e.Offset,
	)
}

func (e NotEnoughBytesError) Unwrap() error { return ErrNotEnoughBytes }

// InvalidArrayLengthError reports an attempt to encode an array whose length
// does not match the codec's declared item count
type InvalidArrayLengthError struct {
	Codec    string
	Expected int
	Actual   int
}

func (e InvalidArrayLengthError) Error() string {
	return fmt.Sprintf(
		"codec [%s]: expected array of length %d, got %d",
		e.Codec,
		e.Expected,
		e.Actual,
	)
}

// InvalidConstantError reports decoded bytes that do not match a constant
// codec's expected byte sequence
type InvalidConstantError struct {
	Expected []byte
	Actual   []byte
}

func (e InvalidConstantError) Error() string {
	return fmt.Sprintf(
		"codec [constant]: expected bytes %s, got %s",
		hex.EncodeToString(e.Expected),
		hex.EncodeToString(e.Actual),
	)
}

// checkAvailable returns a NotEnoughBytesError when fewer than size bytes
// remain in data at offset
func checkAvailable(name string, data []byte, offset int, size int) error {
	if avail := len(data) - offset; avail < size {
		return NotEnoughBytesError{
			Codec:    name,
			Expected: size,
			Actual:   avail,
			Offset:   offset,
		}
	}
	return nil
}
