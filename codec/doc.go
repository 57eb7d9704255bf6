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

// Package codec provides composable binary encoders and decoders for the
// wire formats used by Solana on-chain data, instructions, and transaction
// messages. Codecs are built from a small primitive core (Encoder, Decoder,
// Codec) and combined into data-structure codecs for arrays, tuples,
// bit-packed booleans, byte buffers, and hidden prefix/suffix composition.
//
// Every codec defines an exact byte layout. The layouts produced here are
// the compatibility contract with the network serialization rules, so they
// are covered by byte-exact tests rather than round-trip tests alone.
package codec
