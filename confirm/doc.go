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

// Package confirm determines whether a submitted transaction has landed
// before its blockhash lifetime expires. Two polling strategies race each
// other: one watches the network block height against the transaction's
// last valid block height and only ever fails, the other polls the
// signature status until it reaches the requested commitment. The first
// strategy to settle decides the outcome and the rest are cancelled
// immediately.
package confirm
