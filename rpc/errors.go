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

package rpc

import (
	"encoding/json"
	"fmt"
)

// RPCError is a JSON-RPC error object returned by the node. It is distinct
// from a transaction-level error: the request itself was rejected
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// TransactionError is a structured error reported by the network for a
// transaction that was executed and failed. The payload shape varies by
// error kind, so the raw JSON is retained for inspection
type TransactionError struct {
	raw json.RawMessage
}

// NewTransactionError builds a TransactionError from a raw error payload
func NewTransactionError(raw json.RawMessage) *TransactionError {
	return &TransactionError{raw: append(json.RawMessage{}, raw...)}
}

func (e *TransactionError) Error() string {
	return "transaction failed: " + string(e.raw)
}

// Raw returns the raw JSON error payload as reported by the network
func (e *TransactionError) Raw() json.RawMessage {
	return e.raw
}

func (e *TransactionError) UnmarshalJSON(data []byte) error {
	e.raw = append(json.RawMessage{}, data...)
	return nil
}

func (e *TransactionError) MarshalJSON() ([]byte, error) {
	if e == nil || len(e.raw) == 0 {
		return []byte("null"), nil
	}
	return e.raw, nil
}
