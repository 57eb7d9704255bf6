// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package keys

import (
	"bytes"
	"testing"
)

func TestSignAndVerify(t *testing.T) {
	kp, err := NewKeypair()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	message := []byte("test message")
	sig := kp.Sign(message)
	if !Verify(kp.PublicKey(), message, sig) {
		t.Fatal("expected signature to verify")
	}
	if Verify(kp.PublicKey(), []byte("other message"), sig) {
		t.Fatal("expected signature not to verify for different message")
	}
}

func TestKeypairFromSeedDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, SeedLength)
	kp1, err := KeypairFromSeed(seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kp2, err := KeypairFromSeed(seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kp1.PublicKey() != kp2.PublicKey() {
		t.Fatal("expected identical public keys from identical seeds")
	}
	if _, err := KeypairFromSeed(seed[:16]); err == nil {
		t.Fatal("expected error for short seed")
	}
}

func TestPublicKeyBase58RoundTrip(t *testing.T) {
	kp, err := NewKeypair()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pk := kp.PublicKey()
	parsed, err := PublicKeyFromBase58(pk.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != pk {
		t.Fatalf("expected %s, got %s", pk, parsed)
	}
	if _, err := PublicKeyFromBase58("tooshort"); err == nil {
		t.Fatal("expected error for invalid public key")
	}
}

func TestSignatureBase58RoundTrip(t *testing.T) {
	kp, err := NewKeypair()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sig := kp.Sign([]byte("payload"))
	parsed, err := SignatureFromBase58(sig.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != sig {
		t.Fatalf("expected %s, got %s", sig, parsed)
	}
}

func TestIsOnCurve(t *testing.T) {
	kp, err := NewKeypair()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !kp.PublicKey().IsOnCurve() {
		t.Fatal("expected generated public key to be on the curve")
	}
	// A y coordinate beyond the field prime never decompresses
	var invalid PublicKey
	for i := range invalid {
		invalid[i] = 0xff
	}
	if invalid.IsOnCurve() {
		t.Fatal("expected non-canonical bytes to be off the curve")
	}
}
