package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// DecodeBase58String is a helper function for tests that decodes base58
// strings. It panics on invalid input, which makes it usable inline.
func DecodeBase58String(base58Data string) []byte {
	base58Data = strings.TrimSpace(base58Data)
	decoded := base58.Decode(base58Data)
	if len(decoded) == 0 && base58Data != "" {
		panic(fmt.Sprintf("error decoding base58: %q", base58Data))
	}
	return decoded
}
