// Package rpc (format.go) provides parsing helpers for Ethereum-specific
// data encodings: hex-to-decimal conversion and transaction hash validation.
package rpc

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseHexUint64 converts a hex-encoded string (with or without "0x" prefix) to uint64.
// This is used for values that fit in 64 bits: block numbers, timestamps, gas amounts.
//
// Examples:
//   - "0x172721e" -> 24277534
//   - "0x0" -> 0
//   - "" -> 0 (empty string treated as zero)
func ParseHexUint64(hex string) (uint64, error) {
	hex = strings.TrimPrefix(hex, "0x")
	if hex == "" {
		return 0, nil
	}

	val := new(big.Int)
	_, ok := val.SetString(hex, 16)
	if !ok || !val.IsUint64() {
		return 0, fmt.Errorf("invalid hex: %s", hex)
	}
	return val.Uint64(), nil
}

// ParseHexBigInt converts a hex-encoded string to *big.Int for values that may
// exceed uint64 range (gas prices, fees in wei).
func ParseHexBigInt(hex string) (*big.Int, error) {
	hex = strings.TrimPrefix(hex, "0x")
	if hex == "" {
		return big.NewInt(0), nil
	}

	val := new(big.Int)
	_, ok := val.SetString(hex, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex: %s", hex)
	}
	return val, nil
}

// Uint64ToHex converts a uint64 to a hex string with 0x prefix for RPC calls.
func Uint64ToHex(n uint64) string {
	return fmt.Sprintf("0x%x", n)
}

// IsTxHash reports whether s is a well-formed transaction hash: exactly
// 66 characters, a "0x" prefix, and 64 hexadecimal digits (either case).
// No checksum validation and no canonicalization.
func IsTxHash(s string) bool {
	if len(s) != 66 || !strings.HasPrefix(s, "0x") {
		return false
	}
	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
