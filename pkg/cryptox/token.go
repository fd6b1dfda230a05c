package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"math/big"
)

// FingerprintToken returns a deterministic SHA-256 fingerprint of a
// token, base64url-encoded. Short-lived secrets (one-time passcodes)
// are stored fingerprinted so a database read never yields a usable
// code, while lookups can still match on the fingerprint column.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// GenerateNumericCode returns a uniformly random code with the given
// number of digits and no leading zero, e.g. digits=6 yields a value
// in [100000, 999999].
func GenerateNumericCode(digits int) (string, error) {
	if digits < 1 {
		return "", fmt.Errorf("cryptox: digits must be positive, got %d", digits)
	}

	low := big.NewInt(1)
	for range digits - 1 {
		low.Mul(low, big.NewInt(10))
	}
	// span = 9 * 10^(digits-1), the count of d-digit values
	span := new(big.Int).Mul(low, big.NewInt(9))

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("cryptox: failed to generate code: %w", err)
	}

	return n.Add(n, low).String(), nil
}
