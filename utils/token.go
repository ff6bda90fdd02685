// utils/token.go - Referee access token helpers
package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// GenerateAccessToken creates a cryptographically secure opaque token for
// referee dashboard links (32 hex characters).
func GenerateAccessToken() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// SecureCompare compares two tokens in constant time.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
