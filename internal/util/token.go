package util

import (
	"crypto/rand"
	"encoding/hex"
)

const resetTokenBytes = 32

// GenerateResetToken returns a hex-encoded token with 256 bits of entropy,
// suitable for single-use password reset links.
func GenerateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
