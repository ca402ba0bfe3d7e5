package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// VerificationTokenBytes is the entropy of an email verification token
const VerificationTokenBytes = 32

// HexTokenGenerator produces random hex tokens
type HexTokenGenerator struct {
	size int
}

// NewHexTokenGenerator creates a generator of size random bytes
func NewHexTokenGenerator(size int) *HexTokenGenerator {
	if size <= 0 {
		size = VerificationTokenBytes
	}
	return &HexTokenGenerator{size: size}
}

func (g *HexTokenGenerator) Generate() (string, error) {
	bytes := make([]byte, g.size)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
