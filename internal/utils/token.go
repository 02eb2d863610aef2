package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/constants"
)

// GenerateTokenKey generates an opaque 40-character hex token key.
func GenerateTokenKey() (string, error) {
	bytes := make([]byte, constants.TokenKeyBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(bytes), nil
}
