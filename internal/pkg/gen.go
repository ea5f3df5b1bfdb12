package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

const (
	gameIDBytes    = 4
	sessionIDBytes = 32
)

var randReader io.Reader = rand.Reader

// GenerateGameID - generates a short game id players can share to join.
func GenerateGameID() (string, error) {
	b, err := randomBytes(gameIDBytes)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() (string, error) {
	b, err := randomBytes(sessionIDBytes)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	return b, nil
}
