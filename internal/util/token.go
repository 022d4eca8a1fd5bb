package util

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

// SessionTokenSize is the number of random bytes in a session token (256 bits).
const SessionTokenSize = 32

// RandomToken returns size bytes from crypto/rand encoded as unpadded base64url.
func RandomToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// IsSessionToken reports whether token has the shape RandomToken(SessionTokenSize) produces.
func IsSessionToken(token string) bool {
	if len(token) != base64.RawURLEncoding.EncodedLen(SessionTokenSize) {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}

	return true
}
