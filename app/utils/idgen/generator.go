package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// GenerateSecureID mints an opaque public id of the form
// "<prefix>_<length url-safe chars>" from crypto/rand.
func GenerateSecureID(prefix string, length int) (string, error) {
	// 3 random bytes encode to 4 characters; over-provision and truncate.
	raw := make([]byte, (length*3/4)+2)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(raw)
	if len(encoded) > length {
		encoded = encoded[:length]
	}
	return prefix + "_" + encoded, nil
}

// ValidateIDFormat reports whether id looks like an id GenerateSecureID
// would mint for expectedPrefix: "<prefix>_" followed by one or more
// base64 url-safe characters.
func ValidateIDFormat(id, expectedPrefix string) bool {
	suffix, ok := strings.CutPrefix(id, expectedPrefix+"_")
	if !ok || suffix == "" {
		return false
	}
	for _, char := range suffix {
		switch {
		case char >= 'a' && char <= 'z':
		case char >= 'A' && char <= 'Z':
		case char >= '0' && char <= '9':
		case char == '-' || char == '_':
		default:
			return false
		}
	}
	return true
}
