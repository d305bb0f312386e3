// Package cryptox implements password credential handling: deriving a slow
// argon2id hash from a password and a random salt, encoding both into a
// single self-describing credential string, and verifying candidates against
// it in constant time.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// argon2id parameters. Deliberately expensive so that brute-forcing a leaked
// credential store stays impractical.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

func deriveHash(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// NewCredential derives a credential for the given password using a fresh
// random salt. The result is encoded as "hex(salt):hex(hash)".
func NewCredential(password string) string {
	salt := common.GenerateRandByteArray(saltSize)
	hash := deriveHash(password, salt)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(hash)
}

// VerifyCredential checks candidate against a stored credential. A malformed
// credential (missing separator or undecodable parts) counts as a
// verification failure, never a panic. The hash comparison runs in constant
// time regardless of where the first mismatching byte occurs.
func VerifyCredential(credential, candidate string) bool {
	saltPart, hashPart, ok := strings.Cut(credential, ":")
	if !ok {
		// Still burn a derivation so malformed rows don't answer faster.
		deriveHash(candidate, make([]byte, saltSize))
		return false
	}

	salt, err := hex.DecodeString(saltPart)
	if err != nil {
		deriveHash(candidate, make([]byte, saltSize))
		return false
	}
	stored, err := hex.DecodeString(hashPart)
	if err != nil {
		deriveHash(candidate, salt)
		return false
	}

	derived := deriveHash(candidate, salt)
	return subtle.ConstantTimeCompare(stored, derived) == 1
}
