// Package password wraps bcrypt for storing and checking user secrets.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

const Cost = 10

// dummyHash is compared against when there is no stored hash, so a lookup
// miss costs the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("recipe-share-dummy-secret"), Cost)

func Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether secret matches hash. A malformed hash is a mismatch.
func Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// VerifyDummy burns one bcrypt comparison and always reports false.
func VerifyDummy(secret string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(secret))
	return false
}
