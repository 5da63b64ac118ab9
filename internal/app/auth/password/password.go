package password

import (
	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
	"golang.org/x/crypto/bcrypt"
)

// Hash produces a salted bcrypt hash. The salt is random, so two calls with
// the same input yield different but equally valid hashes.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", customErrors.WrapInternal(err, "hash password")
	}
	return string(hash), nil
}

// Verify reports whether plain produced hash. A malformed hash is just a
// non-match, never an error.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
