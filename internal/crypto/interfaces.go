// Package crypto hashes and verifies user passwords.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable hashes and checks
// candidates against them. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a salted, peppered hash of plain. Two calls with the same
	// input produce different hashes.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches hash. It returns false for an
	// empty or malformed hash instead of an error.
	Verify(plain, hash string) bool
}
