// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher hashes and verifies passwords. Check must accept any hash
// produced by Hash, whatever cost it was created with.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
