// Package service holds storefront rules that belong to no single entity:
// credential hashing, role assignment, image storage and the order merge engine.
package service

// MaxPasswordBytes is the longest password bcrypt accepts, counted in bytes.
const MaxPasswordBytes = 72

// PasswordHasher turns registration passwords into stored digests and checks
// login attempts against them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches digest. A malformed digest never matches.
	Check(password, digest string) bool
}
