// Package service declares the ports the usecases need from infrastructure:
// password hashing, session tokens, object storage and event publishing.
package service

// PasswordHasher stores and verifies the passwords guests use in the camp app.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
