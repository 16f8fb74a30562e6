package auth

// PasswordHasher abstracts credential hashing; the core treats hashes as opaque.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the stored hash
	Compare(hash, password string) bool
}
