package service

// CredentialHasher hashes and verifies user credentials.
type CredentialHasher interface {
	// Hash generates a one-way hash of the given plaintext credential.
	Hash(plain string) (string, error)

	// Check reports whether plain matches the stored hash.
	Check(hashed, plain string) bool
}
