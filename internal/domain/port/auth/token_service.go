package auth

// TokenService abstracts the identity provider. Tokens are opaque to the core:
// it only ever exchanges a user id for a token and back.
type TokenService interface {
	// Generate issues an identity token for the given user id
	Generate(userID uint64) (string, error)

	// Validate resolves a token to the user id it asserts.
	//
	// Possible errors:
	// - ErrInvalidToken: if the token is malformed, expired or rejected
	Validate(token string) (uint64, error)
}
