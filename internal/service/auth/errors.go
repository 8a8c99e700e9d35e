package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrInvalidToken is the base error for every token that fails
	// verification. The variants below wrap it.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrInvalidSignature indicates the signature does not match, the token
	// was signed with another secret, or it uses an unexpected algorithm.
	ErrInvalidSignature = fmt.Errorf("%w: signature verification failed", ErrInvalidToken)

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = fmt.Errorf("%w: token has expired", ErrInvalidToken)

	// ErrMalformedToken indicates the token cannot be parsed or its claims
	// are missing.
	ErrMalformedToken = fmt.Errorf("%w: token is malformed", ErrInvalidToken)

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrMalformedAuthorization indicates an Authorization value that does
	// not carry a Bearer token.
	ErrMalformedAuthorization = fmt.Errorf("%w: authorization is not a bearer credential", ErrMissingToken)
)
