package auth

import "strings"

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// value. A blank header yields ErrMissingToken; a header that is not a
// well-formed Bearer credential yields ErrMalformedAuthorization.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMalformedAuthorization
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrMalformedAuthorization
	}
	return token, nil
}
