package utils

import (
	"context"
	"crypto/subtle"
	"errors"
	"os"
	"strings"
)

// ValidAPIToken compares a presented bearer token with the shared secret
// configured in API_TOKEN. An empty secret disables all mutating endpoints.
func ValidAPIToken(token string) bool {
	secret := strings.TrimSpace(os.Getenv("API_TOKEN"))
	if secret == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}

// RequireAPIToken checks the token previously stored in the request context.
// Used by GraphQL create mutations; REST creates are guarded by middleware.
func RequireAPIToken(ctx context.Context) error {
	token, ok := GetTokenFromContext(ctx)
	if !ok || !ValidAPIToken(token) {
		return errors.New("unauthorized")
	}
	return nil
}
