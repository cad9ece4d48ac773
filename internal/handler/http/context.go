package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// userIDFromContext pulls the authenticated user id out of the verified
// token, or returns "" on unauthenticated routes.
func userIDFromContext(r *http.Request) string {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}
