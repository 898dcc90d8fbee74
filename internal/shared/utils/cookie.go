package utils

import (
	"github.com/gin-gonic/gin"
)

// DefaultSessionCookie is used when auth.cookie_name is not configured.
// The identity provider sets the cookie; this service only reads it.
const DefaultSessionCookie = "session_token"

// GetTokenFromCookie retrieves the session token from the named cookie.
// Returns an empty string when the cookie is absent so callers can fall
// back to the Authorization header.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}
