package utils

import "strings"

// EmailLocalPart returns the part of an email address before the "@".
// Comment attributions use it as the short display name of the actor.
func EmailLocalPart(email string) string {
	email = strings.TrimSpace(email)
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
