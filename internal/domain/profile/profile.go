package profile

import (
	"fmt"
	"strings"
	"time"
)

// Profile is an application login identity. Profiles come from the identity
// provider; technicians are synced from them on demand.
type Profile struct {
	id        uint
	email     string
	role      string
	admin     bool
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructProfile(
	id uint,
	email, role string,
	admin, active bool,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("profile email is required")
	}

	return &Profile{
		id:        id,
		email:     email,
		role:      role,
		admin:     admin,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Profile) ID() uint             { return p.id }
func (p *Profile) Email() string        { return p.email }
func (p *Profile) Role() string         { return p.role }
func (p *Profile) IsActive() bool       { return p.active }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

// IsAdmin reports whether the profile has admin privileges, either through
// the role name or the explicit admin flag.
func (p *Profile) IsAdmin() bool {
	return p.admin || p.role == "admin"
}

// EmailLocalPart returns the part of the email before the '@'.
func (p *Profile) EmailLocalPart() string {
	if at := strings.Index(p.email, "@"); at > 0 {
		return p.email[:at]
	}
	return p.email
}

// HasUsableEmail reports whether the email looks complete enough to sync a
// technician from it.
func (p *Profile) HasUsableEmail() bool {
	return len(strings.TrimSpace(p.email)) > 3 && strings.Contains(p.email, "@")
}
