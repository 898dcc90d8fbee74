package technician

import (
	"fmt"
	"strings"
	"time"

	"fixdesk/internal/shared/biztime"
)

type Technician struct {
	id        uint
	firstName string
	lastName  string
	email     string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewTechnician(firstName, lastName, email string) (*Technician, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("technician email is required")
	}

	now := biztime.NowUTC()
	return &Technician{
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		email:     email,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewTechnicianFromEmail creates an active technician with the name derived
// from the email local part.
func NewTechnicianFromEmail(email string) (*Technician, error) {
	firstName, lastName := DeriveNameFromEmail(email)
	return NewTechnician(firstName, lastName, email)
}

func ReconstructTechnician(
	id uint,
	firstName, lastName, email string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Technician, error) {
	if id == 0 {
		return nil, fmt.Errorf("technician ID cannot be zero")
	}

	return &Technician{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Technician) ID() uint             { return t.id }
func (t *Technician) FirstName() string    { return t.firstName }
func (t *Technician) LastName() string     { return t.lastName }
func (t *Technician) Email() string        { return t.email }
func (t *Technician) IsActive() bool       { return t.active }
func (t *Technician) CreatedAt() time.Time { return t.createdAt }
func (t *Technician) UpdatedAt() time.Time { return t.updatedAt }

func (t *Technician) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("technician ID already set")
	}
	if id == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Technician) Activate() {
	t.active = true
	t.updatedAt = biztime.NowUTC()
}

func (t *Technician) Deactivate() {
	t.active = false
	t.updatedAt = biztime.NowUTC()
}

// FullName returns the display name, falling back to "Técnico" when the
// technician has no name at all.
func (t *Technician) FullName() string {
	full := strings.TrimSpace(t.firstName + " " + t.lastName)
	if full == "" {
		return "Técnico"
	}
	return full
}

// Label returns the short label used in comments and statistics: the email
// local part, or the first name when the email is unusable.
func (t *Technician) Label() string {
	if at := strings.Index(t.email, "@"); at > 0 {
		return t.email[:at]
	}
	if t.firstName != "" {
		return t.firstName
	}
	return "tecnico"
}

// DeriveNameFromEmail derives a first and last name from the email local
// part. The local part is split on '.', '_' and '-': with two or more
// segments the first two become the capitalized first and last name. With
// fewer segments the whole local part becomes the first name and the last
// name stays empty.
func DeriveNameFromEmail(email string) (firstName, lastName string) {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	if local == "" {
		local = "Usuario"
	}

	segments := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	if len(segments) >= 2 {
		return capitalize(segments[0]), capitalize(segments[1])
	}
	return capitalize(local), ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
