package client

import (
	"fmt"
	"strings"
	"time"

	"fixdesk/internal/shared/biztime"
)

type Client struct {
	id         uint
	fullName   string
	firstName  string
	lastName   string
	nationalID string
	whatsapp   string
	email      string
	comments   string
	address    string
	locality   string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewClient(fullName, nationalID, whatsapp, email string) (*Client, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("client name is required")
	}

	firstName, lastName := SplitFullName(fullName)
	now := biztime.NowUTC()
	return &Client{
		fullName:   fullName,
		firstName:  firstName,
		lastName:   lastName,
		nationalID: NormalizeNationalID(nationalID),
		whatsapp:   strings.TrimSpace(whatsapp),
		email:      strings.TrimSpace(email),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructClient(
	id uint,
	fullName, firstName, lastName string,
	nationalID, whatsapp, email string,
	comments, address, locality string,
	createdAt, updatedAt time.Time,
) (*Client, error) {
	if id == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}

	return &Client{
		id:         id,
		fullName:   fullName,
		firstName:  firstName,
		lastName:   lastName,
		nationalID: nationalID,
		whatsapp:   whatsapp,
		email:      email,
		comments:   comments,
		address:    address,
		locality:   locality,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Client) ID() uint             { return c.id }
func (c *Client) FullName() string     { return c.fullName }
func (c *Client) FirstName() string    { return c.firstName }
func (c *Client) LastName() string     { return c.lastName }
func (c *Client) NationalID() string   { return c.nationalID }
func (c *Client) Whatsapp() string     { return c.whatsapp }
func (c *Client) Email() string        { return c.email }
func (c *Client) Comments() string     { return c.comments }
func (c *Client) Address() string      { return c.address }
func (c *Client) Locality() string     { return c.locality }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }

func (c *Client) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID already set")
	}
	if id == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Client) SetNationalID(nationalID string) {
	c.nationalID = NormalizeNationalID(nationalID)
	c.updatedAt = biztime.NowUTC()
}

func (c *Client) SetWhatsapp(whatsapp string) {
	c.whatsapp = whatsapp
	c.updatedAt = biztime.NowUTC()
}

func (c *Client) SetEmail(email string) {
	c.email = email
	c.updatedAt = biztime.NowUTC()
}

func (c *Client) SetComments(comments string) {
	c.comments = comments
	c.updatedAt = biztime.NowUTC()
}

func (c *Client) SetAddress(address, locality string) {
	if address != "" {
		c.address = address
	}
	if locality != "" {
		c.locality = locality
	}
	c.updatedAt = biztime.NowUTC()
}

// SplitFullName splits a free-form full name into first and last name.
// The first word becomes the first name, the rest the last name. Missing
// pieces get placeholder values so both are always non-empty.
func SplitFullName(fullName string) (firstName, lastName string) {
	clean := strings.Join(strings.Fields(fullName), " ")
	if clean == "" {
		return "Sin nombre", "(sin apellido)"
	}
	parts := strings.Split(clean, " ")
	if len(parts) == 1 {
		return parts[0], "(sin apellido)"
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// NormalizeNationalID renders a DNI or CUIT in its usual Argentine display
// form: 7 digits → X.XXX.XXX, 8 digits → XX.XXX.XXX, 11 digits →
// XX-XXXXXXXX-X. Anything else is returned trimmed as given.
func NormalizeNationalID(input string) string {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return ""
	}
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	switch len(d) {
	case 7:
		return d[:1] + "." + d[1:4] + "." + d[4:]
	case 8:
		return d[:2] + "." + d[2:5] + "." + d[5:]
	case 11:
		return d[:2] + "-" + d[2:10] + "-" + d[10:]
	}
	return raw
}
