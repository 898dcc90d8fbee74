package profile

import "context"

type ProfileRepository interface {
	// FindByEmail returns nil, nil when no profile carries the email.
	FindByEmail(ctx context.Context, email string) (*Profile, error)
	FindAllActive(ctx context.Context) ([]*Profile, error)
}
