package technician

import "context"

type TechnicianRepository interface {
	Save(ctx context.Context, t *Technician) error
	Update(ctx context.Context, t *Technician) error
	FindByID(ctx context.Context, id uint) (*Technician, error)
	// FindByEmail returns nil, nil when no technician carries the email.
	FindByEmail(ctx context.Context, email string) (*Technician, error)
	FindAll(ctx context.Context) ([]*Technician, error)
}
