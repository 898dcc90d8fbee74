package part

import "context"

type PartRepository interface {
	Save(ctx context.Context, p *Part) error
	Update(ctx context.Context, p *Part) error
	// FindByID returns nil, nil when no part matches.
	FindByID(ctx context.Context, id uint) (*Part, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*Part, error)
	List(ctx context.Context, filter Filter) ([]*Part, int64, error)
	Categories(ctx context.Context) ([]string, error)
	// Delete removes the row. It fails with a foreign key error when the
	// part is referenced by budget line items.
	Delete(ctx context.Context, id uint) error
}
