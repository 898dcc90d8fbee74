package ticket

import "context"

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// FindByID and FindByNumber return nil, nil when no ticket matches.
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByNumber(ctx context.Context, number int64) (*Ticket, error)
	Delete(ctx context.Context, id uint) error
	DeleteCommentsByTicketID(ctx context.Context, ticketID uint) error
	// MaxNumber returns the highest assigned ticket number, 0 when there
	// are no tickets yet.
	MaxNumber(ctx context.Context) (int64, error)
	// StatRows returns denormalized rows for the statistics queries,
	// filtered by LIKE patterns over the creation stamp. An empty pattern
	// slice returns the full history.
	StatRows(ctx context.Context, stampPatterns []string) ([]StatRow, error)
	SaveComment(ctx context.Context, c *Comment) error
}
