package delivery

import "context"

type DeliveryRepository interface {
	Save(ctx context.Context, d *Delivery) error
	Update(ctx context.Context, d *Delivery) error
	// FindLatestByTicketID returns nil, nil when the ticket has no
	// delivery arrangement.
	FindLatestByTicketID(ctx context.Context, ticketID uint) (*Delivery, error)
	DeleteOlderDuplicates(ctx context.Context, ticketID, keepID uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
