package usecases

import (
	"context"
	"io"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type MarkReadyExecutor interface {
	Execute(ctx context.Context, cmd MarkReadyCommand) (*MarkReadyResult, error)
}

type NextTicketNumberExecutor interface {
	Execute(ctx context.Context) (*NextTicketNumberResult, error)
}

// ImageStore is the slice of the storage layer the ticket flows need.
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Remove(ctx context.Context, name string) error
	RemoveAll(ctx context.Context, names ...string)
}

// EmailNotifier sends the workshop notification mails. All sends are
// best effort; failures are logged and never fail the request.
type EmailNotifier interface {
	SendTicketCreatedEmail(ticketNumber int64, clientName, model string) error
	SendMachineReadyEmail(to string, ticketNumber int64, model string) error
}
