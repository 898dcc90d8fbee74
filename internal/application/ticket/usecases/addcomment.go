package usecases

import (
	"context"
	std "errors"
	"time"

	"fixdesk/internal/application/resolver"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketNumber int64
	Message      string

	// Author identity: the technician id from the request when present,
	// otherwise the session email.
	TechnicianID *uint
	SessionEmail string
}

type AddCommentResult struct {
	CommentID  uint
	AuthorID   uint
	AuthorName string
	CreatedAt  time.Time
}

type AddCommentUseCase struct {
	ticketRepo ticket.TicketRepository
	resolver   *resolver.Service
	logger     logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	resolverSvc *resolver.Service,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo: ticketRepo,
		resolver:   resolverSvc,
		logger:     logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	t, err := uc.ticketRepo.FindByNumber(ctx, cmd.TicketNumber)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket no encontrado")
	}

	author, err := uc.resolver.ResolveAuthor(ctx, resolver.AuthorRef{
		TechnicianID: cmd.TechnicianID,
		Email:        cmd.SessionEmail,
	})
	if err != nil {
		return nil, mapAuthorErr(err)
	}

	comment, err := ticket.NewComment(t.ID(), author.ID(), cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveComment(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket", cmd.TicketNumber, "error", err)
		return nil, err
	}

	return &AddCommentResult{
		CommentID:  comment.ID(),
		AuthorID:   author.ID(),
		AuthorName: author.Label(),
		CreatedAt:  comment.CreatedAt(),
	}, nil
}

// mapAuthorErr translates resolver author sentinels into HTTP-mapped errors.
func mapAuthorErr(err error) error {
	switch {
	case std.Is(err, resolver.ErrAuthorUnknown):
		return errors.NewUnauthorizedError("No se pudo identificar al usuario")
	case std.Is(err, resolver.ErrAuthorInactive):
		return errors.NewForbiddenError("Usuario inactivo")
	default:
		return err
	}
}
