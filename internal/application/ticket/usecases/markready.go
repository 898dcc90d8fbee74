package usecases

import (
	"context"

	"fixdesk/internal/application/resolver"
	"fixdesk/internal/domain/client"
	"fixdesk/internal/domain/printer"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type MarkReadyCommand struct {
	TicketNumber int64
	SessionEmail string
	TechnicianID *uint
}

type MarkReadyResult struct {
	TicketID   uint
	Number     int64
	RepairDate string
}

// MarkReadyUseCase flips a ticket to "Lista", stamps the repair date and
// assigns the acting technician. The auto comment and the notification
// email are best effort.
type MarkReadyUseCase struct {
	ticketRepo  ticket.TicketRepository
	clientRepo  client.ClientRepository
	printerRepo printer.PrinterRepository
	resolver    *resolver.Service
	notifier    EmailNotifier
	logger      logger.Interface
}

func NewMarkReadyUseCase(
	ticketRepo ticket.TicketRepository,
	clientRepo client.ClientRepository,
	printerRepo printer.PrinterRepository,
	resolverSvc *resolver.Service,
	notifier EmailNotifier,
	logger logger.Interface,
) *MarkReadyUseCase {
	return &MarkReadyUseCase{
		ticketRepo:  ticketRepo,
		clientRepo:  clientRepo,
		printerRepo: printerRepo,
		resolver:    resolverSvc,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *MarkReadyUseCase) Execute(ctx context.Context, cmd MarkReadyCommand) (*MarkReadyResult, error) {
	author, err := uc.resolver.ResolveAuthor(ctx, resolver.AuthorRef{
		TechnicianID: cmd.TechnicianID,
		Email:        cmd.SessionEmail,
	})
	if err != nil {
		return nil, mapAuthorErr(err)
	}

	t, err := uc.ticketRepo.FindByNumber(ctx, cmd.TicketNumber)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket no encontrado")
	}

	t.MarkReady(author.ID())
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to mark ticket ready", "ticket", cmd.TicketNumber, "error", err)
		return nil, err
	}

	if comment, cerr := ticket.NewComment(t.ID(), author.ID(), author.Label()+" marcó Máquina Lista"); cerr == nil {
		if err := uc.ticketRepo.SaveComment(ctx, comment); err != nil {
			uc.logger.Warnw("ready comment failed", "ticket", cmd.TicketNumber, "error", err)
		}
	}

	uc.notifyReady(ctx, t)

	return &MarkReadyResult{
		TicketID:   t.ID(),
		Number:     t.Number(),
		RepairDate: t.RepairDate(),
	}, nil
}

func (uc *MarkReadyUseCase) notifyReady(ctx context.Context, t *ticket.Ticket) {
	if uc.notifier == nil {
		return
	}

	to := ""
	if cl, err := uc.clientRepo.FindByID(ctx, t.ClientID()); err == nil && cl != nil {
		to = cl.Email()
	}
	if to == "" {
		return
	}

	model := ""
	if t.PrinterID() != nil {
		if pr, err := uc.printerRepo.FindByID(ctx, *t.PrinterID()); err == nil && pr != nil {
			model = pr.Model()
		}
	}

	if err := uc.notifier.SendMachineReadyEmail(to, t.Number(), model); err != nil {
		uc.logger.Warnw("machine ready email failed", "ticket", t.Number(), "error", err)
	}
}
