package usecases

import (
	"context"
	std "errors"

	"fixdesk/internal/application/resolver"
	"fixdesk/internal/domain/budget"
	"fixdesk/internal/domain/client"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/db"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

// UpdateBudgetCommand carries partial updates of the budget header. A nil
// pointer means the field was not sent.
type UpdateBudgetCommand struct {
	TicketNumber int64
	SessionEmail string

	Amount         *string
	Link           *string
	Approved       *string
	WarrantyActive *string
	AdminNotes     *string

	// RequestBudget is the tri-state preference stored on the ticket:
	// "Si", "No" or empty ("not selected").
	RequestBudget *string
}

type UpdateBudgetResult struct {
	BudgetID uint
	Number   int64
}

// UpdateBudgetUseCase upserts the budget header of a ticket, keeps a single
// authoritative row, flags the ticket as quoted and records the mandatory
// auto comment. The notification email is best effort.
type UpdateBudgetUseCase struct {
	ticketRepo ticket.TicketRepository
	clientRepo client.ClientRepository
	budgetRepo budget.BudgetRepository
	resolver   *resolver.Service
	txMgr      db.Transactor
	notifier   EmailNotifier
	logger     logger.Interface
}

func NewUpdateBudgetUseCase(
	ticketRepo ticket.TicketRepository,
	clientRepo client.ClientRepository,
	budgetRepo budget.BudgetRepository,
	resolverSvc *resolver.Service,
	txMgr db.Transactor,
	notifier EmailNotifier,
	logger logger.Interface,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		ticketRepo: ticketRepo,
		clientRepo: clientRepo,
		budgetRepo: budgetRepo,
		resolver:   resolverSvc,
		txMgr:      txMgr,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, cmd UpdateBudgetCommand) (*UpdateBudgetResult, error) {
	t, err := uc.ticketRepo.FindByNumber(ctx, cmd.TicketNumber)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket inexistente")
	}

	var b *budget.Budget
	err = uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		b, err = uc.upsertHeader(ctx, t.ID(), cmd)
		if err != nil {
			return err
		}

		if cmd.RequestBudget != nil {
			t.SetRequestBudget(normalizeTriState(*cmd.RequestBudget))
		}
		t.SetState("P. Enviado")
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			return err
		}

		return uc.recordSentComment(ctx, t, cmd.SessionEmail)
	})
	if err != nil {
		return nil, err
	}

	uc.notifySent(ctx, t, b)

	return &UpdateBudgetResult{BudgetID: b.ID(), Number: t.Number()}, nil
}

func (uc *UpdateBudgetUseCase) upsertHeader(ctx context.Context, ticketID uint, cmd UpdateBudgetCommand) (*budget.Budget, error) {
	b, err := uc.budgetRepo.FindLatestByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	isNew := b == nil
	if isNew {
		b, err = budget.NewBudget(ticketID)
		if err != nil {
			return nil, err
		}
	}

	if cmd.Amount != nil {
		b.SetAmount(utils.NormalizeAmountText(*cmd.Amount))
	}
	if cmd.Link != nil {
		b.SetLink(*cmd.Link)
	}
	if cmd.Approved != nil {
		b.SetApproved(*cmd.Approved)
	}
	if cmd.WarrantyActive != nil {
		b.SetWarrantyActive(*cmd.WarrantyActive)
	}
	if cmd.AdminNotes != nil {
		b.SetAdminNotes(*cmd.AdminNotes)
	}
	b.EnsureBudgetDate()

	if isNew {
		if err := uc.budgetRepo.Save(ctx, b); err != nil {
			return nil, err
		}
		return b, nil
	}

	if err := uc.budgetRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	if err := uc.budgetRepo.DeleteOlderDuplicates(ctx, ticketID, b.ID()); err != nil {
		return nil, err
	}
	return b, nil
}

// recordSentComment is mandatory: a budget send without an identified
// author fails the whole operation.
func (uc *UpdateBudgetUseCase) recordSentComment(ctx context.Context, t *ticket.Ticket, sessionEmail string) error {
	author, err := uc.resolver.ResolveAuthor(ctx, resolver.AuthorRef{Email: sessionEmail})
	if err != nil {
		switch {
		case std.Is(err, resolver.ErrAuthorUnknown):
			return errors.NewUnauthorizedError("No se pudo determinar el autor para comentar el presupuesto")
		case std.Is(err, resolver.ErrAuthorInactive):
			return errors.NewForbiddenError("Usuario inactivo")
		default:
			return err
		}
	}

	localPart := utils.EmailLocalPart(sessionEmail)
	if localPart == "" {
		localPart = author.Label()
	}

	comment, err := ticket.NewComment(t.ID(), author.ID(), localPart+" envió el presupuesto")
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	return uc.ticketRepo.SaveComment(ctx, comment)
}

func (uc *UpdateBudgetUseCase) notifySent(ctx context.Context, t *ticket.Ticket, b *budget.Budget) {
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

	if err := uc.notifier.SendBudgetSentEmail(to, t.Number(), b.Amount(), b.Link()); err != nil {
		uc.logger.Warnw("budget sent email failed", "ticket", t.Number(), "error", err)
	}
}

func normalizeTriState(v string) string {
	switch v {
	case "Si", "No":
		return v
	default:
		return ""
	}
}
