package usecases

import (
	"context"

	"fixdesk/internal/domain/budget"
	"fixdesk/internal/domain/delivery"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/infrastructure/storage"
	"fixdesk/internal/shared/db"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketNumber int64
	IsAdmin      bool
}

type DeleteTicketResult struct {
	TicketID uint
	Number   int64
}

// DeleteTicketUseCase removes a ticket with everything hanging off it:
// comments, budgets with their line items, the delivery row and the
// stored images. Image removal is best effort and runs in parallel.
type DeleteTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	budgetRepo   budget.BudgetRepository
	deliveryRepo delivery.DeliveryRepository
	txMgr        db.Transactor
	images       ImageStore
	logger       logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	budgetRepo budget.BudgetRepository,
	deliveryRepo delivery.DeliveryRepository,
	txMgr db.Transactor,
	images ImageStore,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:   ticketRepo,
		budgetRepo:   budgetRepo,
		deliveryRepo: deliveryRepo,
		txMgr:        txMgr,
		images:       images,
		logger:       logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	if !cmd.IsAdmin {
		return nil, errors.NewForbiddenError("Solo un administrador puede eliminar tickets")
	}

	t, err := uc.ticketRepo.FindByNumber(ctx, cmd.TicketNumber)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket no encontrado")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.ticketRepo.DeleteCommentsByTicketID(ctx, t.ID()); err != nil {
			return err
		}
		if err := uc.budgetRepo.DeleteByTicketID(ctx, t.ID()); err != nil {
			return err
		}
		if err := uc.deliveryRepo.DeleteByTicketID(ctx, t.ID()); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(ctx, t.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket", cmd.TicketNumber, "error", err)
		return nil, err
	}

	if uc.images != nil {
		uc.images.RemoveAll(ctx,
			storage.MainImageName(t.Number()),
			storage.TicketImageName(t.Number()),
			storage.ExtraImageName(t.Number()),
		)
	}

	uc.logger.Infow("ticket deleted", "ticket_id", t.ID(), "ticket", t.Number())
	return &DeleteTicketResult{TicketID: t.ID(), Number: t.Number()}, nil
}
