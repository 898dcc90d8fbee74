package usecases

import (
	"context"

	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/logger"
)

type NextTicketNumberResult struct {
	Suggested int64
}

// NextTicketNumberUseCase suggests the next free ticket number: the highest
// assigned number plus one, 1 when there are no tickets yet.
type NextTicketNumberUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewNextTicketNumberUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *NextTicketNumberUseCase {
	return &NextTicketNumberUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *NextTicketNumberUseCase) Execute(ctx context.Context) (*NextTicketNumberResult, error) {
	maxNumber, err := uc.ticketRepo.MaxNumber(ctx)
	if err != nil {
		uc.logger.Errorw("failed to read max ticket number", "error", err)
		return nil, err
	}
	return &NextTicketNumberResult{Suggested: maxNumber + 1}, nil
}
