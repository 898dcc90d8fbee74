package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/application/resolver"
	"fixdesk/internal/domain/technician"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/errors"
)

func buildAddCommentUseCase(tickets *mockTicketRepository, technicians *mockTechnicianRepository) *AddCommentUseCase {
	res := resolver.NewService(&mockClientRepository{}, &mockPrinterRepository{}, technicians, nopLogger{})
	return NewAddCommentUseCase(tickets, res, nopLogger{})
}

func ticketWithID(t *testing.T, id uint, number int64) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(id, number, 7, nil, nil, "1/15/2025, 10:30:00 AM", "Pendiente", "", "", "", "", "", "", "", "", now, now)
	require.NoError(t, err)
	return tk
}

func TestAddCommentHappyPath(t *testing.T) {
	tickets := &mockTicketRepository{}
	technicians := &mockTechnicianRepository{}

	tickets.FindByNumberFunc = func(ctx context.Context, number int64) (*ticket.Ticket, error) {
		return ticketWithID(t, 5, number), nil
	}
	technicians.FindByEmailFunc = func(ctx context.Context, email string) (*technician.Technician, error) {
		return activeTechnician(t, 3, email), nil
	}

	var saved *ticket.Comment
	tickets.SaveCommentFunc = func(ctx context.Context, c *ticket.Comment) error {
		saved = c
		return c.SetID(99)
	}

	uc := buildAddCommentUseCase(tickets, technicians)
	result, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketNumber: 42,
		Message:      "Se cambió el hotend",
		SessionEmail: "pedro.gonzalez@taller.com",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(99), result.CommentID)
	assert.Equal(t, uint(3), result.AuthorID)
	assert.Equal(t, "pedro.gonzalez", result.AuthorName)
	require.NotNil(t, saved)
	assert.Equal(t, uint(5), saved.TicketID())
}

func TestAddCommentTicketNotFound(t *testing.T) {
	tickets := &mockTicketRepository{}
	technicians := &mockTechnicianRepository{}

	// Finders signal a missing ticket with nil, nil per the repository
	// contract; the use case must turn that into a 404, not a 500.
	tickets.FindByNumberFunc = func(ctx context.Context, number int64) (*ticket.Ticket, error) {
		return nil, nil
	}

	uc := buildAddCommentUseCase(tickets, technicians)
	_, err := uc.Execute(context.Background(), AddCommentCommand{TicketNumber: 999, Message: "hola"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Ticket no encontrado", appErr.Message)
}

func TestAddCommentRejectsOverlongMessage(t *testing.T) {
	tickets := &mockTicketRepository{}
	technicians := &mockTechnicianRepository{}

	tickets.FindByNumberFunc = func(ctx context.Context, number int64) (*ticket.Ticket, error) {
		return ticketWithID(t, 5, number), nil
	}
	technicians.FindByEmailFunc = func(ctx context.Context, email string) (*technician.Technician, error) {
		return activeTechnician(t, 3, email), nil
	}

	uc := buildAddCommentUseCase(tickets, technicians)
	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketNumber: 42,
		Message:      strings.Repeat("a", ticket.MaxCommentLength+1),
		SessionEmail: "pedro@taller.com",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation_error")
}

func TestAddCommentUnknownAuthorIsUnauthorized(t *testing.T) {
	tickets := &mockTicketRepository{}
	technicians := &mockTechnicianRepository{}

	tickets.FindByNumberFunc = func(ctx context.Context, number int64) (*ticket.Ticket, error) {
		return ticketWithID(t, 5, number), nil
	}

	uc := buildAddCommentUseCase(tickets, technicians)
	_, err := uc.Execute(context.Background(), AddCommentCommand{TicketNumber: 42, Message: "hola"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestAddCommentInactiveAuthorIsForbidden(t *testing.T) {
	tickets := &mockTicketRepository{}
	technicians := &mockTechnicianRepository{}

	tickets.FindByNumberFunc = func(ctx context.Context, number int64) (*ticket.Ticket, error) {
		return ticketWithID(t, 5, number), nil
	}
	technicians.FindByEmailFunc = func(ctx context.Context, email string) (*technician.Technician, error) {
		now := time.Now()
		tec, err := technician.ReconstructTechnician(3, "Pedro", "González", email, false, now, now)
		require.NoError(t, err)
		return tec, nil
	}

	uc := buildAddCommentUseCase(tickets, technicians)
	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketNumber: 42,
		Message:      "hola",
		SessionEmail: "pedro@taller.com",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}
