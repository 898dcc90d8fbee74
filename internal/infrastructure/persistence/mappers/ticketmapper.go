package mappers

import (
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:              t.ID(),
		Number:          t.Number(),
		ClientID:        t.ClientID(),
		TechnicianID:    t.TechnicianID(),
		PrinterID:       t.PrinterID(),
		Stamp:           t.Stamp(),
		State:           t.State(),
		ClientNotes:     t.ClientNotes(),
		TechnicianNotes: t.TechnicianNotes(),
		RepairedMachine: t.RepairedMachine(),
		RepairDate:      t.RepairDate(),
		RequestBudget:   t.RequestBudget(),
		ImageMain:       t.ImageMain(),
		ImageTicket:     t.ImageTicket(),
		ImageExtra:      t.ImageExtra(),
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a ticket persistence model to a domain entity.
// This method only converts the ticket fields. Comments must be loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.ClientID,
		model.TechnicianID,
		model.PrinterID,
		model.Stamp,
		model.State,
		model.ClientNotes,
		model.TechnicianNotes,
		model.RepairedMachine,
		model.RepairDate,
		model.RequestBudget,
		model.ImageMain,
		model.ImageTicket,
		model.ImageExtra,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

// CommentToModel converts a comment domain entity to a persistence model.
func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Message:   c.Message(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

// CommentToDomain converts a comment persistence model to a domain entity.
func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Message,
		millisToTime(model.CreatedAt),
	)
}
