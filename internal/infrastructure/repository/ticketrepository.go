package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	db "fixdesk/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so cleared text columns are written back as empty.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadComments(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

// FindByNumber looks a ticket up by its public ticket number, not the row id.
func (r *TicketRepository) FindByNumber(ctx context.Context, number int64) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadComments(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}
	return nil
}

// DeleteCommentsByTicketID removes all comments of a ticket. Used when the
// ticket itself is being deleted.
func (r *TicketRepository) DeleteCommentsByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	return nil
}

// MaxNumber returns the highest assigned ticket number, 0 when the table is
// empty.
func (r *TicketRepository) MaxNumber(ctx context.Context) (int64, error) {
	var max *int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Select("MAX(ticket)").
		Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to query max ticket number: %w", err)
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// StatRows returns denormalized ticket rows for the statistics queries.
// When stampPatterns is non-empty the rows are filtered by LIKE over the
// creation stamp; an empty slice returns the full history.
func (r *TicketRepository) StatRows(ctx context.Context, stampPatterns []string) ([]ticket.StatRow, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Table("tickets AS t").
		Select(strings.Join([]string{
			"t.id AS id",
			"t.ticket AS number",
			"c.cliente AS client_name",
			"i.modelo AS printer_model",
			"t.estado AS state",
			"te.email AS technician_email",
			"t.marca_temporal AS stamp",
			"t.fecha_de_reparacion AS repair_date",
			"t.maquina_reparada AS repaired_machine",
		}, ", ")).
		Joins("LEFT JOIN clientes AS c ON c.id = t.cliente_id").
		Joins("LEFT JOIN impresoras AS i ON i.id = t.impresora_id").
		Joins("LEFT JOIN tecnicos AS te ON te.id = t.tecnico_id")

	if len(stampPatterns) > 0 {
		conds := make([]string, len(stampPatterns))
		args := make([]interface{}, len(stampPatterns))
		for i, p := range stampPatterns {
			conds[i] = "t.marca_temporal LIKE ?"
			args[i] = p
		}
		query = query.Where(strings.Join(conds, " OR "), args...)
	}

	var rows []ticket.StatRow
	if err := query.Order("t.id ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query ticket stat rows: %w", err)
	}

	return rows, nil
}

func (r *TicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// loadComments queries comments for a ticket and adds them to the domain entity.
func (r *TicketRepository) loadComments(ctx context.Context, t *ticket.Ticket, ticketID uint) error {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("creado_en ASC").
		Find(&commentModels).Error; err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for _, cm := range commentModels {
		comment, err := r.mapper.CommentToDomain(&cm)
		if err != nil {
			return err
		}
		comments = append(comments, comment)
	}
	t.SetComments(comments)

	return nil
}
