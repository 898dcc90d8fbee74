package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixdesk/internal/domain/delivery"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	db "fixdesk/internal/shared/db"
)

type DeliveryRepository struct {
	db     *gorm.DB
	mapper mappers.DeliveryMapper
}

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{
		db:     db,
		mapper: mappers.NewDeliveryMapper(),
	}
}

func (r *DeliveryRepository) Save(ctx context.Context, d *delivery.Delivery) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save delivery: %w", err)
	}

	if err := d.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *DeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.DeliveryModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update delivery: %w", result.Error)
	}

	return nil
}

// FindLatestByTicketID returns the authoritative delivery row for a ticket:
// the one with the highest id. Returns nil without error when the ticket has
// no delivery arrangement yet.
func (r *DeliveryRepository) FindLatestByTicketID(ctx context.Context, ticketID uint) (*delivery.Delivery, error) {
	var model models.DeliveryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find delivery: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// DeleteOlderDuplicates removes historical duplicate delivery rows of a
// ticket, keeping only the given row.
func (r *DeliveryRepository) DeleteOlderDuplicates(ctx context.Context, ticketID, keepID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ? AND id <> ?", ticketID, keepID).
		Delete(&models.DeliveryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete duplicate deliveries: %w", err)
	}
	return nil
}

// DeleteByTicketID removes all delivery rows of a ticket. Used when the
// ticket is deleted.
func (r *DeliveryRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.DeliveryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete deliveries: %w", err)
	}
	return nil
}
