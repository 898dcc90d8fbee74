package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixdesk/internal/domain/client"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	db "fixdesk/internal/shared/db"
)

type ClientRepository struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{
		db:     db,
		mapper: mappers.NewClientMapper(),
	}
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ClientModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}

	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uint) (*client.Client, error) {
	var model models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindByNationalID matches on the normalized document. Returns nil without
// error when no client carries the document.
func (r *ClientRepository) FindByNationalID(ctx context.Context, nationalID string) (*client.Client, error) {
	if nationalID == "" {
		return nil, nil
	}

	var model models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("dni_cuit = ?", nationalID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find client by document: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindByFullName matches the full name case-insensitively. Returns nil
// without error when no client matches.
func (r *ClientRepository) FindByFullName(ctx context.Context, fullName string) (*client.Client, error) {
	var model models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("LOWER(cliente) = LOWER(?)", fullName).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find client by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
