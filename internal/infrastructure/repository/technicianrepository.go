package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixdesk/internal/domain/technician"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	db "fixdesk/internal/shared/db"
)

type TechnicianRepository struct {
	db     *gorm.DB
	mapper mappers.TechnicianMapper
}

func NewTechnicianRepository(db *gorm.DB) *TechnicianRepository {
	return &TechnicianRepository{
		db:     db,
		mapper: mappers.NewTechnicianMapper(),
	}
}

func (r *TechnicianRepository) Save(ctx context.Context, t *technician.Technician) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save technician: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TechnicianRepository) Update(ctx context.Context, t *technician.Technician) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TechnicianModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update technician: %w", result.Error)
	}

	return nil
}

func (r *TechnicianRepository) FindByID(ctx context.Context, id uint) (*technician.Technician, error) {
	var model models.TechnicianModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("technician not found")
		}
		return nil, fmt.Errorf("failed to find technician: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindByEmail matches the email case-insensitively. Returns nil without
// error when no technician carries the email.
func (r *TechnicianRepository) FindByEmail(ctx context.Context, email string) (*technician.Technician, error) {
	if email == "" {
		return nil, nil
	}

	var model models.TechnicianModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("LOWER(email) = LOWER(?)", email).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find technician by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TechnicianRepository) FindAll(ctx context.Context) ([]*technician.Technician, error) {
	var technicianModels []models.TechnicianModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("id ASC").
		Find(&technicianModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}

	technicians := make([]*technician.Technician, len(technicianModels))
	for i, model := range technicianModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		technicians[i] = t
	}

	return technicians, nil
}
