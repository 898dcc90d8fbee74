package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixdesk/internal/domain/profile"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	db "fixdesk/internal/shared/db"
)

type ProfileRepository struct {
	db     *gorm.DB
	mapper mappers.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		mapper: mappers.NewProfileMapper(),
	}
}

// FindByEmail matches the email case-insensitively. Returns nil without
// error when no profile carries the email.
func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	if email == "" {
		return nil, nil
	}

	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("LOWER(email) = LOWER(?)", email).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) FindAllActive(ctx context.Context) ([]*profile.Profile, error) {
	var profileModels []models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.ActiveOnly()).
		Order("email ASC").
		Find(&profileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*profile.Profile, len(profileModels))
	for i, model := range profileModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		profiles[i] = p
	}

	return profiles, nil
}
