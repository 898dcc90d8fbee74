package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"fixdesk/internal/domain/part"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	db "fixdesk/internal/shared/db"
)

// allowedPartOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedPartOrderByFields = map[string]bool{
	"id":             true,
	"nombre":         true,
	"categoria":      true,
	"stock":          true,
	"creado_en":      true,
	"actualizado_en": true,
}

type PartRepository struct {
	db     *gorm.DB
	mapper mappers.PartMapper
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{
		db:     db,
		mapper: mappers.NewPartMapper(),
	}
}

func (r *PartRepository) Save(ctx context.Context, p *part.Part) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save part: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *PartRepository) Update(ctx context.Context, p *part.Part) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PartModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "creado_en").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("part not found")
	}

	return nil
}

func (r *PartRepository) FindByID(ctx context.Context, id uint) (*part.Part, error) {
	var model models.PartModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find part: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindByIDs loads the given parts in one query. The result may be shorter
// than the input when some ids do not exist; callers check for gaps.
func (r *PartRepository) FindByIDs(ctx context.Context, ids []uint) ([]*part.Part, error) {
	if len(ids) == 0 {
		return []*part.Part{}, nil
	}

	var partModels []models.PartModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id IN ?", ids).
		Find(&partModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find parts: %w", err)
	}

	parts := make([]*part.Part, len(partModels))
	for i, model := range partModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		parts[i] = p
	}

	return parts, nil
}

func (r *PartRepository) List(ctx context.Context, filter part.Filter) ([]*part.Part, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PartModel{})

	if filter.Query != "" {
		query = query.Where("nombre LIKE ?", "%"+filter.Query+"%")
	}
	if filter.Category != "" {
		query = query.Where("categoria = ?", filter.Category)
	}
	if filter.Active != nil {
		query = query.Where("activo = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count parts: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedPartOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "ASC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("nombre ASC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var partModels []models.PartModel
	if err := query.Find(&partModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list parts: %w", err)
	}

	parts := make([]*part.Part, len(partModels))
	for i, model := range partModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		parts[i] = p
	}

	return parts, total, nil
}

// Categories returns the distinct non-empty categories of active parts.
// Ordering is left to the caller, which sorts with a Spanish collator.
func (r *PartRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.PartModel{}).
		Where("categoria <> ''").
		Scopes(db.ActiveOnly()).
		Distinct("categoria").
		Pluck("categoria", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list part categories: %w", err)
	}

	return categories, nil
}

// Delete removes the part row. The foreign key on budget line items makes
// the delete fail for referenced parts; the caller decides the fallback.
func (r *PartRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.PartModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("part not found")
	}
	return nil
}
