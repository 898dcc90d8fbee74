package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixdesk/internal/domain/budget"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	db "fixdesk/internal/shared/db"
)

type BudgetRepository struct {
	db     *gorm.DB
	mapper mappers.BudgetMapper
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{
		db:     db,
		mapper: mappers.NewBudgetMapper(),
	}
}

func (r *BudgetRepository) Save(ctx context.Context, b *budget.Budget) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}

	if err := b.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BudgetModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}

	return nil
}

// FindLatestByTicketID returns the authoritative budget for a ticket: the
// row with the highest id. Returns nil without error when the ticket has no
// budget yet.
func (r *BudgetRepository) FindLatestByTicketID(ctx context.Context, ticketID uint) (*budget.Budget, error) {
	var model models.BudgetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// DeleteOlderDuplicates removes historical duplicate budget rows of a
// ticket, keeping only the given row.
func (r *BudgetRepository) DeleteOlderDuplicates(ctx context.Context, ticketID, keepID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ? AND id <> ?", ticketID, keepID).
		Delete(&models.BudgetModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete duplicate budgets: %w", err)
	}
	return nil
}

// DeleteByTicketID removes all budget rows of a ticket along with their line
// items. Used when the ticket is deleted.
func (r *BudgetRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("presupuesto_id IN (?)",
			tx.Model(&models.BudgetModel{}).Select("id").Where("ticket_id = ?", ticketID),
		).
		Delete(&models.LineItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete budget line items: %w", err)
	}

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.BudgetModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete budgets: %w", err)
	}

	return nil
}

func (r *BudgetRepository) ItemsByBudgetID(ctx context.Context, budgetID uint) ([]*budget.LineItem, error) {
	var itemModels []models.LineItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("presupuesto_id = ?", budgetID).
		Order("id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load budget items: %w", err)
	}

	items := make([]*budget.LineItem, len(itemModels))
	for i, model := range itemModels {
		li, err := r.mapper.LineItemToDomain(&model)
		if err != nil {
			return nil, err
		}
		items[i] = li
	}

	return items, nil
}

// ReplaceItems swaps the full line-item set of a budget: delete everything,
// then insert the new lines. An empty slice just clears the budget.
func (r *BudgetRepository) ReplaceItems(ctx context.Context, budgetID uint, items []*budget.LineItem) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("presupuesto_id = ?", budgetID).
		Delete(&models.LineItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear budget items: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*models.LineItemModel, len(items))
	for i, li := range items {
		itemModels[i] = r.mapper.LineItemToModel(li)
	}

	if err := tx.Create(&itemModels).Error; err != nil {
		return fmt.Errorf("failed to save budget items: %w", err)
	}

	for i, li := range items {
		if err := li.SetID(itemModels[i].ID); err != nil {
			return err
		}
	}

	return nil
}
