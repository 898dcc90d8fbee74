package mappers

import (
	"fixdesk/internal/domain/budget"
	"fixdesk/internal/infrastructure/persistence/models"
)

// BudgetMapper handles the conversion between Budget domain entities and persistence models.
type BudgetMapper interface {
	ToModel(b *budget.Budget) *models.BudgetModel
	ToDomain(model *models.BudgetModel) (*budget.Budget, error)

	LineItemToModel(li *budget.LineItem) *models.LineItemModel
	LineItemToDomain(model *models.LineItemModel) (*budget.LineItem, error)
}

type BudgetMapperImpl struct{}

func NewBudgetMapper() BudgetMapper {
	return &BudgetMapperImpl{}
}

func (m *BudgetMapperImpl) ToModel(b *budget.Budget) *models.BudgetModel {
	return &models.BudgetModel{
		ID:             b.ID(),
		TicketID:       b.TicketID(),
		Amount:         b.Amount(),
		Link:           b.Link(),
		Approved:       b.Approved(),
		WarrantyActive: b.WarrantyActive(),
		CoversWarranty: b.CoversWarranty(),
		AdminNotes:     b.AdminNotes(),
		BudgetDate:     timePtrToMillis(b.BudgetDate()),
		CreatedAt:      b.CreatedAt().UnixMilli(),
		UpdatedAt:      b.UpdatedAt().UnixMilli(),
	}
}

func (m *BudgetMapperImpl) ToDomain(model *models.BudgetModel) (*budget.Budget, error) {
	return budget.ReconstructBudget(
		model.ID,
		model.TicketID,
		model.Amount,
		model.Link,
		model.Approved,
		model.WarrantyActive,
		model.CoversWarranty,
		model.AdminNotes,
		millisPtrToTime(model.BudgetDate),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *BudgetMapperImpl) LineItemToModel(li *budget.LineItem) *models.LineItemModel {
	return &models.LineItemModel{
		ID:        li.ID(),
		BudgetID:  li.BudgetID(),
		PartID:    li.PartID(),
		Quantity:  li.Quantity(),
		UnitPrice: li.UnitPrice(),
	}
}

func (m *BudgetMapperImpl) LineItemToDomain(model *models.LineItemModel) (*budget.LineItem, error) {
	return budget.ReconstructLineItem(
		model.ID,
		model.BudgetID,
		model.PartID,
		model.Quantity,
		model.UnitPrice,
	)
}
