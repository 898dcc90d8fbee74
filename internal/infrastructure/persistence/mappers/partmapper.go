package mappers

import (
	"fixdesk/internal/domain/part"
	"fixdesk/internal/infrastructure/persistence/models"
)

// PartMapper handles the conversion between Part domain entities and persistence models.
type PartMapper interface {
	ToModel(p *part.Part) *models.PartModel
	ToDomain(model *models.PartModel) (*part.Part, error)
}

type PartMapperImpl struct{}

func NewPartMapper() PartMapper {
	return &PartMapperImpl{}
}

func (m *PartMapperImpl) ToModel(p *part.Part) *models.PartModel {
	return &models.PartModel{
		ID:        p.ID(),
		Name:      p.Name(),
		Quantity:  p.Quantity(),
		Stock:     p.Stock(),
		Category:  p.Category(),
		Price:     p.Price(),
		Active:    p.IsActive(),
		CreatedAt: p.CreatedAt().UnixMilli(),
		UpdatedAt: p.UpdatedAt().UnixMilli(),
	}
}

func (m *PartMapperImpl) ToDomain(model *models.PartModel) (*part.Part, error) {
	return part.ReconstructPart(
		model.ID,
		model.Name,
		model.Quantity,
		model.Stock,
		model.Category,
		model.Price,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
