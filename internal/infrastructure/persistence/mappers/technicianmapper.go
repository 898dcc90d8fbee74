package mappers

import (
	"fixdesk/internal/domain/technician"
	"fixdesk/internal/infrastructure/persistence/models"
)

// TechnicianMapper handles the conversion between Technician domain entities and persistence models.
type TechnicianMapper interface {
	ToModel(t *technician.Technician) *models.TechnicianModel
	ToDomain(model *models.TechnicianModel) (*technician.Technician, error)
}

type TechnicianMapperImpl struct{}

func NewTechnicianMapper() TechnicianMapper {
	return &TechnicianMapperImpl{}
}

func (m *TechnicianMapperImpl) ToModel(t *technician.Technician) *models.TechnicianModel {
	return &models.TechnicianModel{
		ID:        t.ID(),
		FirstName: t.FirstName(),
		LastName:  t.LastName(),
		Email:     t.Email(),
		Active:    t.IsActive(),
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}
}

func (m *TechnicianMapperImpl) ToDomain(model *models.TechnicianModel) (*technician.Technician, error) {
	return technician.ReconstructTechnician(
		model.ID,
		model.FirstName,
		model.LastName,
		model.Email,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
