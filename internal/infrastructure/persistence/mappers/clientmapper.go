package mappers

import (
	"fixdesk/internal/domain/client"
	"fixdesk/internal/infrastructure/persistence/models"
)

// ClientMapper handles the conversion between Client domain entities and persistence models.
type ClientMapper interface {
	ToModel(c *client.Client) *models.ClientModel
	ToDomain(model *models.ClientModel) (*client.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToModel(c *client.Client) *models.ClientModel {
	model := &models.ClientModel{
		ID:        c.ID(),
		FullName:  c.FullName(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		WhatsApp:  c.Whatsapp(),
		Email:     c.Email(),
		Comments:  c.Comments(),
		Address:   c.Address(),
		Locality:  c.Locality(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}

	// Empty documents are stored as NULL so they do not collide on the
	// unique index.
	if doc := c.NationalID(); doc != "" {
		model.NationalID = &doc
	}

	return model
}

func (m *ClientMapperImpl) ToDomain(model *models.ClientModel) (*client.Client, error) {
	nationalID := ""
	if model.NationalID != nil {
		nationalID = *model.NationalID
	}

	return client.ReconstructClient(
		model.ID,
		model.FullName,
		model.FirstName,
		model.LastName,
		nationalID,
		model.WhatsApp,
		model.Email,
		model.Comments,
		model.Address,
		model.Locality,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
