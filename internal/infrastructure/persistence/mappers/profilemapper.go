package mappers

import (
	"fixdesk/internal/domain/profile"
	"fixdesk/internal/infrastructure/persistence/models"
)

// ProfileMapper converts profile persistence models to domain entities.
// Profiles are provisioned by the identity provider, so there is no
// ToModel direction.
type ProfileMapper interface {
	ToDomain(model *models.ProfileModel) (*profile.Profile, error)
}

type ProfileMapperImpl struct{}

func NewProfileMapper() ProfileMapper {
	return &ProfileMapperImpl{}
}

func (m *ProfileMapperImpl) ToDomain(model *models.ProfileModel) (*profile.Profile, error) {
	return profile.ReconstructProfile(
		model.ID,
		model.Email,
		model.Role,
		model.Admin,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
