package usecases

import (
	"context"
	"sort"
	"strings"

	"fixdesk/internal/domain/profile"
	"fixdesk/internal/domain/technician"
	"fixdesk/internal/shared/logger"
)

type TechnicianItem struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

type ListTechniciansResult struct {
	Items []TechnicianItem
}

// ListTechniciansUseCase syncs the login profiles into the technicians
// table and returns the active ones. Profiles without a technician row get
// one created on the fly; inactive technicians stay hidden.
type ListTechniciansUseCase struct {
	profileRepo    profile.ProfileRepository
	technicianRepo technician.TechnicianRepository
	logger         logger.Interface
}

func NewListTechniciansUseCase(
	profileRepo profile.ProfileRepository,
	technicianRepo technician.TechnicianRepository,
	logger logger.Interface,
) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{
		profileRepo:    profileRepo,
		technicianRepo: technicianRepo,
		logger:         logger,
	}
}

func (uc *ListTechniciansUseCase) Execute(ctx context.Context) (*ListTechniciansResult, error) {
	profiles, err := uc.profileRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(profiles))
	seenEmail := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if !p.HasUsableEmail() {
			continue
		}
		email := strings.TrimSpace(p.Email())
		key := strings.ToLower(email)
		if seenEmail[key] {
			continue
		}
		seenEmail[key] = true
		emails = append(emails, email)
	}
	if len(emails) == 0 {
		return &ListTechniciansResult{Items: []TechnicianItem{}}, nil
	}

	existing, err := uc.technicianRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byEmail := make(map[string]*technician.Technician, len(existing))
	for _, t := range existing {
		byEmail[strings.ToLower(t.Email())] = t
	}

	items := make([]TechnicianItem, 0, len(emails))
	seenID := make(map[uint]bool, len(emails))
	for _, email := range emails {
		tech := byEmail[strings.ToLower(email)]
		if tech == nil {
			tech = uc.createTechnician(ctx, email)
			if tech == nil {
				continue
			}
			byEmail[strings.ToLower(email)] = tech
		}
		if !tech.IsActive() || seenID[tech.ID()] {
			continue
		}
		seenID[tech.ID()] = true
		items = append(items, TechnicianItem{ID: tech.ID(), Label: tech.Label()})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Label < items[j].Label })

	return &ListTechniciansResult{Items: items}, nil
}

// createTechnician makes the missing row for a profile email. Failures are
// skipped instead of failing the listing.
func (uc *ListTechniciansUseCase) createTechnician(ctx context.Context, email string) *technician.Technician {
	tech, err := technician.NewTechnicianFromEmail(email)
	if err != nil {
		uc.logger.Warnw("technician sync skipped", "email", email, "error", err)
		return nil
	}
	if err := uc.technicianRepo.Save(ctx, tech); err != nil {
		uc.logger.Warnw("technician sync failed", "email", email, "error", err)
		return nil
	}
	return tech
}
