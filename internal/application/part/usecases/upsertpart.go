package usecases

import (
	"context"

	"fixdesk/internal/domain/part"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

// UpsertPartCommand creates a catalog part when PartID is zero, otherwise
// updates the existing row. ActiveSet tells whether the request carried an
// explicit active flag; without it a finite stock of zero deactivates the
// part automatically.
type UpsertPartCommand struct {
	PartID    uint
	Name      string
	Quantity  string
	Stock     string
	Category  string
	Price     string
	Active    bool
	ActiveSet bool
}

type UpsertPartResult struct {
	PartID   uint
	Name     string
	Quantity string
	Stock    string
	Category string
	Price    string
	Active   bool
	Created  bool
}

type UpsertPartUseCase struct {
	partRepo part.PartRepository
	logger   logger.Interface
}

func NewUpsertPartUseCase(partRepo part.PartRepository, logger logger.Interface) *UpsertPartUseCase {
	return &UpsertPartUseCase{partRepo: partRepo, logger: logger}
}

func (uc *UpsertPartUseCase) Execute(ctx context.Context, cmd UpsertPartCommand) (*UpsertPartResult, error) {
	price := utils.NormalizeAmountText(cmd.Price)
	active := cmd.Active
	if !cmd.ActiveSet {
		active = true
	}

	if cmd.PartID == 0 {
		p, err := part.NewPart(cmd.Name, cmd.Quantity, cmd.Stock, cmd.Category, price, active)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.partRepo.Save(ctx, p); err != nil {
			return nil, err
		}
		uc.logger.Infow("part created", "part_id", p.ID(), "name", p.Name())
		return buildResult(p, true), nil
	}

	p, err := uc.partRepo.FindByID(ctx, cmd.PartID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("Repuesto no encontrado")
	}
	if err := p.Update(cmd.Name, cmd.Quantity, cmd.Stock, cmd.Category, price, active, cmd.ActiveSet); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.partRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return buildResult(p, false), nil
}

func buildResult(p *part.Part, created bool) *UpsertPartResult {
	return &UpsertPartResult{
		PartID:   p.ID(),
		Name:     p.Name(),
		Quantity: p.Quantity(),
		Stock:    p.Stock(),
		Category: p.Category(),
		Price:    p.Price(),
		Active:   p.IsActive(),
		Created:  created,
	}
}
