package usecases

import (
	"context"

	"fixdesk/internal/domain/part"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type DeletePartCommand struct {
	PartID uint
}

// DeletePartResult reports how the removal went through: "hard" when the
// row was deleted, "soft" when budget lines still reference the part and
// it was deactivated instead.
type DeletePartResult struct {
	PartID uint
	Mode   string
}

type DeletePartUseCase struct {
	partRepo part.PartRepository
	logger   logger.Interface
}

func NewDeletePartUseCase(partRepo part.PartRepository, logger logger.Interface) *DeletePartUseCase {
	return &DeletePartUseCase{partRepo: partRepo, logger: logger}
}

func (uc *DeletePartUseCase) Execute(ctx context.Context, cmd DeletePartCommand) (*DeletePartResult, error) {
	p, err := uc.partRepo.FindByID(ctx, cmd.PartID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("Repuesto no encontrado")
	}

	err = uc.partRepo.Delete(ctx, p.ID())
	if err == nil {
		return &DeletePartResult{PartID: p.ID(), Mode: "hard"}, nil
	}
	if !errors.IsForeignKeyConstraintError(err) {
		return nil, err
	}

	// Referenced by budget line items: keep the row for history and hide
	// it from the catalog instead.
	p.Deactivate()
	if err := uc.partRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.logger.Infow("part soft deleted", "part_id", p.ID())
	return &DeletePartResult{PartID: p.ID(), Mode: "soft"}, nil
}
