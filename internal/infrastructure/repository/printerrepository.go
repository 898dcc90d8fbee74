package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixdesk/internal/domain/printer"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	db "fixdesk/internal/shared/db"
)

type PrinterRepository struct {
	db     *gorm.DB
	mapper mappers.PrinterMapper
}

func NewPrinterRepository(db *gorm.DB) *PrinterRepository {
	return &PrinterRepository{
		db:     db,
		mapper: mappers.NewPrinterMapper(),
	}
}

func (r *PrinterRepository) Save(ctx context.Context, p *printer.Printer) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save printer: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *PrinterRepository) Update(ctx context.Context, p *printer.Printer) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PrinterModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update printer: %w", result.Error)
	}

	return nil
}

func (r *PrinterRepository) FindByID(ctx context.Context, id uint) (*printer.Printer, error) {
	var model models.PrinterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("printer not found")
		}
		return nil, fmt.Errorf("failed to find printer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindBySerial matches the serial number exactly. Returns nil without error
// when no printer carries the serial.
func (r *PrinterRepository) FindBySerial(ctx context.Context, serial string) (*printer.Printer, error) {
	if serial == "" {
		return nil, nil
	}

	var model models.PrinterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("numero_de_serie = ?", serial).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find printer by serial: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindByModelMachine matches on the model and machine pair, both
// case-insensitively. Returns nil without error when nothing matches.
func (r *PrinterRepository) FindByModelMachine(ctx context.Context, model, machine string) (*printer.Printer, error) {
	var pm models.PrinterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("LOWER(modelo) = LOWER(?) AND LOWER(maquina) = LOWER(?)", model, machine).
		Order("id ASC").
		First(&pm).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find printer by model: %w", err)
	}

	return r.mapper.ToDomain(&pm)
}
