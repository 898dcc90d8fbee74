package mappers

import (
	"fixdesk/internal/domain/printer"
	"fixdesk/internal/infrastructure/persistence/models"
)

// PrinterMapper handles the conversion between Printer domain entities and persistence models.
type PrinterMapper interface {
	ToModel(p *printer.Printer) *models.PrinterModel
	ToDomain(model *models.PrinterModel) (*printer.Printer, error)
}

type PrinterMapperImpl struct{}

func NewPrinterMapper() PrinterMapper {
	return &PrinterMapperImpl{}
}

func (m *PrinterMapperImpl) ToModel(p *printer.Printer) *models.PrinterModel {
	return &models.PrinterModel{
		ID:         p.ID(),
		Model:      p.Model(),
		Machine:    p.Machine(),
		Serial:     p.SerialNumber(),
		NozzleSize: p.NozzleSize(),
		CreatedAt:  p.CreatedAt().UnixMilli(),
		UpdatedAt:  p.UpdatedAt().UnixMilli(),
	}
}

func (m *PrinterMapperImpl) ToDomain(model *models.PrinterModel) (*printer.Printer, error) {
	return printer.ReconstructPrinter(
		model.ID,
		model.Model,
		model.Machine,
		model.Serial,
		model.NozzleSize,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
