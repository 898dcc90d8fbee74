package printer

import "context"

type PrinterRepository interface {
	Save(ctx context.Context, p *Printer) error
	Update(ctx context.Context, p *Printer) error
	FindByID(ctx context.Context, id uint) (*Printer, error)
	// FindBySerial and FindByModelMachine return nil, nil when nothing
	// matches.
	FindBySerial(ctx context.Context, serial string) (*Printer, error)
	FindByModelMachine(ctx context.Context, model, machine string) (*Printer, error)
}
