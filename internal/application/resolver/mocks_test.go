package resolver

import (
	"context"

	"fixdesk/internal/domain/client"
	"fixdesk/internal/domain/printer"
	"fixdesk/internal/domain/technician"
	"fixdesk/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (nopLogger) Fatal(msg string, args ...any)                   {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

type mockClientRepository struct {
	SaveFunc             func(ctx context.Context, c *client.Client) error
	UpdateFunc           func(ctx context.Context, c *client.Client) error
	FindByIDFunc         func(ctx context.Context, id uint) (*client.Client, error)
	FindByNationalIDFunc func(ctx context.Context, nationalID string) (*client.Client, error)
	FindByFullNameFunc   func(ctx context.Context, fullName string) (*client.Client, error)
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) FindByID(ctx context.Context, id uint) (*client.Client, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClientRepository) FindByNationalID(ctx context.Context, nationalID string) (*client.Client, error) {
	if m.FindByNationalIDFunc != nil {
		return m.FindByNationalIDFunc(ctx, nationalID)
	}
	return nil, nil
}

func (m *mockClientRepository) FindByFullName(ctx context.Context, fullName string) (*client.Client, error) {
	if m.FindByFullNameFunc != nil {
		return m.FindByFullNameFunc(ctx, fullName)
	}
	return nil, nil
}

type mockPrinterRepository struct {
	SaveFunc               func(ctx context.Context, p *printer.Printer) error
	UpdateFunc             func(ctx context.Context, p *printer.Printer) error
	FindByIDFunc           func(ctx context.Context, id uint) (*printer.Printer, error)
	FindBySerialFunc       func(ctx context.Context, serial string) (*printer.Printer, error)
	FindByModelMachineFunc func(ctx context.Context, model, machine string) (*printer.Printer, error)
}

func (m *mockPrinterRepository) Save(ctx context.Context, p *printer.Printer) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPrinterRepository) Update(ctx context.Context, p *printer.Printer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPrinterRepository) FindByID(ctx context.Context, id uint) (*printer.Printer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPrinterRepository) FindBySerial(ctx context.Context, serial string) (*printer.Printer, error) {
	if m.FindBySerialFunc != nil {
		return m.FindBySerialFunc(ctx, serial)
	}
	return nil, nil
}

func (m *mockPrinterRepository) FindByModelMachine(ctx context.Context, model, machine string) (*printer.Printer, error) {
	if m.FindByModelMachineFunc != nil {
		return m.FindByModelMachineFunc(ctx, model, machine)
	}
	return nil, nil
}

type mockTechnicianRepository struct {
	SaveFunc        func(ctx context.Context, t *technician.Technician) error
	UpdateFunc      func(ctx context.Context, t *technician.Technician) error
	FindByIDFunc    func(ctx context.Context, id uint) (*technician.Technician, error)
	FindByEmailFunc func(ctx context.Context, email string) (*technician.Technician, error)
	FindAllFunc     func(ctx context.Context) ([]*technician.Technician, error)
}

func (m *mockTechnicianRepository) Save(ctx context.Context, t *technician.Technician) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTechnicianRepository) Update(ctx context.Context, t *technician.Technician) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTechnicianRepository) FindByID(ctx context.Context, id uint) (*technician.Technician, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) FindByEmail(ctx context.Context, email string) (*technician.Technician, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) FindAll(ctx context.Context) ([]*technician.Technician, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}
