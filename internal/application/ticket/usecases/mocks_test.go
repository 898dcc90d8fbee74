package usecases

import (
	"context"
	"io"

	"fixdesk/internal/domain/budget"
	"fixdesk/internal/domain/client"
	"fixdesk/internal/domain/delivery"
	"fixdesk/internal/domain/printer"
	"fixdesk/internal/domain/technician"
	"fixdesk/internal/domain/ticket"
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

// fakeTx runs the callback directly without a database.
type fakeTx struct{}

func (fakeTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockTicketRepository struct {
	SaveFunc                     func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                   func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc                 func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByNumberFunc             func(ctx context.Context, number int64) (*ticket.Ticket, error)
	DeleteFunc                   func(ctx context.Context, id uint) error
	DeleteCommentsByTicketIDFunc func(ctx context.Context, ticketID uint) error
	MaxNumberFunc                func(ctx context.Context) (int64, error)
	StatRowsFunc                 func(ctx context.Context, stampPatterns []string) ([]ticket.StatRow, error)
	SaveCommentFunc              func(ctx context.Context, c *ticket.Comment) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByNumber(ctx context.Context, number int64) (*ticket.Ticket, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) DeleteCommentsByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteCommentsByTicketIDFunc != nil {
		return m.DeleteCommentsByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) MaxNumber(ctx context.Context) (int64, error) {
	if m.MaxNumberFunc != nil {
		return m.MaxNumberFunc(ctx)
	}
	return 0, nil
}

func (m *mockTicketRepository) StatRows(ctx context.Context, stampPatterns []string) ([]ticket.StatRow, error) {
	if m.StatRowsFunc != nil {
		return m.StatRowsFunc(ctx, stampPatterns)
	}
	return nil, nil
}

func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(ctx, c)
	}
	return c.SetID(1)
}

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
	return c.SetID(1)
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
	return p.SetID(1)
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
	return t.SetID(1)
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

type mockBudgetRepository struct {
	SaveFunc                  func(ctx context.Context, b *budget.Budget) error
	UpdateFunc                func(ctx context.Context, b *budget.Budget) error
	FindLatestByTicketIDFunc  func(ctx context.Context, ticketID uint) (*budget.Budget, error)
	DeleteOlderDuplicatesFunc func(ctx context.Context, ticketID, keepID uint) error
	DeleteByTicketIDFunc      func(ctx context.Context, ticketID uint) error
	ItemsByBudgetIDFunc       func(ctx context.Context, budgetID uint) ([]*budget.LineItem, error)
	ReplaceItemsFunc          func(ctx context.Context, budgetID uint, items []*budget.LineItem) error
}

func (m *mockBudgetRepository) Save(ctx context.Context, b *budget.Budget) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, b)
	}
	return b.SetID(1)
}

func (m *mockBudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBudgetRepository) FindLatestByTicketID(ctx context.Context, ticketID uint) (*budget.Budget, error) {
	if m.FindLatestByTicketIDFunc != nil {
		return m.FindLatestByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockBudgetRepository) DeleteOlderDuplicates(ctx context.Context, ticketID, keepID uint) error {
	if m.DeleteOlderDuplicatesFunc != nil {
		return m.DeleteOlderDuplicatesFunc(ctx, ticketID, keepID)
	}
	return nil
}

func (m *mockBudgetRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockBudgetRepository) ItemsByBudgetID(ctx context.Context, budgetID uint) ([]*budget.LineItem, error) {
	if m.ItemsByBudgetIDFunc != nil {
		return m.ItemsByBudgetIDFunc(ctx, budgetID)
	}
	return nil, nil
}

func (m *mockBudgetRepository) ReplaceItems(ctx context.Context, budgetID uint, items []*budget.LineItem) error {
	if m.ReplaceItemsFunc != nil {
		return m.ReplaceItemsFunc(ctx, budgetID, items)
	}
	return nil
}

type mockDeliveryRepository struct {
	SaveFunc                  func(ctx context.Context, d *delivery.Delivery) error
	UpdateFunc                func(ctx context.Context, d *delivery.Delivery) error
	FindLatestByTicketIDFunc  func(ctx context.Context, ticketID uint) (*delivery.Delivery, error)
	DeleteOlderDuplicatesFunc func(ctx context.Context, ticketID, keepID uint) error
	DeleteByTicketIDFunc      func(ctx context.Context, ticketID uint) error
}

func (m *mockDeliveryRepository) Save(ctx context.Context, d *delivery.Delivery) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return d.SetID(1)
}

func (m *mockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDeliveryRepository) FindLatestByTicketID(ctx context.Context, ticketID uint) (*delivery.Delivery, error) {
	if m.FindLatestByTicketIDFunc != nil {
		return m.FindLatestByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockDeliveryRepository) DeleteOlderDuplicates(ctx context.Context, ticketID, keepID uint) error {
	if m.DeleteOlderDuplicatesFunc != nil {
		return m.DeleteOlderDuplicatesFunc(ctx, ticketID, keepID)
	}
	return nil
}

func (m *mockDeliveryRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockImageStore struct {
	SaveFunc   func(ctx context.Context, name string, r io.Reader) (string, error)
	RemoveFunc func(ctx context.Context, name string) error
	Removed    []string
	SavedNames []string
}

func (m *mockImageStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	m.SavedNames = append(m.SavedNames, name)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, name, r)
	}
	return "/uploads/" + name, nil
}

func (m *mockImageStore) Remove(ctx context.Context, name string) error {
	m.Removed = append(m.Removed, name)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, name)
	}
	return nil
}

func (m *mockImageStore) RemoveAll(ctx context.Context, names ...string) {
	m.Removed = append(m.Removed, names...)
}

type mockNotifier struct {
	CreatedCalls []int64
	ReadyCalls   []int64
	Err          error
}

func (m *mockNotifier) SendTicketCreatedEmail(ticketNumber int64, clientName, model string) error {
	m.CreatedCalls = append(m.CreatedCalls, ticketNumber)
	return m.Err
}

func (m *mockNotifier) SendMachineReadyEmail(to string, ticketNumber int64, model string) error {
	m.ReadyCalls = append(m.ReadyCalls, ticketNumber)
	return m.Err
}
