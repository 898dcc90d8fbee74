package usecases

import (
	"context"

	"fixdesk/internal/domain/budget"
	"fixdesk/internal/domain/client"
	"fixdesk/internal/domain/part"
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

type fakeTx struct{}

func (fakeTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockTicketRepository struct {
	FindByNumberFunc func(ctx context.Context, number int64) (*ticket.Ticket, error)
	UpdateFunc       func(ctx context.Context, t *ticket.Ticket) error
	SaveCommentFunc  func(ctx context.Context, c *ticket.Comment) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error { return t.SetID(1) }
func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error { return nil }
func (m *mockTicketRepository) DeleteCommentsByTicketID(ctx context.Context, ticketID uint) error {
	return nil
}
func (m *mockTicketRepository) MaxNumber(ctx context.Context) (int64, error) { return 0, nil }
func (m *mockTicketRepository) StatRows(ctx context.Context, stampPatterns []string) ([]ticket.StatRow, error) {
	return nil, nil
}

func (m *mockTicketRepository) FindByNumber(ctx context.Context, number int64) (*ticket.Ticket, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(ctx, c)
	}
	return c.SetID(1)
}

type mockBudgetRepository struct {
	SaveFunc                  func(ctx context.Context, b *budget.Budget) error
	UpdateFunc                func(ctx context.Context, b *budget.Budget) error
	FindLatestByTicketIDFunc  func(ctx context.Context, ticketID uint) (*budget.Budget, error)
	DeleteOlderDuplicatesFunc func(ctx context.Context, ticketID, keepID uint) error
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

type mockPartRepository struct {
	FindByIDsFunc func(ctx context.Context, ids []uint) ([]*part.Part, error)
}

func (m *mockPartRepository) Save(ctx context.Context, p *part.Part) error   { return p.SetID(1) }
func (m *mockPartRepository) Update(ctx context.Context, p *part.Part) error { return nil }
func (m *mockPartRepository) FindByID(ctx context.Context, id uint) (*part.Part, error) {
	return nil, nil
}
func (m *mockPartRepository) List(ctx context.Context, filter part.Filter) ([]*part.Part, int64, error) {
	return nil, 0, nil
}
func (m *mockPartRepository) Categories(ctx context.Context) ([]string, error) { return nil, nil }
func (m *mockPartRepository) Delete(ctx context.Context, id uint) error        { return nil }

func (m *mockPartRepository) FindByIDs(ctx context.Context, ids []uint) ([]*part.Part, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

type mockClientRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*client.Client, error)
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error   { return c.SetID(1) }
func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error { return nil }
func (m *mockClientRepository) FindByNationalID(ctx context.Context, nationalID string) (*client.Client, error) {
	return nil, nil
}
func (m *mockClientRepository) FindByFullName(ctx context.Context, fullName string) (*client.Client, error) {
	return nil, nil
}

func (m *mockClientRepository) FindByID(ctx context.Context, id uint) (*client.Client, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockPrinterRepository struct{}

func (m *mockPrinterRepository) Save(ctx context.Context, p *printer.Printer) error {
	return p.SetID(1)
}
func (m *mockPrinterRepository) Update(ctx context.Context, p *printer.Printer) error { return nil }
func (m *mockPrinterRepository) FindByID(ctx context.Context, id uint) (*printer.Printer, error) {
	return nil, nil
}
func (m *mockPrinterRepository) FindBySerial(ctx context.Context, serial string) (*printer.Printer, error) {
	return nil, nil
}
func (m *mockPrinterRepository) FindByModelMachine(ctx context.Context, model, machine string) (*printer.Printer, error) {
	return nil, nil
}

type mockTechnicianRepository struct {
	FindByEmailFunc func(ctx context.Context, email string) (*technician.Technician, error)
}

func (m *mockTechnicianRepository) Save(ctx context.Context, t *technician.Technician) error {
	return t.SetID(1)
}
func (m *mockTechnicianRepository) Update(ctx context.Context, t *technician.Technician) error {
	return nil
}
func (m *mockTechnicianRepository) FindByID(ctx context.Context, id uint) (*technician.Technician, error) {
	return nil, nil
}
func (m *mockTechnicianRepository) FindAll(ctx context.Context) ([]*technician.Technician, error) {
	return nil, nil
}

func (m *mockTechnicianRepository) FindByEmail(ctx context.Context, email string) (*technician.Technician, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

type mockNotifier struct {
	Calls []int64
	Err   error
}

func (m *mockNotifier) SendBudgetSentEmail(to string, ticketNumber int64, amount, link string) error {
	m.Calls = append(m.Calls, ticketNumber)
	return m.Err
}
