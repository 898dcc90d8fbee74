package usecases

import (
	"context"

	"fixdesk/internal/domain/client"
	"fixdesk/internal/domain/delivery"
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
	FindByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) FindByNumber(ctx context.Context, number int64) (*ticket.Ticket, error) {
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
func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockClientRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*client.Client, error)
	UpdateFunc   func(ctx context.Context, c *client.Client) error
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error { return c.SetID(1) }
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

func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

type mockDeliveryRepository struct {
	SaveFunc                  func(ctx context.Context, d *delivery.Delivery) error
	UpdateFunc                func(ctx context.Context, d *delivery.Delivery) error
	FindLatestByTicketIDFunc  func(ctx context.Context, ticketID uint) (*delivery.Delivery, error)
	DeleteOlderDuplicatesFunc func(ctx context.Context, ticketID, keepID uint) error
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
	return nil
}
