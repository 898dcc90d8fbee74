package usecases

import (
	"context"

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

type mockTicketRepository struct {
	StatRowsFunc func(ctx context.Context, stampPatterns []string) ([]ticket.StatRow, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) FindByNumber(ctx context.Context, number int64) (*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error { return nil }
func (m *mockTicketRepository) DeleteCommentsByTicketID(ctx context.Context, ticketID uint) error {
	return nil
}
func (m *mockTicketRepository) MaxNumber(ctx context.Context) (int64, error) { return 0, nil }
func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	return nil
}

func (m *mockTicketRepository) StatRows(ctx context.Context, stampPatterns []string) ([]ticket.StatRow, error) {
	if m.StatRowsFunc != nil {
		return m.StatRowsFunc(ctx, stampPatterns)
	}
	return nil, nil
}
