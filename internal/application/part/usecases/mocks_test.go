package usecases

import (
	"context"

	"fixdesk/internal/domain/part"
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

type mockPartRepository struct {
	SaveFunc       func(ctx context.Context, p *part.Part) error
	UpdateFunc     func(ctx context.Context, p *part.Part) error
	FindByIDFunc   func(ctx context.Context, id uint) (*part.Part, error)
	ListFunc       func(ctx context.Context, filter part.Filter) ([]*part.Part, int64, error)
	CategoriesFunc func(ctx context.Context) ([]string, error)
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *mockPartRepository) Save(ctx context.Context, p *part.Part) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockPartRepository) Update(ctx context.Context, p *part.Part) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPartRepository) FindByID(ctx context.Context, id uint) (*part.Part, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPartRepository) FindByIDs(ctx context.Context, ids []uint) ([]*part.Part, error) {
	return nil, nil
}

func (m *mockPartRepository) List(ctx context.Context, filter part.Filter) ([]*part.Part, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockPartRepository) Categories(ctx context.Context) ([]string, error) {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockPartRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
