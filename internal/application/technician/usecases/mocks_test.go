package usecases

import (
	"context"

	"fixdesk/internal/domain/profile"
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

type mockProfileRepository struct {
	FindByEmailFunc   func(ctx context.Context, email string) (*profile.Profile, error)
	FindAllActiveFunc func(ctx context.Context) ([]*profile.Profile, error)
}

func (m *mockProfileRepository) FindByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockProfileRepository) FindAllActive(ctx context.Context) ([]*profile.Profile, error) {
	if m.FindAllActiveFunc != nil {
		return m.FindAllActiveFunc(ctx)
	}
	return nil, nil
}

type mockTechnicianRepository struct {
	SaveFunc    func(ctx context.Context, t *technician.Technician) error
	FindAllFunc func(ctx context.Context) ([]*technician.Technician, error)
}

func (m *mockTechnicianRepository) Save(ctx context.Context, t *technician.Technician) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTechnicianRepository) Update(ctx context.Context, t *technician.Technician) error {
	return nil
}

func (m *mockTechnicianRepository) FindByID(ctx context.Context, id uint) (*technician.Technician, error) {
	return nil, nil
}

func (m *mockTechnicianRepository) FindByEmail(ctx context.Context, email string) (*technician.Technician, error) {
	return nil, nil
}

func (m *mockTechnicianRepository) FindAll(ctx context.Context) ([]*technician.Technician, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}
