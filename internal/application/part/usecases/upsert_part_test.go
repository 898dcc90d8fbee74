package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/part"
	"fixdesk/internal/shared/errors"
)

func catalogPart(t *testing.T, id uint, name, stock string, active bool) *part.Part {
	t.Helper()
	now := time.Now()
	p, err := part.ReconstructPart(id, name, "1", stock, "Hotend", "1800", active, now, now)
	require.NoError(t, err)
	return p
}

func TestUpsertPart_CreatesWhenNoID(t *testing.T) {
	var saved *part.Part
	repo := &mockPartRepository{
		SaveFunc: func(ctx context.Context, p *part.Part) error {
			saved = p
			return p.SetID(7)
		},
	}

	uc := NewUpsertPartUseCase(repo, nopLogger{})
	result, err := uc.Execute(context.Background(), UpsertPartCommand{
		Name:     "Hotend V6",
		Quantity: "1",
		Stock:    "12",
		Category: "Hotend",
		Price:    "$ 1.820,50",
	})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, uint(7), result.PartID)
	require.NotNil(t, saved)
	assert.Equal(t, "1.820,50", saved.Price())
	assert.True(t, saved.IsActive())
}

func TestUpsertPart_RequiresName(t *testing.T) {
	uc := NewUpsertPartUseCase(&mockPartRepository{}, nopLogger{})

	_, err := uc.Execute(context.Background(), UpsertPartCommand{Name: "  "})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation_error")
}

func TestUpsertPart_UpdatesExistingRow(t *testing.T) {
	var updated *part.Part
	repo := &mockPartRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*part.Part, error) {
			return catalogPart(t, id, "Hotend V6", "12", true), nil
		},
		UpdateFunc: func(ctx context.Context, p *part.Part) error {
			updated = p
			return nil
		},
	}

	uc := NewUpsertPartUseCase(repo, nopLogger{})
	result, err := uc.Execute(context.Background(), UpsertPartCommand{
		PartID:   7,
		Name:     "Hotend V6 Plus",
		Quantity: "2",
		Stock:    "8",
		Category: "Hotend",
		Price:    "2000",
	})

	require.NoError(t, err)
	assert.False(t, result.Created)
	require.NotNil(t, updated)
	assert.Equal(t, "Hotend V6 Plus", updated.Name())
	assert.Equal(t, "2.000", updated.Price())
}

func TestUpsertPart_ZeroStockDeactivates(t *testing.T) {
	repo := &mockPartRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*part.Part, error) {
			return catalogPart(t, id, "Hotend V6", "12", true), nil
		},
	}

	uc := NewUpsertPartUseCase(repo, nopLogger{})
	result, err := uc.Execute(context.Background(), UpsertPartCommand{
		PartID: 7,
		Name:   "Hotend V6",
		Stock:  "0",
	})

	require.NoError(t, err)
	assert.False(t, result.Active)
}

func TestUpsertPart_ExplicitActiveWinsOverZeroStock(t *testing.T) {
	repo := &mockPartRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*part.Part, error) {
			return catalogPart(t, id, "Hotend V6", "12", true), nil
		},
	}

	uc := NewUpsertPartUseCase(repo, nopLogger{})
	result, err := uc.Execute(context.Background(), UpsertPartCommand{
		PartID:    7,
		Name:      "Hotend V6",
		Stock:     "0",
		Active:    true,
		ActiveSet: true,
	})

	require.NoError(t, err)
	assert.True(t, result.Active)
}

func TestUpsertPart_InfiniteStockStaysActive(t *testing.T) {
	repo := &mockPartRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*part.Part, error) {
			return catalogPart(t, id, "Teflón", "12", true), nil
		},
	}

	uc := NewUpsertPartUseCase(repo, nopLogger{})
	result, err := uc.Execute(context.Background(), UpsertPartCommand{
		PartID: 7,
		Name:   "Teflón",
		Stock:  "∞",
	})

	require.NoError(t, err)
	assert.True(t, result.Active)
}

func TestUpsertPart_UnknownIDIsNotFound(t *testing.T) {
	repo := &mockPartRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*part.Part, error) {
			return nil, nil
		},
	}

	uc := NewUpsertPartUseCase(repo, nopLogger{})
	_, err := uc.Execute(context.Background(), UpsertPartCommand{PartID: 99, Name: "X"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestUpsertPart_LookupErrorIsNotMaskedAsNotFound(t *testing.T) {
	repo := &mockPartRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*part.Part, error) {
			return nil, fmt.Errorf("connection reset")
		},
	}

	uc := NewUpsertPartUseCase(repo, nopLogger{})
	_, err := uc.Execute(context.Background(), UpsertPartCommand{PartID: 7, Name: "Hotend V6"})

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "not_found")
	assert.Contains(t, err.Error(), "connection reset")
}
