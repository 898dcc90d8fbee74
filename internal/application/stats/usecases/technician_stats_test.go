package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/ticket"
)

func techRow(id uint, model, repairedMachine, state, repairDate, techEmail string) ticket.StatRow {
	return ticket.StatRow{
		ID:              id,
		Number:          int64(id),
		PrinterModel:    model,
		RepairedMachine: repairedMachine,
		State:           state,
		RepairDate:      repairDate,
		TechnicianEmail: techEmail,
		Stamp:           "3/15/2025, 10:30:00 AM",
	}
}

func TestTechnicianStats_RequiresAdmin(t *testing.T) {
	uc := NewTechnicianStatsUseCase(&mockTicketRepository{}, nopLogger{})

	_, err := uc.Execute(context.Background(), TechnicianStatsQuery{Technician: "pedro"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestTechnicianStats_RequiresTechnician(t *testing.T) {
	uc := NewTechnicianStatsUseCase(&mockTicketRepository{}, nopLogger{})

	_, err := uc.Execute(context.Background(), TechnicianStatsQuery{IsAdmin: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Falta el técnico")
}

func TestTechnicianStats_FallsBackToSessionEmail(t *testing.T) {
	repo := &mockTicketRepository{
		StatRowsFunc: func(ctx context.Context, stampPatterns []string) ([]ticket.StatRow, error) {
			return []ticket.StatRow{
				techRow(1, "Ender 3", "", "Lista", "", "pedro.gonzalez@taller.com"),
			}, nil
		},
	}
	uc := NewTechnicianStatsUseCase(repo, nopLogger{})

	result, err := uc.Execute(context.Background(), TechnicianStatsQuery{
		IsAdmin:      true,
		SessionEmail: "Pedro.Gonzalez@taller.com",
		Year:         2025,
		Month:        3,
	})

	require.NoError(t, err)
	assert.Equal(t, "pedro.gonzalez", result.Technician)
	assert.Equal(t, 1, result.TotalPrinters)
	assert.Equal(t, 1, result.TotalRepaired)
}

func TestTechnicianStats_CountsRepairedByStateOrDate(t *testing.T) {
	repo := &mockTicketRepository{
		StatRowsFunc: func(ctx context.Context, stampPatterns []string) ([]ticket.StatRow, error) {
			return []ticket.StatRow{
				techRow(1, "Ender 3", "", "Lista", "", "pedro@taller.com"),
				techRow(2, "Prusa MK3", "", "Pendiente", "2025-03-20", "pedro@taller.com"),
				techRow(3, "Anet A8", "", "Pendiente", "", "pedro@taller.com"),
				techRow(4, "Ender 5", "", "Lista", "", "laura@taller.com"),
			}, nil
		},
	}
	uc := NewTechnicianStatsUseCase(repo, nopLogger{})

	result, err := uc.Execute(context.Background(), TechnicianStatsQuery{
		IsAdmin: true, Technician: "pedro", Year: 2025, Month: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalPrinters)
	assert.Equal(t, 2, result.TotalRepaired)
	require.Len(t, result.Items, 3)
	assert.True(t, result.Items[0].Reparada)
	assert.True(t, result.Items[1].Reparada)
	assert.False(t, result.Items[2].Reparada)
	assert.Equal(t, 2025, result.Year)
	assert.Equal(t, 3, result.Month)
}

func TestTechnicianStats_SkipsRowsWithoutMachine(t *testing.T) {
	repo := &mockTicketRepository{
		StatRowsFunc: func(ctx context.Context, stampPatterns []string) ([]ticket.StatRow, error) {
			return []ticket.StatRow{
				techRow(1, "", "", "Lista", "", "pedro@taller.com"),
				techRow(2, "", "Ender 3 reacondicionada", "Lista", "", "pedro@taller.com"),
			}, nil
		},
	}
	uc := NewTechnicianStatsUseCase(repo, nopLogger{})

	result, err := uc.Execute(context.Background(), TechnicianStatsQuery{
		IsAdmin: true, Technician: "pedro", Year: 2025, Month: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalPrinters)
	assert.Equal(t, "Ender 3 reacondicionada", result.Items[0].Modelo)
}

func TestTechnicianStats_EmptyMonthFallsBackToHistory(t *testing.T) {
	calls := 0
	repo := &mockTicketRepository{
		StatRowsFunc: func(ctx context.Context, stampPatterns []string) ([]ticket.StatRow, error) {
			calls++
			if len(stampPatterns) > 0 {
				return nil, nil
			}
			return []ticket.StatRow{
				techRow(1, "Ender 3", "", "Lista", "", "pedro@taller.com"),
			}, nil
		},
	}
	uc := NewTechnicianStatsUseCase(repo, nopLogger{})

	result, err := uc.Execute(context.Background(), TechnicianStatsQuery{
		IsAdmin: true, Technician: "pedro", Year: 2025, Month: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, result.TotalPrinters)
	// History result carries no period.
	assert.Zero(t, result.Year)
	assert.Zero(t, result.Month)
}

func TestTechnicianStats_AllSkipsMonthFilter(t *testing.T) {
	var gotPatterns []string
	called := false
	repo := &mockTicketRepository{
		StatRowsFunc: func(ctx context.Context, stampPatterns []string) ([]ticket.StatRow, error) {
			called = true
			gotPatterns = stampPatterns
			return nil, nil
		},
	}
	uc := NewTechnicianStatsUseCase(repo, nopLogger{})

	result, err := uc.Execute(context.Background(), TechnicianStatsQuery{
		IsAdmin: true, Technician: "pedro", All: true,
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, gotPatterns)
	assert.Zero(t, result.TotalPrinters)
}
