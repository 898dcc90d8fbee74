package usecases

import (
	"context"
	"strings"

	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type TechnicianStatsQuery struct {
	IsAdmin bool
	// Technician is the email local part to report on. When empty the
	// session email decides.
	Technician   string
	SessionEmail string
	// All skips the month filter and reports the full history.
	All    bool
	Year   int
	Month  int
	Period string
}

type TechnicianStatItem struct {
	ID       uint   `json:"id"`
	Modelo   string `json:"modelo"`
	Estado   string `json:"estado"`
	Fecha    string `json:"fecha"`
	Reparada bool   `json:"reparada"`
}

type TechnicianStatsResult struct {
	Technician string
	// Year and Month are zero when the result covers the full history.
	Year          int
	Month         int
	TotalPrinters int
	TotalRepaired int
	Items         []TechnicianStatItem
}

// TechnicianStatsUseCase reports how many printers one technician took in
// and how many ended up repaired. When the requested month has no rows it
// falls back to the full history. Admin only.
type TechnicianStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewTechnicianStatsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *TechnicianStatsUseCase {
	return &TechnicianStatsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *TechnicianStatsUseCase) Execute(ctx context.Context, query TechnicianStatsQuery) (*TechnicianStatsResult, error) {
	if !query.IsAdmin {
		return nil, errors.NewForbiddenError("Permisos insuficientes")
	}

	techKey := strings.ToLower(strings.TrimSpace(query.Technician))
	if techKey == "" {
		techKey = emailLocalKey(query.SessionEmail)
	}
	if techKey == "" {
		return nil, errors.NewValidationError("Falta el técnico")
	}

	year, month, ok := resolvePeriod(query.Year, query.Month, query.Period)
	if !query.All && !ok {
		now := biztime.ToBizTimezone(biztime.NowUTC())
		year, month = now.Year(), int(now.Month())
	}

	var rows []ticket.StatRow
	var err error
	monthApplied := false
	if query.All {
		rows, err = uc.ticketRepo.StatRows(ctx, nil)
	} else {
		rows, err = uc.ticketRepo.StatRows(ctx, monthPatterns(year, month))
		monthApplied = true
		if err == nil && len(rows) == 0 {
			rows, err = uc.ticketRepo.StatRows(ctx, nil)
			monthApplied = false
		}
	}
	if err != nil {
		return nil, err
	}

	items := make([]TechnicianStatItem, 0)
	repaired := 0
	for _, row := range rows {
		if emailLocalKey(row.TechnicianEmail) != techKey {
			continue
		}
		if !refersToPrinter(row) {
			continue
		}

		item := TechnicianStatItem{
			ID:       row.ID,
			Modelo:   printerLabel(row),
			Estado:   stateLabel(row),
			Fecha:    row.Stamp,
			Reparada: isRepaired(row),
		}
		if item.Reparada {
			repaired++
		}
		items = append(items, item)
	}

	result := &TechnicianStatsResult{
		Technician:    techKey,
		TotalPrinters: len(items),
		TotalRepaired: repaired,
		Items:         items,
	}
	if monthApplied {
		result.Year = year
		result.Month = month
	}
	return result, nil
}

// refersToPrinter keeps only rows with an identifiable machine, either via
// the printer join or the free-text repaired machine field.
func refersToPrinter(row ticket.StatRow) bool {
	return strings.TrimSpace(row.PrinterModel) != "" || strings.TrimSpace(row.RepairedMachine) != ""
}

func printerLabel(row ticket.StatRow) string {
	if m := strings.TrimSpace(row.PrinterModel); m != "" {
		return m
	}
	if m := strings.TrimSpace(row.RepairedMachine); m != "" {
		return m
	}
	return "Sin modelo"
}

func stateLabel(row ticket.StatRow) string {
	if s := strings.TrimSpace(row.State); s != "" {
		return s
	}
	return "Sin estado"
}

func isRepaired(row ticket.StatRow) bool {
	if ticket.IsRepairedState(strings.TrimSpace(row.State)) {
		return true
	}
	return strings.TrimSpace(row.RepairDate) != ""
}
