package usecases

import (
	"context"
	"sort"
	"strings"

	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

const topN = 10

const (
	GroupByModel      = "modelo"
	GroupByState      = "estado"
	GroupByTechnician = "tecnico"
)

type TicketStatsQuery struct {
	IsAdmin bool
	Year    int
	Month   int
	// Period is the alternative "YYYY-MM" form; Year+Month win when set.
	Period string
	Group  string
}

type StatItem struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Porcentaje float64 `json:"porcentaje"`
}

// TicketRef identifies one ticket inside a drill-down bucket.
type TicketRef struct {
	ID      uint   `json:"id"`
	Cliente string `json:"cliente"`
}

type TicketStatsResult struct {
	Total   int
	Items   []StatItem
	Group   string
	Buckets map[string][]TicketRef
}

// TicketStatsUseCase ranks the month's tickets by printer model, state or
// technician and builds the drill-down bucket per label. Admin only.
type TicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewTicketStatsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *TicketStatsUseCase {
	return &TicketStatsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *TicketStatsUseCase) Execute(ctx context.Context, query TicketStatsQuery) (*TicketStatsResult, error) {
	if !query.IsAdmin {
		return nil, errors.NewForbiddenError("Permisos insuficientes")
	}

	year, month, ok := resolvePeriod(query.Year, query.Month, query.Period)
	if !ok {
		return nil, errors.NewValidationError("Parámetros inválidos. Use year+month o period=YYYY-MM.")
	}

	group := normalizeGroup(query.Group)

	rows, err := uc.ticketRepo.StatRows(ctx, monthPatterns(year, month))
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	buckets := make(map[string][]TicketRef)
	seen := make(map[string]map[uint]bool)

	for _, row := range rows {
		key := groupKey(group, row)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++

		if seen[key] == nil {
			seen[key] = make(map[uint]bool)
		}
		if !seen[key][row.ID] {
			seen[key][row.ID] = true
			buckets[key] = append(buckets[key], TicketRef{ID: row.ID, Cliente: row.ClientName})
		}
	}

	total := len(rows)
	items := make([]StatItem, 0, len(order))
	for _, label := range order {
		pct := 0.0
		if total > 0 {
			pct = float64(counts[label]) / float64(total) * 100
		}
		items = append(items, StatItem{Label: label, Count: counts[label], Porcentaje: pct})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })
	if len(items) > topN {
		items = items[:topN]
	}

	for key := range buckets {
		refs := buckets[key]
		sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
		buckets[key] = refs
	}

	return &TicketStatsResult{
		Total:   total,
		Items:   items,
		Group:   group,
		Buckets: buckets,
	}, nil
}

func normalizeGroup(g string) string {
	switch strings.ToLower(g) {
	case GroupByState:
		return GroupByState
	case GroupByTechnician:
		return GroupByTechnician
	default:
		return GroupByModel
	}
}

func groupKey(group string, row ticket.StatRow) string {
	switch group {
	case GroupByState:
		if s := strings.TrimSpace(row.State); s != "" {
			return s
		}
		return "Sin estado"
	case GroupByTechnician:
		if key := emailLocalKey(row.TechnicianEmail); key != "" {
			return key
		}
		return "Sin técnico"
	default:
		if m := strings.TrimSpace(row.PrinterModel); m != "" {
			return m
		}
		return "Sin modelo"
	}
}
