package usecases

import (
	"context"

	"fixdesk/internal/domain/budget"
	"fixdesk/internal/domain/part"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type GetBudgetItemsQuery struct {
	TicketNumber int64
}

// BudgetItemRow is one line item enriched with the current catalog data of
// its part. UnitPrice is the snapshot taken when the line was saved; Price
// is the catalog text today.
type BudgetItemRow struct {
	PartID     uint
	Name       string
	Quantity   int
	UnitPrice  float64
	Price      string
	Stock      string
	StockCount int
	Category   string
	Active     bool
}

type GetBudgetItemsResult struct {
	Rows []BudgetItemRow
}

type GetBudgetItemsUseCase struct {
	ticketRepo ticket.TicketRepository
	budgetRepo budget.BudgetRepository
	partRepo   part.PartRepository
	logger     logger.Interface
}

func NewGetBudgetItemsUseCase(
	ticketRepo ticket.TicketRepository,
	budgetRepo budget.BudgetRepository,
	partRepo part.PartRepository,
	logger logger.Interface,
) *GetBudgetItemsUseCase {
	return &GetBudgetItemsUseCase{
		ticketRepo: ticketRepo,
		budgetRepo: budgetRepo,
		partRepo:   partRepo,
		logger:     logger,
	}
}

func (uc *GetBudgetItemsUseCase) Execute(ctx context.Context, query GetBudgetItemsQuery) (*GetBudgetItemsResult, error) {
	t, err := uc.ticketRepo.FindByNumber(ctx, query.TicketNumber)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket no encontrado")
	}

	b, err := uc.budgetRepo.FindLatestByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	if b == nil {
		return &GetBudgetItemsResult{Rows: []BudgetItemRow{}}, nil
	}

	items, err := uc.budgetRepo.ItemsByBudgetID(ctx, b.ID())
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return &GetBudgetItemsResult{Rows: []BudgetItemRow{}}, nil
	}

	ids := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, it := range items {
		if !seen[it.PartID()] {
			seen[it.PartID()] = true
			ids = append(ids, it.PartID())
		}
	}

	parts, err := uc.partRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*part.Part, len(parts))
	for _, p := range parts {
		byID[p.ID()] = p
	}

	rows := make([]BudgetItemRow, 0, len(items))
	for _, it := range items {
		row := BudgetItemRow{
			PartID:    it.PartID(),
			Quantity:  it.Quantity(),
			UnitPrice: it.UnitPrice(),
		}
		if p := byID[it.PartID()]; p != nil {
			row.Name = p.Name()
			row.Price = p.Price()
			row.Stock = p.Stock()
			row.StockCount = p.StockCount()
			row.Category = p.Category()
			row.Active = p.IsActive()
			if row.UnitPrice == 0 {
				// No snapshot on the line; fall back to the catalog price.
				if n, ok := p.UnitPrice(); ok {
					row.UnitPrice = n
				}
			}
		}
		rows = append(rows, row)
	}

	return &GetBudgetItemsResult{Rows: rows}, nil
}
