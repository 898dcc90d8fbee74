package usecases

import (
	"context"
	"fmt"
	"strings"

	"fixdesk/internal/domain/budget"
	"fixdesk/internal/domain/part"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/db"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type BudgetItemInput struct {
	PartID   uint
	Quantity int
}

type SaveBudgetItemsCommand struct {
	TicketNumber int64
	Items        []BudgetItemInput
}

type SaveBudgetItemsResult struct {
	BudgetID uint
	Count    int
}

// StockError reports one line that asked for more than the available stock.
type StockError struct {
	PartID   uint   `json:"partId"`
	Name     string `json:"nombre"`
	Quantity int    `json:"cantidad"`
	Stock    int    `json:"stock"`
}

// StockValidationError aborts the whole reconciliation: no line items are
// written when any line fails the stock check.
type StockValidationError struct {
	Errors []StockError
}

func (e *StockValidationError) Error() string {
	names := make([]string, 0, len(e.Errors))
	for _, se := range e.Errors {
		names = append(names, se.Name)
	}
	return fmt.Sprintf("stock insuficiente: %s", strings.Join(names, ", "))
}

// SaveBudgetItemsUseCase replaces the full line-item set of a ticket's
// budget. Validation is all-or-nothing against current stock; unit prices
// are snapshotted from the catalog at save time.
type SaveBudgetItemsUseCase struct {
	ticketRepo ticket.TicketRepository
	budgetRepo budget.BudgetRepository
	partRepo   part.PartRepository
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewSaveBudgetItemsUseCase(
	ticketRepo ticket.TicketRepository,
	budgetRepo budget.BudgetRepository,
	partRepo part.PartRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *SaveBudgetItemsUseCase {
	return &SaveBudgetItemsUseCase{
		ticketRepo: ticketRepo,
		budgetRepo: budgetRepo,
		partRepo:   partRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *SaveBudgetItemsUseCase) Execute(ctx context.Context, cmd SaveBudgetItemsCommand) (*SaveBudgetItemsResult, error) {
	t, err := uc.ticketRepo.FindByNumber(ctx, cmd.TicketNumber)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket no encontrado")
	}

	clean := normalizeItems(cmd.Items)

	var result *SaveBudgetItemsResult
	err = uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		b, err := uc.getOrCreateBudget(ctx, t.ID())
		if err != nil {
			return err
		}

		if len(clean) == 0 {
			if err := uc.budgetRepo.ReplaceItems(ctx, b.ID(), nil); err != nil {
				return err
			}
			result = &SaveBudgetItemsResult{BudgetID: b.ID(), Count: 0}
			return nil
		}

		ids := make([]uint, 0, len(clean))
		for _, it := range clean {
			ids = append(ids, it.PartID)
		}
		parts, err := uc.partRepo.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uint]*part.Part, len(parts))
		for _, p := range parts {
			byID[p.ID()] = p
		}

		var unknown []uint
		for _, it := range clean {
			if byID[it.PartID] == nil {
				unknown = append(unknown, it.PartID)
			}
		}
		if len(unknown) > 0 {
			return errors.NewValidationError(fmt.Sprintf("Repuestos inexistentes: %s", joinIDs(unknown)))
		}

		if stockErrs := validateStock(clean, byID); len(stockErrs) > 0 {
			return &StockValidationError{Errors: stockErrs}
		}

		items := make([]*budget.LineItem, 0, len(clean))
		for _, it := range clean {
			p := byID[it.PartID]
			price, _ := p.UnitPrice()
			li, err := budget.NewLineItem(b.ID(), it.PartID, it.Quantity, price)
			if err != nil {
				return err
			}
			items = append(items, li)
		}

		if err := uc.budgetRepo.ReplaceItems(ctx, b.ID(), items); err != nil {
			return err
		}
		result = &SaveBudgetItemsResult{BudgetID: b.ID(), Count: len(items)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *SaveBudgetItemsUseCase) getOrCreateBudget(ctx context.Context, ticketID uint) (*budget.Budget, error) {
	b, err := uc.budgetRepo.FindLatestByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if b != nil {
		return b, nil
	}

	b, err = budget.NewBudget(ticketID)
	if err != nil {
		return nil, err
	}
	if err := uc.budgetRepo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// normalizeItems drops invalid part ids, clamps quantities to a minimum of
// one and sums duplicate part ids, keeping the first occurrence order.
func normalizeItems(in []BudgetItemInput) []BudgetItemInput {
	var order []uint
	qty := make(map[uint]int)
	for _, it := range in {
		if it.PartID == 0 {
			continue
		}
		q := it.Quantity
		if q < 1 {
			q = 1
		}
		if _, ok := qty[it.PartID]; !ok {
			order = append(order, it.PartID)
		}
		qty[it.PartID] += q
	}

	out := make([]BudgetItemInput, 0, len(order))
	for _, id := range order {
		out = append(out, BudgetItemInput{PartID: id, Quantity: qty[id]})
	}
	return out
}

func validateStock(items []BudgetItemInput, byID map[uint]*part.Part) []StockError {
	var errs []StockError
	for _, it := range items {
		p := byID[it.PartID]
		if p.HasInfiniteStock() {
			continue
		}
		stock := p.StockCount()
		if it.Quantity > stock {
			errs = append(errs, StockError{
				PartID:   it.PartID,
				Name:     p.Name(),
				Quantity: it.Quantity,
				Stock:    stock,
			})
		}
	}
	return errs
}

func joinIDs(ids []uint) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ", ")
}
