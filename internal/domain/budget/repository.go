package budget

import "context"

type BudgetRepository interface {
	Save(ctx context.Context, b *Budget) error
	Update(ctx context.Context, b *Budget) error
	// FindLatestByTicketID returns nil, nil when the ticket has no budget.
	FindLatestByTicketID(ctx context.Context, ticketID uint) (*Budget, error)
	DeleteOlderDuplicates(ctx context.Context, ticketID, keepID uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
	ItemsByBudgetID(ctx context.Context, budgetID uint) ([]*LineItem, error)
	// ReplaceItems swaps the full line-item set of a budget.
	ReplaceItems(ctx context.Context, budgetID uint, items []*LineItem) error
}
