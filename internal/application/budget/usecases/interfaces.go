package usecases

import "context"

type GetBudgetItemsExecutor interface {
	Execute(ctx context.Context, query GetBudgetItemsQuery) (*GetBudgetItemsResult, error)
}

type SaveBudgetItemsExecutor interface {
	Execute(ctx context.Context, cmd SaveBudgetItemsCommand) (*SaveBudgetItemsResult, error)
}

type UpdateBudgetExecutor interface {
	Execute(ctx context.Context, cmd UpdateBudgetCommand) (*UpdateBudgetResult, error)
}

// EmailNotifier sends the budget notification mail. Sends are best effort.
type EmailNotifier interface {
	SendBudgetSentEmail(to string, ticketNumber int64, amount, link string) error
}
