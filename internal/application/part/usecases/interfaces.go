package usecases

import "context"

type UpsertPartExecutor interface {
	Execute(ctx context.Context, cmd UpsertPartCommand) (*UpsertPartResult, error)
}

type DeletePartExecutor interface {
	Execute(ctx context.Context, cmd DeletePartCommand) (*DeletePartResult, error)
}

type ListPartsExecutor interface {
	Execute(ctx context.Context, query ListPartsQuery) (*ListPartsResult, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) (*ListCategoriesResult, error)
}
