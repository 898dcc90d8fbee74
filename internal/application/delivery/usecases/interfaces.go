package usecases

import "context"

type UpsertDeliveryExecutor interface {
	Execute(ctx context.Context, cmd UpsertDeliveryCommand) (*UpsertDeliveryResult, error)
}
