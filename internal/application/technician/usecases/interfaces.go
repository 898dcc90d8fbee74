package usecases

import "context"

type ListTechniciansExecutor interface {
	Execute(ctx context.Context) (*ListTechniciansResult, error)
}
