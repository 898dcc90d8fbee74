package usecases

import (
	"context"

	"fixdesk/internal/domain/part"
	"fixdesk/internal/shared/logger"
)

const (
	defaultPageSize = 100
	maxPageSize     = 500
)

type ListPartsQuery struct {
	Query    string
	Category string
	Active   *bool
	Page     int
	PageSize int
}

type ListPartsResult struct {
	Parts []*part.Part
	Total int64
}

type ListPartsUseCase struct {
	partRepo part.PartRepository
	logger   logger.Interface
}

func NewListPartsUseCase(partRepo part.PartRepository, logger logger.Interface) *ListPartsUseCase {
	return &ListPartsUseCase{partRepo: partRepo, logger: logger}
}

func (uc *ListPartsUseCase) Execute(ctx context.Context, query ListPartsQuery) (*ListPartsResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	size := query.PageSize
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	filter := part.Filter{
		Query:     query.Query,
		Category:  query.Category,
		Active:    query.Active,
		Page:      page,
		PageSize:  size,
		SortBy:    "updated_at",
		SortOrder: "desc",
	}

	parts, total, err := uc.partRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListPartsResult{Parts: parts, Total: total}, nil
}
