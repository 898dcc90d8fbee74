package usecases

import (
	"context"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"fixdesk/internal/domain/part"
	"fixdesk/internal/shared/logger"
)

type ListCategoriesResult struct {
	Categories []string
}

// ListCategoriesUseCase returns the distinct non-empty catalog categories,
// sorted with Spanish collation so accented names land where a Spanish
// speaker expects them.
type ListCategoriesUseCase struct {
	partRepo part.PartRepository
	logger   logger.Interface
}

func NewListCategoriesUseCase(partRepo part.PartRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{partRepo: partRepo, logger: logger}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesResult, error) {
	raw, err := uc.partRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(raw))
	categories := make([]string, 0, len(raw))
	for _, c := range raw {
		cleaned := strings.TrimSpace(c)
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		categories = append(categories, cleaned)
	}

	collate.New(language.Spanish, collate.Loose).SortStrings(categories)

	return &ListCategoriesResult{Categories: categories}, nil
}
