package creation

import (
	"Cocktail-Companion/domain"
	"Cocktail-Companion/entities"
	"context"
	"strings"
)

type (
	CreationService interface {
		Create(ctx context.Context, req domain.CreateCocktailRequest) (int64, error)
		GetCreations(ctx context.Context) ([]entities.CreatedCocktail, error)
		Watch(ctx context.Context) (<-chan []entities.CreatedCocktail, func())
	}

	creationService struct {
		creationRepository CreationRepository
	}
)

func NewCreationService(creationRepository CreationRepository) CreationService {
	return &creationService{creationRepository: creationRepository}
}

// Create validates the submission before the store is touched: a blank name
// or blank instructions is rejected outright. Tags are trimmed, deduplicated
// and comma-joined into the category column; no tags stores the sentinel
// category instead.
func (s *creationService) Create(ctx context.Context, req domain.CreateCocktailRequest) (int64, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Instructions) == "" {
		return 0, domain.ErrMissingRequiredFields
	}

	cocktail := entities.CreatedCocktail{
		Name:         req.Name,
		Category:     joinCategories(req.Categories),
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURI:     req.ImageURI,
	}

	return s.creationRepository.InsertCreated(ctx, &cocktail)
}

func (s *creationService) GetCreations(ctx context.Context) ([]entities.CreatedCocktail, error) {
	return s.creationRepository.GetCreatedDescending(ctx)
}

func (s *creationService) Watch(ctx context.Context) (<-chan []entities.CreatedCocktail, func()) {
	return s.creationRepository.WatchCreatedDescending(ctx)
}

func joinCategories(categories []string) string {
	seen := make(map[string]bool, len(categories))
	cleaned := make([]string, 0, len(categories))
	for _, category := range categories {
		category = strings.TrimSpace(category)
		if category == "" || seen[category] {
			continue
		}
		seen[category] = true
		cleaned = append(cleaned, category)
	}
	if len(cleaned) == 0 {
		return domain.DefaultCreationCategory
	}
	return strings.Join(cleaned, ", ")
}
