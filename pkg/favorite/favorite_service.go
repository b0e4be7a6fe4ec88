package favorite

import (
	"Cocktail-Companion/domain"
	"Cocktail-Companion/entities"
	"context"
	"time"
)

type (
	// FavoriteService is the only component allowed to translate between API
	// snapshots and favorite rows. Add and Remove are fire-and-forget: the
	// caller is never blocked and write failures surface on Errors instead of
	// a return value. IsFavorite is the one call that completes before the
	// caller proceeds, since it seeds the detail screen's toggle state.
	FavoriteService interface {
		Add(cocktail domain.Cocktail)
		Remove(cocktailID string)
		IsFavorite(ctx context.Context, cocktailID string) (bool, error)
		Favorites(ctx context.Context) ([]entities.FavoriteCocktail, error)
		Watch(ctx context.Context) (<-chan []entities.FavoriteCocktail, func())
		Errors() <-chan error
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		errs               chan error
	}
)

const writeTimeout = 5 * time.Second

func NewFavoriteService(favoriteRepository FavoriteRepository) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		errs:               make(chan error, 16),
	}
}

func (s *favoriteService) Add(cocktail domain.Cocktail) {
	entity := toEntity(cocktail)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if _, err := s.favoriteRepository.AddFavorite(ctx, &entity); err != nil {
			s.report(err)
		}
	}()
}

func (s *favoriteService) Remove(cocktailID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if _, err := s.favoriteRepository.RemoveFavorite(ctx, cocktailID); err != nil {
			s.report(err)
		}
	}()
}

func (s *favoriteService) IsFavorite(ctx context.Context, cocktailID string) (bool, error) {
	return s.favoriteRepository.IsFavorite(ctx, cocktailID)
}

func (s *favoriteService) Favorites(ctx context.Context) ([]entities.FavoriteCocktail, error) {
	return s.favoriteRepository.GetFavorites(ctx)
}

func (s *favoriteService) Watch(ctx context.Context) (<-chan []entities.FavoriteCocktail, func()) {
	return s.favoriteRepository.WatchFavorites(ctx)
}

func (s *favoriteService) Errors() <-chan error {
	return s.errs
}

func (s *favoriteService) report(err error) {
	select {
	case s.errs <- err:
	default:
	}
}

// toEntity builds the stored snapshot, substituting placeholders for missing
// fields so a half-empty upstream response never reaches the store as-is.
func toEntity(cocktail domain.Cocktail) entities.FavoriteCocktail {
	id := cocktail.ID
	if id == "" {
		id = domain.UnknownDrinkID
	}
	name := cocktail.Name
	if name == "" {
		name = domain.UnknownDrinkName
	}
	return entities.FavoriteCocktail{
		ID:           id,
		Name:         name,
		ImageURL:     cocktail.ImageURL,
		Category:     cocktail.Category,
		Instructions: cocktail.Instructions,
		Ingredients:  "",
	}
}
