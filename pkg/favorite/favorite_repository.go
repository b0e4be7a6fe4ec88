package favorite

import (
	"Cocktail-Companion/entities"
	"context"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// FavoriteRepository is the data access layer for the favorites table.
	// Watch follows a push contract: every committed insert or delete
	// republishes the freshly-queried full set to all active subscribers.
	FavoriteRepository interface {
		AddFavorite(ctx context.Context, cocktail *entities.FavoriteCocktail) (int64, error)
		RemoveFavorite(ctx context.Context, cocktailID string) (int64, error)
		IsFavorite(ctx context.Context, cocktailID string) (bool, error)
		GetFavorites(ctx context.Context) ([]entities.FavoriteCocktail, error)
		WatchFavorites(ctx context.Context) (<-chan []entities.FavoriteCocktail, func())
	}

	favoriteRepository struct {
		db *gorm.DB

		mu     sync.Mutex
		subs   map[int]chan []entities.FavoriteCocktail
		nextID int
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{
		db:   db,
		subs: make(map[int]chan []entities.FavoriteCocktail),
	}
}

func (r *favoriteRepository) AddFavorite(ctx context.Context, cocktail *entities.FavoriteCocktail) (int64, error) {
	// Conflicting primary key replaces the stored snapshot, last write wins.
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(cocktail)
	if res.Error != nil {
		return 0, res.Error
	}
	r.publish()
	return res.RowsAffected, nil
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, cocktailID string) (int64, error) {
	// Deleting an absent id affects zero rows and is not an error.
	res := r.db.WithContext(ctx).
		Where("id = ?", cocktailID).
		Delete(&entities.FavoriteCocktail{})
	if res.Error != nil {
		return 0, res.Error
	}
	r.publish()
	return res.RowsAffected, nil
}

func (r *favoriteRepository) IsFavorite(ctx context.Context, cocktailID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.FavoriteCocktail{}).
		Where("id = ?", cocktailID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) GetFavorites(ctx context.Context) ([]entities.FavoriteCocktail, error) {
	var favorites []entities.FavoriteCocktail
	if err := r.db.WithContext(ctx).Order("id").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// WatchFavorites registers a subscriber. The channel immediately receives the
// current set, then the full set again after every committed write. The
// returned func unsubscribes; the channel is closed afterwards.
func (r *favoriteRepository) WatchFavorites(ctx context.Context) (<-chan []entities.FavoriteCocktail, func()) {
	ch := make(chan []entities.FavoriteCocktail, 1)

	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = ch
	r.mu.Unlock()

	if current, err := r.GetFavorites(ctx); err == nil {
		ch <- current
	}

	cancel := func() {
		r.mu.Lock()
		if sub, ok := r.subs[id]; ok {
			delete(r.subs, id)
			close(sub)
		}
		r.mu.Unlock()
	}
	return ch, cancel
}

// publish re-queries the table after a commit and fans the result out. A
// subscriber that has not drained its previous emission only ever sees the
// latest set.
func (r *favoriteRepository) publish() {
	favorites, err := r.GetFavorites(context.Background())
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range r.subs {
		select {
		case ch <- favorites:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- favorites:
			default:
			}
		}
	}
}
