package creation

import (
	"Cocktail-Companion/entities"
	"context"
	"sync"

	"gorm.io/gorm"
)

type (
	// CreationRepository is the data access layer for user-created cocktails.
	// Inserts always assign a fresh surrogate id, even for logically identical
	// rows. The watch stream is ordered by descending id (newest first) and
	// republishes on every commit, same contract as the favorites stream.
	CreationRepository interface {
		InsertCreated(ctx context.Context, cocktail *entities.CreatedCocktail) (int64, error)
		GetCreatedDescending(ctx context.Context) ([]entities.CreatedCocktail, error)
		WatchCreatedDescending(ctx context.Context) (<-chan []entities.CreatedCocktail, func())
	}

	creationRepository struct {
		db *gorm.DB

		mu     sync.Mutex
		subs   map[int]chan []entities.CreatedCocktail
		nextID int
	}
)

func NewCreationRepository(db *gorm.DB) CreationRepository {
	return &creationRepository{
		db:   db,
		subs: make(map[int]chan []entities.CreatedCocktail),
	}
}

func (r *creationRepository) InsertCreated(ctx context.Context, cocktail *entities.CreatedCocktail) (int64, error) {
	cocktail.ID = 0 // store assigns the key
	if err := r.db.WithContext(ctx).Create(cocktail).Error; err != nil {
		return 0, err
	}
	r.publish()
	return cocktail.ID, nil
}

func (r *creationRepository) GetCreatedDescending(ctx context.Context) ([]entities.CreatedCocktail, error) {
	var cocktails []entities.CreatedCocktail
	if err := r.db.WithContext(ctx).Order("id desc").Find(&cocktails).Error; err != nil {
		return nil, err
	}
	return cocktails, nil
}

func (r *creationRepository) WatchCreatedDescending(ctx context.Context) (<-chan []entities.CreatedCocktail, func()) {
	ch := make(chan []entities.CreatedCocktail, 1)

	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = ch
	r.mu.Unlock()

	if current, err := r.GetCreatedDescending(ctx); err == nil {
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

func (r *creationRepository) publish() {
	cocktails, err := r.GetCreatedDescending(context.Background())
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range r.subs {
		select {
		case ch <- cocktails:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- cocktails:
			default:
			}
		}
	}
}
