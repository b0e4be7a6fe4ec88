package favorite

import (
	"Cocktail-Companion/domain"
	"Cocktail-Companion/entities"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	settleWait = 2 * time.Second
	settleTick = 10 * time.Millisecond
)

func TestAdd_EventuallyPersists(t *testing.T) {
	service := NewFavoriteService(NewFavoriteRepository(newTestDB(t)))
	ctx := context.Background()

	service.Add(domain.Cocktail{ID: "11007", Name: "Margarita"})

	assert.Eventually(t, func() bool {
		ok, err := service.IsFavorite(ctx, "11007")
		return err == nil && ok
	}, settleWait, settleTick)
}

func TestRemove_EventuallyDeletes(t *testing.T) {
	repo := NewFavoriteRepository(newTestDB(t))
	service := NewFavoriteService(repo)
	ctx := context.Background()

	_, err := repo.AddFavorite(ctx, &entities.FavoriteCocktail{ID: "11007", Name: "Margarita"})
	require.NoError(t, err)

	service.Remove("11007")

	assert.Eventually(t, func() bool {
		ok, err := service.IsFavorite(ctx, "11007")
		return err == nil && !ok
	}, settleWait, settleTick)
}

func TestAdd_SubstitutesPlaceholders(t *testing.T) {
	service := NewFavoriteService(NewFavoriteRepository(newTestDB(t)))
	ctx := context.Background()

	// an all-empty snapshot still becomes a well-formed row
	service.Add(domain.Cocktail{})

	assert.Eventually(t, func() bool {
		favorites, err := service.Favorites(ctx)
		return err == nil && len(favorites) == 1
	}, settleWait, settleTick)

	favorites, err := service.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, domain.UnknownDrinkID, favorites[0].ID)
	assert.Equal(t, domain.UnknownDrinkName, favorites[0].Name)
	assert.Empty(t, favorites[0].Ingredients)
}

func TestAdd_IngredientsNeverStored(t *testing.T) {
	service := NewFavoriteService(NewFavoriteRepository(newTestDB(t)))
	ctx := context.Background()

	service.Add(domain.Cocktail{
		ID:          "11007",
		Name:        "Margarita",
		Ingredient1: "Tequila",
		Ingredient2: "Triple sec",
	})

	assert.Eventually(t, func() bool {
		favorites, err := service.Favorites(ctx)
		return err == nil && len(favorites) == 1
	}, settleWait, settleTick)

	favorites, err := service.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites[0].Ingredients)
}

func TestAdd_FailureSurfacesOnErrors(t *testing.T) {
	db := newTestDB(t)
	service := NewFavoriteService(NewFavoriteRepository(db))

	// force the write to fail
	require.NoError(t, db.Migrator().DropTable(&entities.FavoriteCocktail{}))

	service.Add(domain.Cocktail{ID: "11007", Name: "Margarita"})

	select {
	case err := <-service.Errors():
		assert.Error(t, err)
	case <-time.After(settleWait):
		t.Fatal("expected a write failure on the error channel")
	}
}
