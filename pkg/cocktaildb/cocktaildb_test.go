package cocktaildb

import (
	"Cocktail-Companion/domain"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) CocktailClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewCocktailClient(server.URL + "/")
}

func TestRandom_NormalizesMissingFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/random.php", r.URL.Path)
		w.Write([]byte(`{"drinks":[{"idDrink":"11007","strDrink":"Margarita","strCategory":null}]}`))
	})

	cocktail, err := client.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "11007", cocktail.ID)
	assert.Equal(t, "Margarita", cocktail.Name)
	assert.Empty(t, cocktail.Category)
	assert.Empty(t, cocktail.Instructions)
}

func TestLookup_SendsDrinkID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lookup.php", r.URL.Path)
		assert.Equal(t, "11007", r.URL.Query().Get("i"))
		w.Write([]byte(`{"drinks":[{"idDrink":"11007","strDrink":"Margarita"}]}`))
	})

	cocktail, err := client.Lookup(context.Background(), "11007")
	require.NoError(t, err)
	assert.Equal(t, "Margarita", cocktail.Name)
}

func TestSearch_NullDrinksIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.php", r.URL.Path)
		w.Write([]byte(`{"drinks":null}`))
	})

	_, err := client.Search(context.Background(), "nonexistent drink")
	assert.True(t, errors.Is(err, domain.ErrNoCocktailFound))
}

func TestByCategory_EmptyDrinksIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/filter.php", r.URL.Path)
		assert.Equal(t, "Unknown", r.URL.Query().Get("c"))
		w.Write([]byte(`{"drinks":[]}`))
	})

	_, err := client.ByCategory(context.Background(), "Unknown")
	assert.True(t, errors.Is(err, domain.ErrNoCocktailFound))
}

func TestByAlcohol_SendsFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Non_Alcoholic", r.URL.Query().Get("a"))
		w.Write([]byte(`{"drinks":[{"idDrink":"12093","strDrink":"Afterglow"}]}`))
	})

	drinks, err := client.ByAlcohol(context.Background(), "Non_Alcoholic")
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Afterglow", drinks[0].Name)
}

func TestCategories_ExtractsNames(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/list.php", r.URL.Path)
		assert.Equal(t, "list", r.URL.Query().Get("c"))
		w.Write([]byte(`{"drinks":[{"strCategory":"Ordinary Drink"},{"strCategory":"Cocktail"},{"strCategory":null}]}`))
	})

	categories, err := client.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Ordinary Drink", "Cocktail"}, categories)
}

func TestGet_ServerErrorAfterRetries(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Random(context.Background())
	require.Error(t, err)
	// initial attempt plus the configured retries
	assert.Equal(t, 3, calls)
}
