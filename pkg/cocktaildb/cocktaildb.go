// Package cocktaildb is the client for TheCocktailDB read API. Every wire
// field is nullable; responses are normalized into fully-populated snapshots
// at this boundary so nothing downstream handles optionality.
package cocktaildb

import (
	"Cocktail-Companion/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const DefaultBaseURL = "https://www.thecocktaildb.com/api/json/v1/1/"

type (
	CocktailClient interface {
		Random(ctx context.Context) (domain.Cocktail, error)
		Categories(ctx context.Context) ([]string, error)
		ByCategory(ctx context.Context, category string) ([]domain.Cocktail, error)
		Lookup(ctx context.Context, drinkID string) (domain.Cocktail, error)
		Search(ctx context.Context, name string) ([]domain.Cocktail, error)
		ByAlcohol(ctx context.Context, filter string) ([]domain.Cocktail, error)
	}

	cocktailClient struct {
		baseURL    string
		httpClient *http.Client
	}
)

// NewCocktailClient builds a client over baseURL (DefaultBaseURL when empty).
// Transient upstream hiccups are retried by the HTTP layer; callers only see
// the final outcome.
func NewCocktailClient(baseURL string) CocktailClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 2
	retryClient.HTTPClient.Timeout = 15 * time.Second
	retryClient.Logger = nil

	return &cocktailClient{
		baseURL:    baseURL,
		httpClient: retryClient.StandardClient(),
	}
}

func (c *cocktailClient) Random(ctx context.Context) (domain.Cocktail, error) {
	return c.getOne(ctx, "random.php", nil)
}

func (c *cocktailClient) Categories(ctx context.Context) ([]string, error) {
	var envelope domain.CategoryEnvelope
	if err := c.get(ctx, "list.php", url.Values{"c": {"list"}}, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Drinks) == 0 {
		return nil, domain.ErrNoCocktailFound
	}

	categories := make([]string, 0, len(envelope.Drinks))
	for _, item := range envelope.Drinks {
		if item.StrCategory != nil && *item.StrCategory != "" {
			categories = append(categories, *item.StrCategory)
		}
	}
	return categories, nil
}

func (c *cocktailClient) ByCategory(ctx context.Context, category string) ([]domain.Cocktail, error) {
	return c.getMany(ctx, "filter.php", url.Values{"c": {category}})
}

func (c *cocktailClient) Lookup(ctx context.Context, drinkID string) (domain.Cocktail, error) {
	return c.getOne(ctx, "lookup.php", url.Values{"i": {drinkID}})
}

func (c *cocktailClient) Search(ctx context.Context, name string) ([]domain.Cocktail, error) {
	return c.getMany(ctx, "search.php", url.Values{"s": {name}})
}

func (c *cocktailClient) ByAlcohol(ctx context.Context, filter string) ([]domain.Cocktail, error) {
	return c.getMany(ctx, "filter.php", url.Values{"a": {filter}})
}

func (c *cocktailClient) getOne(ctx context.Context, endpoint string, query url.Values) (domain.Cocktail, error) {
	drinks, err := c.getMany(ctx, endpoint, query)
	if err != nil {
		return domain.Cocktail{}, err
	}
	return drinks[0], nil
}

// getMany decodes the drinks envelope and normalizes it. A null or empty
// payload is ErrNoCocktailFound: an empty result where drinks were expected
// is a failure, not a silent empty success.
func (c *cocktailClient) getMany(ctx context.Context, endpoint string, query url.Values) ([]domain.Cocktail, error) {
	var envelope domain.CocktailEnvelope
	if err := c.get(ctx, endpoint, query, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Drinks) == 0 {
		return nil, domain.ErrNoCocktailFound
	}

	drinks := make([]domain.Cocktail, 0, len(envelope.Drinks))
	for _, raw := range envelope.Drinks {
		drinks = append(drinks, raw.Normalize())
	}
	return drinks, nil
}

func (c *cocktailClient) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	requestURL := c.baseURL + endpoint
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cocktaildb API error: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
