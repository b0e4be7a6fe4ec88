package gemini

import (
	"Cocktail-Companion/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *geminiService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &geminiService{
		apiKey:   "test-key",
		model:    "test-model",
		endpoint: server.URL,
	}
}

func modelResponse(text string) string {
	payload := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	encoded, _ := json.Marshal(payload)
	return string(encoded)
}

const drinksJSON = `{"drinks":[{"idDrink":"gemini_abc","strDrink":"Ruby Sunset","strInstructions":"Shake and strain.","strCategory":"Cocktail Created by AI"}]}`

func TestGenerateCocktail_ParsesRawJSON(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		fmt.Fprint(w, modelResponse(drinksJSON))
	})

	cocktail, err := service.GenerateCocktail(context.Background(), "gin, lime")
	require.NoError(t, err)
	assert.Equal(t, "gemini_abc", cocktail.ID)
	assert.Equal(t, "Ruby Sunset", cocktail.Name)
}

func TestGenerateCocktail_StripsMarkdownFences(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fenced := "```json\n" + drinksJSON + "\n```"
		fmt.Fprint(w, modelResponse(fenced))
	})

	cocktail, err := service.GenerateCocktail(context.Background(), "rum")
	require.NoError(t, err)
	assert.Equal(t, "Ruby Sunset", cocktail.Name)
}

func TestGenerateCocktail_PromptMentionsIngredients(t *testing.T) {
	var prompt string
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		prompt = body.Contents[0].Parts[0].Text
		fmt.Fprint(w, modelResponse(drinksJSON))
	})

	_, err := service.GenerateCocktail(context.Background(), "tequila, grapefruit")
	require.NoError(t, err)
	assert.True(t, strings.Contains(prompt, "tequila, grapefruit"))
	assert.True(t, strings.Contains(prompt, "raw JSON"))
}

func TestGenerateCocktail_MalformedResponseFails(t *testing.T) {
	for name, text := range map[string]string{
		"not json":     "I cannot help with that.",
		"empty drinks": `{"drinks":[]}`,
		"null drinks":  `{"drinks":null}`,
	} {
		t.Run(name, func(t *testing.T) {
			service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, modelResponse(text))
			})

			_, err := service.GenerateCocktail(context.Background(), "vodka")
			assert.True(t, errors.Is(err, domain.ErrGeminiAPIFailed))
		})
	}
}

func TestGenerateCocktail_BackfillsMissingID(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, modelResponse(`{"drinks":[{"strDrink":"Nameless"}]}`))
	})

	cocktail, err := service.GenerateCocktail(context.Background(), "gin")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cocktail.ID, "gemini_"))
}

func TestGenerateCocktail_UpstreamErrorPropagates(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := service.GenerateCocktail(context.Background(), "gin")
	require.Error(t, err)
}

func TestGenerateCocktail_MissingConfig(t *testing.T) {
	service := &geminiService{}
	_, err := service.GenerateCocktail(context.Background(), "gin")
	require.Error(t, err)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}
