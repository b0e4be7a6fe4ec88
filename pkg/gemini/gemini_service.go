package gemini

import (
	"Cocktail-Companion/domain"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

type (
	// GeminiService turns a free-text ingredient list into a single generated
	// cocktail. A malformed, empty or fence-wrapped-but-unparseable response
	// is a failure, never a zero-recipe success.
	GeminiService interface {
		GenerateCocktail(ctx context.Context, ingredients string) (domain.Cocktail, error)
	}

	geminiService struct {
		apiKey   string
		model    string
		endpoint string
	}
)

func NewGeminiService(apiKey, model string) GeminiService {
	return &geminiService{
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultEndpoint,
	}
}

func (s *geminiService) GenerateCocktail(ctx context.Context, ingredients string) (domain.Cocktail, error) {
	if s.apiKey == "" {
		return domain.Cocktail{}, fmt.Errorf("GEMINI_API_KEY not configured")
	}
	if s.model == "" {
		return domain.Cocktail{}, fmt.Errorf("GEMINI_MODEL not configured")
	}

	prompt := fmt.Sprintf(
		"You are an expert mixologist. Create a UNIQUE cocktail recipe using mainly the following ingredients: %s. "+
			"You can add common base ingredients (sugar, lemon, ice, soda water) if necessary to balance the drink. "+
			"Give the cocktail a creative name. "+
			"IMPORTANT: You must reply ONLY with a raw JSON object. All the text (name, instructions, ingredients) MUST BE IN ENGLISH. "+
			"Do NOT use markdown tags (like ```json ... ```). "+
			"The JSON must EXACTLY match this structure for my app to read it: "+
			`{"drinks":[{"idDrink":"gemini_%s","strDrink":"Creative Cocktail Name Here",`+
			`"strInstructions":"Step-by-step instructions to make the cocktail...",`+
			`"strDrinkThumb":"https://cdn.midjourney.com/5702468b-3b23-47aa-965d-035ba2472113/0_3.png",`+
			`"strIngredient1":"First ingredient used","strMeasure1":"Quantity (e.g., 2 oz)",`+
			`"strIngredient2":"Second ingredient","strMeasure2":"Quantity",`+
			`"strAlcoholic":"Alcoholic","strCategory":"Cocktail Created by AI"}]} `+
			"For the image (strDrinkThumb), ALWAYS use the example URL provided above.",
		ingredients,
		uuid.New().String(),
	)

	responseText, err := s.generateContent(ctx, prompt)
	if err != nil {
		return domain.Cocktail{}, err
	}

	cleanText := stripCodeFences(strings.TrimSpace(responseText))
	if cleanText == "" {
		return domain.Cocktail{}, domain.ErrGeminiAPIFailed
	}

	var envelope domain.CocktailEnvelope
	if err := json.Unmarshal([]byte(cleanText), &envelope); err != nil {
		return domain.Cocktail{}, domain.ErrGeminiAPIFailed
	}
	if len(envelope.Drinks) == 0 {
		return domain.Cocktail{}, domain.ErrGeminiAPIFailed
	}

	cocktail := envelope.Drinks[0].Normalize()
	if cocktail.ID == "" {
		cocktail.ID = "gemini_" + uuid.New().String()
	}
	return cocktail, nil
}

func (s *geminiService) generateContent(ctx context.Context, prompt string) (string, error) {
	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	requestURL := fmt.Sprintf("%s/%s:generateContent?key=%s", s.endpoint, s.model, s.apiKey)

	httpClient := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiAPIFailed
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// stripCodeFences unwraps a response the model wrapped in markdown fences
// despite the prompt telling it not to.
func stripCodeFences(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.HasPrefix(lower, "```json"):
		text = text[len("```json"):]
	case strings.HasPrefix(text, "```"):
		text = text[len("```"):]
	default:
		return text
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
