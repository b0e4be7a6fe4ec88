package domain

import "errors"

var (
	MessageSuccessGetCocktail   = "success get cocktail"
	MessageSuccessGetCocktails  = "success get cocktails"
	MessageSuccessGetCategories = "success get categories"
	MessageSuccessGetHome       = "success get home"
	MessageSuccessGenerate      = "cocktail generated successfully"

	MessageFailedGetCocktail   = "failed to get cocktail"
	MessageFailedGetCocktails  = "failed to get cocktails"
	MessageFailedGetCategories = "failed to get categories"
	MessageFailedGetHome       = "failed to get home"
	MessageFailedGenerate      = "the AI could not generate the recipe"

	ErrNoCocktailFound = errors.New("no cocktail found")
	ErrGeminiAPIFailed = errors.New("gemini API processing failed")
)

// MyCreationsCategory is the synthetic category prepended to the remote
// category list. Navigating into it never touches the remote API.
const MyCreationsCategory = "My Creations"

type (
	// Cocktail is a fully-populated recipe snapshot. Missing upstream fields
	// are normalized to empty strings at the collaborator boundary, so the
	// rest of the application never deals with optionality.
	Cocktail struct {
		ID           string `json:"idDrink"`
		Name         string `json:"strDrink"`
		ImageURL     string `json:"strDrinkThumb"`
		Category     string `json:"strCategory"`
		Alcoholic    string `json:"strAlcoholic"`
		Glass        string `json:"strGlass"`
		Instructions string `json:"strInstructions"`

		// The free API flattens ingredients into numbered fields; the first
		// three slots are enough for every screen that renders them.
		Ingredient1 string `json:"strIngredient1"`
		Ingredient2 string `json:"strIngredient2"`
		Ingredient3 string `json:"strIngredient3"`
		Measure1    string `json:"strMeasure1"`
		Measure2    string `json:"strMeasure2"`
		Measure3    string `json:"strMeasure3"`
	}

	// CocktailEnvelope mirrors the wire shape shared by TheCocktailDB and the
	// Gemini collaborator: a wrapper whose payload is a list of drinks. Every
	// field is nullable on the wire.
	CocktailEnvelope struct {
		Drinks []RawCocktail `json:"drinks"`
	}

	RawCocktail struct {
		IDDrink         *string `json:"idDrink"`
		StrDrink        *string `json:"strDrink"`
		StrDrinkThumb   *string `json:"strDrinkThumb"`
		StrCategory     *string `json:"strCategory"`
		StrAlcoholic    *string `json:"strAlcoholic"`
		StrGlass        *string `json:"strGlass"`
		StrInstructions *string `json:"strInstructions"`
		StrIngredient1  *string `json:"strIngredient1"`
		StrIngredient2  *string `json:"strIngredient2"`
		StrIngredient3  *string `json:"strIngredient3"`
		StrMeasure1     *string `json:"strMeasure1"`
		StrMeasure2     *string `json:"strMeasure2"`
		StrMeasure3     *string `json:"strMeasure3"`
	}

	// CategoryEnvelope wraps the category listing, which reuses the "drinks"
	// key upstream.
	CategoryEnvelope struct {
		Drinks []CategoryItem `json:"drinks"`
	}

	CategoryItem struct {
		StrCategory *string `json:"strCategory"`
	}
)

// Normalize substitutes empty strings for every missing wire field.
func (r RawCocktail) Normalize() Cocktail {
	return Cocktail{
		ID:           deref(r.IDDrink),
		Name:         deref(r.StrDrink),
		ImageURL:     deref(r.StrDrinkThumb),
		Category:     deref(r.StrCategory),
		Alcoholic:    deref(r.StrAlcoholic),
		Glass:        deref(r.StrGlass),
		Instructions: deref(r.StrInstructions),
		Ingredient1:  deref(r.StrIngredient1),
		Ingredient2:  deref(r.StrIngredient2),
		Ingredient3:  deref(r.StrIngredient3),
		Measure1:     deref(r.StrMeasure1),
		Measure2:     deref(r.StrMeasure2),
		Measure3:     deref(r.StrMeasure3),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
