package domain

import "errors"

var (
	MessageSuccessCreateCocktail = "cocktail created successfully"
	MessageSuccessGetCreations   = "success get created cocktails"
	MessageSuccessUploadImage    = "success upload creation image"

	MessageFailedCreateCocktail = "failed to create cocktail"
	MessageFailedGetCreations   = "failed to get created cocktails"
	MessageFailedUploadImage    = "failed to upload creation image"

	ErrMissingRequiredFields = errors.New("please enter a name and instructions")
)

// DefaultCreationCategory is stored when the user supplies no tags.
const DefaultCreationCategory = "Creation"

type (
	CreateCocktailRequest struct {
		Name         string   `json:"name" validate:"required"`
		Categories   []string `json:"categories" validate:"omitempty"`
		Ingredients  string   `json:"ingredients" validate:"omitempty"`
		Instructions string   `json:"instructions" validate:"required"`
		ImageURI     *string  `json:"image_uri" validate:"omitempty"`
	}

	CreateCocktailResponse struct {
		ID          int64  `json:"id"`
		Destination string `json:"destination"`
	}
)
