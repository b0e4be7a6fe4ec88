package domain

var (
	MessageSuccessGetFavorites    = "success get favorites"
	MessageAcceptedAddFavorite    = "favorite add accepted"
	MessageAcceptedRemoveFavorite = "favorite remove accepted"

	MessageFailedGetFavorites = "failed to get favorites"
	MessageFailedAddFavorite  = "failed to add favorite"
)

// Placeholder values substituted when favoriting a snapshot with missing
// fields, so a half-empty upstream response can never crash the store path.
const (
	UnknownDrinkID   = "id_inconnu"
	UnknownDrinkName = "Name unknown"
)

type AddFavoriteRequest struct {
	Cocktail Cocktail `json:"cocktail"`
}
