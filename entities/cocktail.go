package entities

// FavoriteCocktail is a denormalized snapshot of a drink taken at the moment
// it was favorited. The primary key is the upstream drink id, so re-favoriting
// the same drink replaces the stored snapshot.
type FavoriteCocktail struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url"`
	Category     string `json:"category"`
	Instructions string `json:"instructions"`
	// The upstream API flattens ingredients across fifteen numbered fields;
	// favorites do not carry them, the column stays empty.
	Ingredients string `json:"ingredients"`
}

func (FavoriteCocktail) TableName() string {
	return "favorite_cocktails"
}

// CreatedCocktail is a user-authored recipe. The id is a store-assigned
// surrogate key, never reused; rows are immutable once written.
type CreatedCocktail struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	// ImageURI references a user-supplied image; nil means "use placeholder".
	ImageURI *string `json:"image_uri,omitempty"`
}

func (CreatedCocktail) TableName() string {
	return "created_cocktails"
}

// SchemaVersion holds the single row gating destructive re-migration.
type SchemaVersion struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	Version int  `json:"version"`
}

func (SchemaVersion) TableName() string {
	return "schema_versions"
}
