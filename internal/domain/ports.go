package domain

import "context"

// RecipeGenerator produces recipe drafts for search criteria.
// Implementations can be LLM-backed or test stubs. Errors should be
// *GenerationError so the caller can distinguish safety rejections.
type RecipeGenerator interface {
	Generate(ctx context.Context, criteria Criteria) ([]RecipeDraft, error)
}

// FavoritesStore is a persistent set of recipes keyed by ID.
// Implementations must preserve insertion order and survive restarts.
type FavoritesStore interface {
	// Toggle removes the recipe if present, appends it otherwise.
	// A returned error means the durable write failed; the in-memory
	// view has still been updated.
	Toggle(recipe Recipe) error
	IsFavorite(id string) bool
	List() []Recipe
}

// KV is the persisted key-value capability favorites and preferences sit
// on. Get returns ErrNotFound for absent keys. Implementations can be
// file-based or in-memory.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}
