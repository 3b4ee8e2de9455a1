package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/hammamikhairi/recipegacha/internal/domain"
)

// FavoritesKey is the fixed storage key for the favorites blob.
const FavoritesKey = "favoriteRecipes"

// Compile-time interface check.
var _ domain.FavoritesStore = (*Favorites)(nil)

// Favorites is a persistent, ordered set of recipes keyed by ID. The
// in-memory view is authoritative for reads; every mutation is written
// through to the KV before Toggle returns.
type Favorites struct {
	mu      sync.RWMutex
	kv      domain.KV
	log     *zap.SugaredLogger
	recipes []domain.Recipe
}

// NewFavorites loads the favorites set from the KV. A missing key or an
// unparsable blob initializes to empty; first runs and corrupt state
// must never fail.
func NewFavorites(kv domain.KV, log *zap.SugaredLogger) *Favorites {
	f := &Favorites{kv: kv, log: log}

	data, err := kv.Get(FavoritesKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// First run.
	case err != nil:
		log.Warnf("favorites: load failed, starting empty: %v", err)
	default:
		var recipes []domain.Recipe
		if err := json.Unmarshal(data, &recipes); err != nil {
			log.Warnf("favorites: corrupt blob, starting empty: %v", err)
		} else {
			f.recipes = recipes
		}
	}

	f.log.Debugf("favorites: loaded %d recipe(s)", len(f.recipes))
	return f
}

// Toggle removes the recipe if a recipe with the same ID is present,
// appends it otherwise. The in-memory flip happens first and is never
// rolled back; a failed durable write is returned for logging only.
func (f *Favorites) Toggle(recipe domain.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i := f.indexOf(recipe.ID); i >= 0 {
		f.recipes = append(f.recipes[:i], f.recipes[i+1:]...)
		f.log.Debugf("favorites: removed %s (%q)", recipe.ID, recipe.Name)
	} else {
		f.recipes = append(f.recipes, recipe)
		f.log.Debugf("favorites: added %s (%q)", recipe.ID, recipe.Name)
	}
	return f.persistLocked()
}

// IsFavorite reports membership by recipe ID.
func (f *Favorites) IsFavorite(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.indexOf(id) >= 0
}

// List returns the favorites in insertion order.
func (f *Favorites) List() []domain.Recipe {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]domain.Recipe, len(f.recipes))
	copy(out, f.recipes)
	return out
}

func (f *Favorites) indexOf(id string) int {
	for i, r := range f.recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (f *Favorites) persistLocked() error {
	data, err := json.Marshal(f.recipes)
	if err != nil {
		return fmt.Errorf("favorites: marshal: %w", err)
	}
	if err := f.kv.Set(FavoritesKey, data); err != nil {
		return fmt.Errorf("favorites: persist: %w", err)
	}
	return nil
}
