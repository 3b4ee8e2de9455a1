package storage

import (
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/hammamikhairi/recipegacha/internal/domain"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func sampleRecipe(id, name string) domain.Recipe {
	mins := 20
	return domain.Recipe{
		ID:                 id,
		Name:               name,
		Description:        "test recipe",
		CookingTimeMinutes: &mins,
		MainIngredients:    []string{"eggs"},
		Ingredients:        []domain.IngredientItem{{Name: "eggs", Quantity: "2"}},
		Instructions:       []string{"Whisk.", "Fry."},
	}
}

func TestFavoritesToggle(t *testing.T) {
	favs := NewFavorites(NewMemoryKV(), testLogger())
	r := sampleRecipe("r1", "Omelette")

	if favs.IsFavorite("r1") {
		t.Fatal("fresh store should not contain r1")
	}

	if err := favs.Toggle(r); err != nil {
		t.Fatalf("toggle add: %v", err)
	}
	if !favs.IsFavorite("r1") {
		t.Fatal("expected r1 after toggle")
	}

	if err := favs.Toggle(r); err != nil {
		t.Fatalf("toggle remove: %v", err)
	}
	if favs.IsFavorite("r1") {
		t.Fatal("expected r1 gone after second toggle")
	}
	if got := favs.List(); len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
}

func TestFavoritesInsertionOrder(t *testing.T) {
	favs := NewFavorites(NewMemoryKV(), testLogger())

	for _, id := range []string{"a", "b", "c"} {
		if err := favs.Toggle(sampleRecipe(id, id)); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
	}

	got := favs.List()
	for i, want := range []string{"a", "b", "c"} {
		if got[i].ID != want {
			t.Fatalf("expected %s at %d, got %s", want, i, got[i].ID)
		}
	}
}

func TestFavoritesRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	r := sampleRecipe("r1", "Omelette")
	tips := "butter, not oil"
	r.Tips = &tips
	r.Nutrition = &domain.NutritionInfo{Protein: strPtr("12g")}

	favs := NewFavorites(kv, testLogger())
	if err := favs.Toggle(r); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// A fresh store over the same KV simulates a process restart.
	reloaded := NewFavorites(kv, testLogger())
	got := reloaded.List()
	if len(got) != 1 {
		t.Fatalf("expected 1 favorite after reload, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0], r) {
		t.Fatalf("round-trip mismatch:\n got %+v\nwant %+v", got[0], r)
	}
}

func TestFavoritesFileKVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	r := sampleRecipe("r1", "Omelette")

	favs := NewFavorites(NewFileKV(dir), testLogger())
	if err := favs.Toggle(r); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	reloaded := NewFavorites(NewFileKV(dir), testLogger())
	got := reloaded.List()
	if len(got) != 1 || !reflect.DeepEqual(got[0], r) {
		t.Fatalf("file round-trip mismatch: %+v", got)
	}
}

func TestFavoritesFailsOpen(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"corrupt json", "{{{not json"},
		{"wrong shape", `{"not": "an array"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryKV()
			if err := kv.Set(FavoritesKey, []byte(tt.blob)); err != nil {
				t.Fatalf("seed kv: %v", err)
			}

			favs := NewFavorites(kv, testLogger())
			if got := favs.List(); len(got) != 0 {
				t.Fatalf("expected empty store, got %d", len(got))
			}
			// The store must still be writable afterwards.
			if err := favs.Toggle(sampleRecipe("r1", "Omelette")); err != nil {
				t.Fatalf("toggle after corrupt load: %v", err)
			}
		})
	}
}

// failingKV accepts reads but rejects writes.
type failingKV struct {
	*MemoryKV
}

func (f *failingKV) Set(key string, value []byte) error {
	return errors.New("disk full")
}

func TestFavoritesKeepsMemoryOnWriteFailure(t *testing.T) {
	favs := NewFavorites(&failingKV{NewMemoryKV()}, testLogger())
	r := sampleRecipe("r1", "Omelette")

	err := favs.Toggle(r)
	if err == nil {
		t.Fatal("expected persist error")
	}
	// The optimistic in-memory update survives the failed write.
	if !favs.IsFavorite("r1") {
		t.Fatal("in-memory state must not roll back on persist failure")
	}
}

func TestFileKVGetAbsent(t *testing.T) {
	kv := NewFileKV(t.TempDir())
	if _, err := kv.Get("missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func strPtr(s string) *string { return &s }
