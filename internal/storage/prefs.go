package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hammamikhairi/recipegacha/internal/domain"
)

// PrefsKey is the fixed storage key for user preferences.
const PrefsKey = "preferences"

// Preferences are the persisted user preferences.
type Preferences struct {
	DarkMode bool `json:"darkMode"`
}

// PrefsStore loads and saves Preferences through the KV capability.
type PrefsStore struct {
	kv  domain.KV
	log *zap.SugaredLogger
}

// NewPrefsStore creates a preferences store on top of kv.
func NewPrefsStore(kv domain.KV, log *zap.SugaredLogger) *PrefsStore {
	return &PrefsStore{kv: kv, log: log}
}

// Load returns the stored preferences. A missing key or corrupt blob
// yields the defaults, never an error.
func (s *PrefsStore) Load() Preferences {
	var p Preferences

	data, err := s.kv.Get(PrefsKey)
	if errors.Is(err, domain.ErrNotFound) {
		return p
	}
	if err != nil {
		s.log.Warnf("prefs: load failed, using defaults: %v", err)
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warnf("prefs: corrupt blob, using defaults: %v", err)
		return Preferences{}
	}
	return p
}

// Save durably writes the preferences.
func (s *PrefsStore) Save(p Preferences) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("prefs: marshal: %w", err)
	}
	if err := s.kv.Set(PrefsKey, data); err != nil {
		return fmt.Errorf("prefs: persist: %w", err)
	}
	return nil
}
