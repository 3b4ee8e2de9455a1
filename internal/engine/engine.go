// Package engine implements the session state machine driving the
// search → results → favorites lifecycle.
package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hammamikhairi/recipegacha/internal/domain"
	"github.com/hammamikhairi/recipegacha/internal/recipe"
)

// Option configures the engine.
type Option func(*Engine)

// WithSearchTimeout bounds a single generation request.
func WithSearchTimeout(d time.Duration) Option {
	return func(e *Engine) { e.searchTimeout = d }
}

// Engine owns the single session state and orchestrates searches. It
// depends only on interfaces and is fully testable with stubs.
//
// The presentation layer never sees errors from the generator; failures
// become state (PhaseFailed + ErrorMessage) and nothing else.
type Engine struct {
	gen       domain.RecipeGenerator
	favorites domain.FavoritesStore
	log       *zap.SugaredLogger

	searchTimeout time.Duration

	mu   sync.Mutex
	sess domain.Session
	// seq is the monotonically increasing request token. A response is
	// applied only while its token is still the latest issued; stale
	// responses from superseded searches are discarded, which is the
	// only concurrency rule that matters here.
	seq uint64

	changes chan struct{}
}

// New creates an engine with the given dependencies and options.
func New(gen domain.RecipeGenerator, favorites domain.FavoritesStore, log *zap.SugaredLogger, opts ...Option) *Engine {
	e := &Engine{
		gen:           gen,
		favorites:     favorites,
		log:           log,
		searchTimeout: 90 * time.Second,
		sess:          domain.Session{Phase: domain.PhaseWelcome},
		changes:       make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Changes signals session-state transitions to the presentation layer.
// The channel coalesces: a pending signal covers any number of updates;
// receivers re-read Snapshot after each signal.
func (e *Engine) Changes() <-chan struct{} { return e.changes }

// Snapshot returns a copy of the current session state.
func (e *Engine) Snapshot() domain.Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := e.sess
	snap.Results = append([]domain.Recipe(nil), e.sess.Results...)
	if e.sess.LastCriteria != nil {
		c := *e.sess.LastCriteria
		snap.LastCriteria = &c
	}
	if e.sess.Selected != nil {
		r := *e.sess.Selected
		snap.Selected = &r
	}
	return snap
}

// Search starts a new search. It returns immediately; the outcome is
// applied asynchronously and announced via Changes. A newer search always
// supersedes an older in-flight one.
func (e *Engine) Search(ctx context.Context, criteria domain.Criteria) {
	criteria = criteria.Normalized()

	e.mu.Lock()
	e.seq++
	token := e.seq
	crit := criteria
	e.sess.LastCriteria = &crit
	e.sess.Phase = domain.PhaseSearching
	e.sess.ErrorMessage = ""
	e.sess.Results = nil
	e.mu.Unlock()
	e.notify()

	e.log.Infof("search #%d: %s", token, criteria)

	go func() {
		ctx, cancel := context.WithTimeout(ctx, e.searchTimeout)
		defer cancel()

		drafts, err := e.gen.Generate(ctx, criteria)
		e.apply(token, drafts, err)
	}()
}

// RepeatSearch re-issues the last search. Returns ErrNoPreviousSearch if
// no search has been made yet.
func (e *Engine) RepeatSearch(ctx context.Context) error {
	e.mu.Lock()
	last := e.sess.LastCriteria
	e.mu.Unlock()

	if last == nil {
		return domain.ErrNoPreviousSearch
	}
	e.Search(ctx, *last)
	return nil
}

// apply installs a search outcome, unless a newer search has started.
func (e *Engine) apply(token uint64, drafts []domain.RecipeDraft, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if token != e.seq {
		e.log.Debugf("search #%d: discarding stale outcome (latest is #%d)", token, e.seq)
		return
	}

	if err != nil {
		e.sess.Phase = domain.PhaseFailed
		e.sess.ErrorMessage = domain.GenerationUserMessage(err)
		e.sess.Results = nil
		e.log.Errorf("search #%d failed: %v", token, err)
	} else {
		results := recipe.MaterializeAll(drafts)
		e.sess.Results = results
		e.sess.ErrorMessage = ""
		if len(results) > 0 {
			e.sess.Phase = domain.PhaseSucceeded
		} else {
			e.sess.Phase = domain.PhaseEmpty
		}
		e.log.Infof("search #%d: %d recipe(s), phase=%s", token, len(results), e.sess.Phase)
	}
	e.notify()
}

// ViewDetails selects a recipe for the detail view. The recipe does not
// have to be part of the current results; favorites open here too.
func (e *Engine) ViewDetails(r domain.Recipe) {
	e.mu.Lock()
	e.sess.Selected = &r
	e.mu.Unlock()
	e.notify()
}

// CloseDetails clears the detail selection.
func (e *Engine) CloseDetails() {
	e.mu.Lock()
	e.sess.Selected = nil
	e.mu.Unlock()
	e.notify()
}

// ToggleFavorite flips favorite membership for the recipe. Results,
// selection, and phase are untouched; a failed durable write is logged
// and otherwise ignored; favorites durability is non-fatal.
func (e *Engine) ToggleFavorite(r domain.Recipe) {
	if err := e.favorites.Toggle(r); err != nil {
		e.log.Errorf("favorites: %v", err)
	}
	e.notify()
}

// IsFavorite reports favorite membership by ID.
func (e *Engine) IsFavorite(id string) bool {
	return e.favorites.IsFavorite(id)
}

// Favorites lists the favorite recipes in insertion order.
func (e *Engine) Favorites() []domain.Recipe {
	return e.favorites.List()
}

// notify signals Changes without blocking. A full buffer means a signal
// is already pending, which covers this update too.
func (e *Engine) notify() {
	select {
	case e.changes <- struct{}{}:
	default:
	}
}
