package domain

// Phase is the user-visible lifecycle state of the session.
type Phase int

const (
	// PhaseWelcome is the initial state before any search.
	PhaseWelcome Phase = iota
	// PhaseSearching means a generation request is in flight.
	PhaseSearching
	// PhaseSucceeded means the last search returned at least one recipe.
	PhaseSucceeded
	// PhaseEmpty means the last search completed with zero recipes.
	PhaseEmpty
	// PhaseFailed means the last search errored.
	PhaseFailed
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseSearching:
		return "searching"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseEmpty:
		return "empty"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session is the single piece of mutable session state. The engine owns
// the live instance; everyone else sees copies.
type Session struct {
	LastCriteria *Criteria
	Results      []Recipe
	Selected     *Recipe
	Phase        Phase
	// ErrorMessage is set only while Phase is PhaseFailed.
	ErrorMessage string
}
