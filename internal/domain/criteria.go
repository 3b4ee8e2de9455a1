package domain

import "fmt"

// Serving bounds for a search. Out-of-range values are clamped, never
// rejected; criteria validation is total.
const (
	MinServings     = 1
	MaxServings     = 10
	DefaultServings = 2
)

// MealType narrows a search to a kind of meal.
type MealType int

const (
	MealAny MealType = iota
	MealBreakfast
	MealLunch
	MealDinner
	MealDessert
)

// MealTypes lists all meal types in display order.
func MealTypes() []MealType {
	return []MealType{MealAny, MealBreakfast, MealLunch, MealDinner, MealDessert}
}

// String returns a short machine-friendly name.
func (m MealType) String() string {
	switch m {
	case MealAny:
		return "any"
	case MealBreakfast:
		return "breakfast"
	case MealLunch:
		return "lunch"
	case MealDinner:
		return "dinner"
	case MealDessert:
		return "dessert"
	default:
		return "any"
	}
}

// Label returns the service-facing wording used in prompts and in the UI.
func (m MealType) Label() string {
	switch m {
	case MealBreakfast:
		return "breakfast"
	case MealLunch:
		return "lunch"
	case MealDinner:
		return "dinner"
	case MealDessert:
		return "dessert"
	default:
		return "no preference"
	}
}

// CookingTime is an upper bound on total cooking time.
type CookingTime int

const (
	TimeAny CookingTime = iota
	TimeUnder15
	TimeUnder30
	TimeUnder60
)

// CookingTimes lists all cooking-time bounds in display order.
func CookingTimes() []CookingTime {
	return []CookingTime{TimeAny, TimeUnder15, TimeUnder30, TimeUnder60}
}

// String returns a short machine-friendly name.
func (t CookingTime) String() string {
	switch t {
	case TimeUnder15:
		return "under15"
	case TimeUnder30:
		return "under30"
	case TimeUnder60:
		return "under60"
	default:
		return "any"
	}
}

// Label returns the service-facing wording used in prompts and in the UI.
func (t CookingTime) Label() string {
	switch t {
	case TimeUnder15:
		return "15 minutes or less"
	case TimeUnder30:
		return "30 minutes or less"
	case TimeUnder60:
		return "60 minutes or less"
	default:
		return "no limit"
	}
}

// Criteria is an immutable search request. Servings of 0 means the caller
// skipped the field entirely; use NewCriteria to get the default.
type Criteria struct {
	MealType    MealType
	CookingTime CookingTime
	Servings    int
}

// NewCriteria builds criteria with the default serving count. Go zero
// values can't distinguish "absent" from 0, so absence lives here: callers
// that don't care about servings use this constructor.
func NewCriteria(meal MealType, cookingTime CookingTime) Criteria {
	return Criteria{MealType: meal, CookingTime: cookingTime, Servings: DefaultServings}
}

// Normalized returns a copy with Servings clamped into
// [MinServings, MaxServings] and unknown enum ordinals folded to the
// any-variant. Idempotent.
func (c Criteria) Normalized() Criteria {
	if c.Servings < MinServings {
		c.Servings = MinServings
	}
	if c.Servings > MaxServings {
		c.Servings = MaxServings
	}
	if c.MealType < MealAny || c.MealType > MealDessert {
		c.MealType = MealAny
	}
	if c.CookingTime < TimeAny || c.CookingTime > TimeUnder60 {
		c.CookingTime = TimeAny
	}
	return c
}

// String renders criteria for logs.
func (c Criteria) String() string {
	return fmt.Sprintf("%s/%s/%dp", c.MealType, c.CookingTime, c.Servings)
}
