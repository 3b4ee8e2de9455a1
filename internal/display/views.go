package display

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipegacha/internal/domain"
)

// Display precedence rules. The welcome box shows only before the first
// search, never together with the empty-state box.
func showWelcome(sess domain.Session) bool {
	return sess.Phase == domain.PhaseWelcome && len(sess.Results) == 0
}

func showEmpty(sess domain.Session) bool {
	return sess.Phase == domain.PhaseEmpty
}

func (m model) View() string {
	if m.sess.Selected != nil {
		return m.viewDetail(*m.sess.Selected)
	}
	if m.screen == screenFavorites {
		return m.viewFavorites()
	}
	return m.viewSearch()
}

// ── Search screen ────────────────────────────────────────────────

func (m model) viewSearch() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewForm())
	b.WriteString("\n")

	switch {
	case m.sess.Phase == domain.PhaseSearching:
		b.WriteString("  " + m.spin.View() + m.styles.secondary.Render(" drawing recipes...") + "\n\n")
	case m.sess.Phase == domain.PhaseFailed:
		b.WriteString(m.styles.errBanner.Render(m.sess.ErrorMessage) + "\n\n")
	}

	switch {
	case showWelcome(m.sess):
		b.WriteString(m.viewWelcome())
	case showEmpty(m.sess):
		b.WriteString(m.styles.infoBox.Render(
			m.styles.title.Render("No recipes found") + "\n" +
				m.styles.secondary.Render("Change the conditions and try another draw."),
		) + "\n")
	case len(m.sess.Results) > 0:
		b.WriteString(m.viewResults())
	}

	b.WriteString("\n" + m.styles.help.Render(
		"  tab: field  ←/→: change  enter: draw  r: again  ↑/↓: browse  o: open  space: ♥  f: favorites  D: theme  q: quit"))
	return b.String()
}

func (m model) viewHeader() string {
	count := len(m.eng.Favorites())
	left := m.styles.title.Render("Recipe Gacha")
	right := m.styles.favorite.Render(fmt.Sprintf("♥ %d favorite(s)", count))
	return "  " + left + "   " + right + "\n"
}

func (m model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(renderBanner(m.styles.banner, m.width))
	b.WriteString("\n")
	b.WriteString(m.styles.infoBox.Render(
		m.styles.title.Render("Welcome to Recipe Gacha!") + "\n" +
			m.styles.primary.Render("Not sure what to cook? Set the mood, the time you have,\nand how many you're feeding, then draw three AI recipes.") + "\n" +
			m.styles.secondary.Render("Press enter to spin the gacha."),
	))
	b.WriteString("\n")
	return b.String()
}

func (m model) viewForm() string {
	meal := domain.MealTypes()[m.mealIdx]
	cook := domain.CookingTimes()[m.timeIdx]

	rows := []struct {
		field formField
		label string
		value string
	}{
		{fieldMealType, "Meal", meal.Label()},
		{fieldCookingTime, "Time", cook.Label()},
		{fieldServings, "Servings", fmt.Sprintf("%d", m.serving)},
	}

	var b strings.Builder
	for _, row := range rows {
		label := m.styles.label.Render(fmt.Sprintf("%10s", row.label))
		value := m.styles.value.Render(row.value)
		marker := "  "
		if row.field == m.focus {
			marker = m.styles.focused.Render("› ")
			value = m.styles.focused.Render("‹ " + row.value + " ›")
		}
		b.WriteString("  " + marker + label + "  " + value + "\n")
	}
	return b.String()
}

func (m model) viewResults() string {
	var b strings.Builder
	for i, r := range m.sess.Results {
		b.WriteString(m.viewResultLine(i == m.cursor, r))
	}
	return b.String()
}

func (m model) viewResultLine(selected bool, r domain.Recipe) string {
	marker := "   "
	nameStyle := m.styles.primary
	if selected {
		marker = m.styles.cursor.Render(" ❯ ")
		nameStyle = m.styles.cursor
	}

	heart := "  "
	if m.eng.IsFavorite(r.ID) {
		heart = m.styles.favorite.Render("♥ ")
	}

	meta := make([]string, 0, 3)
	if r.CookingTimeMinutes != nil {
		meta = append(meta, fmt.Sprintf("%dmin", *r.CookingTimeMinutes))
	}
	if r.Calories != nil {
		meta = append(meta, fmt.Sprintf("%dkcal", *r.Calories))
	}
	if r.Servings != nil {
		meta = append(meta, fmt.Sprintf("serves %d", *r.Servings))
	}

	line := marker + heart + nameStyle.Render(r.Name)
	if len(meta) > 0 {
		line += m.styles.secondary.Render("  (" + strings.Join(meta, " · ") + ")")
	}
	return line + "\n" + "      " + m.styles.secondary.Render(r.Description) + "\n"
}

// ── Favorites screen ─────────────────────────────────────────────

func (m model) viewFavorites() string {
	favs := m.eng.Favorites()

	var b strings.Builder
	b.WriteString("  " + m.styles.title.Render("Favorites") + "\n\n")

	if len(favs) == 0 {
		b.WriteString(m.styles.secondary.Render("  Nothing saved yet. Toggle ♥ on a recipe you like.") + "\n")
	}
	for i, r := range favs {
		b.WriteString(m.viewFavoriteLine(i == m.favCursor, r))
	}

	b.WriteString("\n" + m.styles.help.Render("  ↑/↓: browse  o/enter: open  space: remove  esc: back  q: quit"))
	return b.String()
}

func (m model) viewFavoriteLine(selected bool, r domain.Recipe) string {
	marker := "   "
	nameStyle := m.styles.primary
	if selected {
		marker = m.styles.cursor.Render(" ❯ ")
		nameStyle = m.styles.cursor
	}
	return marker + m.styles.favorite.Render("♥ ") + nameStyle.Render(r.Name) +
		"  " + m.styles.secondary.Render(r.Description) + "\n"
}

// ── Detail view ──────────────────────────────────────────────────

func (m model) viewDetail(r domain.Recipe) string {
	var b strings.Builder

	heart := "♡"
	if m.eng.IsFavorite(r.ID) {
		heart = m.styles.favorite.Render("♥")
	}
	b.WriteString("  " + m.styles.title.Render(r.Name) + " " + heart + "\n")
	b.WriteString("  " + m.styles.secondary.Render(r.Description) + "\n\n")

	meta := make([]string, 0, 3)
	if r.CookingTimeMinutes != nil {
		meta = append(meta, fmt.Sprintf("⏱ %d min", *r.CookingTimeMinutes))
	}
	if r.Calories != nil {
		meta = append(meta, fmt.Sprintf("%d kcal", *r.Calories))
	}
	if r.Servings != nil {
		meta = append(meta, fmt.Sprintf("serves %d", *r.Servings))
	}
	if len(meta) > 0 {
		b.WriteString("  " + m.styles.accent.Render(strings.Join(meta, "   ")) + "\n\n")
	}

	if len(r.Ingredients) > 0 {
		b.WriteString("  " + m.styles.label.Render("Ingredients") + "\n")
		for _, ing := range r.Ingredients {
			b.WriteString("    " + m.styles.primary.Render("• "+ing.Name) +
				m.styles.secondary.Render("  "+ing.Quantity) + "\n")
		}
		b.WriteString("\n")
	}

	if len(r.Instructions) > 0 {
		b.WriteString("  " + m.styles.label.Render("Steps") + "\n")
		for i, step := range r.Instructions {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				m.styles.accent.Render(fmt.Sprintf("%d.", i+1)),
				m.styles.primary.Render(step)))
		}
		b.WriteString("\n")
	}

	if r.Nutrition != nil {
		parts := make([]string, 0, 3)
		if r.Nutrition.Protein != nil {
			parts = append(parts, "protein "+*r.Nutrition.Protein)
		}
		if r.Nutrition.Fat != nil {
			parts = append(parts, "fat "+*r.Nutrition.Fat)
		}
		if r.Nutrition.Carbs != nil {
			parts = append(parts, "carbs "+*r.Nutrition.Carbs)
		}
		if len(parts) > 0 {
			b.WriteString("  " + m.styles.label.Render("Nutrition (est.)") + "  " +
				m.styles.secondary.Render(strings.Join(parts, " · ")) + "\n\n")
		}
	}

	if r.Tips != nil && *r.Tips != "" {
		b.WriteString("  " + m.styles.label.Render("Tip") + "  " + m.styles.secondary.Render(*r.Tips) + "\n\n")
	}

	b.WriteString(m.styles.help.Render("  space: toggle ♥  esc: close  q: quit"))
	return b.String()
}
