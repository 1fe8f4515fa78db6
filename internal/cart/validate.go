package cart

import (
	"piccante-system/internal/menu"
)

// WunschIngredientCount is how many real ingredients a Wunsch Pizza needs.
const WunschIngredientCount = 4

// CanFinalize gates the "add to cart" action of a configuration dialog.
// Each rule applies only when its precondition holds; an item without
// mandatory choices is always finalizable. AddItem itself does not
// re-check.
func CanFinalize(item menu.MenuItem, sel Selection) bool {
	if item.Category == menu.CategoryPasta && sel.PastaType == "" {
		return false
	}
	if item.RequiresSauce() && sel.Sauce == "" {
		return false
	}
	if item.Category == menu.CategoryWunschPizza && !ValidWunschIngredients(sel.Ingredients) {
		return false
	}
	if item.HasSizes() && sel.Size == nil {
		return false
	}
	return true
}

// ValidWunschIngredients accepts exactly the "ohne Zutat" sentinel alone or
// exactly four real ingredients.
func ValidWunschIngredients(ingredients []string) bool {
	if len(ingredients) == 1 && ingredients[0] == menu.NoIngredient {
		return true
	}
	if len(ingredients) != WunschIngredientCount {
		return false
	}
	for _, name := range ingredients {
		if name == menu.NoIngredient {
			return false
		}
	}
	return true
}

// ToggleIngredient applies one ingredient click and returns the new
// selection. The sentinel is mutually exclusive with everything else, a
// fifth real pick is silently ignored, and deselecting always works.
// Unknown names are ignored outright; the UI only offers legal choices.
func ToggleIngredient(selected []string, name string) []string {
	if !menu.IsKnownIngredient(name) {
		return selected
	}

	if idx := indexOf(selected, name); idx >= 0 {
		return append(append([]string{}, selected[:idx]...), selected[idx+1:]...)
	}

	if name == menu.NoIngredient {
		return []string{menu.NoIngredient}
	}

	// A real pick displaces the sentinel.
	without := selected
	if idx := indexOf(selected, menu.NoIngredient); idx >= 0 {
		without = append(append([]string{}, selected[:idx]...), selected[idx+1:]...)
	}
	if len(without) >= WunschIngredientCount {
		return selected
	}
	return append(append([]string{}, without...), name)
}

// ToggleExtra applies one extra click. Extras are unlimited; unknown names
// are ignored.
func ToggleExtra(selected []string, name string) []string {
	if !menu.IsKnownExtra(name) {
		return selected
	}
	if idx := indexOf(selected, name); idx >= 0 {
		return append(append([]string{}, selected[:idx]...), selected[idx+1:]...)
	}
	return append(append([]string{}, selected...), name)
}

func indexOf(values []string, name string) int {
	for i, v := range values {
		if v == name {
			return i
		}
	}
	return -1
}
