package menu

import (
	"github.com/shopspring/decimal"
)

// Category drives which configuration dialog (if any) an item gets.
// It replaces the flag/id-range checks the storefront used to do per click:
// every item is tagged once, at catalog definition time.
type Category string

const (
	// CategorySimple items go straight into the cart at base price.
	CategorySimple Category = "simple"
	// CategorySized items only need a size choice (drinks, burgers).
	CategorySized Category = "sized"
	// CategoryPizza items offer sizes, extras and a special request.
	CategoryPizza Category = "pizza"
	// CategoryWunschPizza additionally requires exactly four ingredients
	// (or the explicit "ohne Zutat" choice).
	CategoryWunschPizza Category = "wunsch_pizza"
	// CategoryPasta items require a noodle type.
	CategoryPasta Category = "pasta"
	// CategorySauced specialties require a sauce (Tzatziki / ohne Soße).
	CategorySauced Category = "sauced"
	// CategorySalad items require a dressing.
	CategorySalad Category = "salad"
	// CategoryBeer items require picking the brand.
	CategoryBeer Category = "beer"
)

type Size struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

type MenuItem struct {
	ID          int             `json:"id"`
	Number      string          `json:"number"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Allergens   string          `json:"allergens,omitempty"`
	Sizes       []Size          `json:"sizes,omitempty"`
	Category    Category        `json:"category"`
}

// HasSizes reports whether the base price is only advisory and the real
// price comes from the chosen size.
func (m MenuItem) HasSizes() bool {
	return len(m.Sizes) > 0
}

// SizeByName returns the named size, or nil if the item has no such size.
func (m MenuItem) SizeByName(name string) *Size {
	for i := range m.Sizes {
		if m.Sizes[i].Name == name {
			return &m.Sizes[i]
		}
	}
	return nil
}

// MinPrice is the "ab"-price shown on the menu card for sized items.
func (m MenuItem) MinPrice() decimal.Decimal {
	if !m.HasSizes() {
		return m.Price
	}
	min := m.Sizes[0].Price
	for _, s := range m.Sizes[1:] {
		if s.Price.LessThan(min) {
			min = s.Price
		}
	}
	return min
}

// OffersExtras reports whether the extras list applies to this item.
func (m MenuItem) OffersExtras() bool {
	return m.Category == CategoryPizza || m.Category == CategoryWunschPizza
}

// OffersSpecialRequest reports whether the Sonderwunsch selector applies.
func (m MenuItem) OffersSpecialRequest() bool {
	return m.Category == CategoryPizza || m.Category == CategoryWunschPizza
}

// RequiresSauce reports whether a sauce choice is mandatory before the item
// can be ordered.
func (m MenuItem) RequiresSauce() bool {
	switch m.Category {
	case CategorySauced, CategorySalad, CategoryBeer:
		return true
	}
	return false
}

// SauceChoices returns the selector list backing the sauce requirement.
func (m MenuItem) SauceChoices() []string {
	switch m.Category {
	case CategorySauced:
		return SauceTypes
	case CategorySalad:
		return SaladSauceTypes
	case CategoryBeer:
		return BeerTypes
	}
	return nil
}

// NeedsConfiguration decides whether clicking an item opens the
// configuration dialog or adds it directly with quantity 1.
func NeedsConfiguration(item MenuItem) bool {
	if item.HasSizes() {
		return true
	}
	switch item.Category {
	case CategoryWunschPizza, CategoryPizza, CategoryPasta, CategoryBeer,
		CategorySauced, CategorySalad:
		return true
	}
	return false
}
