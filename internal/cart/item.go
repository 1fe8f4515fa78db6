package cart

import (
	"github.com/shopspring/decimal"

	"piccante-system/internal/menu"
)

// Selection is the full configuration tuple of a cart line candidate.
// Ingredient and extra order is irrelevant; the identity key canonicalises
// them.
type Selection struct {
	Size           *menu.Size `json:"size,omitempty"`
	Ingredients    []string   `json:"ingredients,omitempty"`
	Extras         []string   `json:"extras,omitempty"`
	PastaType      string     `json:"pastaType,omitempty"`
	Sauce          string     `json:"sauce,omitempty"`
	SpecialRequest string     `json:"specialRequest,omitempty"`
}

// Line is one cart entry. MenuItem is a snapshot taken at add time with its
// Price field rewritten to the resolved unit price, so a stored cart prices
// identically even if the catalog changes afterwards.
type Line struct {
	MenuItem               menu.MenuItem `json:"menuItem"`
	Quantity               int           `json:"quantity"`
	SelectedSize           *menu.Size    `json:"selectedSize,omitempty"`
	SelectedIngredients    []string      `json:"selectedIngredients,omitempty"`
	SelectedExtras         []string      `json:"selectedExtras,omitempty"`
	SelectedPastaType      string        `json:"selectedPastaType,omitempty"`
	SelectedSauce          string        `json:"selectedSauce,omitempty"`
	SelectedSpecialRequest string        `json:"selectedSpecialRequest,omitempty"`
}

// Selection reconstructs the configuration tuple of the line.
func (l Line) Selection() Selection {
	return Selection{
		Size:           l.SelectedSize,
		Ingredients:    l.SelectedIngredients,
		Extras:         l.SelectedExtras,
		PastaType:      l.SelectedPastaType,
		Sauce:          l.SelectedSauce,
		SpecialRequest: l.SelectedSpecialRequest,
	}
}

// UnitPrice is the snapshotted per-unit price.
func (l Line) UnitPrice() decimal.Decimal {
	return l.MenuItem.Price
}

// Total is the line subtotal. Quantity scales the unit price here and only
// here; it is never baked into the stored price.
func (l Line) Total() decimal.Decimal {
	return l.MenuItem.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Key returns the line's identity key.
func (l Line) Key() string {
	return identityKey(l.MenuItem.ID, l.Selection())
}

// detach copies the line's shared state so callers cannot mutate engine
// internals through it.
func (l Line) detach() Line {
	l.SelectedIngredients = append([]string(nil), l.SelectedIngredients...)
	l.SelectedExtras = append([]string(nil), l.SelectedExtras...)
	if l.SelectedSize != nil {
		size := *l.SelectedSize
		l.SelectedSize = &size
	}
	return l
}
