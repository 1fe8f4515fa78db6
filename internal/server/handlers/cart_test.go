package handlers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"piccante-system/internal/cart"
	"piccante-system/internal/menu"
)

func testPizza() menu.MenuItem {
	return menu.MenuItem{
		ID:       502,
		Number:   "1",
		Name:     "Margherita",
		Price:    decimal.NewFromFloat(8.90),
		Category: menu.CategoryPizza,
		Sizes: []menu.Size{
			{Name: "Medium", Price: decimal.NewFromFloat(8.90)},
			{Name: "Large", Price: decimal.NewFromFloat(9.90)},
		},
	}
}

func TestSelectionDropsUnknownExtras(t *testing.T) {
	req := ItemConfigRequest{
		ItemID: 502,
		Size:   "Medium",
		Extras: []string{"Mais", "Trüffel", "Oliven"},
	}

	sel, ok := selection(testPizza(), req)
	require.True(t, ok)

	assert.Equal(t, []string{"Mais", "Oliven"}, sel.Extras)
	// Only the two real extras bill.
	assert.Equal(t, "11.90", cart.UnitPrice(testPizza(), sel).StringFixed(2))
}

func TestSelectionInventedWunschIngredientsDoNotCount(t *testing.T) {
	wunsch := menu.MenuItem{
		ID:       501,
		Category: menu.CategoryWunschPizza,
		Sizes: []menu.Size{
			{Name: "Medium", Price: decimal.NewFromFloat(9.90)},
		},
	}
	req := ItemConfigRequest{
		ItemID:      501,
		Size:        "Medium",
		Ingredients: []string{"Gold", "Silber", "Bronze", "Platin"},
	}

	sel, ok := selection(wunsch, req)
	require.True(t, ok)

	assert.Empty(t, sel.Ingredients)
	assert.False(t, cart.CanFinalize(wunsch, sel))
}

func TestSelectionRejectsUnknownSize(t *testing.T) {
	req := ItemConfigRequest{ItemID: 502, Size: "Gigantisch"}

	_, ok := selection(testPizza(), req)

	assert.False(t, ok)
}

func TestRequestSelectionMatchesFilteredAdd(t *testing.T) {
	req := ItemConfigRequest{
		ItemID: 502,
		Size:   "Medium",
		Extras: []string{"Mais", "Trüffel"},
	}

	added, ok := selection(testPizza(), req)
	require.True(t, ok)
	addedLine := cart.Line{
		MenuItem:       testPizza(),
		Quantity:       1,
		SelectedSize:   added.Size,
		SelectedExtras: added.Extras,
	}

	removal := requestSelection(req)
	removalLine := cart.Line{
		MenuItem:       testPizza(),
		Quantity:       1,
		SelectedSize:   removal.Size,
		SelectedExtras: removal.Extras,
	}

	// The same junk-laden tuple identifies the same line on add and remove.
	assert.Equal(t, addedLine.Key(), removalLine.Key())
}
