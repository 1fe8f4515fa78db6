package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"piccante-system/internal/menu"
)

func testPizza() menu.MenuItem {
	return menu.MenuItem{
		ID:       502,
		Number:   "502",
		Name:     "Pizza Margherita",
		Price:    decimal.NewFromFloat(9.90),
		Category: menu.CategoryPizza,
		Sizes: []menu.Size{
			{Name: "Medium", Price: decimal.NewFromFloat(9.90)},
			{Name: "Large", Price: decimal.NewFromFloat(12.90)},
			{Name: "Family", Price: decimal.NewFromFloat(22.00)},
			{Name: "Mega", Price: decimal.NewFromFloat(30.00)},
		},
	}
}

func TestUnitPriceBaseOnly(t *testing.T) {
	item := testPizza()
	sel := Selection{Size: item.SizeByName("Medium")}

	assert.Equal(t, "9.90", UnitPrice(item, sel).StringFixed(2))
}

func TestUnitPriceExtrasAreFlatPerExtra(t *testing.T) {
	item := testPizza()
	sel := Selection{
		Size:   item.SizeByName("Medium"),
		Extras: []string{"Mais", "Oliven"},
	}

	assert.Equal(t, "12.90", UnitPrice(item, sel).StringFixed(2))
}

func TestUnitPriceSpecialRequestScalesWithTier(t *testing.T) {
	item := testPizza()

	tests := []struct {
		size string
		want string
	}{
		{"Medium", "11.90"},
		{"Large", "15.40"},
		{"Family", "25.50"},
		{"Mega", "34.50"},
	}

	for _, tc := range tests {
		t.Run(tc.size, func(t *testing.T) {
			sel := Selection{
				Size:           item.SizeByName(tc.size),
				SpecialRequest: "Käserand",
			}
			assert.Equal(t, tc.want, UnitPrice(item, sel).StringFixed(2))
		})
	}
}

func TestUnitPriceFullConfiguration(t *testing.T) {
	item := testPizza()
	sel := Selection{
		Size:           item.SizeByName("Medium"),
		Extras:         []string{"Mais", "Oliven"},
		SpecialRequest: "Käserand",
	}

	assert.Equal(t, "14.90", UnitPrice(item, sel).StringFixed(2))
}

func TestUnitPriceStandardRequestIsFree(t *testing.T) {
	item := testPizza()
	sel := Selection{
		Size:           item.SizeByName("Large"),
		SpecialRequest: menu.StandardRequest,
	}

	assert.Equal(t, "12.90", UnitPrice(item, sel).StringFixed(2))
}

func TestUnitPriceUnknownSurchargePairIsZero(t *testing.T) {
	item := testPizza()

	sel := Selection{
		Size:           item.SizeByName("Medium"),
		SpecialRequest: "Extrascharf",
	}
	assert.Equal(t, "9.90", UnitPrice(item, sel).StringFixed(2))

	// A size outside the pizza line has no surcharge tier.
	drink := menu.MenuItem{
		ID:       10,
		Price:    decimal.NewFromFloat(2.00),
		Category: menu.CategorySized,
		Sizes: []menu.Size{
			{Name: "0,33 L", Price: decimal.NewFromFloat(2.00)},
		},
	}
	sel = Selection{
		Size:           drink.SizeByName("0,33 L"),
		SpecialRequest: "Käserand",
	}
	assert.Equal(t, "2.00", UnitPrice(drink, sel).StringFixed(2))
}

func TestUnitPriceWithoutSizeUsesBasePrice(t *testing.T) {
	item := menu.MenuItem{
		ID:       85,
		Price:    decimal.NewFromFloat(8.00),
		Category: menu.CategorySimple,
	}

	assert.Equal(t, "8.00", UnitPrice(item, Selection{}).StringFixed(2))
}

func TestUnitPriceNilSizeDefaultsToMediumTier(t *testing.T) {
	item := menu.MenuItem{
		ID:       520,
		Price:    decimal.NewFromFloat(9.00),
		Category: menu.CategoryPizza,
	}
	sel := Selection{SpecialRequest: "als Calzone"}

	assert.Equal(t, "10.00", UnitPrice(item, sel).StringFixed(2))
}
