package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForSize(t *testing.T) {
	tests := []struct {
		name string
		size *Size
		want Tier
	}{
		{"nil defaults to medium", nil, TierMedium},
		{"medium", &Size{Name: "Medium"}, TierMedium},
		{"large", &Size{Name: "Large"}, TierLarge},
		{"family", &Size{Name: "Family"}, TierFamily},
		{"mega", &Size{Name: "Mega"}, TierMega},
		{"drink size has no tier", &Size{Name: "0,33 L"}, Tier("")},
		{"burger size has no tier", &Size{Name: "125g"}, Tier("")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TierForSize(tc.size))
		})
	}
}

func TestSpecialRequestPrice(t *testing.T) {
	tests := []struct {
		name    string
		request string
		tier    Tier
		want    string
	}{
		{"standard is free", StandardRequest, TierMedium, "0.00"},
		{"empty is free", "", TierLarge, "0.00"},
		{"kaeserand medium", "Käserand", TierMedium, "2.00"},
		{"kaeserand mega", "Käserand", TierMega, "4.50"},
		{"americanstyle large", "Americanstyle", TierLarge, "2.00"},
		{"calzone family", "als Calzone", TierFamily, "2.50"},
		{"unknown request", "Extrascharf", TierMedium, "0.00"},
		{"unknown tier", "Käserand", Tier(""), "0.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SpecialRequestPrice(tc.request, tc.tier).StringFixed(2))
		})
	}
}

func TestPizzaExtrasExcludeSentinel(t *testing.T) {
	assert.Len(t, PizzaExtras, len(WunschPizzaIngredients)-1)
	for _, extra := range PizzaExtras {
		assert.NotEqual(t, NoIngredient, extra.Name)
		assert.Equal(t, "1.50", extra.Price.StringFixed(2))
	}
}

func TestIngredientAndExtraLookups(t *testing.T) {
	assert.True(t, IsKnownIngredient("Mais"))
	assert.True(t, IsKnownIngredient(NoIngredient))
	assert.False(t, IsKnownIngredient("Trüffel"))

	assert.True(t, IsKnownExtra("Mais"))
	assert.False(t, IsKnownExtra(NoIngredient))
	assert.False(t, IsKnownExtra("Trüffel"))
}
