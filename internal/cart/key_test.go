package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"piccante-system/internal/menu"
)

func TestIdentityKeyOrderInsensitive(t *testing.T) {
	size := &menu.Size{Name: "Large"}

	a := identityKey(501, Selection{
		Size:        size,
		Ingredients: []string{"Ananas", "Brokkoli", "Mais", "Spinat"},
		Extras:      []string{"Oliven", "Tomaten"},
	})
	b := identityKey(501, Selection{
		Size:        size,
		Ingredients: []string{"Spinat", "Mais", "Brokkoli", "Ananas"},
		Extras:      []string{"Tomaten", "Oliven"},
	})

	assert.Equal(t, a, b)
}

func TestIdentityKeyDistinguishesConfiguration(t *testing.T) {
	base := Selection{Size: &menu.Size{Name: "Medium"}}

	tests := []struct {
		name  string
		other Selection
	}{
		{"different size", Selection{Size: &menu.Size{Name: "Large"}}},
		{"extra added", Selection{Size: &menu.Size{Name: "Medium"}, Extras: []string{"Mais"}}},
		{"different extras same count", Selection{Size: &menu.Size{Name: "Medium"}, Extras: []string{"Oliven"}}},
		{"special request", Selection{Size: &menu.Size{Name: "Medium"}, SpecialRequest: "Käserand"}},
		{"sauce", Selection{Size: &menu.Size{Name: "Medium"}, Sauce: "Tzatziki"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEqual(t, identityKey(502, base), identityKey(502, tc.other))
		})
	}
}

func TestIdentityKeyDistinguishesExtrasWithSameCardinality(t *testing.T) {
	a := identityKey(502, Selection{Extras: []string{"Mais", "Oliven"}})
	b := identityKey(502, Selection{Extras: []string{"Mais", "Spinat"}})

	assert.NotEqual(t, a, b)
}

func TestIdentityKeyDefaults(t *testing.T) {
	key := identityKey(85, Selection{})

	assert.Equal(t, "85-default-none-none-none-none-none", key)
}

func TestIdentityKeyDoesNotMutateInput(t *testing.T) {
	ingredients := []string{"Spinat", "Ananas"}
	identityKey(501, Selection{Ingredients: ingredients})

	assert.Equal(t, []string{"Spinat", "Ananas"}, ingredients)
}
