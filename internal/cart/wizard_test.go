package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"piccante-system/internal/menu"
)

func TestNewSessionRejectsUnconfigurableItems(t *testing.T) {
	_, err := NewSession(testCurrywurst())

	assert.ErrorIs(t, err, ErrNoConfiguration)
}

func TestNewSessionDefaults(t *testing.T) {
	s, err := NewSession(testPizza())
	require.NoError(t, err)

	require.NotNil(t, s.Selection.Size)
	assert.Equal(t, "Medium", s.Selection.Size.Name)
	assert.Equal(t, menu.StandardRequest, s.Selection.SpecialRequest)
	assert.Equal(t, StepConfigure, s.Current())
}

func TestWunschSessionWalksAllSteps(t *testing.T) {
	s, err := NewSession(testWunschPizza())
	require.NoError(t, err)

	assert.Equal(t, StepSelectSize, s.Current())
	require.NoError(t, s.Next())
	assert.Equal(t, StepSelectSpecialRequest, s.Current())
	require.NoError(t, s.Next())
	assert.Equal(t, StepSelectIngredients, s.Current())

	// The ingredient gate blocks until the count is valid.
	assert.ErrorIs(t, s.Next(), ErrStepIncomplete)
	for _, name := range []string{"Mais", "Oliven", "Spinat"} {
		require.NoError(t, s.ToggleIngredient(name))
	}
	assert.ErrorIs(t, s.Next(), ErrStepIncomplete)
	require.NoError(t, s.ToggleIngredient("Tomaten"))

	require.NoError(t, s.Next())
	assert.Equal(t, StepSelectExtras, s.Current())
	require.NoError(t, s.Next())
	assert.Equal(t, StepReview, s.Current())
	assert.ErrorIs(t, s.Next(), ErrAtLastStep)
}

func TestSessionBackKeepsSelections(t *testing.T) {
	s, err := NewSession(testWunschPizza())
	require.NoError(t, err)

	require.NoError(t, s.SelectSize("Large"))
	require.NoError(t, s.Next())
	require.NoError(t, s.SetSpecialRequest("Käserand"))
	require.NoError(t, s.Back())

	assert.Equal(t, StepSelectSize, s.Current())
	assert.Equal(t, "Large", s.Selection.Size.Name)
	assert.Equal(t, "Käserand", s.Selection.SpecialRequest)
}

func TestSessionBackAtFirstStep(t *testing.T) {
	s, err := NewSession(testWunschPizza())
	require.NoError(t, err)

	assert.ErrorIs(t, s.Back(), ErrAtFirstStep)
}

func TestSessionPriceFollowsSizeChange(t *testing.T) {
	s, err := NewSession(testWunschPizza())
	require.NoError(t, err)
	require.NoError(t, s.SetSpecialRequest("Käserand"))

	assert.Equal(t, "12.90", s.Price().StringFixed(2))

	require.NoError(t, s.SelectSize("Large"))
	assert.Equal(t, "16.40", s.Price().StringFixed(2))
}

func TestSessionRejectsForeignSelections(t *testing.T) {
	s, err := NewSession(testPizza())
	require.NoError(t, err)

	assert.ErrorIs(t, s.SelectSize("Gigantisch"), ErrSelectionRejected)
	assert.ErrorIs(t, s.SetSpecialRequest("Extrascharf"), ErrSelectionRejected)
	assert.ErrorIs(t, s.ToggleIngredient("Mais"), ErrSelectionRejected)
	assert.ErrorIs(t, s.SetPastaType("Spaghetti"), ErrSelectionRejected)
	assert.ErrorIs(t, s.SetSauce("Tzatziki"), ErrSelectionRejected)
}

func TestSessionSauceFollowsItemList(t *testing.T) {
	salad := menu.MenuItem{ID: 568, Category: menu.CategorySalad}
	s, err := NewSession(salad)
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetSauce("Tzatziki"), ErrSelectionRejected)
	require.NoError(t, s.SetSauce("Joghurt"))

	beer := menu.MenuItem{ID: 562, Category: menu.CategoryBeer}
	s, err = NewSession(beer)
	require.NoError(t, err)

	require.NoError(t, s.SetSauce("Herrenhäuser"))
}

func TestSessionFinalize(t *testing.T) {
	s, err := NewSession(testWunschPizza())
	require.NoError(t, err)

	_, err = s.Finalize()
	assert.ErrorIs(t, err, ErrIncomplete)

	for _, name := range []string{"Mais", "Oliven", "Spinat", "Tomaten"} {
		require.NoError(t, s.ToggleIngredient(name))
	}
	require.NoError(t, s.ToggleExtra("Ananas"))

	sel, err := s.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "Medium", sel.Size.Name)
	assert.Len(t, sel.Ingredients, 4)
	assert.Equal(t, []string{"Ananas"}, sel.Extras)
}
