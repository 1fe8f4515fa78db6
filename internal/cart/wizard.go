package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"piccante-system/internal/menu"
)

// Step names one screen of the configuration dialog.
type Step string

const (
	StepSelectSize           Step = "select_size"
	StepSelectSpecialRequest Step = "select_special_request"
	StepSelectIngredients    Step = "select_ingredients"
	StepSelectExtras         Step = "select_extras"
	// StepConfigure is the single flat screen of non-Wunsch items.
	StepConfigure Step = "configure"
	StepReview    Step = "review"
)

var (
	ErrNoConfiguration   = errors.New("item needs no configuration")
	ErrStepIncomplete    = errors.New("current step is not complete")
	ErrAtFirstStep       = errors.New("already at first step")
	ErrAtLastStep        = errors.New("already at last step")
	ErrSelectionRejected = errors.New("selection not offered for this item")
	ErrIncomplete        = errors.New("configuration is incomplete")
)

// Session is the dialog-local state of one item being configured. It is
// ephemeral: nothing reaches the cart until Finalize, and dropping the
// session discards every selection.
//
// Wunsch Pizzas walk Size → Sonderwunsch → Ingredients → Extras → Review,
// forward gated per step. Everything else configures on one screen.
type Session struct {
	Item      menu.MenuItem
	Selection Selection

	steps []Step
	idx   int
}

// NewSession opens a configuration dialog for the item. Items that need no
// configuration are added directly instead; asking for a session is an
// error there. The first size is preselected, the Sonderwunsch defaults to
// Standard.
func NewSession(item menu.MenuItem) (*Session, error) {
	if !menu.NeedsConfiguration(item) {
		return nil, ErrNoConfiguration
	}

	s := &Session{Item: item}

	if item.HasSizes() {
		s.Selection.Size = &item.Sizes[0]
	}
	if item.OffersSpecialRequest() {
		s.Selection.SpecialRequest = menu.StandardRequest
	}

	if item.Category == menu.CategoryWunschPizza {
		s.steps = []Step{
			StepSelectSize,
			StepSelectSpecialRequest,
			StepSelectIngredients,
			StepSelectExtras,
			StepReview,
		}
	} else {
		s.steps = []Step{StepConfigure, StepReview}
	}
	return s, nil
}

// Current returns the active step.
func (s *Session) Current() Step {
	return s.steps[s.idx]
}

// stepComplete is the per-step gate for advancing.
func (s *Session) stepComplete(step Step) bool {
	switch step {
	case StepSelectSize:
		return s.Selection.Size != nil
	case StepSelectSpecialRequest:
		return s.Selection.SpecialRequest != ""
	case StepSelectIngredients:
		return ValidWunschIngredients(s.Selection.Ingredients)
	case StepSelectExtras:
		return true
	case StepConfigure:
		return CanFinalize(s.Item, s.Selection)
	}
	return true
}

// Next advances one step; it fails while the current step is incomplete.
func (s *Session) Next() error {
	if s.idx == len(s.steps)-1 {
		return ErrAtLastStep
	}
	if !s.stepComplete(s.Current()) {
		return ErrStepIncomplete
	}
	s.idx++
	return nil
}

// Back returns to the previous step. Selections are kept; the price is
// derived from them on demand, so nothing stale survives a size change.
func (s *Session) Back() error {
	if s.idx == 0 {
		return ErrAtFirstStep
	}
	s.idx--
	return nil
}

// Price is the live preview for the current selections.
func (s *Session) Price() decimal.Decimal {
	return UnitPrice(s.Item, s.Selection)
}

// SelectSize picks a size by name.
func (s *Session) SelectSize(name string) error {
	size := s.Item.SizeByName(name)
	if size == nil {
		return ErrSelectionRejected
	}
	s.Selection.Size = size
	return nil
}

// SetSpecialRequest picks a Sonderwunsch by name.
func (s *Session) SetSpecialRequest(name string) error {
	if !s.Item.OffersSpecialRequest() {
		return ErrSelectionRejected
	}
	for _, req := range menu.PizzaSpecialRequests {
		if req.Name == name {
			s.Selection.SpecialRequest = name
			return nil
		}
	}
	return ErrSelectionRejected
}

// ToggleIngredient applies one ingredient click (Wunsch Pizza only).
func (s *Session) ToggleIngredient(name string) error {
	if s.Item.Category != menu.CategoryWunschPizza {
		return ErrSelectionRejected
	}
	s.Selection.Ingredients = ToggleIngredient(s.Selection.Ingredients, name)
	return nil
}

// ToggleExtra applies one extra click.
func (s *Session) ToggleExtra(name string) error {
	if !s.Item.OffersExtras() {
		return ErrSelectionRejected
	}
	s.Selection.Extras = ToggleExtra(s.Selection.Extras, name)
	return nil
}

// SetPastaType picks a noodle type.
func (s *Session) SetPastaType(name string) error {
	if s.Item.Category != menu.CategoryPasta {
		return ErrSelectionRejected
	}
	for _, t := range menu.PastaTypes {
		if t == name {
			s.Selection.PastaType = name
			return nil
		}
	}
	return ErrSelectionRejected
}

// SetSauce picks a sauce, dressing or beer brand, whichever list the item
// carries.
func (s *Session) SetSauce(name string) error {
	for _, choice := range s.Item.SauceChoices() {
		if choice == name {
			s.Selection.Sauce = name
			return nil
		}
	}
	return ErrSelectionRejected
}

// Finalize hands the completed selection to the caller for AddItem. It is
// the only way anything leaves the session.
func (s *Session) Finalize() (Selection, error) {
	if !CanFinalize(s.Item, s.Selection) {
		return Selection{}, ErrIncomplete
	}
	return s.Selection, nil
}
