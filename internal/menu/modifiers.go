package menu

import (
	"github.com/shopspring/decimal"
)

// Shared modifier catalogs. All of these are read-only at runtime.

// ExtraUnitPrice is the flat price of every pizza extra.
var ExtraUnitPrice = decimal.NewFromFloat(1.50)

// NoIngredient is the sentinel Wunsch-Pizza choice for "no ingredient".
const NoIngredient = "ohne Zutat"

// StandardRequest is the neutral Sonderwunsch, always priced zero.
const StandardRequest = "Standard"

// Tier indexes the size-dependent Sonderwunsch surcharge table.
type Tier string

const (
	TierMedium Tier = "medium"
	TierLarge  Tier = "large"
	TierFamily Tier = "family"
	TierMega   Tier = "mega"
)

// TierForSize maps a size name to its surcharge tier. Sizes outside the
// pizza line ("0,33 L", "125g") have no tier; a nil size defaults to Medium.
func TierForSize(size *Size) Tier {
	if size == nil {
		return TierMedium
	}
	switch size.Name {
	case "Medium":
		return TierMedium
	case "Large":
		return TierLarge
	case "Family":
		return TierFamily
	case "Mega":
		return TierMega
	}
	return ""
}

type SpecialRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

// PizzaSpecialRequests lists the Sonderwunsch options with their Medium
// price, which is what the menu card displays.
var PizzaSpecialRequests = []SpecialRequest{
	{Name: StandardRequest, Price: decimal.Zero, Description: "Normale Pizza"},
	{Name: "Käserand", Price: decimal.NewFromFloat(2.00), Description: "Mit Käserand (+2,00€)"},
	{Name: "Americanstyle", Price: decimal.NewFromFloat(1.50), Description: "Amerikanischer Stil (+1,50€)"},
	{Name: "als Calzone", Price: decimal.NewFromFloat(1.00), Description: "Als gefüllte Calzone (+1,00€)"},
}

// specialRequestPrices is the request × tier surcharge table. Missing
// entries price to zero, so the lookup is total.
var specialRequestPrices = map[string]map[Tier]decimal.Decimal{
	"Käserand": {
		TierMedium: decimal.NewFromFloat(2.00),
		TierLarge:  decimal.NewFromFloat(2.50),
		TierFamily: decimal.NewFromFloat(3.50),
		TierMega:   decimal.NewFromFloat(4.50),
	},
	"Americanstyle": {
		TierMedium: decimal.NewFromFloat(1.50),
		TierLarge:  decimal.NewFromFloat(2.00),
		TierFamily: decimal.NewFromFloat(3.00),
		TierMega:   decimal.NewFromFloat(4.00),
	},
	"als Calzone": {
		TierMedium: decimal.NewFromFloat(1.00),
		TierLarge:  decimal.NewFromFloat(1.50),
		TierFamily: decimal.NewFromFloat(2.50),
		TierMega:   decimal.NewFromFloat(3.50),
	},
}

// SpecialRequestPrice returns the surcharge for a request on the given
// tier. "Standard", the empty request and unknown (request, tier) pairs all
// cost nothing.
func SpecialRequestPrice(request string, tier Tier) decimal.Decimal {
	if request == "" || request == StandardRequest {
		return decimal.Zero
	}
	tiers, ok := specialRequestPrices[request]
	if !ok {
		return decimal.Zero
	}
	price, ok := tiers[tier]
	if !ok {
		return decimal.Zero
	}
	return price
}

// PastaTypes are the noodle choices for pasta dishes.
var PastaTypes = []string{"Spaghetti", "Maccheroni"}

// SauceTypes are the sauce choices for Spezialitäten.
var SauceTypes = []string{"Tzatziki", "ohne Soße"}

// SaladSauceTypes are the dressing choices for salads.
var SaladSauceTypes = []string{"Joghurt", "French", "Essig/Öl"}

// BeerTypes are the brands behind the "Becks oder Herrenhäuser" entry.
var BeerTypes = []string{"Becks", "Herrenhäuser"}

// WunschPizzaIngredients is the pick list for the build-your-own pizza,
// including the "ohne Zutat" sentinel as the last entry.
var WunschPizzaIngredients = []string{
	"Ananas", "Artischocken", "Barbecuesauce", "Brokkoli", "Champignons frisch",
	"Chili-Cheese-Soße", "Edamer", "Formfleisch-Vorderschinken", "Gewürzgurken",
	"Gorgonzola", "Gyros", "Hirtenkäse", "Hähnchenbrust", "Jalapeños",
	"Knoblauchwurst", "Mais", "Milde Peperoni", "Mozzarella", "Oliven",
	"Paprika", "Parmaschinken", "Peperoni, scharf", "Remoulade", "Rindermett",
	"Rindersalami", "Rucola", "Röstzwiebeln", "Sauce Hollandaise", "Spiegelei",
	"Spinat", "Tomaten", "Würstchen", "Zwiebeln", NoIngredient,
}

type Extra struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// PizzaExtras mirrors the ingredient list (without the sentinel), each at
// the flat extra price.
var PizzaExtras = buildExtras()

func buildExtras() []Extra {
	extras := make([]Extra, 0, len(WunschPizzaIngredients)-1)
	for _, name := range WunschPizzaIngredients {
		if name == NoIngredient {
			continue
		}
		extras = append(extras, Extra{Name: name, Price: ExtraUnitPrice})
	}
	return extras
}

// IsKnownExtra reports whether name is an orderable extra.
func IsKnownExtra(name string) bool {
	for _, e := range PizzaExtras {
		if e.Name == name {
			return true
		}
	}
	return false
}

// IsKnownIngredient reports whether name is a valid Wunsch-Pizza pick
// (sentinel included).
func IsKnownIngredient(name string) bool {
	for _, i := range WunschPizzaIngredients {
		if i == name {
			return true
		}
	}
	return false
}
