package checkout

import (
	"github.com/shopspring/decimal"

	"piccante-system/internal/cart"
	"piccante-system/internal/delivery"
)

// Customer is what the order form collects. Street/house/postcode are only
// required for delivery; the HTTP layer validates that.
type Customer struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Street       string `json:"street,omitempty"`
	HouseNumber  string `json:"houseNumber,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
	Note         string `json:"note,omitempty"`
	DeliveryTime string `json:"deliveryTime"`
	SpecificTime string `json:"specificTime,omitempty"`
}

// LineView is the per-line slice of the handoff payload: everything the
// WhatsApp message and the notification email need, nothing more.
type LineView struct {
	Number          string          `json:"number"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	SizeName        string          `json:"sizeName,omitempty"`
	SizeDescription string          `json:"sizeDescription,omitempty"`
	Ingredients     []string        `json:"ingredients,omitempty"`
	Extras          []string        `json:"extras,omitempty"`
	PastaType       string          `json:"pastaType,omitempty"`
	Sauce           string          `json:"sauce,omitempty"`
	SpecialRequest  string          `json:"specialRequest,omitempty"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	LineTotal       decimal.Decimal `json:"lineTotal"`
}

// Order is the complete handoff payload consumed by the WhatsApp and email
// collaborators. It is a derived read-only view of the cart.
type Order struct {
	Type     OrderType      `json:"orderType"`
	Zone     *delivery.Zone `json:"zone,omitempty"`
	Customer Customer       `json:"customer"`
	Lines    []LineView     `json:"lines"`
	Totals   Totals         `json:"totals"`
}

// BuildOrder freezes the cart into a handoff payload.
func BuildOrder(lines []cart.Line, orderType OrderType, zone *delivery.Zone, customer Customer) Order {
	views := make([]LineView, 0, len(lines))
	for _, line := range lines {
		view := LineView{
			Number:         line.MenuItem.Number,
			Name:           line.MenuItem.Name,
			Quantity:       line.Quantity,
			Ingredients:    line.SelectedIngredients,
			Extras:         line.SelectedExtras,
			PastaType:      line.SelectedPastaType,
			Sauce:          line.SelectedSauce,
			SpecialRequest: line.SelectedSpecialRequest,
			UnitPrice:      line.UnitPrice(),
			LineTotal:      line.Total(),
		}
		if line.SelectedSize != nil {
			view.SizeName = line.SelectedSize.Name
			view.SizeDescription = line.SelectedSize.Description
		}
		views = append(views, view)
	}

	return Order{
		Type:     orderType,
		Zone:     zone,
		Customer: customer,
		Lines:    views,
		Totals:   Calculate(lines, orderType, zone),
	}
}
