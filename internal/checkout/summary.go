package checkout

import (
	"github.com/shopspring/decimal"

	"piccante-system/internal/cart"
	"piccante-system/internal/delivery"
)

type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

// Totals is the read-only money view of a cart for checkout display. It is
// derived from cart state and the zone table; nothing here mutates either.
type Totals struct {
	Subtotal         decimal.Decimal `json:"subtotal"`
	DeliveryFee      decimal.Decimal `json:"deliveryFee"`
	Total            decimal.Decimal `json:"total"`
	MinOrderRequired decimal.Decimal `json:"minOrderRequired"`
	MinOrderMet      bool            `json:"minOrderMet"`
	MissingAmount    decimal.Decimal `json:"missingAmount"`
}

// Calculate derives the totals. Pickup orders (and delivery without a
// chosen zone yet) carry no fee and no minimum.
func Calculate(lines []cart.Line, orderType OrderType, zone *delivery.Zone) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total())
	}

	t := Totals{
		Subtotal:         subtotal,
		DeliveryFee:      decimal.Zero,
		MinOrderRequired: decimal.Zero,
		MissingAmount:    decimal.Zero,
		MinOrderMet:      true,
	}

	if orderType == OrderTypeDelivery && zone != nil {
		t.DeliveryFee = zone.Fee
		t.MinOrderRequired = zone.MinOrder
		t.MinOrderMet = subtotal.GreaterThanOrEqual(zone.MinOrder)
		if missing := zone.MinOrder.Sub(subtotal); missing.IsPositive() {
			t.MissingAmount = missing
		}
	}

	t.Total = subtotal.Add(t.DeliveryFee)
	return t
}
