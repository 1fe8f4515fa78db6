package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"piccante-system/internal/menu"
)

// formatEUR renders a money value the German way: comma decimal separator.
func formatEUR(d decimal.Decimal) string {
	return strings.ReplaceAll(d.StringFixed(2), ".", ",")
}

// MessageText renders the order as the WhatsApp message the restaurant
// receives.
func MessageText(order Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🍕 Neue Bestellung von %s\n\n", order.Customer.Name)
	fmt.Fprintf(&b, "📞 Telefon: %s\n\n", order.Customer.Phone)

	if order.Type == OrderTypePickup {
		b.WriteString("🏃‍♂️ Bestellart: Abholung\n")
	} else {
		b.WriteString("🚗 Bestellart: Lieferung\n")
	}

	timeInfo := "So schnell wie möglich"
	if order.Customer.DeliveryTime != "asap" && order.Customer.SpecificTime != "" {
		timeInfo = fmt.Sprintf("Um %s Uhr", order.Customer.SpecificTime)
	}
	fmt.Fprintf(&b, "⏰ Lieferzeit: %s\n\n", timeInfo)

	if order.Type == OrderTypeDelivery && order.Zone != nil {
		b.WriteString("📍 Lieferadresse:\n")
		fmt.Fprintf(&b, "   %s %s\n", order.Customer.Street, order.Customer.HouseNumber)
		fmt.Fprintf(&b, "   %s\n", order.Customer.Postcode)
		fmt.Fprintf(&b, "   Liefergebiet: %s\n\n", order.Zone.Label)
	}

	b.WriteString("🛒 Bestellung:\n")
	for _, line := range order.Lines {
		b.WriteString(lineText(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "💰 Zwischensumme: %s €\n", formatEUR(order.Totals.Subtotal))
	if order.Type == OrderTypeDelivery && order.Zone != nil {
		fmt.Fprintf(&b, "🚚 Lieferkosten (%s): %s €\n", order.Zone.Label, formatEUR(order.Totals.DeliveryFee))
	}
	fmt.Fprintf(&b, "💳 Gesamtbetrag: %s €\n\n", formatEUR(order.Totals.Total))

	if order.Customer.Note != "" {
		fmt.Fprintf(&b, "📝 Anmerkung: %s\n", order.Customer.Note)
	}

	return b.String()
}

func lineText(line LineView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx Nr. %s %s", line.Quantity, line.Number, line.Name)
	if line.SizeName != "" {
		if line.SizeDescription != "" {
			fmt.Fprintf(&b, " (%s - %s)", line.SizeName, line.SizeDescription)
		} else {
			fmt.Fprintf(&b, " (%s)", line.SizeName)
		}
	}
	if line.PastaType != "" {
		fmt.Fprintf(&b, " - Nudelsorte: %s", line.PastaType)
	}
	if line.Sauce != "" {
		fmt.Fprintf(&b, " - Soße: %s", line.Sauce)
	}
	if len(line.Ingredients) > 0 {
		fmt.Fprintf(&b, " - Zutaten: %s", strings.Join(line.Ingredients, ", "))
	}
	if len(line.Extras) > 0 {
		extrasCost := menu.ExtraUnitPrice.Mul(decimal.NewFromInt(int64(len(line.Extras))))
		fmt.Fprintf(&b, " - Extras: %s (+%s€)", strings.Join(line.Extras, ", "), extrasCost.StringFixed(2))
	}
	return b.String()
}

// WhatsAppLink builds the wa.me deep link carrying the message.
func WhatsAppLink(phone string, order Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(MessageText(order)))
}
