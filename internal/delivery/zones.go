package delivery

import (
	"github.com/shopspring/decimal"
)

// Zone is one row of the delivery table: display label, minimum order
// value and delivery fee. The table is static configuration; nothing in
// the cart core mutates it.
type Zone struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	MinOrder decimal.Decimal `json:"minOrder"`
	Fee      decimal.Decimal `json:"fee"`
}

func zone(id, label string, minOrder, fee float64) Zone {
	return Zone{
		ID:       id,
		Label:    label,
		MinOrder: decimal.NewFromFloat(minOrder),
		Fee:      decimal.NewFromFloat(fee),
	}
}

// Zones lists every delivery area, sorted alphabetically.
var Zones = []Zone{
	zone("banteln", "Banteln", 25, 2.5),
	zone("barfelde", "Barfelde", 20, 2.5),
	zone("betheln", "Betheln", 25, 3),
	zone("brueggen", "Brüggen", 35, 3),
	zone("burgstemmen", "Burgstemmen", 35, 4),
	zone("deinsen", "Deinsen", 35, 4),
	zone("duingen", "Duingen", 40, 4),
	zone("dunsen-gime", "Dunsen (Gime)", 30, 3),
	zone("eime", "Eime", 25, 3),
	zone("eitzum", "Eitzum", 25, 3),
	zone("elze", "Elze", 35, 4),
	zone("gronau", "Gronau", 15, 1.5),
	zone("gronau-doetzum", "Gronau Dötzum", 20, 2),
	zone("gronau-eddighausen", "Gronau Eddighausen", 20, 2.5),
	zone("haus-escherde", "Haus Escherde", 25, 3),
	zone("heinum", "Heinum", 25, 3),
	zone("kolonie-godenau", "Kolonie Godenau", 40, 4),
	zone("mehle-elze", "Mehle (Elze)", 35, 4),
	zone("nienstedt", "Nienstedt", 35, 4),
	zone("nordstemmen", "Nordstemmen", 35, 4),
	zone("rheden-elze", "Rheden (Elze)", 25, 3),
	zone("sibesse", "Sibesse", 40, 4),
	zone("sorsum-elze", "Sorsum (Elze)", 35, 4),
	zone("wallensted", "Wallensted", 25, 3),
}

// ZoneByID looks up a zone and reports whether it exists.
func ZoneByID(id string) (Zone, bool) {
	for _, z := range Zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}
