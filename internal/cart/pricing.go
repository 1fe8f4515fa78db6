package cart

import (
	"github.com/shopspring/decimal"

	"piccante-system/internal/menu"
)

// UnitPrice computes the per-unit price of a configured item. It is a pure
// function of its inputs: size price (or base price), one flat charge per
// extra, and the size-tier dependent Sonderwunsch surcharge. Unknown
// surcharge combinations cost nothing, so the function is total.
func UnitPrice(item menu.MenuItem, sel Selection) decimal.Decimal {
	base := item.Price
	if sel.Size != nil {
		base = sel.Size.Price
	}

	extras := menu.ExtraUnitPrice.Mul(decimal.NewFromInt(int64(len(sel.Extras))))

	surcharge := menu.SpecialRequestPrice(sel.SpecialRequest, menu.TierForSize(sel.Size))

	return base.Add(extras).Add(surcharge)
}
