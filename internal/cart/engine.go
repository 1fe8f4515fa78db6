package cart

import (
	"context"
	"encoding/json"
	"log"

	"github.com/shopspring/decimal"

	"piccante-system/internal/menu"
)

// Engine owns the cart lines of one session. A cart has a single writer
// (one customer, one session), so the engine does no locking; callers must
// not share one engine across sessions.
//
// Every mutation writes the full snapshot through the store port. Writes
// are best effort: the in-memory state stays authoritative for the session
// even when persistence fails.
type Engine struct {
	store SnapshotStore
	items []Line
}

// NewEngine restores the cart from the snapshot store. A missing or
// unreadable snapshot yields an empty cart, never an error.
func NewEngine(ctx context.Context, store SnapshotStore) *Engine {
	e := &Engine{store: store}

	data, err := store.Read(ctx)
	if err != nil {
		log.Printf("cart snapshot unavailable, starting empty: %v", err)
		return e
	}
	if len(data) == 0 {
		return e
	}
	if err := json.Unmarshal(data, &e.items); err != nil {
		log.Printf("cart snapshot corrupt, starting empty: %v", err)
		e.items = nil
	}
	return e
}

// AddItem merges into an existing line when the configuration matches,
// otherwise snapshots a new line at the computed unit price. The engine
// trusts its caller to have run the completeness validator.
func (e *Engine) AddItem(ctx context.Context, item menu.MenuItem, sel Selection) {
	key := identityKey(item.ID, sel)
	for i := range e.items {
		if e.items[i].Key() == key {
			e.items[i].Quantity++
			e.persist(ctx)
			return
		}
	}

	snapshot := item
	snapshot.Price = UnitPrice(item, sel)

	e.items = append(e.items, Line{
		MenuItem:               snapshot,
		Quantity:               1,
		SelectedSize:           sel.Size,
		SelectedIngredients:    sel.Ingredients,
		SelectedExtras:         sel.Extras,
		SelectedPastaType:      sel.PastaType,
		SelectedSauce:          sel.Sauce,
		SelectedSpecialRequest: sel.SpecialRequest,
	})
	e.persist(ctx)
}

// RemoveItem deletes the line matching the configuration. Unknown
// identities are a no-op.
func (e *Engine) RemoveItem(ctx context.Context, itemID int, sel Selection) {
	key := identityKey(itemID, sel)
	kept := e.items[:0]
	for _, line := range e.items {
		if line.Key() != key {
			kept = append(kept, line)
		}
	}
	e.items = kept
	e.persist(ctx)
}

// UpdateQuantity sets the quantity of the matching line. Zero or negative
// removes it; unknown identities are a no-op.
func (e *Engine) UpdateQuantity(ctx context.Context, itemID int, quantity int, sel Selection) {
	if quantity <= 0 {
		e.RemoveItem(ctx, itemID, sel)
		return
	}

	key := identityKey(itemID, sel)
	for i := range e.items {
		if e.items[i].Key() == key {
			e.items[i].Quantity = quantity
			break
		}
	}
	e.persist(ctx)
}

// Clear empties the cart. The confirmation dialog lives at the UI boundary.
func (e *Engine) Clear(ctx context.Context) {
	e.items = nil
	e.persist(ctx)
}

// Items returns the lines in insertion order. Each line is detached from
// the engine's state: mutating a returned line's slices cannot change a
// stored identity key.
func (e *Engine) Items() []Line {
	items := make([]Line, len(e.items))
	for i, line := range e.items {
		items[i] = line.detach()
	}
	return items
}

// Subtotal is Σ unit price × quantity over all lines.
func (e *Engine) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range e.items {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}

func (e *Engine) persist(ctx context.Context) {
	data, err := json.Marshal(e.items)
	if err != nil {
		log.Printf("failed to marshal cart snapshot: %v", err)
		return
	}
	if err := e.store.Write(ctx, data); err != nil {
		log.Printf("failed to persist cart snapshot: %v", err)
	}
}
