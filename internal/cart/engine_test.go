package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"piccante-system/internal/menu"
)

func testCurrywurst() menu.MenuItem {
	return menu.MenuItem{
		ID:       85,
		Number:   "85",
		Name:     "Currywurst mit Pommes",
		Price:    decimal.NewFromFloat(8.00),
		Category: menu.CategorySimple,
	}
}

func TestAddItemMergesIdenticalConfiguration(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(ctx, NewMemorySnapshotStore())
	item := testPizza()
	sel := Selection{
		Size:   item.SizeByName("Medium"),
		Extras: []string{"Mais", "Oliven"},
	}

	engine.AddItem(ctx, item, sel)
	engine.AddItem(ctx, item, Selection{
		Size:   item.SizeByName("Medium"),
		Extras: []string{"Oliven", "Mais"},
	})

	items := engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "25.80", engine.Subtotal().StringFixed(2))
}

func TestAddItemKeepsDifferentConfigurationsApart(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(ctx, NewMemorySnapshotStore())
	item := testPizza()

	engine.AddItem(ctx, item, Selection{Size: item.SizeByName("Medium")})
	engine.AddItem(ctx, item, Selection{Size: item.SizeByName("Large")})

	assert.Len(t, engine.Items(), 2)
}

func TestAddItemSnapshotsUnitPrice(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(ctx, NewMemorySnapshotStore())
	item := testPizza()
	sel := Selection{
		Size:           item.SizeByName("Medium"),
		Extras:         []string{"Mais", "Oliven"},
		SpecialRequest: "Käserand",
	}

	engine.AddItem(ctx, item, sel)

	line := engine.Items()[0]
	assert.Equal(t, "14.90", line.UnitPrice().StringFixed(2))
	assert.Equal(t, "14.90", line.Total().StringFixed(2))
}

func TestUpdateQuantitySetsAndScales(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(ctx, NewMemorySnapshotStore())
	item := testCurrywurst()

	engine.AddItem(ctx, item, Selection{})
	engine.UpdateQuantity(ctx, item.ID, 3, Selection{})

	items := engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "24.00", engine.Subtotal().StringFixed(2))
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(ctx, NewMemorySnapshotStore())
	item := testCurrywurst()

	engine.AddItem(ctx, item, Selection{})
	engine.UpdateQuantity(ctx, item.ID, 0, Selection{})
	assert.Empty(t, engine.Items())

	engine.AddItem(ctx, item, Selection{})
	engine.UpdateQuantity(ctx, item.ID, -2, Selection{})
	assert.Empty(t, engine.Items())
}

func TestRemoveItemUnknownIdentityIsNoOp(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(ctx, NewMemorySnapshotStore())
	item := testCurrywurst()

	engine.AddItem(ctx, item, Selection{})
	engine.RemoveItem(ctx, 999, Selection{})

	assert.Len(t, engine.Items(), 1)
}

func TestRemoveItemOnlyTouchesMatchingLine(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(ctx, NewMemorySnapshotStore())
	pizza := testPizza()

	engine.AddItem(ctx, pizza, Selection{Size: pizza.SizeByName("Medium")})
	engine.AddItem(ctx, pizza, Selection{Size: pizza.SizeByName("Large")})
	engine.RemoveItem(ctx, pizza.ID, Selection{Size: pizza.SizeByName("Medium")})

	items := engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Large", items[0].SelectedSize.Name)
}

func TestClearEmptiesCart(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(ctx, NewMemorySnapshotStore())

	engine.AddItem(ctx, testCurrywurst(), Selection{})
	engine.AddItem(ctx, testPizza(), Selection{Size: testPizza().SizeByName("Medium")})
	engine.Clear(ctx)

	assert.Empty(t, engine.Items())
	assert.Equal(t, "0.00", engine.Subtotal().StringFixed(2))
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySnapshotStore()
	engine := NewEngine(ctx, store)
	pizza := testPizza()

	engine.AddItem(ctx, pizza, Selection{
		Size:           pizza.SizeByName("Large"),
		Extras:         []string{"Mais"},
		SpecialRequest: "Käserand",
	})
	engine.AddItem(ctx, testCurrywurst(), Selection{})
	engine.UpdateQuantity(ctx, 85, 2, Selection{})

	restored := NewEngine(ctx, store)

	want := engine.Items()
	got := restored.Items()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Key(), got[i].Key())
		assert.Equal(t, want[i].Quantity, got[i].Quantity)
		assert.Equal(t, want[i].UnitPrice().StringFixed(2), got[i].UnitPrice().StringFixed(2))
	}
	assert.Equal(t, engine.Subtotal().StringFixed(2), restored.Subtotal().StringFixed(2))
}

func TestItemsReturnsDetachedCopies(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(ctx, NewMemorySnapshotStore())
	item := testPizza()

	engine.AddItem(ctx, item, Selection{
		Size:   item.SizeByName("Medium"),
		Extras: []string{"Mais", "Oliven"},
	})

	leaked := engine.Items()[0]
	key := leaked.Key()
	leaked.SelectedExtras[0] = "Trüffel"
	leaked.SelectedSize.Name = "Mega"

	stored := engine.Items()[0]
	assert.Equal(t, key, stored.Key())
	assert.Equal(t, []string{"Mais", "Oliven"}, stored.SelectedExtras)
	assert.Equal(t, "Medium", stored.SelectedSize.Name)
}

func TestNewEngineToleratesCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySnapshotStore()
	require.NoError(t, store.Write(ctx, []byte("{not json")))

	engine := NewEngine(ctx, store)

	assert.Empty(t, engine.Items())
}
