package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"piccante-system/internal/cart"
	"piccante-system/internal/menu"
)

type CartHandler struct {
	catalog *menu.Provider
	redis   *redis.Client
}

func NewCartHandler(catalog *menu.Provider, redisClient *redis.Client) *CartHandler {
	return &CartHandler{catalog: catalog, redis: redisClient}
}

// ItemConfigRequest carries the full configuration tuple of a line; the
// same shape addresses a line for remove/update.
type ItemConfigRequest struct {
	ItemID         int      `json:"item_id" binding:"required"`
	Size           string   `json:"size,omitempty"`
	Ingredients    []string `json:"ingredients,omitempty"`
	Extras         []string `json:"extras,omitempty"`
	PastaType      string   `json:"pasta_type,omitempty"`
	Sauce          string   `json:"sauce,omitempty"`
	SpecialRequest string   `json:"special_request,omitempty"`
}

type UpdateQuantityRequest struct {
	ItemConfigRequest
	Quantity *int `json:"quantity" binding:"required"`
}

// engine loads the session cart. The session id is client-assigned, one per
// browser, mirroring the one-cart-per-device model of the storefront.
func (h *CartHandler) engine(c *gin.Context) (*cart.Engine, bool) {
	session := c.GetHeader("X-Session-ID")
	if session == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required"})
		return nil, false
	}
	store := cart.NewRedisSnapshotStore(h.redis, session)
	return cart.NewEngine(c.Request.Context(), store), true
}

// selection resolves the request tuple against a catalog item. A named
// size the item does not offer is a client error; unknown ingredient and
// extra names are dropped silently, the same no-op the dialog applies, so
// they neither bill nor count towards the Wunsch ingredient total.
func selection(item menu.MenuItem, req ItemConfigRequest) (cart.Selection, bool) {
	sel := cart.Selection{
		Ingredients:    knownOnly(req.Ingredients, menu.IsKnownIngredient),
		Extras:         knownOnly(req.Extras, menu.IsKnownExtra),
		PastaType:      req.PastaType,
		Sauce:          req.Sauce,
		SpecialRequest: req.SpecialRequest,
	}
	if req.Size != "" {
		size := item.SizeByName(req.Size)
		if size == nil {
			return cart.Selection{}, false
		}
		sel.Size = size
	}
	return sel, true
}

func knownOnly(values []string, known func(string) bool) []string {
	var kept []string
	for _, v := range values {
		if known(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

// AddItem adds one unit of a configured item, merging with an existing
// line when the configuration matches.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req ItemConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := h.catalog.Catalog(time.Now()).ItemByID(req.ItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown menu item"})
		return
	}

	sel, ok := selection(item, req)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown size for this item"})
		return
	}

	// The HTTP boundary is the configuration dialog of programmatic
	// callers, so the completeness gate runs here, not inside AddItem.
	if menu.NeedsConfiguration(item) && !cart.CanFinalize(item, sel) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "configuration incomplete"})
		return
	}

	engine, ok := h.engine(c)
	if !ok {
		return
	}
	engine.AddItem(c.Request.Context(), item, sel)

	h.respondCart(c, engine)
}

// RemoveItem deletes the line matching the configuration; removing a line
// that does not exist succeeds quietly.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req ItemConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	engine, ok := h.engine(c)
	if !ok {
		return
	}
	engine.RemoveItem(c.Request.Context(), req.ItemID, requestSelection(req))

	h.respondCart(c, engine)
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	engine, ok := h.engine(c)
	if !ok {
		return
	}
	engine.UpdateQuantity(c.Request.Context(), req.ItemID, *req.Quantity, requestSelection(req.ItemConfigRequest))

	h.respondCart(c, engine)
}

// ClearCart empties the session cart. The "are you sure" dialog is the
// client's business.
func (h *CartHandler) ClearCart(c *gin.Context) {
	engine, ok := h.engine(c)
	if !ok {
		return
	}
	engine.Clear(c.Request.Context())

	h.respondCart(c, engine)
}

// GetCart returns the cart lines and subtotal.
func (h *CartHandler) GetCart(c *gin.Context) {
	engine, ok := h.engine(c)
	if !ok {
		return
	}
	h.respondCart(c, engine)
}

func (h *CartHandler) respondCart(c *gin.Context, engine *cart.Engine) {
	items := engine.Items()
	count := 0
	for _, line := range items {
		count += line.Quantity
	}
	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"subtotal": engine.Subtotal(),
		"count":    count,
	})
}

// requestSelection builds the identity tuple for remove/update, where the
// size only matters by name and need not resolve against the catalog. The
// modifier lists are filtered like on add, so the same request tuple always
// produces the same identity.
func requestSelection(req ItemConfigRequest) cart.Selection {
	sel := cart.Selection{
		Ingredients:    knownOnly(req.Ingredients, menu.IsKnownIngredient),
		Extras:         knownOnly(req.Extras, menu.IsKnownExtra),
		PastaType:      req.PastaType,
		Sauce:          req.Sauce,
		SpecialRequest: req.SpecialRequest,
	}
	if req.Size != "" {
		sel.Size = &menu.Size{Name: req.Size}
	}
	return sel
}
