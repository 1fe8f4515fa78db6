package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"piccante-system/internal/delivery"
	"piccante-system/internal/hours"
	"piccante-system/internal/menu"
)

const menuCacheTTL = 30 * time.Minute

// menuCacheKey scopes the cached catalog to its calendar day, so a menu
// cached before midnight never hides the next day's weekday special.
func menuCacheKey(now time.Time) string {
	return "menu:catalog:" + now.Format("2006-01-02")
}

type MenuHandler struct {
	catalog *menu.Provider
	redis   *redis.Client
}

func NewMenuHandler(catalog *menu.Provider, redisClient *redis.Client) *MenuHandler {
	return &MenuHandler{catalog: catalog, redis: redisClient}
}

type menuResponse struct {
	Sections        []menu.Section        `json:"sections"`
	PizzaExtras     []menu.Extra          `json:"pizzaExtras"`
	SpecialRequests []menu.SpecialRequest `json:"specialRequests"`
	PastaTypes      []string              `json:"pastaTypes"`
	SauceTypes      []string              `json:"sauceTypes"`
	SaladSauceTypes []string              `json:"saladSauceTypes"`
	BeerTypes       []string              `json:"beerTypes"`
	Ingredients     []string              `json:"wunschPizzaIngredients"`
}

// GetMenu serves the full catalog with the shared modifier lists, cached in
// redis so the storefront landing page does not rebuild it per request.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	now := time.Now()
	cacheKey := menuCacheKey(now)

	if h.redis != nil {
		if cached, err := h.redis.Get(c.Request.Context(), cacheKey).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json", cached)
			return
		}
	}

	resp := menuResponse{
		Sections:        h.catalog.Catalog(now).Sections,
		PizzaExtras:     menu.PizzaExtras,
		SpecialRequests: menu.PizzaSpecialRequests,
		PastaTypes:      menu.PastaTypes,
		SauceTypes:      menu.SauceTypes,
		SaladSauceTypes: menu.SaladSauceTypes,
		BeerTypes:       menu.BeerTypes,
		Ingredients:     menu.WunschPizzaIngredients,
	}

	if h.redis != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = h.redis.Set(c.Request.Context(), cacheKey, data, menuCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetZones serves the delivery zone table.
func (h *MenuHandler) GetZones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"zones": delivery.Zones})
}

// GetHours serves the opening-hours status and the selectable time slots.
func (h *MenuHandler) GetHours(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"status":    hours.CurrentStatus(now),
		"timeSlots": hours.TimeSlots(now),
	})
}
