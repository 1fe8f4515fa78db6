package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"piccante-system/internal/cart"
	"piccante-system/internal/checkout"
	"piccante-system/internal/delivery"
	"piccante-system/internal/orders"
)

type CheckoutHandler struct {
	redis         *redis.Client
	notifier      *checkout.Notifier
	orders        *orders.Repository
	whatsAppPhone string
}

func NewCheckoutHandler(redisClient *redis.Client, notifier *checkout.Notifier, repo *orders.Repository, whatsAppPhone string) *CheckoutHandler {
	return &CheckoutHandler{
		redis:         redisClient,
		notifier:      notifier,
		orders:        repo,
		whatsAppPhone: whatsAppPhone,
	}
}

type CheckoutRequest struct {
	OrderType    string `json:"order_type" binding:"required,oneof=pickup delivery"`
	DeliveryZone string `json:"delivery_zone,omitempty"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Street       string `json:"street,omitempty"`
	HouseNumber  string `json:"house_number,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
	Note         string `json:"note,omitempty"`
	DeliveryTime string `json:"delivery_time" binding:"required,oneof=asap specific"`
	SpecificTime string `json:"specific_time,omitempty"`
	DeviceInfo   string `json:"device_info,omitempty"`
}

// Checkout freezes the cart into the handoff payload, captures the order,
// fires the best-effort side channels and returns the WhatsApp link. The
// cart itself is left untouched; the client clears it once WhatsApp opens.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	session := c.GetHeader("X-Session-ID")
	if session == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required"})
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	engine := cart.NewEngine(c.Request.Context(), cart.NewRedisSnapshotStore(h.redis, session))
	lines := engine.Items()
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	orderType := checkout.OrderType(req.OrderType)

	var zone *delivery.Zone
	if orderType == checkout.OrderTypeDelivery {
		z, ok := delivery.ZoneByID(req.DeliveryZone)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown delivery zone"})
			return
		}
		if req.Street == "" || req.HouseNumber == "" || req.Postcode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delivery address required"})
			return
		}
		zone = &z
	}

	totals := checkout.Calculate(lines, orderType, zone)
	if !totals.MinOrderMet {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "minimum order not met",
			"minOrder":      totals.MinOrderRequired,
			"missingAmount": totals.MissingAmount,
		})
		return
	}

	order := checkout.BuildOrder(lines, orderType, zone, checkout.Customer{
		Name:         req.Name,
		Phone:        req.Phone,
		Street:       req.Street,
		HouseNumber:  req.HouseNumber,
		Postcode:     req.Postcode,
		Note:         req.Note,
		DeliveryTime: req.DeliveryTime,
		SpecificTime: req.SpecificTime,
	})

	if h.orders != nil {
		if _, err := h.orders.Capture(order, c.ClientIP(), req.DeviceInfo); err != nil {
			log.Printf("order capture failed, continuing with handoff: %v", err)
		}
	}

	// Fire-and-forget: neither the email webhook nor the event bus may
	// delay or block the WhatsApp handoff.
	go func(order checkout.Order) {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		h.notifier.Dispatch(ctx, order)
	}(order)

	c.JSON(http.StatusOK, gin.H{
		"order":       order,
		"messageText": checkout.MessageText(order),
		"whatsappUrl": checkout.WhatsAppLink(h.whatsAppPhone, order),
	})
}
