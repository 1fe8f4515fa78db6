package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"piccante-system/internal/auth"
	"piccante-system/internal/orders"
)

type AdminHandler struct {
	auth   *auth.Service
	orders *orders.Repository
}

func NewAdminHandler(authService *auth.Service, repo *orders.Repository) *AdminHandler {
	return &AdminHandler{auth: authService, orders: repo}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login checks the shared admin password and issues a session token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, exp, err := h.auth.Login(c.Request.Context(), c.ClientIP(), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrLockedOut) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Falsches Passwort"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "expiresAt": exp})
}

// ListOrders serves the order history, newest first.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	rows, err := h.orders.List(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": rows})
}
