package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/storefront-bff/internal/cart/service"
	"github.com/ridloal/storefront-bff/internal/navigation"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
	"github.com/ridloal/storefront-bff/internal/session"
)

type CartHandler struct {
	cartService  service.CartService
	sessionStore session.Store
}

func NewCartHandler(cs service.CartService, store session.Store) *CartHandler {
	return &CartHandler{cartService: cs, sessionStore: store}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/cart")
	{
		cartRoutes.GET("", h.ViewCart)
		cartRoutes.POST("/items/:productId/increment", h.IncrementItem)
		cartRoutes.POST("/items/:productId/decrement", h.DecrementItem)
	}
	router.POST("/checkout", h.Checkout)
}

// token mengambil token dari session store. Token kosong berarti anonymous.
func (h *CartHandler) token(c *gin.Context) (string, error) {
	sessionID := session.IDFromRequest(c.Request)
	if sessionID == "" {
		return "", nil
	}
	return h.sessionStore.Get(c.Request.Context(), sessionID, session.KeyToken)
}

func (h *CartHandler) ViewCart(c *gin.Context) {
	token, err := h.token(c)
	if err != nil {
		logger.Error("ViewCart: session store error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session"})
		return
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, navigation.Redirect{To: navigation.PathLogin})
		return
	}

	view, err := h.cartService.ViewCart(c.Request.Context(), token)
	if err != nil {
		logger.Error("ViewCart: service error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) IncrementItem(c *gin.Context) {
	h.adjustItem(c, h.cartService.IncrementItem)
}

func (h *CartHandler) DecrementItem(c *gin.Context) {
	h.adjustItem(c, h.cartService.DecrementItem)
}

func (h *CartHandler) adjustItem(c *gin.Context, adjust func(ctx context.Context, token, productID string) error) {
	token, err := h.token(c)
	if err != nil {
		logger.Error("adjustItem: session store error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session"})
		return
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, navigation.Redirect{To: navigation.PathLogin})
		return
	}

	productID := c.Param("productId")
	if err := adjust(c.Request.Context(), token, productID); err != nil {
		if errors.Is(err, service.ErrItemNotInCart) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("adjustItem: service error for product "+productID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update cart"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Checkout(c *gin.Context) {
	token, err := h.token(c)
	if err != nil {
		logger.Error("Checkout: session store error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session"})
		return
	}

	target, err := h.cartService.Checkout(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Checkout: service error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to start checkout"})
		return
	}
	c.JSON(http.StatusOK, navigation.Redirect{To: target})
}
