package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/storefront-bff/internal/header/service"
	"github.com/ridloal/storefront-bff/internal/navigation"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
	"github.com/ridloal/storefront-bff/internal/session"
)

type HeaderHandler struct {
	headerService service.HeaderService
}

func NewHeaderHandler(hs service.HeaderService) *HeaderHandler {
	return &HeaderHandler{headerService: hs}
}

func (h *HeaderHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/header", h.State)
	router.POST("/logout", h.Logout)
}

func (h *HeaderHandler) State(c *gin.Context) {
	sessionID := session.IDFromRequest(c.Request)
	state, err := h.headerService.State(c.Request.Context(), sessionID)
	if err != nil {
		// Header tidak boleh memblok halaman: degradasi ke anonymous.
		logger.Error("State: service error, falling back to anonymous", err)
		c.JSON(http.StatusOK, service.HeaderState{Authenticated: false})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *HeaderHandler) Logout(c *gin.Context) {
	sessionID := session.IDFromRequest(c.Request)
	if err := h.headerService.Logout(c.Request.Context(), sessionID); err != nil {
		logger.Error("Logout: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}
	c.JSON(http.StatusOK, navigation.Redirect{To: navigation.PathHome})
}
