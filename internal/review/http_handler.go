package review

import (
	"net/http"

	"github.com/VehicleShare/VehicleShare/internal/common/logger"
	"github.com/VehicleShare/VehicleShare/internal/common/server"
	"github.com/gin-gonic/gin"
)

// HTTPHandler exposes the review endpoints. Reading is public, writing
// requires auth.
type HTTPHandler struct {
	svc *Service
	log logger.Logger
}

func NewHTTPHandler(svc *Service, log logger.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, log: log}
}

func (h *HTTPHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles/:id/reviews", h.list)
}

func (h *HTTPHandler) RegisterAuthedRoutes(rg *gin.RouterGroup) {
	rg.POST("/vehicles/:id/reviews", h.create)
}

func (h *HTTPHandler) create(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	rv, err := h.svc.Create(c.Request.Context(), identity.UserID, c.Param("id"), in)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, rv)
}

func (h *HTTPHandler) list(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	page, err := h.svc.ListByVehicle(c.Request.Context(), identity.UserID, c.Param("id"))
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
