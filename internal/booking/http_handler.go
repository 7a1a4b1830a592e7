package booking

import (
	"net/http"
	"time"

	"github.com/VehicleShare/VehicleShare/internal/common/logger"
	"github.com/VehicleShare/VehicleShare/internal/common/server"
	"github.com/gin-gonic/gin"
)

// HTTPHandler exposes the booking endpoints. All of them require auth.
type HTTPHandler struct {
	svc *Service
	log logger.Logger
}

func NewHTTPHandler(svc *Service, log logger.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, log: log}
}

func (h *HTTPHandler) RegisterAuthedRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.create)
	rg.GET("/bookings/:id", h.get)
	rg.GET("/my/bookings", h.listMine)
	rg.POST("/bookings/:id/confirm", h.action(ActionConfirm))
	rg.POST("/bookings/:id/cancel", h.action(ActionCancel))
	rg.POST("/bookings/:id/complete", h.action(ActionComplete))
}

func (h *HTTPHandler) create(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	b, err := h.svc.Create(c.Request.Context(), identity.UserID, in, time.Now())
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *HTTPHandler) get(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	b, err := h.svc.Get(c.Request.Context(), identity.UserID, c.Param("id"))
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *HTTPHandler) listMine(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	bookings, err := h.svc.List(c.Request.Context(), identity.UserID, Role(c.Query("role")))
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *HTTPHandler) action(a Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := server.IdentityFromContext(c)
		b, err := h.svc.UpdateStatus(c.Request.Context(), identity.UserID, c.Param("id"), a, time.Now())
		if err != nil {
			server.RespondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}
