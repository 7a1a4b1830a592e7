package favorite

import (
	"net/http"

	"github.com/VehicleShare/VehicleShare/internal/common/logger"
	"github.com/VehicleShare/VehicleShare/internal/common/server"
	"github.com/gin-gonic/gin"
)

// HTTPHandler exposes the favorite endpoints. All of them require auth.
type HTTPHandler struct {
	svc *Service
	log logger.Logger
}

func NewHTTPHandler(svc *Service, log logger.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, log: log}
}

func (h *HTTPHandler) RegisterAuthedRoutes(rg *gin.RouterGroup) {
	rg.POST("/vehicles/:id/favorite", h.add)
	rg.DELETE("/vehicles/:id/favorite", h.remove)
	rg.GET("/my/favorites", h.listMine)
}

func (h *HTTPHandler) add(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	if err := h.svc.Add(c.Request.Context(), identity.UserID, c.Param("id")); err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func (h *HTTPHandler) remove(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	if err := h.svc.Remove(c.Request.Context(), identity.UserID, c.Param("id")); err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func (h *HTTPHandler) listMine(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	vehicles, err := h.svc.ListVehicles(c.Request.Context(), identity.UserID)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}
