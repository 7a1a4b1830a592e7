package vehicle

import (
	"net/http"
	"strconv"

	"github.com/VehicleShare/VehicleShare/internal/common/logger"
	"github.com/VehicleShare/VehicleShare/internal/common/server"
	"github.com/gin-gonic/gin"
)

// HTTPHandler exposes the listing endpoints.
type HTTPHandler struct {
	svc *Service
	log logger.Logger
}

func NewHTTPHandler(svc *Service, log logger.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, log: log}
}

// RegisterPublicRoutes mounts search and detail (optional auth: owners see
// their own unpublished listings).
func (h *HTTPHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles", h.search)
	rg.GET("/vehicles/:id", h.get)
}

// RegisterAuthedRoutes mounts the owner-side management endpoints.
func (h *HTTPHandler) RegisterAuthedRoutes(rg *gin.RouterGroup) {
	rg.POST("/vehicles", h.create)
	rg.PUT("/vehicles/:id", h.update)
	rg.DELETE("/vehicles/:id", h.delete)
	rg.GET("/my/vehicles", h.listMine)
}

func (h *HTTPHandler) search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	f, err := ParseSearchFilter(c.Query("category"), c.Query("types"), page, pageSize)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}

	vehicles, total, err := h.svc.Search(c.Request.Context(), f)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles, "total": total})
}

func (h *HTTPHandler) get(c *gin.Context) {
	actorID := ""
	if identity, ok := server.IdentityFromContext(c); ok {
		actorID = identity.UserID
	}
	v, err := h.svc.Get(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *HTTPHandler) create(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	var in ListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	v, err := h.svc.Create(c.Request.Context(), identity.UserID, in)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *HTTPHandler) update(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	var in ListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	v, err := h.svc.Update(c.Request.Context(), identity.UserID, c.Param("id"), in)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *HTTPHandler) delete(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	if err := h.svc.Delete(c.Request.Context(), identity.UserID, c.Param("id")); err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) listMine(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	vehicles, err := h.svc.ListByOwner(c.Request.Context(), identity.UserID)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}
