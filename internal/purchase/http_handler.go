package purchase

import (
	"net/http"
	"time"

	"github.com/VehicleShare/VehicleShare/internal/common/logger"
	"github.com/VehicleShare/VehicleShare/internal/common/server"
	"github.com/gin-gonic/gin"
)

// HTTPHandler exposes the purchase request endpoints. All of them require auth.
type HTTPHandler struct {
	svc *Service
	log logger.Logger
}

func NewHTTPHandler(svc *Service, log logger.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, log: log}
}

func (h *HTTPHandler) RegisterAuthedRoutes(rg *gin.RouterGroup) {
	rg.POST("/purchase-requests", h.create)
	rg.GET("/purchase-requests/:id", h.get)
	rg.GET("/my/purchase-requests", h.listMine)
	rg.POST("/purchase-requests/:id/accept", h.respond(ActionAccept))
	rg.POST("/purchase-requests/:id/decline", h.respond(ActionDecline))
}

func (h *HTTPHandler) create(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	pr, err := h.svc.Create(c.Request.Context(), identity.UserID, in)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, pr)
}

func (h *HTTPHandler) get(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	pr, err := h.svc.Get(c.Request.Context(), identity.UserID, c.Param("id"))
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, pr)
}

func (h *HTTPHandler) listMine(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	prs, err := h.svc.List(c.Request.Context(), identity.UserID, Role(c.Query("role")))
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchase_requests": prs})
}

type respondBody struct {
	ResponseMessage string `json:"response_message"`
}

func (h *HTTPHandler) respond(a Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := server.IdentityFromContext(c)
		var body respondBody
		// the body is optional; a bare POST is a response without a note
		_ = c.ShouldBindJSON(&body)
		pr, err := h.svc.Respond(c.Request.Context(), identity.UserID, c.Param("id"), a, body.ResponseMessage, time.Now())
		if err != nil {
			server.RespondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, pr)
	}
}
