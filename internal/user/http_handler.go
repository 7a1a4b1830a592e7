package user

import (
	"net/http"

	"github.com/VehicleShare/VehicleShare/internal/common/logger"
	"github.com/VehicleShare/VehicleShare/internal/common/server"
	"github.com/gin-gonic/gin"
)

// HTTPHandler exposes the account and profile endpoints.
type HTTPHandler struct {
	svc *Service
	log logger.Logger
}

func NewHTTPHandler(svc *Service, log logger.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, log: log}
}

// RegisterPublicRoutes mounts the unauthenticated endpoints.
func (h *HTTPHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", h.signUp)
	rg.POST("/auth/login", h.login)
}

// RegisterAuthedRoutes mounts the endpoints that require a caller identity.
func (h *HTTPHandler) RegisterAuthedRoutes(rg *gin.RouterGroup) {
	rg.GET("/profiles/me", h.getMyProfile)
	rg.PUT("/profiles/me", h.updateMyProfile)
}

func (h *HTTPHandler) signUp(c *gin.Context) {
	var in SignUpInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	session, err := h.svc.SignUp(c.Request.Context(), in)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *HTTPHandler) login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	session, err := h.svc.Login(c.Request.Context(), in)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *HTTPHandler) getMyProfile(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	p, err := h.svc.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *HTTPHandler) updateMyProfile(c *gin.Context) {
	identity, _ := server.IdentityFromContext(c)
	var in UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	p, err := h.svc.UpdateProfile(c.Request.Context(), identity.UserID, in)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
