package server

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
	"github.com/VehicleShare/VehicleShare/internal/common/auth"
	"github.com/VehicleShare/VehicleShare/internal/common/config"
	"github.com/VehicleShare/VehicleShare/internal/common/logger"
	"github.com/VehicleShare/VehicleShare/internal/common/middleware"
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

const identityKey = "vehicleshare.identity"

// Identity is the authenticated caller, extracted from the access token.
type Identity struct {
	UserID      string
	DisplayName string
}

// IdentityFromContext returns the caller identity, if any.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// RecoveryMiddleware keeps a handler panic from killing the process and logs
// the stack.
func RecoveryMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if log != nil {
					log.Errorf("panic in %s %s err=%v stack=%s", c.Request.Method, c.Request.URL.Path, r, string(debug.Stack()))
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}

// AccessLogMiddleware records method, path, status and latency per request.
func AccessLogMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		cost := time.Since(start)

		if log == nil {
			return
		}
		fields := map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
			"cost":   cost.String(),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.WithFields(fields).Warn("http request failed")
		} else {
			log.WithFields(fields).Info("http request ok")
		}
	}
}

// TracingMiddleware opens a server span per request. The upstream span
// context, when present in the request headers, becomes the parent.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tracer := opentracing.GlobalTracer()

		var parent opentracing.SpanContext
		if sc, err := tracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(c.Request.Header)); err == nil {
			parent = sc
		}

		operation := c.Request.Method + " " + c.FullPath()
		var span opentracing.Span
		if parent != nil {
			span = tracer.StartSpan(operation, ext.RPCServerOption(parent))
		} else {
			span = tracer.StartSpan(operation)
		}
		defer span.Finish()

		ext.SpanKindRPCServer.Set(span)
		ext.HTTPMethod.Set(span, c.Request.Method)
		ext.HTTPUrl.Set(span, c.Request.URL.Path)
		ext.Component.Set(span, "http")
		if serviceName != "" {
			span.SetTag("service", serviceName)
		}

		c.Request = c.Request.WithContext(opentracing.ContextWithSpan(c.Request.Context(), span))
		c.Next()

		ext.HTTPStatusCode.Set(span, uint16(c.Writer.Status()))
	}
}

// AuthMiddleware requires a valid bearer token and stores the caller identity
// in the gin context. Failures get a 401 without detail about why.
func AuthMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := bearerIdentity(cfg, c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// OptionalAuthMiddleware stores the identity when a valid token is present and
// lets the request through either way. Public pages use this so owners get
// their own unpublished listings back.
func OptionalAuthMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, ok := bearerIdentity(cfg, c); ok {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

func bearerIdentity(cfg config.AuthConfig, c *gin.Context) (Identity, bool) {
	raw := strings.TrimSpace(c.GetHeader("Authorization"))
	if raw == "" {
		return Identity{}, false
	}
	tokenStr := raw
	if strings.HasPrefix(strings.ToLower(tokenStr), "bearer ") {
		tokenStr = strings.TrimSpace(tokenStr[len("bearer "):])
	}
	if tokenStr == "" {
		return Identity{}, false
	}
	claims, err := auth.ParseAccessToken(cfg, tokenStr)
	if err != nil {
		return Identity{}, false
	}
	return Identity{UserID: claims.Subject, DisplayName: claims.DisplayName}, true
}

// RateLimitMiddleware rejects requests once the limiter runs dry.
func RateLimitMiddleware(limiter middleware.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

// RespondError maps a service error to its HTTP status. Internal causes are
// logged, never returned to the client.
func RespondError(c *gin.Context, log logger.Logger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal && log != nil {
		log.WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Errorf("request failed: %v", err)
	}
	c.JSON(apperr.HTTPStatus(kind), gin.H{"error": apperr.Message(err)})
}
