package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"class-finder/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas base.
// Con jwtSvc habilitado, las rutas de sesiones exigen bearer token; con
// limiter, la creacion de sesiones queda limitada por cliente.
func NewRouter(
	logger *zap.Logger,
	sessionH *SessionHandler,
	jwtSvc *service.JWTService,
	limiter service.RateLimiter,
) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sessions := r.Group("/sessions")
	if jwtSvc.Enabled() {
		sessions.Use(JWTAuthMiddleware(jwtSvc))
	}
	if limiter != nil {
		sessions.POST("", rateLimitMiddleware(limiter), sessionH.CreateSession)
	} else {
		sessions.POST("", sessionH.CreateSession)
	}
	sessions.GET("/:id", sessionH.GetSession)
	sessions.POST("/:id/answer", sessionH.AnswerSession)
	sessions.DELETE("/:id", sessionH.DeleteSession)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if id := c.Param("id"); id != "" {
			fields = append(fields, zap.String("session_id", id))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		logger.Info("request", fields...)
	}
}

// rateLimitMiddleware limita por cliente del token, o por IP sin JWT.
func rateLimitMiddleware(limiter service.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if claims, ok := GetAuthClaims(c); ok {
			key = claims.Client
		}
		if !limiter.Allow(c.Request.Context(), key) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many sessions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
