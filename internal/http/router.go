package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gennova/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtServ *service.JWTService,
	userH *UserHandler,
	reportH *ReportHandler,
	articleH *ArticleHandler,
	assistantH *AssistantHandler,
	kitH *KitHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	// Rutas publicas.
	r.POST("/users", userH.SignUp)

	auth := r.Group("/auth")
	auth.POST("/login", userH.Login)
	auth.POST("/refresh", userH.RefreshToken)
	auth.POST("/logout", userH.Logout)

	// Rutas autenticadas.
	authed := r.Group("", JWTAuthMiddleware(jwtServ))
	authed.GET("/me", userH.Me)
	authed.PATCH("/me", userH.UpdateMe)

	profiles := authed.Group("/profiles")
	profiles.GET("", reportH.ListProfiles)
	profiles.GET("/:id/kit", reportH.GetKit)
	profiles.GET("/:id/report", reportH.GetReport)
	profiles.GET("/:id/traits/:name/genetics", reportH.GetTraitGenetics)
	profiles.POST("/:id/kits", kitH.Activate)

	authed.GET("/traits", reportH.ListTraits)

	articles := authed.Group("/articles")
	articles.GET("", articleH.List)
	articles.GET("/:id", articleH.Detail)
	articles.GET("/:id/related", articleH.Related)
	articles.POST("/reindex", articleH.Reindex)

	authed.POST("/assistant/chat", assistantH.Chat)

	// Operado por el laboratorio, no por la app.
	authed.POST("/kits/:id/advance", kitH.Advance)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
