package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"numero-bot/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	authSvc *service.AuthService,
	authH *AuthHandler,
	userH *UserHandler,
	numerologyH *NumerologyHandler,
	reportH *ReportHandler,
	subscriptionH *SubscriptionHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	auth.POST("/token", authH.IssueToken)

	// Todo lo demás exige un token de cliente válido.
	api := r.Group("/", JWTAuthMiddleware(authSvc))

	users := api.Group("/users")
	users.POST("", userH.CreateUser)
	users.GET("/:id", userH.GetUser)
	users.PATCH("/:id/settings", userH.UpdateSettings)
	users.GET("/:id/reports", reportH.ListReports)

	api.POST("/profile", numerologyH.ComputeProfile)
	api.POST("/compatibility", numerologyH.ComputeCompatibility)

	reports := api.Group("/reports")
	reports.POST("/mini", reportH.MiniReport)
	reports.POST("/full", reportH.FullReport)
	reports.POST("/compatibility", reportH.CompatibilityReport)
	reports.POST("/:id/paid", reportH.MarkPaid)

	subs := api.Group("/subscriptions")
	subs.POST("", subscriptionH.Subscribe)
	subs.GET("/:user_id", subscriptionH.GetSubscription)
	subs.DELETE("/:user_id", subscriptionH.Cancel)
	subs.GET("/:user_id/forecast", subscriptionH.WeeklyForecast)

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
