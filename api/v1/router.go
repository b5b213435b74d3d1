package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jrautos/jrautos-api/config"
	"github.com/jrautos/jrautos-api/middleware"
	"github.com/jrautos/jrautos-api/repositories"
	"github.com/jrautos/jrautos-api/services"
)

// RegisterRoutes wires every v1 endpoint under the given group, building
// the repositories and services from the shared store handle and config.
func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, db *mongo.Database, logger zerolog.Logger) {
	var mailer services.Mailer
	if cfg.ResendAPIKey != "" {
		mailer = services.NewResendMailer(cfg.ResendAPIKey, cfg.SenderEmail, cfg.RecipientEmail)
	} else {
		logger.Info().Msg("RESEND_API_KEY not set, contact notifications disabled")
	}

	registerRoutes(router,
		middleware.AdminAuth(cfg.AdminSecret),
		NewStatusController(services.NewStatusService(repositories.NewStatusRepository(db))),
		NewContactController(services.NewContactService(repositories.NewContactRepository(db), mailer, logger)),
		NewVehicleController(services.NewVehicleService(repositories.NewVehicleRepository(db))),
		NewAuthController(services.NewAuthService(cfg.AdminSecret)),
	)
}

func registerRoutes(
	router *gin.RouterGroup,
	adminAuth gin.HandlerFunc,
	status *StatusController,
	contact *ContactController,
	vehicle *VehicleController,
	auth *AuthController,
) {
	router.GET("/", Welcome)
	router.GET("/health", HealthCheck)

	router.POST("/status", status.Create)
	router.GET("/status", status.List)

	router.POST("/contact", contact.Submit)
	router.GET("/contact", adminAuth, contact.List)

	router.GET("/vehicles", vehicle.ListPublic)
	router.GET("/vehicles/:id", vehicle.GetPublic)

	admin := router.Group("/admin")
	{
		admin.POST("/login", auth.Login)
		admin.GET("/contacts", adminAuth, contact.List)

		vehicles := admin.Group("/vehicles")
		vehicles.Use(adminAuth)
		{
			vehicles.GET("", vehicle.ListAll)
			vehicles.POST("", vehicle.Create)
			vehicles.PUT("/:id", vehicle.Update)
			vehicles.DELETE("/:id", vehicle.Delete)
		}
	}
}
