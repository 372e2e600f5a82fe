package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hajruuudin/life-line/config"
	"github.com/hajruuudin/life-line/controllers"
	"github.com/hajruuudin/life-line/middlewares"
	"github.com/hajruuudin/life-line/services"
)

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.FrontendURL))

	tokenSvc := services.NewGoogleTokenService(db, cfg)
	driveSvc := services.NewGoogleDriveService(db, cfg, tokenSvc)
	calendarSvc := services.NewGoogleCalendarService(cfg, tokenSvc)
	authSvc := services.NewAuthService(db, cfg, tokenSvc, driveSvc)
	n8nSvc := services.NewN8NService(cfg, driveSvc)
	aiSvc := services.NewAISuggestionService(cfg)

	memberSvc := services.NewFamilyMemberService(db)
	medicationSvc := services.NewMedicationService(db)
	usageSvc := services.NewMedicationUsageService(db)
	illnessSvc := services.NewIllnessLogService(db, aiSvc, cfg.FeatureAIIllnessSuggestions)

	authCtrl := controllers.NewAuthController(authSvc)
	memberCtrl := controllers.NewFamilyMemberController(memberSvc)
	medicationCtrl := controllers.NewMedicationController(medicationSvc)
	usageCtrl := controllers.NewMedicationUsageController(usageSvc)
	illnessCtrl := controllers.NewIllnessLogController(illnessSvc)
	driveCtrl := controllers.NewDriveController(driveSvc, n8nSvc)
	calendarCtrl := controllers.NewCalendarController(calendarSvc)
	featureCtrl := controllers.NewFeatureController(cfg)
	n8nCtrl := controllers.NewN8NController(n8nSvc)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "LifeLine API", "version": "1.0.0"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.GET("/google-login", authCtrl.GoogleLogin)
		auth.POST("/callback", authCtrl.GoogleCallback)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(authSvc, cfg.JWTSecret))
	{
		members := protected.Group("/family-members")
		{
			members.GET("", memberCtrl.List)
			members.POST("", memberCtrl.Create)
			members.GET("/:id", memberCtrl.Get)
			members.PUT("/:id", memberCtrl.Update)
			members.DELETE("/:id", memberCtrl.Delete)
		}

		medications := protected.Group("/medications")
		{
			medications.GET("", medicationCtrl.List)
			medications.POST("", medicationCtrl.CreateOrRestock)
			medications.GET("/:id", medicationCtrl.Get)
			medications.PUT("/:id", medicationCtrl.Update)
			medications.DELETE("/:id", medicationCtrl.Delete)
		}

		usage := protected.Group("/medication-usage")
		{
			usage.GET("", usageCtrl.List)
			usage.POST("", usageCtrl.Log)
		}

		illness := protected.Group("/illness-logs")
		{
			illness.GET("", illnessCtrl.List)
			illness.POST("", illnessCtrl.Create)
			illness.GET("/:id", illnessCtrl.Get)
			illness.PUT("/:id", illnessCtrl.Update)
			illness.DELETE("/:id", illnessCtrl.Delete)
		}

		drive := protected.Group("/drive")
		{
			drive.GET("/files", driveCtrl.ListFiles)
			drive.POST("/upload", driveCtrl.UploadFile)
			drive.DELETE("/files/:id", driveCtrl.DeleteFile)
		}

		calendar := protected.Group("/calendar")
		{
			calendar.GET("/upcoming", calendarCtrl.Upcoming)
			calendar.POST("/events", calendarCtrl.CreateEvent)
		}

		protected.GET("/features", featureCtrl.Flags)
	}

	// Server-to-server routes authenticated with an API key
	n8n := r.Group("/n8n")
	n8n.Use(middlewares.APIKeyMiddleware(authSvc))
	{
		n8n.POST("/summarize", n8nCtrl.Summarize)
	}

	return r
}
