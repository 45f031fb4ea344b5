package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ecoharmony/park-registration/docs"
	v1 "github.com/ecoharmony/park-registration/internal/api/handler/v1"
	"github.com/ecoharmony/park-registration/internal/api/middleware"
	"github.com/ecoharmony/park-registration/internal/booking"
	"github.com/ecoharmony/park-registration/internal/config"
	"github.com/ecoharmony/park-registration/internal/service"
	"github.com/ecoharmony/park-registration/internal/session"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	gateway := booking.NewClient(conf.Booking.BaseURL, time.Duration(conf.Booking.TimeoutSeconds)*time.Second)
	sessions := session.NewStore(time.Duration(conf.Session.TTLMinutes) * time.Minute)

	wizardHandler := v1.NewWizardHandler(service.NewWizardService(gateway, sessions))
	activityHandler := v1.NewActivityHandler(service.NewCatalogService(gateway))
	s.MountHandlers(wizardHandler, activityHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(wizardHandler *v1.WizardHandler, activityHandler *v1.ActivityHandler) {
	const basePath = "/api/v1"

	activities := s.Router.Group(basePath)
	{
		activities.GET("/activities", activityHandler.HandleListActivities)
		activities.GET("/activities/:activityID", activityHandler.HandleGetActivity)
	}

	wizard := s.Router.Group(basePath)
	{
		wizard.POST("/wizard", wizardHandler.HandleCreateSession)
		wizard.GET("/wizard/:sessionID", wizardHandler.HandleGetSession)
		wizard.POST("/wizard/:sessionID/activity", wizardHandler.HandleSelectActivity)
		wizard.GET("/wizard/:sessionID/availability", wizardHandler.HandleAvailability)
		wizard.PUT("/wizard/:sessionID/schedule/draft", wizardHandler.HandleScheduleDraft)
		wizard.POST("/wizard/:sessionID/schedule", wizardHandler.HandleSelectSchedule)
		wizard.PUT("/wizard/:sessionID/participants/draft", wizardHandler.HandleParticipantsDraft)
		wizard.POST("/wizard/:sessionID/participants", wizardHandler.HandleSubmitParticipants)
		wizard.PUT("/wizard/:sessionID/terms/draft", wizardHandler.HandleTermsDraft)
		wizard.POST("/wizard/:sessionID/terms", wizardHandler.HandleAcceptTerms)
		wizard.POST("/wizard/:sessionID/confirm", wizardHandler.HandleConfirm)
		wizard.POST("/wizard/:sessionID/back", wizardHandler.HandleBack)
		wizard.POST("/wizard/:sessionID/reset", wizardHandler.HandleReset)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "EcoHarmony Park registration API"
	docs.SwaggerInfo.Description = "Multi-step booking wizard for the park's recreational activities."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
