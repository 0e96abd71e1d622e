package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/salesboost/salesboost-api/docs"
	v1 "github.com/salesboost/salesboost-api/internal/api/handler/v1"
	"github.com/salesboost/salesboost-api/internal/api/middleware"
	"github.com/salesboost/salesboost-api/internal/config"
	"github.com/salesboost/salesboost-api/internal/repository"
	"github.com/salesboost/salesboost-api/internal/repository/dao"
	"github.com/salesboost/salesboost-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	campaignHandler := s.initCampaignHandler(db)
	bonusHandler := s.initBonusHandler(db)
	earningsHandler := s.initEarningsHandler(db)
	validationHandler := s.initValidationHandler(db)
	s.MountHandlers(authHandler, userHandler, campaignHandler, bonusHandler, earningsHandler, validationHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initCampaignHandler(db *gorm.DB) *v1.CampaignHandler {
	campaignDAO := dao.NewCampaignDAO(db)
	userActionDAO := dao.NewUserActionDAO(db)
	repo := repository.NewCampaignRepository(campaignDAO, userActionDAO)
	svc := service.NewCampaignService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewCampaignHandler(svc, uSvc)

	return handler
}

func (s *Server) initBonusHandler(db *gorm.DB) *v1.BonusHandler {
	bonusDAO := dao.NewBonusDAO(db)
	repo := repository.NewBonusRepository(bonusDAO)
	campaignRepo := repository.NewCampaignRepository(dao.NewCampaignDAO(db), dao.NewUserActionDAO(db))
	svc := service.NewBonusService(repo, campaignRepo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewBonusHandler(svc, uSvc)

	return handler
}

func (s *Server) initEarningsHandler(db *gorm.DB) *v1.EarningsHandler {
	campaignRepo := repository.NewCampaignRepository(dao.NewCampaignDAO(db), dao.NewUserActionDAO(db))
	bonusRepo := repository.NewBonusRepository(dao.NewBonusDAO(db))
	svc := service.NewEarningsService(campaignRepo, bonusRepo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewEarningsHandler(svc, uSvc)

	return handler
}

func (s *Server) initValidationHandler(db *gorm.DB) *v1.ValidationHandler {
	validationDAO := dao.NewValidationDAO(db)
	repo := repository.NewValidationRepository(validationDAO)
	svc := service.NewValidationService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewValidationHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	campaignHandler *v1.CampaignHandler,
	bonusHandler *v1.BonusHandler,
	earningsHandler *v1.EarningsHandler,
	validationHandler *v1.ValidationHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	users := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		users.GET("/users", userHandler.HandleGetFBOs)
		users.GET("/users/:userID", userHandler.HandleGetUser)
	}

	campaigns := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		campaigns.GET("/campaigns", campaignHandler.HandleGetCampaigns)
		campaigns.GET("/campaigns/:campaignID", campaignHandler.HandleGetCampaign)
		campaigns.POST("/campaigns", campaignHandler.HandleCreateCampaign)
		campaigns.POST("/actions/:actionID/complete", campaignHandler.HandleCompleteAction)
		campaigns.DELETE("/actions/:actionID/complete", campaignHandler.HandleUncompleteAction)

		campaigns.GET("/campaigns/:campaignID/bonuses", bonusHandler.HandleGetBonuses)
		campaigns.POST("/campaigns/:campaignID/bonuses", bonusHandler.HandleDeclareBonus)
		campaigns.PUT("/campaigns/:campaignID/bonus-config", bonusHandler.HandleSetBonusConfig)
		campaigns.PUT("/bonuses/:bonusID/review", bonusHandler.HandleReviewBonus)

		campaigns.GET("/campaigns/:campaignID/my-earnings", earningsHandler.HandleGetMyEarnings)
		campaigns.GET("/campaigns/:campaignID/users/:userID/earnings", earningsHandler.HandleGetUserEarnings)
	}

	validations := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		validations.GET("/campaign-validation/campaigns/:campaignID", validationHandler.HandleGetCampaignValidations)
		validations.POST("/campaign-validation/campaigns/:campaignID/conditions", validationHandler.HandleCreateConditions)
		validations.GET("/campaign-validation/my-status/:campaignID", validationHandler.HandleGetMyStatus)
		validations.PUT("/campaign-validation/users/:userID/campaigns/:campaignID", validationHandler.HandleUpdateValidation)
		validations.GET("/campaign-validation/validations/:validationID/conditions", validationHandler.HandleGetFulfillments)
		validations.PUT("/campaign-validation/validations/:validationID/conditions/:conditionID/fulfill", validationHandler.HandleFulfillCondition)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "SalesBoost API"
	docs.SwaggerInfo.Description = "Gamified engagement API for FBO sales teams."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
