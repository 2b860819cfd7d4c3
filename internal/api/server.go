package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/classquest/classquest-api/docs"
	v1 "github.com/classquest/classquest-api/internal/api/handler/v1"
	"github.com/classquest/classquest-api/internal/api/middleware"
	"github.com/classquest/classquest-api/internal/config"
	"github.com/classquest/classquest-api/internal/repository"
	"github.com/classquest/classquest-api/internal/repository/dao"
	"github.com/classquest/classquest-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	Events *v1.EventsHandler
}

// NewServer wires every handler onto one shared *gorm.DB. The events hub runs
// until ctx is cancelled.
func NewServer(ctx context.Context, conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		Events: v1.NewEventsHandler(conf.API.CORSDomains),
	}
	go s.Events.Run(ctx)

	s.MountMiddlewares()

	classroomHandler := s.initClassroomHandler(db)
	questHandler := s.initQuestHandler(db)
	marketHandler := s.initMarketHandler(db)
	s.MountHandlers(classroomHandler, questHandler, marketHandler)

	return s
}

func (s *Server) initClassroomHandler(db *gorm.DB) *v1.ClassroomHandler {
	repo := repository.NewClassroomRepository(dao.NewTeacherDAO(db), dao.NewStudentDAO(db))
	svc := service.NewClassroomService(repo, s.Events, nil)
	handler := v1.NewClassroomHandler(svc)

	return handler
}

func (s *Server) initQuestHandler(db *gorm.DB) *v1.QuestHandler {
	repo := repository.NewQuestRepository(dao.NewQuestDAO(db))
	svc := service.NewQuestService(repo, s.Events)
	handler := v1.NewQuestHandler(svc)

	return handler
}

func (s *Server) initMarketHandler(db *gorm.DB) *v1.MarketHandler {
	repo := repository.NewMarketRepository(dao.NewMarketDAO(db))
	svc := service.NewMarketService(repo, s.Events)
	handler := v1.NewMarketHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ZapLogger())
	s.Router.Use(middleware.Metrics())
	s.Router.Use(middleware.ConfigCORS(s.Config.API))
}

func (s *Server) MountHandlers(classroomHandler *v1.ClassroomHandler, questHandler *v1.QuestHandler, marketHandler *v1.MarketHandler) {
	const basePath = "/api"

	classes := s.Router.Group(basePath)
	{
		classes.POST("/teacher/create_class", classroomHandler.HandleCreateClass)
		classes.POST("/student/join", classroomHandler.HandleJoinClass)
		classes.GET("/students/:classCode", classroomHandler.HandleListStudents)
		classes.POST("/points/adjust", classroomHandler.HandleAdjustPoints)
		classes.GET("/classes/:classCode/events", s.Events.HandleClassEvents)
	}

	quests := s.Router.Group(basePath)
	{
		quests.POST("/quest/create", questHandler.HandleCreateQuest)
		quests.GET("/quests/:classCode", questHandler.HandleListQuests)
		quests.POST("/quest/complete", questHandler.HandleCompleteQuest)
	}

	market := s.Router.Group(basePath)
	{
		market.GET("/market", marketHandler.HandleListItems)
		market.POST("/market/buy", marketHandler.HandleBuyItem)
		market.GET("/purchases/:studentID", marketHandler.HandleListPurchases)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "classquest API"
	docs.SwaggerInfo.Description = "Classroom gamification backend: classes, quests, points and a reward market."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
