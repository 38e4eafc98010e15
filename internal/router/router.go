package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/access"
	"taskboard-api/internal/board"
	"taskboard-api/internal/client"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/handler"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	JWTSecret      string
	AuthClient     middleware.TokenValidator
	BasePath       string
	AllowedOrigins []string
	Metrics        *metrics.Metrics
	// Gatherer backs /metrics; nil serves the default registry
	Gatherer           prometheus.Gatherer
	Redis              *redis.Client
	RedisKeyPrefix     string
	S3Client           client.AvatarStorage
	NotificationClient client.NotificationClient

	SessionIdleTimeout  time.Duration
	RenormalizeDebounce time.Duration
	InviteSearchLimit   int
}

// App is the wired application: the HTTP engine plus the long-lived
// components background jobs and shutdown need to reach
type App struct {
	Engine      *gin.Engine
	AccessStore *access.Store
	Sessions    *board.Sessions
	Maintenance service.MaintenanceService
	Counter     metrics.Counter
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	return Build(cfg).Engine
}

// Build wires repositories, services and handlers and registers all routes
func Build(cfg Config) *App {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewWithRegistry(prometheus.NewRegistry(), cfg.Logger)
	}

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Prometheus metrics endpoint, served at the root and under the base path
	metricsHandler := gin.WrapH(promhttp.Handler())
	if cfg.Gatherer != nil {
		metricsHandler = gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	r.GET("/metrics", metricsHandler)

	db := cfg.DB
	healthHandler := handler.NewHealthHandler(func() *gorm.DB { return db }, cfg.Redis)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(cfg.DB)
	memberRepo := repository.NewMemberRepository(cfg.DB)
	userRepo := repository.NewUserRepository(cfg.DB)
	fieldOptionRepo := repository.NewFieldOptionRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)

	// Access cache, shared across replicas when Redis is configured
	var backing access.Backing
	if cfg.Redis != nil {
		backing = access.NewRedisBacking(cfg.Redis, cfg.RedisKeyPrefix)
	}
	accessStore := access.NewStore(repository.NewAccessSource(projectRepo, memberRepo), backing, cfg.Logger, cfg.Metrics)

	// Board views and position maintenance
	sessions := board.NewSessions(taskRepo, cfg.Logger, cfg.Metrics, cfg.SessionIdleTimeout)
	maintenanceService := service.NewMaintenanceService(taskRepo, sessions, cfg.Metrics, cfg.Logger, cfg.RenormalizeDebounce)
	sessions.SetCrowdedHandler(maintenanceService.ScheduleRenormalize)

	// Initialize services
	projectService := service.NewProjectService(projectRepo, fieldOptionRepo, accessStore, sessions, cfg.Metrics, cfg.Logger)
	memberService := service.NewMemberService(projectRepo, memberRepo, userRepo, accessStore, sessions, cfg.NotificationClient, cfg.Metrics, cfg.Logger, cfg.InviteSearchLimit)
	fieldOptionService := service.NewFieldOptionService(fieldOptionRepo, sessions, cfg.Logger)
	boardService := service.NewBoardService(sessions, cfg.Logger)
	profileService := service.NewProfileService(userRepo, avatarStorage(cfg.S3Client), cfg.Logger)

	// Initialize handlers
	projectHandler := handler.NewProjectHandler(projectService)
	memberHandler := handler.NewMemberHandler(memberService)
	fieldOptionHandler := handler.NewFieldOptionHandler(fieldOptionService)
	boardHandler := handler.NewBoardHandler(boardService)
	profileHandler := handler.NewProfileHandler(profileService)

	// API routes group
	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/metrics", metricsHandler)
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)
	}
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth middleware
	var authMiddleware gin.HandlerFunc
	if cfg.AuthClient != nil {
		authMiddleware = middleware.AuthWithValidator(cfg.AuthClient)
	} else {
		authMiddleware = middleware.Auth(cfg.JWTSecret)
	}

	protected := api.Group("")
	protected.Use(authMiddleware, middleware.AccessScope(accessStore))

	// ============================================================
	// Project routes
	// ============================================================
	projects := protected.Group("/projects")
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.GetProjects)

		// Leaving or declining needs no role, the service checks the rest
		projects.DELETE("/:projectId/members/:userId", memberHandler.RemoveMember)

		project := projects.Group("/:projectId")
		project.Use(middleware.RequireProjectAction(access.ActionViewProject))
		{
			project.GET("", projectHandler.GetProject)
			project.PUT("", projectHandler.UpdateProject)
			ownerOnly := middleware.RequireProjectRole(domain.ProjectRoleOwner)
			project.DELETE("", ownerOnly, projectHandler.DeleteProject)
			project.POST("/close", ownerOnly, projectHandler.CloseProject)
			project.POST("/reopen", ownerOnly, projectHandler.ReopenProject)
			project.GET("/access", projectHandler.GetAccess)

			// ============================================================
			// Custom field options
			// ============================================================
			options := project.Group("/options/:fieldType")
			{
				options.GET("", fieldOptionHandler.GetFieldOptions)
				options.PUT("", fieldOptionHandler.SaveFieldOptions)
				options.POST("/reorder", fieldOptionHandler.ReorderFieldOptions)
			}

			// ============================================================
			// Board view
			// ============================================================
			boardRoutes := project.Group("/board")
			{
				boardRoutes.GET("", boardHandler.GetBoard)
				boardRoutes.DELETE("/drag", boardHandler.CancelDrag)

				boardRoutes.POST("/columns", boardHandler.CreateColumn)
				boardRoutes.POST("/columns/show", boardHandler.ShowAllColumns)
				boardRoutes.POST("/columns/:columnId/hide", boardHandler.HideColumn)
				boardRoutes.PATCH("/columns/:columnId", boardHandler.UpdateColumn)
				boardRoutes.PUT("/columns/:columnId/limit", boardHandler.UpdateColumnLimit)
				boardRoutes.DELETE("/columns/:columnId", boardHandler.DeleteColumn)

				boardRoutes.POST("/tasks", boardHandler.CreateTask)
				boardRoutes.POST("/tasks/:taskId/move", boardHandler.MoveTask)
				boardRoutes.POST("/tasks/:taskId/drag", boardHandler.BeginDrag)
				boardRoutes.PATCH("/tasks/:taskId", boardHandler.UpdateTask)
				boardRoutes.DELETE("/tasks/:taskId", boardHandler.DeleteTask)
			}

			// ============================================================
			// Members
			// ============================================================
			members := project.Group("/members")
			{
				members.GET("", memberHandler.GetMembers)
				members.GET("/search", memberHandler.SearchUsers)
				adminOnly := middleware.RequireProjectRole(domain.ProjectRoleAdmin)
				members.POST("/invite", adminOnly, memberHandler.InviteMember)
				members.PUT("/:userId/role", adminOnly, memberHandler.UpdateMemberRole)
			}
		}
	}

	// Invited users have no role yet
	protected.POST("/invites/:projectId/accept", memberHandler.AcceptInvite)

	// ============================================================
	// Profile routes
	// ============================================================
	profile := protected.Group("/profile")
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PUT("", profileHandler.UpdateProfile)
		profile.POST("/avatar/upload-url", profileHandler.CreateAvatarUploadURL)
		profile.PUT("/avatar", profileHandler.ConfirmAvatar)
	}

	return &App{
		Engine:      r,
		AccessStore: accessStore,
		Sessions:    sessions,
		Maintenance: maintenanceService,
		Counter: &businessCounter{
			projects: projectRepo,
			tasks:    taskRepo,
			sessions: sessions,
		},
	}
}

// avatarStorage keeps a nil S3 client a nil interface so the profile service
// reports avatar uploads as unavailable
func avatarStorage(s client.AvatarStorage) client.AvatarStorage {
	if s == nil {
		return nil
	}
	if c, ok := s.(*client.S3Client); ok && c == nil {
		return nil
	}
	return s
}

// businessCounter feeds the periodic business metrics collector
type businessCounter struct {
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	sessions *board.Sessions
}

func (b *businessCounter) CountActiveProjects(ctx context.Context) (int64, error) {
	return b.projects.Count(ctx, false)
}

func (b *businessCounter) CountTasks(ctx context.Context) (int64, error) {
	return b.tasks.Count(ctx)
}

func (b *businessCounter) OpenBoardViews() int {
	return b.sessions.Len()
}
