package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/erickmarcia/To-Do-Tisk/internal/application/usecase"
	"github.com/erickmarcia/To-Do-Tisk/internal/config"
	"github.com/erickmarcia/To-Do-Tisk/internal/domain/repository"
	"github.com/erickmarcia/To-Do-Tisk/internal/infrastructure/database"
	"github.com/erickmarcia/To-Do-Tisk/internal/infrastructure/http/handler"
	"github.com/erickmarcia/To-Do-Tisk/internal/infrastructure/persistence"
	"github.com/erickmarcia/To-Do-Tisk/internal/infrastructure/persistence/memory"
	"github.com/erickmarcia/To-Do-Tisk/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log := logger.NewLogger(cfg.Logger.Level, cfg.IsDevelopment())
	defer log.Sync()

	taskRepo, userRepo := setupRepositories(cfg, log)

	// Init layers
	taskUseCase := usecase.NewTaskUseCase(taskRepo, log)
	userUseCase := usecase.NewUserUseCase(userRepo, log)

	taskHandler := handler.NewTaskHandler(log, cfg, taskUseCase)
	userHandler := handler.NewUserHandler(log, cfg, userUseCase)
	healthHandler := handler.NewHealthHandler(cfg)

	router := setupRouter(cfg, taskHandler, userHandler, healthHandler)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info("server starting", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", logger.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", logger.Error(err))
	}

	log.Info("server exited")
}

// setupRepositories wires the storage driver the configuration selects. The
// Mongo driver also bootstraps the indexes the repositories rely on.
func setupRepositories(cfg *config.Config, log logger.Logger) (repository.TaskRepository, repository.UserRepository) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory storage; data will not survive restarts")
		return memory.NewTaskRepository(), memory.NewUserRepository()
	default:
		ctx := context.Background()
		client, err := database.Connect(ctx, cfg.Mongo)
		if err != nil {
			log.Fatal("failed to connect to mongo", logger.Error(err))
		}
		db := client.Database(cfg.Mongo.Database)
		if err := database.EnsureIndexes(ctx, db, cfg.Mongo); err != nil {
			log.Fatal("failed to create indexes", logger.Error(err))
		}
		log.Info("connected to mongo", logger.String("database", cfg.Mongo.Database))
		return persistence.NewTaskRepository(db.Collection(cfg.Mongo.TasksCollection), log),
			persistence.NewUserRepository(db.Collection(cfg.Mongo.UsersCollection), log)
	}
}

func setupRouter(
	cfg *config.Config,
	taskHandler *handler.TaskHandler,
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("/:email", userHandler.GetUserByEmail)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	return router
}
