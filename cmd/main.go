package main

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/StudyHub/config"
	"github.com/Gopher0727/StudyHub/internal/handlers"
	"github.com/Gopher0727/StudyHub/internal/routers"
	"github.com/Gopher0727/StudyHub/internal/store"
	logger "github.com/Gopher0727/StudyHub/middleware/log"
	"github.com/Gopher0727/StudyHub/pkg/assistant"
	"github.com/Gopher0727/StudyHub/pkg/middlewares"
	"github.com/Gopher0727/StudyHub/pkg/utils"
)

func main() {
	cfg, err := config.LoadConfig("./config.toml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Close()

	// Global rate limiter
	middlewares.InitGlobalLimiter(cfg.RateLimit.Burst, cfg.RateLimit.QPS)

	// The store is app-session scoped and owned here; it is passed
	// into the handlers explicitly, never reached through a global.
	snap := store.Snapshot{}
	if cfg.Seed.Enabled {
		snap = store.SeedSnapshot(time.Now())
	}
	st := store.NewStore(snap)

	clock := handlers.Clock(time.Now)
	aiClient := assistant.NewClient(cfg.Assistant.UpstreamURL, cfg.Assistant.Timeout)

	dashboardHandler := handlers.NewDashboardHandler(st, clock, zlog)
	groupHandler := handlers.NewGroupHandler(st, clock, utils.NewID, zlog)
	chatHandler := handlers.NewChatHandler(st, clock, utils.NewID, zlog)
	taskHandler := handlers.NewTaskHandler(st, utils.NewID, zlog)
	assistantHandler := handlers.NewAssistantHandler(aiClient, zlog)

	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())

	routers.SetupRoutes(r, cfg, zlog,
		dashboardHandler,
		groupHandler,
		chatHandler,
		taskHandler,
		assistantHandler,
	)

	zlog.Info("starting server on port :" + strconv.Itoa(cfg.Server.Port))
	if err := r.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
