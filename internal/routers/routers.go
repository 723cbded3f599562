package routers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/StudyHub/config"
	"github.com/Gopher0727/StudyHub/internal/handlers"
	"github.com/Gopher0727/StudyHub/internal/middlewares"
	logger "github.com/Gopher0727/StudyHub/middleware/log"
	pkgmw "github.com/Gopher0727/StudyHub/pkg/middlewares"
)

// SetupRoutes wires every handler into the engine.
func SetupRoutes(r *gin.Engine, cfg *config.Config, log *logger.Logger,
	dashboardHandler *handlers.DashboardHandler,
	groupHandler *handlers.GroupHandler,
	chatHandler *handlers.ChatHandler,
	taskHandler *handlers.TaskHandler,
	assistantHandler *handlers.AssistantHandler,
) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Trace-ID"}
	r.Use(cors.New(corsConfig))

	r.Use(middlewares.RequestLogger(log))

	// Global rate limit, smoothing bursts with a short wait.
	r.Use(pkgmw.RateLimitMiddleware(2 * time.Second))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"Status": "OK",
		})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/dashboard", dashboardHandler.Overview)

		groups := api.Group("/groups")
		{
			groups.GET("", groupHandler.ListGroups)
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.POST("/:id/sessions", groupHandler.ScheduleSession)
		}

		chats := api.Group("/chats")
		{
			chats.GET("", chatHandler.ListChats)
			chats.GET("/:id/messages", chatHandler.GetMessages)
			chats.POST("/:id/messages", chatHandler.SendMessage)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PATCH("/:id/toggle", taskHandler.ToggleTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// The assistant waits on an upstream round trip, so cap how
		// many of these can be in flight at once.
		api.POST("/assistant",
			pkgmw.MaxConcurrencyMiddleware(cfg.RateLimit.MaxConcurrency),
			assistantHandler.Ask,
		)
	}
}
