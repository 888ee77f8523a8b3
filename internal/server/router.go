// Package server assembles the HTTP surface of the ledger.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pocketledger/internal/events"
	"pocketledger/internal/handlers"
	"pocketledger/internal/middleware"
	"pocketledger/internal/services"

	_ "pocketledger/internal/docs" // Import swagger docs
)

// Services is everything the routes call into.
type Services struct {
	Account      services.AccountServicer
	Transaction  services.TransactionServicer
	Budget       services.BudgetServicer
	Autopay      services.AutopayServicer
	Task         services.TaskServicer
	Notification services.NotificationServicer
	Category     services.CategoryServicer
	Goal         services.GoalServicer
	Lock         services.LockServicer
	Events       handlers.Subscriber
}

// NewServices builds every service over one shared core.
func NewServices(core *services.Core, hub *events.Hub, lock services.LockServicer) Services {
	return Services{
		Account:      services.NewAccountService(core),
		Transaction:  services.NewTransactionService(core),
		Budget:       services.NewBudgetService(core),
		Autopay:      services.NewAutopayService(core),
		Task:         services.NewTaskService(core),
		Notification: services.NewNotificationService(core),
		Category:     services.NewCategoryService(core),
		Goal:         services.NewGoalService(core),
		Lock:         lock,
		Events:       hub,
	}
}

// Options tunes the router.
type Options struct {
	TokenTTL       time.Duration
	PipelineAPIKey string
	// Swagger mounts the API docs at /swagger.
	Swagger bool
}

// NewRouter registers every route under /api/v1.
func NewRouter(svc Services, opts Options) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Lock, opts.TokenTTL)
	accountHandler := handlers.NewAccountHandler(svc.Account)
	transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
	budgetHandler := handlers.NewBudgetHandler(svc.Budget)
	autopayHandler := handlers.NewAutopayHandler(svc.Autopay)
	notificationHandler := handlers.NewNotificationHandler(svc.Notification)
	categoryHandler := handlers.NewCategoryHandler(svc.Category)
	goalHandler := handlers.NewGoalHandler(svc.Goal)
	eventsHandler := handlers.NewEventsHandler(svc.Events)
	pipelineHandler := handlers.NewPipelineHandler(svc.Task)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/unlock", authHandler.Unlock)
	auth.GET("/status", authHandler.Status)

	// Scheduled tasks, called by the external tick
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(opts.PipelineAPIKey))
	pipeline.POST("/scheduled-tasks", pipelineHandler.RunScheduledTasks)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(svc.Lock.Enabled))

	protected.GET("/balance", accountHandler.GetBalance)
	protected.GET("/events", eventsHandler.Stream)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.POST("/validate", transactionHandler.ValidateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/summary", budgetHandler.GetBudgetSummary)
	budgets.POST("/summary/recompute", budgetHandler.RecomputeBudgetSummary)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.POST("/:id/reset", budgetHandler.ResetBudget)

	autopays := protected.Group("/autopays")
	autopays.POST("", autopayHandler.CreateAutopay)
	autopays.GET("", autopayHandler.GetAutopays)
	autopays.GET("/:id", autopayHandler.GetAutopay)
	autopays.POST("/:id/disable", autopayHandler.DisableAutopay)

	notifications := protected.Group("/notifications")
	notifications.GET("", notificationHandler.GetNotifications)
	notifications.DELETE("", notificationHandler.ClearNotifications)
	notifications.GET("/unread-count", notificationHandler.GetUnreadCount)
	notifications.POST("/read-all", notificationHandler.MarkAllRead)
	notifications.POST("/:id/read", notificationHandler.MarkRead)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.POST("/:id/contribute", goalHandler.ContributeToGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	return router
}

// cors allows browser clients on any origin.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
