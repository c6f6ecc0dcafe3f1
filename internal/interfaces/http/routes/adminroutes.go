package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/codearena/arena-admin/internal/infrastructure/permission"
	"github.com/codearena/arena-admin/internal/interfaces/http/handlers"
	"github.com/codearena/arena-admin/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the staff console API.
type AdminRouteConfig struct {
	UserHandler          *handlers.UserHandler
	LanguageHandler      *handlers.LanguageHandler
	PlanHandler          *handlers.PlanHandler
	TransactionHandler   *handlers.TransactionHandler
	SolutionHandler      *handlers.SolutionHandler
	DiscussHandler       *handlers.DiscussHandler
	PromptHandler        *handlers.PromptHandler
	ReportHandler        *handlers.ReportHandler
	DashboardHandler     *handlers.DashboardHandler
	AuditHandler         *handlers.AuditHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes mounts every console operation under /api/admin.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())

	can := cfg.PermissionMiddleware.RequirePermission

	admin.GET("/dashboard", can(permission.ResourceDashboard, permission.ActionRead), cfg.DashboardHandler.GetOverview)
	admin.GET("/audit", can(permission.ResourceAudit, permission.ActionRead), cfg.AuditHandler.ListEntries)

	users := admin.Group("/users")
	{
		users.GET("", can(permission.ResourceUser, permission.ActionRead), cfg.UserHandler.ListUsers)
		users.GET("/:id", can(permission.ResourceUser, permission.ActionRead), cfg.UserHandler.GetUser)
		users.PUT("/:id/role", can(permission.ResourceUser, permission.ActionUpdate), cfg.UserHandler.ChangeRole)
		users.PUT("/:id/ban", can(permission.ResourceUser, permission.ActionUpdate), cfg.UserHandler.SetBan)
		users.DELETE("/:id", can(permission.ResourceUser, permission.ActionDelete), cfg.UserHandler.DeleteUser)
	}

	languages := admin.Group("/languages")
	{
		languages.GET("", can(permission.ResourceLanguage, permission.ActionRead), cfg.LanguageHandler.ListLanguages)
		languages.POST("", can(permission.ResourceLanguage, permission.ActionCreate), cfg.LanguageHandler.CreateLanguage)
		languages.PUT("/order", can(permission.ResourceLanguage, permission.ActionUpdate), cfg.LanguageHandler.ReorderLanguages)
		languages.PUT("/:id", can(permission.ResourceLanguage, permission.ActionUpdate), cfg.LanguageHandler.UpdateLanguage)
		languages.DELETE("/:id", can(permission.ResourceLanguage, permission.ActionDelete), cfg.LanguageHandler.DeleteLanguage)
	}

	plans := admin.Group("/plans")
	{
		plans.GET("", can(permission.ResourcePlan, permission.ActionRead), cfg.PlanHandler.ListPlans)
		plans.POST("", can(permission.ResourcePlan, permission.ActionCreate), cfg.PlanHandler.CreatePlan)
		plans.GET("/:id", can(permission.ResourcePlan, permission.ActionRead), cfg.PlanHandler.GetPlan)
		plans.PUT("/:id", can(permission.ResourcePlan, permission.ActionUpdate), cfg.PlanHandler.UpdatePlan)
		plans.PATCH("/:id/status", can(permission.ResourcePlan, permission.ActionUpdate), cfg.PlanHandler.UpdatePlanStatus)
		plans.DELETE("/:id", can(permission.ResourcePlan, permission.ActionDelete), cfg.PlanHandler.DeletePlan)

		plans.POST("/:id/features", can(permission.ResourcePlan, permission.ActionUpdate), cfg.PlanHandler.CreateFeature)
		plans.PUT("/:id/features/order", can(permission.ResourcePlan, permission.ActionUpdate), cfg.PlanHandler.ReorderFeatures)
		plans.PUT("/:id/features/:feature_id", can(permission.ResourcePlan, permission.ActionUpdate), cfg.PlanHandler.UpdateFeature)
		plans.DELETE("/:id/features/:feature_id", can(permission.ResourcePlan, permission.ActionUpdate), cfg.PlanHandler.DeleteFeature)
	}

	transactions := admin.Group("/transactions")
	transactions.Use(can(permission.ResourceTransaction, permission.ActionRead))
	{
		transactions.GET("", cfg.TransactionHandler.ListTransactions)
		transactions.GET("/:id", cfg.TransactionHandler.GetTransaction)
	}

	solutions := admin.Group("/solutions")
	{
		solutions.GET("", can(permission.ResourceSolution, permission.ActionRead), cfg.SolutionHandler.ListSolutions)
		solutions.GET("/:id", can(permission.ResourceSolution, permission.ActionRead), cfg.SolutionHandler.GetSolution)
		solutions.DELETE("/:id", can(permission.ResourceSolution, permission.ActionDelete), cfg.SolutionHandler.DeleteSolution)
		solutions.POST("/:id/vote", can(permission.ResourceSolution, permission.ActionVote), cfg.SolutionHandler.VoteSolution)
	}

	posts := admin.Group("/posts")
	{
		posts.GET("", can(permission.ResourcePost, permission.ActionRead), cfg.DiscussHandler.ListPosts)
		posts.GET("/:id", can(permission.ResourcePost, permission.ActionRead), cfg.DiscussHandler.GetPost)
		posts.DELETE("/:id", can(permission.ResourcePost, permission.ActionDelete), cfg.DiscussHandler.DeletePost)
		posts.PUT("/:id/pin", can(permission.ResourcePost, permission.ActionUpdate), cfg.DiscussHandler.PinPost)
		posts.GET("/:id/comments", can(permission.ResourceComment, permission.ActionRead), cfg.DiscussHandler.ListComments)
	}

	comments := admin.Group("/comments")
	{
		comments.DELETE("/:id", can(permission.ResourceComment, permission.ActionDelete), cfg.DiscussHandler.DeleteComment)
		comments.POST("/:id/vote", can(permission.ResourceComment, permission.ActionVote), cfg.DiscussHandler.VoteComment)
	}

	prompts := admin.Group("/prompts")
	{
		prompts.GET("", can(permission.ResourcePrompt, permission.ActionRead), cfg.PromptHandler.ListPrompts)
		prompts.POST("", can(permission.ResourcePrompt, permission.ActionCreate), cfg.PromptHandler.CreatePrompt)
		prompts.POST("/preview", can(permission.ResourcePrompt, permission.ActionRead), cfg.PromptHandler.PreviewPrompt)
		prompts.GET("/:id", can(permission.ResourcePrompt, permission.ActionRead), cfg.PromptHandler.GetPrompt)
		prompts.PUT("/:id", can(permission.ResourcePrompt, permission.ActionUpdate), cfg.PromptHandler.UpdatePrompt)
		prompts.DELETE("/:id", can(permission.ResourcePrompt, permission.ActionDelete), cfg.PromptHandler.DeletePrompt)
	}

	reports := admin.Group("/reports")
	{
		reports.GET("", can(permission.ResourceReport, permission.ActionRead), cfg.ReportHandler.ListReports)
		reports.GET("/:id", can(permission.ResourceReport, permission.ActionRead), cfg.ReportHandler.GetReport)
		reports.POST("/:id/resolve", can(permission.ResourceReport, permission.ActionUpdate), cfg.ReportHandler.ResolveReport)
		reports.POST("/:id/dismiss", can(permission.ResourceReport, permission.ActionUpdate), cfg.ReportHandler.DismissReport)
	}
}
