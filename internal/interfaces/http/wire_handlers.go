package http

import (
	"github.com/codearena/arena-admin/internal/infrastructure/config"
	"github.com/codearena/arena-admin/internal/interfaces/http/handlers"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler        *handlers.AuthHandler
	userHandler        *handlers.UserHandler
	languageHandler    *handlers.LanguageHandler
	planHandler        *handlers.PlanHandler
	transactionHandler *handlers.TransactionHandler
	solutionHandler    *handlers.SolutionHandler
	discussHandler     *handlers.DiscussHandler
	promptHandler      *handlers.PromptHandler
	reportHandler      *handlers.ReportHandler
	dashboardHandler   *handlers.DashboardHandler
	auditHandler       *handlers.AuditHandler
	healthHandler      *handlers.HealthHandler
}

func newHandlers(ucs *allUseCases, s *services, cfg *config.Config, health *handlers.HealthHandler, log logger.Interface) *allHandlers {
	return &allHandlers{
		authHandler: handlers.NewAuthHandler(
			ucs.loginUC, ucs.refreshTokenUC, ucs.logoutUC, ucs.currentStaffUC,
			cfg.Auth.Cookie, s.jwt.RefreshTTL(), log.Named("auth"),
		),
		userHandler: handlers.NewUserHandler(
			ucs.listUsersUC, ucs.getUserUC, ucs.changeUserRoleUC, ucs.setUserBanUC, ucs.deleteUserUC, log,
		),
		languageHandler: handlers.NewLanguageHandler(
			ucs.listLanguagesUC, ucs.createLanguageUC, ucs.updateLanguageUC, ucs.deleteLanguageUC, ucs.reorderLanguageUC, log,
		),
		planHandler: handlers.NewPlanHandler(
			ucs.listPlansUC, ucs.getPlanUC, ucs.createPlanUC, ucs.updatePlanUC, ucs.deletePlanUC, ucs.setPlanActiveUC,
			ucs.createFeatureUC, ucs.updateFeatureUC, ucs.deleteFeatureUC, ucs.reorderFeaturesUC, log,
		),
		transactionHandler: handlers.NewTransactionHandler(ucs.listTransactionsUC, ucs.getTransactionUC),
		solutionHandler: handlers.NewSolutionHandler(
			ucs.listSolutionsUC, ucs.getSolutionUC, ucs.deleteSolutionUC, ucs.voteSolutionUC,
		),
		discussHandler: handlers.NewDiscussHandler(
			ucs.listPostsUC, ucs.getPostUC, ucs.deletePostUC, ucs.pinPostUC,
			ucs.listCommentsUC, ucs.deleteCommentUC, ucs.voteCommentUC,
		),
		promptHandler: handlers.NewPromptHandler(
			ucs.listPromptsUC, ucs.getPromptUC, ucs.createPromptUC, ucs.updatePromptUC, ucs.deletePromptUC, ucs.previewPromptUC,
		),
		reportHandler:    handlers.NewReportHandler(ucs.listReportsUC, ucs.getReportUC, ucs.resolveReportUC, ucs.dismissReportUC),
		dashboardHandler: handlers.NewDashboardHandler(ucs.overviewUC),
		auditHandler:     handlers.NewAuditHandler(ucs.listAuditUC),
		healthHandler:    health,
	}
}
