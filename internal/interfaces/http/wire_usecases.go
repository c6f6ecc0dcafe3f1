package http

import (
	auditUsecases "github.com/codearena/arena-admin/internal/application/audit/usecases"
	authUsecases "github.com/codearena/arena-admin/internal/application/auth/usecases"
	dashboardUsecases "github.com/codearena/arena-admin/internal/application/dashboard/usecases"
	discussUsecases "github.com/codearena/arena-admin/internal/application/discuss/usecases"
	languageUsecases "github.com/codearena/arena-admin/internal/application/language/usecases"
	planUsecases "github.com/codearena/arena-admin/internal/application/plan/usecases"
	promptUsecases "github.com/codearena/arena-admin/internal/application/prompt/usecases"
	reportUsecases "github.com/codearena/arena-admin/internal/application/report/usecases"
	solutionUsecases "github.com/codearena/arena-admin/internal/application/solution/usecases"
	transactionUsecases "github.com/codearena/arena-admin/internal/application/transaction/usecases"
	userUsecases "github.com/codearena/arena-admin/internal/application/user/usecases"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Auth
	loginUC        *authUsecases.LoginUseCase
	refreshTokenUC *authUsecases.RefreshTokenUseCase
	logoutUC       *authUsecases.LogoutUseCase
	authenticateUC *authUsecases.AuthenticateUseCase
	currentStaffUC *authUsecases.GetCurrentStaffUseCase

	// Users
	listUsersUC      *userUsecases.ListUsersUseCase
	getUserUC        *userUsecases.GetUserUseCase
	changeUserRoleUC *userUsecases.ChangeUserRoleUseCase
	setUserBanUC     *userUsecases.SetUserBanUseCase
	deleteUserUC     *userUsecases.DeleteUserUseCase

	// Languages
	listLanguagesUC   *languageUsecases.ListLanguagesUseCase
	createLanguageUC  *languageUsecases.CreateLanguageUseCase
	updateLanguageUC  *languageUsecases.UpdateLanguageUseCase
	deleteLanguageUC  *languageUsecases.DeleteLanguageUseCase
	reorderLanguageUC *languageUsecases.ReorderLanguagesUseCase

	// Plans
	listPlansUC       *planUsecases.ListPlansUseCase
	getPlanUC         *planUsecases.GetPlanUseCase
	createPlanUC      *planUsecases.CreatePlanUseCase
	updatePlanUC      *planUsecases.UpdatePlanUseCase
	deletePlanUC      *planUsecases.DeletePlanUseCase
	setPlanActiveUC   *planUsecases.SetPlanActiveUseCase
	createFeatureUC   *planUsecases.CreateFeatureUseCase
	updateFeatureUC   *planUsecases.UpdateFeatureUseCase
	deleteFeatureUC   *planUsecases.DeleteFeatureUseCase
	reorderFeaturesUC *planUsecases.ReorderFeaturesUseCase

	// Transactions
	listTransactionsUC *transactionUsecases.ListTransactionsUseCase
	getTransactionUC   *transactionUsecases.GetTransactionUseCase

	// Solutions
	listSolutionsUC  *solutionUsecases.ListSolutionsUseCase
	getSolutionUC    *solutionUsecases.GetSolutionUseCase
	deleteSolutionUC *solutionUsecases.DeleteSolutionUseCase
	voteSolutionUC   *solutionUsecases.VoteSolutionUseCase

	// Discussions
	listPostsUC     *discussUsecases.ListPostsUseCase
	getPostUC       *discussUsecases.GetPostUseCase
	deletePostUC    *discussUsecases.DeletePostUseCase
	pinPostUC       *discussUsecases.PinPostUseCase
	listCommentsUC  *discussUsecases.ListCommentsUseCase
	deleteCommentUC *discussUsecases.DeleteCommentUseCase
	voteCommentUC   *discussUsecases.VoteCommentUseCase

	// Prompts
	listPromptsUC   *promptUsecases.ListPromptsUseCase
	getPromptUC     *promptUsecases.GetPromptUseCase
	createPromptUC  *promptUsecases.CreatePromptUseCase
	updatePromptUC  *promptUsecases.UpdatePromptUseCase
	deletePromptUC  *promptUsecases.DeletePromptUseCase
	previewPromptUC *promptUsecases.PreviewPromptUseCase

	// Reports
	listReportsUC   *reportUsecases.ListReportsUseCase
	getReportUC     *reportUsecases.GetReportUseCase
	resolveReportUC *reportUsecases.CloseReportUseCase
	dismissReportUC *reportUsecases.CloseReportUseCase

	// Dashboard & audit
	overviewUC  *dashboardUsecases.GetOverviewUseCase
	listAuditUC *auditUsecases.ListAuditEntriesUseCase
}

func newUseCases(s *services, log logger.Interface) *allUseCases {
	gw := s.platform
	sink := s.recorder

	return &allUseCases{
		loginUC:        authUsecases.NewLoginUseCase(gw, s.sessions, s.jwt, sink, log.Named("auth")),
		refreshTokenUC: authUsecases.NewRefreshTokenUseCase(s.sessions, s.jwt, log.Named("auth")),
		logoutUC:       authUsecases.NewLogoutUseCase(s.sessions, sink, log.Named("auth")),
		authenticateUC: authUsecases.NewAuthenticateUseCase(s.sessions, s.jwt, log.Named("auth")),
		currentStaffUC: authUsecases.NewGetCurrentStaffUseCase(s.sessions, log.Named("auth")),

		listUsersUC:      userUsecases.NewListUsersUseCase(gw, s.fetcher, log),
		getUserUC:        userUsecases.NewGetUserUseCase(gw, log),
		changeUserRoleUC: userUsecases.NewChangeUserRoleUseCase(gw, sink, log),
		setUserBanUC:     userUsecases.NewSetUserBanUseCase(gw, sink, log),
		deleteUserUC:     userUsecases.NewDeleteUserUseCase(gw, sink, log),

		listLanguagesUC:   languageUsecases.NewListLanguagesUseCase(gw, s.languages, s.fetcher, log),
		createLanguageUC:  languageUsecases.NewCreateLanguageUseCase(gw, s.languages, sink, log),
		updateLanguageUC:  languageUsecases.NewUpdateLanguageUseCase(gw, s.languages, sink, log),
		deleteLanguageUC:  languageUsecases.NewDeleteLanguageUseCase(gw, s.languages, sink, log),
		reorderLanguageUC: languageUsecases.NewReorderLanguagesUseCase(gw, s.languages, sink, log),

		listPlansUC:       planUsecases.NewListPlansUseCase(gw, s.fetcher, log),
		getPlanUC:         planUsecases.NewGetPlanUseCase(gw, log),
		createPlanUC:      planUsecases.NewCreatePlanUseCase(gw, sink, log),
		updatePlanUC:      planUsecases.NewUpdatePlanUseCase(gw, sink, log),
		deletePlanUC:      planUsecases.NewDeletePlanUseCase(gw, s.features, sink, log),
		setPlanActiveUC:   planUsecases.NewSetPlanActiveUseCase(gw, sink, log),
		createFeatureUC:   planUsecases.NewCreateFeatureUseCase(gw, s.features, sink, log),
		updateFeatureUC:   planUsecases.NewUpdateFeatureUseCase(gw, s.features, sink, log),
		deleteFeatureUC:   planUsecases.NewDeleteFeatureUseCase(gw, s.features, sink, log),
		reorderFeaturesUC: planUsecases.NewReorderFeaturesUseCase(gw, s.features, sink, log),

		listTransactionsUC: transactionUsecases.NewListTransactionsUseCase(gw, s.fetcher, log),
		getTransactionUC:   transactionUsecases.NewGetTransactionUseCase(gw, log),

		listSolutionsUC:  solutionUsecases.NewListSolutionsUseCase(gw, s.fetcher, log),
		getSolutionUC:    solutionUsecases.NewGetSolutionUseCase(gw, s.renderer, log),
		deleteSolutionUC: solutionUsecases.NewDeleteSolutionUseCase(gw, sink, log),
		voteSolutionUC:   solutionUsecases.NewVoteSolutionUseCase(gw, s.solutionVotes, sink, log),

		listPostsUC:     discussUsecases.NewListPostsUseCase(gw, s.fetcher, s.renderer, log),
		getPostUC:       discussUsecases.NewGetPostUseCase(gw, s.renderer, log),
		deletePostUC:    discussUsecases.NewDeletePostUseCase(gw, sink, log),
		pinPostUC:       discussUsecases.NewPinPostUseCase(gw, sink, log),
		listCommentsUC:  discussUsecases.NewListCommentsUseCase(gw, s.fetcher, log),
		deleteCommentUC: discussUsecases.NewDeleteCommentUseCase(gw, sink, log),
		voteCommentUC:   discussUsecases.NewVoteCommentUseCase(gw, s.commentVotes, sink, log),

		listPromptsUC:   promptUsecases.NewListPromptsUseCase(gw, s.fetcher, log),
		getPromptUC:     promptUsecases.NewGetPromptUseCase(gw, log),
		createPromptUC:  promptUsecases.NewCreatePromptUseCase(gw, sink, log),
		updatePromptUC:  promptUsecases.NewUpdatePromptUseCase(gw, sink, log),
		deletePromptUC:  promptUsecases.NewDeletePromptUseCase(gw, sink, log),
		previewPromptUC: promptUsecases.NewPreviewPromptUseCase(log),

		listReportsUC:   reportUsecases.NewListReportsUseCase(gw, s.fetcher, log),
		getReportUC:     reportUsecases.NewGetReportUseCase(gw, log),
		resolveReportUC: reportUsecases.NewResolveReportUseCase(gw, s.notifier, s.workers, sink, log),
		dismissReportUC: reportUsecases.NewDismissReportUseCase(gw, s.notifier, s.workers, sink, log),

		overviewUC:  dashboardUsecases.NewGetOverviewUseCase(gw, log),
		listAuditUC: auditUsecases.NewListAuditEntriesUseCase(s.auditRepo, log),
	}
}
