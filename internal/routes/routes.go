package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/controle-exames/internal/domain/exam"
	"github.com/BruksfildServices01/controle-exames/internal/handlers"
	"github.com/BruksfildServices01/controle-exames/internal/middleware"
	"github.com/BruksfildServices01/controle-exames/internal/session"
	"github.com/BruksfildServices01/controle-exames/internal/timezone"
	ucAuth "github.com/BruksfildServices01/controle-exames/internal/usecase/auth"
	ucExam "github.com/BruksfildServices01/controle-exames/internal/usecase/exam"
)

type Dependencies struct {
	Gateway  domain.Gateway
	Sessions *session.Manager
	Archiver ucExam.Archiver
	Clock    timezone.Clock
	PDFTitle string
	Logger   *slog.Logger
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	loginUC := ucAuth.NewLogin(deps.Gateway)

	listTodayUC := ucExam.NewListToday(deps.Gateway, deps.Clock)
	listArchivedUC := ucExam.NewListArchived(deps.Gateway)
	searchUC := ucExam.NewSearch(deps.Gateway)
	createExamUC := ucExam.NewCreateExam(deps.Gateway, deps.Clock)
	updateStatusUC := ucExam.NewUpdateStatus(deps.Gateway)
	exportExamUC := ucExam.NewExportExam(
		deps.Gateway,
		deps.Archiver,
		deps.Clock,
		deps.PDFTitle,
		deps.Logger,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, deps.Sessions, deps.Logger)
	examHandler := handlers.NewExamHandler(
		listTodayUC,
		listArchivedUC,
		searchUC,
		createExamUC,
		updateStatusUC,
		exportExamUC,
		deps.Logger,
	)

	// ======================================================
	// 🌍 PÚBLICAS
	// ======================================================
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// ======================================================
	// 🔐 SESSÃO OBRIGATÓRIA
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthRequired(deps.Sessions))
	{
		secured.GET("/", examHandler.Index)
		secured.POST("/cadastrar", examHandler.Create)
		secured.GET("/status/:id/:novo_status", examHandler.UpdateStatus)
		secured.GET("/arquivados", examHandler.Archived)
		secured.GET("/pesquisar", examHandler.Search)
		secured.POST("/pesquisar", examHandler.Search)
		secured.GET("/pdf/:id", examHandler.ExportPDF)
	}
}
