package handlers

import (
	"log/slog"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/controle-exames/internal/domain/exam"
	"github.com/BruksfildServices01/controle-exames/internal/httperr"
	"github.com/BruksfildServices01/controle-exames/internal/httpresp"
	"github.com/BruksfildServices01/controle-exames/internal/middleware"
	ucExam "github.com/BruksfildServices01/controle-exames/internal/usecase/exam"
)

// ======================================================
// HANDLER
// ======================================================

type ExamHandler struct {
	listToday    *ucExam.ListToday
	listArchived *ucExam.ListArchived
	search       *ucExam.Search
	createExam   *ucExam.CreateExam
	updateStatus *ucExam.UpdateStatus
	exportExam   *ucExam.ExportExam
	logger       *slog.Logger
}

func NewExamHandler(
	listToday *ucExam.ListToday,
	listArchived *ucExam.ListArchived,
	search *ucExam.Search,
	createExam *ucExam.CreateExam,
	updateStatus *ucExam.UpdateStatus,
	exportExam *ucExam.ExportExam,
	logger *slog.Logger,
) *ExamHandler {
	return &ExamHandler{
		listToday:    listToday,
		listArchived: listArchived,
		search:       search,
		createExam:   createExam,
		updateStatus: updateStatus,
		exportExam:   exportExam,
		logger:       logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateExamRequest struct {
	Nome    string `form:"nome" binding:"required"`
	CPF     string `form:"cpf" binding:"required"`
	Exame   string `form:"exame" binding:"required"`
	Empresa string `form:"empresa"`
	Planta  string `form:"planta"`
	Data    string `form:"data"`
}

// ======================================================
// LISTINGS
// ======================================================

func (h *ExamHandler) Index(c *gin.Context) {
	exams, today, err := h.listToday.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Internal(c, h.logger, err)
		return
	}

	httpresp.OK(c, "index.html", "Hoje", gin.H{
		"Exames": exams,
		"Hoje":   today,
		"Termo":  "",
	})
}

func (h *ExamHandler) Archived(c *gin.Context) {
	date := c.Query("data")

	exams, err := h.listArchived.Execute(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		httperr.Internal(c, h.logger, err)
		return
	}

	httpresp.OK(c, "arquivados.html", "Arquivados", gin.H{
		"Exames":    exams,
		"DataBusca": date,
	})
}

// Search reads termo from the form body, or from the query string on GET.
func (h *ExamHandler) Search(c *gin.Context) {
	term := c.PostForm("termo")
	if term == "" {
		term = c.Query("termo")
	}

	exams, err := h.search.Execute(c.Request.Context(), middleware.UserID(c), term)
	if err != nil {
		httperr.Internal(c, h.logger, err)
		return
	}

	httpresp.OK(c, "index.html", "Pesquisa", gin.H{
		"Exames": exams,
		"Hoje":   h.listToday.Today(),
		"Termo":  term,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *ExamHandler) Create(c *gin.Context) {
	var req CreateExamRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.MsgMissingFields)
		return
	}

	_, err := h.createExam.Execute(c.Request.Context(), ucExam.CreateExamInput{
		UserID:  middleware.UserID(c),
		Nome:    req.Nome,
		CPF:     req.CPF,
		Exame:   req.Exame,
		Empresa: req.Empresa,
		Planta:  req.Planta,
		Data:    req.Data,
	})
	if httperr.IsBusiness(err, httperr.CodeMissingFields) {
		httperr.BadRequest(c, httperr.MsgMissingFields)
		return
	}
	if err != nil {
		httperr.Internal(c, h.logger, err)
		return
	}

	httpresp.Redirect(c, "/")
}

// ======================================================
// STATUS
// ======================================================

func (h *ExamHandler) UpdateStatus(c *gin.Context) {
	_, err := h.updateStatus.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("id"),
		domain.Status(c.Param("novo_status")),
	)
	if err != nil {
		httperr.Internal(c, h.logger, err)
		return
	}

	httpresp.Redirect(c, "/")
}

// ======================================================
// PDF
// ======================================================

func (h *ExamHandler) ExportPDF(c *gin.Context) {
	res, err := h.exportExam.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if httperr.IsBusiness(err, httperr.CodeExamNotFound) {
		httperr.NotFound(c, httperr.MsgExamNotFound)
		return
	}
	if err != nil {
		httperr.Internal(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": res.Filename,
	}))
	c.Data(http.StatusOK, "application/pdf", res.Content)
}
