package http

import (
	"errors"
	"net/http"

	"treats/internal/core/application/usecases/commands"
	"treats/internal/core/application/usecases/queries"
	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the order-form API over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDraftHandler commands.CreateDraftCommandHandler
	updateDraftHandler commands.UpdateDraftCommandHandler
	submitDraftHandler commands.SubmitDraftCommandHandler
	deleteDraftHandler commands.DeleteDraftCommandHandler

	// Query handlers
	listDraftsHandler    queries.ListDraftsQueryHandler
	getDraftHandler      queries.GetDraftQueryHandler
	getDraftQuoteHandler queries.GetDraftQuoteQueryHandler
	getCatalogHandler    queries.GetCatalogQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDraftHandler commands.CreateDraftCommandHandler,
	updateDraftHandler commands.UpdateDraftCommandHandler,
	submitDraftHandler commands.SubmitDraftCommandHandler,
	deleteDraftHandler commands.DeleteDraftCommandHandler,
	listDraftsHandler queries.ListDraftsQueryHandler,
	getDraftHandler queries.GetDraftQueryHandler,
	getDraftQuoteHandler queries.GetDraftQuoteQueryHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
) *Server {
	return &Server{
		createDraftHandler:   createDraftHandler,
		updateDraftHandler:   updateDraftHandler,
		submitDraftHandler:   submitDraftHandler,
		deleteDraftHandler:   deleteDraftHandler,
		listDraftsHandler:    listDraftsHandler,
		getDraftHandler:      getDraftHandler,
		getDraftQuoteHandler: getDraftQuoteHandler,
		getCatalogHandler:    getCatalogHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/drafts", s.CreateDraft)
	api.GET("/drafts", s.ListDrafts)
	api.GET("/drafts/:draftId", s.GetDraft)
	api.PATCH("/drafts/:draftId", s.UpdateDraft)
	api.DELETE("/drafts/:draftId", s.DeleteDraft)
	api.POST("/drafts/:draftId/submit", s.SubmitDraft)
	api.GET("/drafts/:draftId/quote", s.GetDraftQuote)
	api.GET("/catalog", s.GetCatalog)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateDraft handles POST /api/v1/drafts - starts a new draft from the
// submitted form snapshot and returns its generated id.
func (s *Server) CreateDraft(ctx echo.Context) error {
	var request FormDataRequest
	if err := ctx.Bind(&request); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	form := request.toDomain()
	draftID := kernel.NewUUID()

	cmd, err := commands.NewCreateDraftCommand(draftID, form, form.CurrentStep)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid draft data: "+err.Error())
	}

	if handleErr := s.createDraftHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to create draft")
	}

	return ctx.JSON(http.StatusCreated, CreateDraftResponse{ID: draftID.String()})
}

// ListDrafts handles GET /api/v1/drafts - retrieves every draft, newest first.
func (s *Server) ListDrafts(ctx echo.Context) error {
	query := queries.NewListDraftsQuery()

	rows, err := s.listDraftsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve drafts")
	}

	response := make([]DraftSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = draftSummaryFromQuery(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDraft handles GET /api/v1/drafts/:draftId - retrieves one draft in full.
func (s *Server) GetDraft(ctx echo.Context) error {
	draftID, err := parseDraftID(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid draft id")
	}

	query, err := queries.NewGetDraftQuery(draftID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid draft id")
	}

	row, err := s.getDraftHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return jsonError(ctx, http.StatusNotFound, "Draft not found")
		}
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve draft")
	}

	return ctx.JSON(http.StatusOK, draftFromQuery(row))
}

// UpdateDraft handles PATCH /api/v1/drafts/:draftId - applies a partial update.
// Omitted parts are left untouched; an empty orderNumber detaches the order.
func (s *Server) UpdateDraft(ctx echo.Context) error {
	draftID, err := parseDraftID(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid draft id")
	}

	var request UpdateDraftRequest
	if err := ctx.Bind(&request); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	var form *draft.FormData
	if request.Form != nil {
		domainForm := request.Form.toDomain()
		form = &domainForm
	}

	cmd, err := commands.NewUpdateDraftCommand(draftID, form, request.CurrentStep, request.OrderNumber)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid draft data: "+err.Error())
	}

	if handleErr := s.updateDraftHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return jsonError(ctx, http.StatusNotFound, "Draft not found")
		case errors.Is(handleErr, errs.ErrValueIsRequired):
			return jsonError(ctx, http.StatusUnprocessableEntity, handleErr.Error())
		default:
			return jsonError(ctx, http.StatusInternalServerError, "Failed to update draft")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDraft handles DELETE /api/v1/drafts/:draftId - removes a draft.
func (s *Server) DeleteDraft(ctx echo.Context) error {
	draftID, err := parseDraftID(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid draft id")
	}

	cmd, err := commands.NewDeleteDraftCommand(draftID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid draft id")
	}

	if handleErr := s.deleteDraftHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return jsonError(ctx, http.StatusNotFound, "Draft not found")
		}
		return jsonError(ctx, http.StatusInternalServerError, "Failed to delete draft")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitDraft handles POST /api/v1/drafts/:draftId/submit - turns a draft into
// a submitted order. Submitting twice is a conflict.
func (s *Server) SubmitDraft(ctx echo.Context) error {
	draftID, err := parseDraftID(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid draft id")
	}

	cmd, err := commands.NewSubmitDraftCommand(draftID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid draft id")
	}

	result, err := s.submitDraftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return jsonError(ctx, http.StatusNotFound, "Draft not found")
		case errors.Is(err, errs.ErrValueIsRequired):
			return jsonError(ctx, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, errs.ErrValueIsInvalid):
			return jsonError(ctx, http.StatusConflict, err.Error())
		default:
			return jsonError(ctx, http.StatusInternalServerError, "Failed to submit draft")
		}
	}

	return ctx.JSON(http.StatusOK, SubmitDraftResponse{
		OrderNumber: result.OrderNumber,
		SubmittedAt: result.SubmittedAt,
	})
}

// GetDraftQuote handles GET /api/v1/drafts/:draftId/quote - prices the draft's
// current selections.
func (s *Server) GetDraftQuote(ctx echo.Context) error {
	draftID, err := parseDraftID(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid draft id")
	}

	query, err := queries.NewGetDraftQuoteQuery(draftID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid draft id")
	}

	quote, err := s.getDraftQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return jsonError(ctx, http.StatusNotFound, "Draft not found")
		}
		return jsonError(ctx, http.StatusInternalServerError, "Failed to price draft")
	}

	return ctx.JSON(http.StatusOK, QuoteResponse{
		PackagePrice: quote.PackagePrice,
		DesignsPrice: quote.DesignsPrice,
		Total:        quote.Total,
		Deposit:      quote.Deposit,
		Balance:      quote.Balance,
	})
}

// GetCatalog handles GET /api/v1/catalog - retrieves the reference catalog the
// form renders.
func (s *Server) GetCatalog(ctx echo.Context) error {
	query := queries.NewGetCatalogQuery()

	response, err := s.getCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve catalog")
	}

	return ctx.JSON(http.StatusOK, catalogFromQuery(response))
}

func parseDraftID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("draftId"))
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
