package handlers

import (
	"errors"
	"log"
	"net/http"
	response "orcamento_arq/internal/adapter/http/dto/response"
	"orcamento_arq/internal/usecase"
	"orcamento_arq/internal/usecase/budgeting"
	"orcamento_arq/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

// BudgetHandler exposes automated budget generation and budget reads.

type BudgetHandler struct {
	usecase usecase.IBudgetGenerationUseCase
}

func NewBudgetHandler(uc usecase.IBudgetGenerationUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// GenerateBudget godoc
// @Summary      Generate a budget for a briefing
// @Description  Runs analysis, calculation and validation over the briefing and persists a draft budget. At most one live budget exists per briefing.
// @Tags         budgets
// @Produce      json
// @Param        id           path    string  true  "Briefing ID"
// @Param        X-Tenant-ID  header  string  true  "Tenant ID"
// @Param        X-User-ID    header  string  true  "Responsible user ID"
// @Success      201  {object}  response.BudgetGenerationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /briefings/{id}/budget [post]
func (h *BudgetHandler) GenerateBudget(c *gin.Context) {
	tenantID, ok := tenantFromHeader(c)
	if !ok {
		return
	}
	userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
	if userID == "" {
		writeError(c, errMissingUser)
		return
	}
	briefingID := c.Param("id")
	log.Printf("[budget][handler] generate start tenant_id=%s briefing_id=%s", tenantID, briefingID)

	res, err := h.usecase.Generate(c.Request.Context(), briefingID, tenantID, userID)
	if err != nil {
		log.Printf("[budget][handler] generate failed briefing_id=%s err=%v", briefingID, err)
		writeError(c, mapBudgetError(err))
		return
	}
	log.Printf("[budget][handler] generate success briefing_id=%s budget_id=%s code=%s", briefingID, res.Budget.ID, res.Budget.Code)

	c.JSON(http.StatusCreated, response.FromBudgetResult(res))
}

// GetBudget godoc
// @Summary      Get a budget
// @Tags         budgets
// @Produce      json
// @Param        id           path    string  true  "Budget ID"
// @Param        X-Tenant-ID  header  string  true  "Tenant ID"
// @Success      200  {object}  response.BudgetResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	tenantID, ok := tenantFromHeader(c)
	if !ok {
		return
	}

	budget, err := h.usecase.GetByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func mapBudgetError(err error) *pkg.AppError {
	var conflict *usecase.BudgetConflictError
	switch {
	case errors.As(err, &conflict):
		appErr := pkg.NewDomainErrorSimple("BUDGET_ALREADY_EXISTS", "A budget already exists for this briefing", http.StatusConflict)
		if conflict.BudgetID != "" {
			appErr = appErr.WithDetails(map[string]any{"budget_id": conflict.BudgetID, "code": conflict.Code})
		}
		return appErr
	case errors.Is(err, usecase.ErrBudgetAlreadyExists):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_EXISTS", "A budget already exists for this briefing", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidBriefingID), errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBriefingNotFound):
		return pkg.NewDomainErrorSimple("BRIEFING_NOT_FOUND", "Briefing not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidBriefingStatus):
		return pkg.NewDomainErrorSimple("INVALID_BRIEFING_STATUS", "Briefing status does not allow budget generation", http.StatusUnprocessableEntity)
	case errors.Is(err, budgeting.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_BRIEFING_DATA", "Briefing data cannot be priced", http.StatusUnprocessableEntity)
	case errors.Is(err, budgeting.ErrConfiguration):
		return pkg.NewDomainError("PRICING_NOT_CONFIGURED", "Pricing configuration is incomplete", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Storage is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
