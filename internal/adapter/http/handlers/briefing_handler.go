package handlers

import (
	"errors"
	"log"
	"net/http"
	request "orcamento_arq/internal/adapter/http/dto/request"
	response "orcamento_arq/internal/adapter/http/dto/response"
	"orcamento_arq/internal/usecase"
	"orcamento_arq/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBriefingPayload = pkg.NewDomainErrorSimple("INVALID_BRIEFING_INPUT", "Invalid briefing payload", http.StatusBadRequest)
)

// BriefingHandler handles briefing intake and lifecycle.

type BriefingHandler struct {
	usecase usecase.IBriefingUseCase
}

func NewBriefingHandler(uc usecase.IBriefingUseCase) *BriefingHandler {
	return &BriefingHandler{usecase: uc}
}

// CreateBriefing godoc
// @Summary      Create a briefing
// @Tags         briefings
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                          true  "Tenant ID"
// @Param        payload      body    request.CreateBriefingRequest  true  "Briefing"
// @Success      201  {object}  response.BriefingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /briefings [post]
func (h *BriefingHandler) CreateBriefing(c *gin.Context) {
	tenantID, ok := tenantFromHeader(c)
	if !ok {
		return
	}
	var payload request.CreateBriefingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBriefingPayload)
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(c, errInvalidBriefingPayload.WithDetails(map[string]any{"reason": err.Error()}))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), tenantID, payload.ResolveClientID(), payload.Answers, payload.ResolveStatus())
	if err != nil {
		log.Printf("[briefing][handler] create failed tenant_id=%s err=%v", tenantID, err)
		writeError(c, mapBriefingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBriefing(created))
}

// GetBriefing godoc
// @Summary      Get a briefing
// @Tags         briefings
// @Produce      json
// @Param        id           path    string  true  "Briefing ID"
// @Param        X-Tenant-ID  header  string  true  "Tenant ID"
// @Success      200  {object}  response.BriefingResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /briefings/{id} [get]
func (h *BriefingHandler) GetBriefing(c *gin.Context) {
	tenantID, ok := tenantFromHeader(c)
	if !ok {
		return
	}
	b, err := h.usecase.GetByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		writeError(c, mapBriefingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBriefing(b))
}

// UpdateBriefingStatus godoc
// @Summary      Change the status of a briefing
// @Tags         briefings
// @Accept       json
// @Produce      json
// @Param        id           path    string                                true  "Briefing ID"
// @Param        X-Tenant-ID  header  string                                true  "Tenant ID"
// @Param        payload      body    request.UpdateBriefingStatusRequest  true  "New status"
// @Success      200  {object}  response.BriefingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /briefings/{id}/status [patch]
func (h *BriefingHandler) UpdateBriefingStatus(c *gin.Context) {
	tenantID, ok := tenantFromHeader(c)
	if !ok {
		return
	}
	var payload request.UpdateBriefingStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBriefingPayload)
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), tenantID, c.Param("id"), payload.ResolveStatus())
	if err != nil {
		log.Printf("[briefing][handler] status update failed briefing_id=%s err=%v", c.Param("id"), err)
		writeError(c, mapBriefingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBriefing(updated))
}

// ListAvailableBriefings godoc
// @Summary      List briefings a budget can be generated for
// @Tags         briefings
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Tenant ID"
// @Success      200  {object}  response.BriefingListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /briefings/available [get]
func (h *BriefingHandler) ListAvailableBriefings(c *gin.Context) {
	tenantID, ok := tenantFromHeader(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListAvailable(c.Request.Context(), tenantID)
	if err != nil {
		writeError(c, mapBriefingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBriefings(items))
}

func mapBriefingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBriefing), errors.Is(err, usecase.ErrInvalidBriefingID), errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBriefingNotFound):
		return pkg.NewDomainErrorSimple("BRIEFING_NOT_FOUND", "Briefing not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Storage is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
