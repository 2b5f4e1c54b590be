package handlers

import (
	"errors"
	"log"
	"net/http"
	request "orcamento_arq/internal/adapter/http/dto/request"
	response "orcamento_arq/internal/adapter/http/dto/response"
	"orcamento_arq/internal/usecase"
	"orcamento_arq/internal/usecase/budgeting"
	"orcamento_arq/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
)

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// GetPricing godoc
// @Summary      Effective pricing table of the tenant
// @Tags         pricing
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Tenant ID"
// @Success      200  {object}  response.PricingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /pricing [get]
func (h *PricingHandler) GetPricing(c *gin.Context) {
	tenantID, ok := tenantFromHeader(c)
	if !ok {
		return
	}
	cfg, err := h.usecase.GetEffective(c.Request.Context(), tenantID)
	if err != nil {
		log.Printf("[pricing][handler] get failed tenant_id=%s err=%v", tenantID, err)
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPricingConfig(cfg))
}

// PutPricing godoc
// @Summary      Save the pricing override of the tenant
// @Description  Entries omitted from the payload fall back to the system table.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                          true  "Tenant ID"
// @Param        payload      body    request.PricingOverrideRequest  true  "Override"
// @Success      200  {object}  response.PricingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /pricing [put]
func (h *PricingHandler) PutPricing(c *gin.Context) {
	tenantID, ok := tenantFromHeader(c)
	if !ok {
		return
	}
	var payload request.PricingOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPricingPayload)
		return
	}
	cfg, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidPricingPayload.WithDetails(map[string]any{"reason": err.Error()}))
		return
	}

	saved, err := h.usecase.SaveOverride(c.Request.Context(), tenantID, cfg)
	if err != nil {
		log.Printf("[pricing][handler] save failed tenant_id=%s err=%v", tenantID, err)
		writeError(c, mapPricingError(err))
		return
	}
	log.Printf("[pricing][handler] override saved tenant_id=%s", tenantID)
	c.JSON(http.StatusOK, response.FromPricingConfig(saved))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPricingConfig):
		return errInvalidPricingPayload.WithDetails(map[string]any{"reason": err.Error()})
	case errors.Is(err, budgeting.ErrConfiguration):
		return pkg.NewDomainError("PRICING_NOT_CONFIGURED", "Pricing configuration is incomplete", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Storage is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
