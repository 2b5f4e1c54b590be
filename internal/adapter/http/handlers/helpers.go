package handlers

import (
	"net/http"
	"orcamento_arq/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderTenantID = "X-Tenant-ID"
	HeaderUserID   = "X-User-ID"
)

var (
	errMissingTenant = pkg.NewDomainErrorSimple("MISSING_TENANT", "X-Tenant-ID header is required", http.StatusBadRequest)
	errMissingUser   = pkg.NewDomainErrorSimple("MISSING_USER", "X-User-ID header is required", http.StatusBadRequest)
	errInternal      = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// tenantFromHeader writes a 400 and returns false when the tenant header is absent.
func tenantFromHeader(c *gin.Context) (string, bool) {
	tenantID := strings.TrimSpace(c.GetHeader(HeaderTenantID))
	if tenantID == "" {
		writeError(c, errMissingTenant)
		return "", false
	}
	return tenantID, true
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
