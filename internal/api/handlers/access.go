package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"knowledge-base-backend/internal/auth"
	"knowledge-base-backend/internal/database/models"
	apperrors "knowledge-base-backend/internal/errors"
	"knowledge-base-backend/internal/logger"
	"knowledge-base-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// CapabilityErrorResponse is returned with 402 when a capability is disabled
type CapabilityErrorResponse struct {
	Error      string `json:"error"`
	Capability string `json:"capability"`
	Reason     string `json:"reason"`
}

// AccessControl runs the tenancy guard and feature gate in front of handlers
type AccessControl struct {
	guard service.TenancyGuardInterface
	gate  service.FeatureGateInterface
}

// NewAccessControl creates the access checks shared by organization-scoped handlers
func NewAccessControl(guard service.TenancyGuardInterface, gate service.FeatureGateInterface) *AccessControl {
	return &AccessControl{guard: guard, gate: gate}
}

// authorize resolves the organization from the path, checks the caller's role and then
// every capability. On failure it writes the response and returns ok=false.
func (a *AccessControl) authorize(c *gin.Context, minimum models.MemberRole, capabilities ...service.Capability) (uuid.UUID, *models.Membership, bool) {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid organization ID: invalid UUID format"})
		return uuid.Nil, nil, false
	}

	userID, _ := auth.GetUserID(c)
	membership, err := a.guard.Authorize(c.Request.Context(), userID, orgID, minimum)
	if err != nil {
		respondError(c, err, "Failed to authorize request")
		return uuid.Nil, nil, false
	}

	if !a.require(c, orgID, capabilities...) {
		return uuid.Nil, nil, false
	}
	return orgID, membership, true
}

// require checks capabilities for handlers that need the request body first
func (a *AccessControl) require(c *gin.Context, orgID uuid.UUID, capabilities ...service.Capability) bool {
	for _, capability := range capabilities {
		if err := a.gate.Require(c.Request.Context(), orgID, capability); err != nil {
			respondError(c, err, "Failed to check capability")
			return false
		}
	}
	return true
}

// respondError maps the error taxonomy to HTTP status codes
func respondError(c *gin.Context, err error, fallback string) {
	var capErr *apperrors.CapabilityDisabledError
	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.As(err, &capErr):
		c.JSON(http.StatusPaymentRequired, CapabilityErrorResponse{
			Error:      err.Error(),
			Capability: capErr.Capability,
			Reason:     capErr.Reason,
		})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsRemoteUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback, Details: err.Error()})
	}
}

func parseIDParam(c *gin.Context, name, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + entity + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads page and page_size; the services clamp out-of-range values
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
