package handlers

import (
	"net/http"

	"knowledge-base-backend/internal/database/models"
	"knowledge-base-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FeatureHandler exposes the organization's capabilities
type FeatureHandler struct {
	gate   service.FeatureGateInterface
	access *AccessControl
}

// NewFeatureHandler creates a new feature handler
func NewFeatureHandler(gate service.FeatureGateInterface, access *AccessControl) *FeatureHandler {
	return &FeatureHandler{gate: gate, access: access}
}

// GetCapabilities handles GET /api/v1/organizations/:orgId/features
// @Summary Capabilities enabled for the organization
// @Tags features
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Success 200 {object} service.CapabilitiesResponse
// @Security BearerAuth
// @Router /organizations/{orgId}/features [get]
func (h *FeatureHandler) GetCapabilities(c *gin.Context) {
	orgID, _, ok := h.access.authorize(c, models.MemberRoleMember)
	if !ok {
		return
	}

	capabilities, err := h.gate.Capabilities(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err, "Failed to load capabilities")
		return
	}

	c.JSON(http.StatusOK, capabilities)
}
