package handlers

import (
	"net/http"

	"knowledge-base-backend/internal/auth"
	"knowledge-base-backend/internal/database/models"
	"knowledge-base-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations and memberships
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
	access  *AccessControl
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface, access *AccessControl) *OrganizationHandler {
	return &OrganizationHandler{service: service, access: access}
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List the caller's organizations
// @Tags organizations
// @Produce json
// @Success 200 {array} service.MembershipResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	memberships, err := h.service.ListMemberships(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list organizations")
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create an organization owned by the caller
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.MembershipResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	userID, _ := auth.GetUserID(c)
	membership, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// AddMember handles POST /api/v1/organizations/:orgId/members
// @Summary Add a user to the organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} service.MembershipResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgId}/members [post]
func (h *OrganizationHandler) AddMember(c *gin.Context) {
	orgID, actor, ok := h.access.authorize(c, models.MemberRoleAdmin)
	if !ok {
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	membership, err := h.service.AddMember(c.Request.Context(), orgID, actor, &req)
	if err != nil {
		respondError(c, err, "Failed to add member")
		return
	}

	c.JSON(http.StatusCreated, membership)
}
