package handlers

import (
	"errors"
	"net/http"
	"testing"

	"knowledge-base-backend/internal/database/models"
	apperrors "knowledge-base-backend/internal/errors"
	"knowledge-base-backend/internal/mocks"
	"knowledge-base-backend/internal/service"
	"knowledge-base-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOrganizationServiceInterface
	mockGuard   *mocks.MockTenancyGuardInterface
	mockGate    *mocks.MockFeatureGateInterface
	handler     *OrganizationHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.mockGuard = mocks.NewMockTenancyGuardInterface(suite.ctrl)
	suite.mockGate = mocks.NewMockFeatureGateInterface(suite.ctrl)
	suite.handler = NewOrganizationHandler(suite.mockService, NewAccessControl(suite.mockGuard, suite.mockGate))

	suite.httpSuite = testutils.SetupHTTPTest(withUser(testUserID))
	suite.httpSuite.Router.GET("/api/v1/organizations", suite.handler.ListOrganizations)
	suite.httpSuite.Router.POST("/api/v1/organizations", suite.handler.CreateOrganization)
	suite.httpSuite.Router.POST("/api/v1/organizations/:orgId/members", suite.handler.AddMember)
}

func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	orgID := uuid.New()
	suite.mockService.EXPECT().ListMemberships(gomock.Any(), testUserID).Return([]service.MembershipResponse{
		{UserID: testUserID, OrganizationID: orgID, Role: models.MemberRoleOwner},
	}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations", nil)

	var resp []service.MembershipResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Require().Len(resp, 1)
	suite.Equal(orgID, resp[0].OrganizationID)
}

func (suite *OrganizationHandlerTestSuite) TestListOrganizations_ServiceError() {
	suite.mockService.EXPECT().ListMemberships(gomock.Any(), testUserID).Return(nil, errors.New("connection reset"))

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to list organizations")
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	req := &service.CreateOrganizationRequest{Name: "acme", DisplayName: "Acme"}
	suite.mockService.EXPECT().Create(gomock.Any(), testUserID, req).
		Return(&service.MembershipResponse{UserID: testUserID, Role: models.MemberRoleOwner}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations", req)

	var resp service.MembershipResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	suite.Equal(models.MemberRoleOwner, resp.Role)
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganization_NameTaken() {
	suite.mockService.EXPECT().Create(gomock.Any(), testUserID, gomock.Any()).Return(nil, apperrors.ErrOrganizationExists)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations", map[string]string{"name": "acme", "display_name": "Acme"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "organization already exists")
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganization_InvalidBody() {
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations", "not an object")

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid request body")
}

func (suite *OrganizationHandlerTestSuite) TestAddMember() {
	orgID := uuid.New()
	actor := &models.Membership{UserID: testUserID, OrganizationID: orgID, Role: models.MemberRoleAdmin}
	suite.mockGuard.EXPECT().Authorize(gomock.Any(), testUserID, orgID, models.MemberRoleAdmin).Return(actor, nil)
	suite.mockService.EXPECT().AddMember(gomock.Any(), orgID, actor, &service.AddMemberRequest{UserID: "user-2", Role: models.MemberRoleMember}).
		Return(&service.MembershipResponse{UserID: "user-2", OrganizationID: orgID, Role: models.MemberRoleMember}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations/"+orgID.String()+"/members",
		map[string]string{"user_id": "user-2", "role": "member"})

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *OrganizationHandlerTestSuite) TestAddMember_AdminCannotGrantOwner() {
	orgID := uuid.New()
	actor := &models.Membership{UserID: testUserID, OrganizationID: orgID, Role: models.MemberRoleAdmin}
	suite.mockGuard.EXPECT().Authorize(gomock.Any(), testUserID, orgID, models.MemberRoleAdmin).Return(actor, nil)
	suite.mockService.EXPECT().AddMember(gomock.Any(), orgID, actor, gomock.Any()).Return(nil, apperrors.ErrOwnerRoleRequired)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations/"+orgID.String()+"/members",
		map[string]string{"user_id": "user-2", "role": "owner"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "only an owner")
}

func (suite *OrganizationHandlerTestSuite) TestAddMember_MemberRefused() {
	orgID := uuid.New()
	suite.mockGuard.EXPECT().Authorize(gomock.Any(), testUserID, orgID, models.MemberRoleAdmin).Return(nil, apperrors.ErrInsufficientRole)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations/"+orgID.String()+"/members",
		map[string]string{"user_id": "user-2", "role": "member"})

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}

func TestListOrganizations_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	orgs := mocks.NewMockOrganizationServiceInterface(ctrl)
	handler := NewOrganizationHandler(orgs, NewAccessControl(mocks.NewMockTenancyGuardInterface(ctrl), mocks.NewMockFeatureGateInterface(ctrl)))

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/v1/organizations", handler.ListOrganizations)
	orgs.EXPECT().ListMemberships(gomock.Any(), "").Return(nil, apperrors.ErrMissingIdentity)

	w := httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations", nil)

	testutils.AssertErrorResponse(t, w, http.StatusUnauthorized, "authentication required")
}
