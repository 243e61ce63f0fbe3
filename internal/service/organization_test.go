package service_test

import (
	"context"
	"errors"
	"testing"

	"knowledge-base-backend/internal/database/models"
	apperrors "knowledge-base-backend/internal/errors"
	"knowledge-base-backend/internal/mocks"
	"knowledge-base-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockOrgs        *mocks.MockOrganizationRepositoryInterface
	mockMemberships *mocks.MockMembershipRepositoryInterface
	orgService      *service.OrganizationService
	ctx             context.Context
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMemberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.orgService = service.NewOrganizationService(suite.mockOrgs, suite.mockMemberships, validator.New())
	suite.ctx = context.Background()
}

func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) TestCreate_Success() {
	req := &service.CreateOrganizationRequest{Name: "  acme ", DisplayName: "Acme Inc"}
	orgID := uuid.New()

	suite.mockOrgs.EXPECT().GetByName(gomock.Any(), "acme").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgs.EXPECT().CreateWithOwner(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, org *models.Organization, owner *models.Membership, sub *models.Subscription) error {
			suite.Equal("acme", org.Name)
			suite.Equal("user-1", owner.UserID)
			suite.Equal(models.MemberRoleOwner, owner.Role)
			suite.Equal(models.TierFree, sub.Tier)
			suite.Equal(models.SubscriptionStatusActive, sub.Status)
			org.ID = orgID
			owner.OrganizationID = orgID
			return nil
		})

	resp, err := suite.orgService.Create(suite.ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Equal(models.MemberRoleOwner, resp.Role)
	suite.Equal(orgID, resp.OrganizationID)
	suite.Require().NotNil(resp.Organization)
	suite.Equal("Acme Inc", resp.Organization.DisplayName)
}

func (suite *OrganizationServiceTestSuite) TestCreate_NameTaken() {
	suite.mockOrgs.EXPECT().GetByName(gomock.Any(), "acme").Return(&models.Organization{Name: "acme"}, nil)

	_, err := suite.orgService.Create(suite.ctx, "user-1", &service.CreateOrganizationRequest{Name: "acme", DisplayName: "Acme"})

	suite.ErrorIs(err, apperrors.ErrOrganizationExists)
}

func (suite *OrganizationServiceTestSuite) TestCreate_ValidationError() {
	_, err := suite.orgService.Create(suite.ctx, "user-1", &service.CreateOrganizationRequest{Name: "   ", DisplayName: "Acme"})

	suite.True(apperrors.IsValidation(err))
}

func (suite *OrganizationServiceTestSuite) TestCreate_MissingIdentity() {
	_, err := suite.orgService.Create(suite.ctx, "", &service.CreateOrganizationRequest{Name: "acme", DisplayName: "Acme"})

	suite.ErrorIs(err, apperrors.ErrMissingIdentity)
}

func (suite *OrganizationServiceTestSuite) TestAddMember_Success() {
	orgID := uuid.New()
	actor := &models.Membership{UserID: "admin-1", OrganizationID: orgID, Role: models.MemberRoleAdmin}

	suite.mockMemberships.EXPECT().GetByUserAndOrganization(gomock.Any(), "user-2", orgID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockMemberships.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Membership) error {
			suite.Equal(orgID, m.OrganizationID)
			suite.Equal(models.MemberRoleMember, m.Role)
			return nil
		})

	resp, err := suite.orgService.AddMember(suite.ctx, orgID, actor, &service.AddMemberRequest{UserID: "user-2", Role: models.MemberRoleMember})

	suite.Require().NoError(err)
	suite.Equal("user-2", resp.UserID)
	suite.Nil(resp.Organization)
}

func (suite *OrganizationServiceTestSuite) TestAddMember_OnlyOwnerGrantsOwner() {
	orgID := uuid.New()
	actor := &models.Membership{UserID: "admin-1", OrganizationID: orgID, Role: models.MemberRoleAdmin}

	_, err := suite.orgService.AddMember(suite.ctx, orgID, actor, &service.AddMemberRequest{UserID: "user-2", Role: models.MemberRoleOwner})

	suite.ErrorIs(err, apperrors.ErrOwnerRoleRequired)
}

func (suite *OrganizationServiceTestSuite) TestAddMember_AlreadyMember() {
	orgID := uuid.New()
	actor := &models.Membership{UserID: "owner-1", OrganizationID: orgID, Role: models.MemberRoleOwner}
	suite.mockMemberships.EXPECT().GetByUserAndOrganization(gomock.Any(), "user-2", orgID).
		Return(&models.Membership{UserID: "user-2"}, nil)

	_, err := suite.orgService.AddMember(suite.ctx, orgID, actor, &service.AddMemberRequest{UserID: "user-2", Role: models.MemberRoleAdmin})

	suite.ErrorIs(err, apperrors.ErrMembershipExists)
}

func (suite *OrganizationServiceTestSuite) TestAddMember_InvalidRole() {
	actor := &models.Membership{Role: models.MemberRoleOwner}

	_, err := suite.orgService.AddMember(suite.ctx, uuid.New(), actor, &service.AddMemberRequest{UserID: "user-2", Role: "guest"})

	suite.True(apperrors.IsValidation(err))
}

func (suite *OrganizationServiceTestSuite) TestListMemberships() {
	org := models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "acme", DisplayName: "Acme"}
	suite.mockMemberships.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]models.Membership{
		{UserID: "user-1", OrganizationID: org.ID, Role: models.MemberRoleAdmin, Organization: org},
	}, nil)

	resp, err := suite.orgService.ListMemberships(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.Equal("acme", resp[0].Organization.Name)
}

func (suite *OrganizationServiceTestSuite) TestListMemberships_RepositoryError() {
	suite.mockMemberships.EXPECT().ListByUser(gomock.Any(), "user-1").Return(nil, errors.New("boom"))

	_, err := suite.orgService.ListMemberships(suite.ctx, "user-1")

	suite.Error(err)
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
