//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"knowledge-base-backend/internal/database/models"
	"knowledge-base-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the organization, membership,
// subscription and setting repositories against Postgres
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	orgs          *OrganizationRepository
	memberships   *MembershipRepository
	subscriptions *SubscriptionRepository
	settings      *AppSettingRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	suite.orgs = NewOrganizationRepository(db)
	suite.memberships = NewMembershipRepository(db)
	suite.subscriptions = NewSubscriptionRepository(db)
	suite.settings = NewAppSettingRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *OrganizationRepositoryTestSuite) createOrg(owner string) *models.Organization {
	org := suite.factories.Organization.Create()
	membership := suite.factories.Membership.WithRole(uuid.Nil, owner, models.MemberRoleOwner)
	sub := suite.factories.Subscription.Create(uuid.Nil)
	suite.Require().NoError(suite.orgs.CreateWithOwner(suite.ctx, org, membership, sub))
	return org
}

// TestCreateWithOwner tests that the organization, owner and subscription are stored together
func (suite *OrganizationRepositoryTestSuite) TestCreateWithOwner() {
	org := suite.createOrg("alice")

	suite.NotEqual(uuid.Nil, org.ID)

	membership, err := suite.memberships.GetByUserAndOrganization(suite.ctx, "alice", org.ID)
	suite.NoError(err)
	suite.Equal(models.MemberRoleOwner, membership.Role)

	sub, err := suite.subscriptions.GetByOrganizationID(suite.ctx, org.ID)
	suite.NoError(err)
	suite.Equal(models.TierFree, sub.Tier)
	suite.Equal(models.SubscriptionStatusActive, sub.Status)
}

// TestCreateWithOwnerDuplicateNameRollsBack tests that nothing is left behind on a name clash
func (suite *OrganizationRepositoryTestSuite) TestCreateWithOwnerDuplicateNameRollsBack() {
	first := suite.factories.Organization.WithName("acme")
	suite.Require().NoError(suite.orgs.CreateWithOwner(suite.ctx, first,
		suite.factories.Membership.WithRole(uuid.Nil, "alice", models.MemberRoleOwner),
		suite.factories.Subscription.Create(uuid.Nil)))

	second := suite.factories.Organization.WithName("acme")
	err := suite.orgs.CreateWithOwner(suite.ctx, second,
		suite.factories.Membership.WithRole(uuid.Nil, "bob", models.MemberRoleOwner),
		suite.factories.Subscription.Create(uuid.Nil))
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")

	memberships, err := suite.memberships.ListByUser(suite.ctx, "bob")
	suite.NoError(err)
	suite.Empty(memberships)
}

// TestGetByID tests retrieving an organization by ID
func (suite *OrganizationRepositoryTestSuite) TestGetByID() {
	org := suite.createOrg("alice")

	retrieved, err := suite.orgs.GetByID(suite.ctx, org.ID)

	suite.NoError(err)
	suite.Equal(org.Name, retrieved.Name)

	_, err = suite.orgs.GetByID(suite.ctx, uuid.New())
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByName tests retrieving an organization by name
func (suite *OrganizationRepositoryTestSuite) TestGetByName() {
	org := suite.createOrg("alice")

	retrieved, err := suite.orgs.GetByName(suite.ctx, org.Name)

	suite.NoError(err)
	suite.Equal(org.ID, retrieved.ID)
}

// TestMembershipUniquePerUserAndOrganization tests the composite unique index
func (suite *OrganizationRepositoryTestSuite) TestMembershipUniquePerUserAndOrganization() {
	org := suite.createOrg("alice")

	err := suite.memberships.Create(suite.ctx, suite.factories.Membership.WithRole(org.ID, "bob", models.MemberRoleMember))
	suite.NoError(err)

	err = suite.memberships.Create(suite.ctx, suite.factories.Membership.WithRole(org.ID, "bob", models.MemberRoleAdmin))
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestListByUser tests that memberships come back with their organization
func (suite *OrganizationRepositoryTestSuite) TestListByUser() {
	first := suite.createOrg("alice")
	second := suite.createOrg("carol")
	suite.Require().NoError(suite.memberships.Create(suite.ctx, suite.factories.Membership.WithRole(second.ID, "alice", models.MemberRoleMember)))

	memberships, err := suite.memberships.ListByUser(suite.ctx, "alice")

	suite.NoError(err)
	suite.Len(memberships, 2)
	suite.Equal(first.ID, memberships[0].OrganizationID)
	suite.Equal(first.Name, memberships[0].Organization.Name)
	suite.Equal(models.MemberRoleMember, memberships[1].Role)
}

// TestSubscriptionUpsert tests that billing writes replace the tier in place
func (suite *OrganizationRepositoryTestSuite) TestSubscriptionUpsert() {
	org := suite.createOrg("alice")

	err := suite.subscriptions.Upsert(suite.ctx, suite.factories.Subscription.WithTier(org.ID, models.TierPremium, models.SubscriptionStatusActive))
	suite.NoError(err)

	sub, err := suite.subscriptions.GetByOrganizationID(suite.ctx, org.ID)
	suite.NoError(err)
	suite.Equal(models.TierPremium, sub.Tier)

	_, err = suite.subscriptions.GetByOrganizationID(suite.ctx, uuid.New())
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestAppSettings tests get and overwrite of a setting
func (suite *OrganizationRepositoryTestSuite) TestAppSettings() {
	_, err := suite.settings.Get(suite.ctx, models.SettingAIProviderAPIKey)
	suite.Equal(gorm.ErrRecordNotFound, err)

	suite.NoError(suite.settings.Set(suite.ctx, models.SettingAIProviderAPIKey, "first"))
	suite.NoError(suite.settings.Set(suite.ctx, models.SettingAIProviderAPIKey, "second"))

	setting, err := suite.settings.Get(suite.ctx, models.SettingAIProviderAPIKey)
	suite.NoError(err)
	suite.Equal("second", setting.Value)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
