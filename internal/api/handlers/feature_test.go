package handlers

import (
	"errors"
	"net/http"
	"testing"

	"knowledge-base-backend/internal/database/models"
	"knowledge-base-backend/internal/mocks"
	"knowledge-base-backend/internal/service"
	"knowledge-base-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetCapabilities(t *testing.T) {
	orgID := uuid.New()
	url := "/api/v1/organizations/" + orgID.String() + "/features"

	tests := []struct {
		name       string
		setup      func(guard *mocks.MockTenancyGuardInterface, gate *mocks.MockFeatureGateInterface)
		wantStatus int
	}{
		{
			name: "member sees capabilities",
			setup: func(guard *mocks.MockTenancyGuardInterface, gate *mocks.MockFeatureGateInterface) {
				guard.EXPECT().Authorize(gomock.Any(), testUserID, orgID, models.MemberRoleMember).
					Return(&models.Membership{Role: models.MemberRoleMember}, nil)
				gate.EXPECT().Capabilities(gomock.Any(), orgID).Return(&service.CapabilitiesResponse{
					Tier: models.TierPro,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "subscription lookup fails",
			setup: func(guard *mocks.MockTenancyGuardInterface, gate *mocks.MockFeatureGateInterface) {
				guard.EXPECT().Authorize(gomock.Any(), testUserID, orgID, models.MemberRoleMember).
					Return(&models.Membership{Role: models.MemberRoleMember}, nil)
				gate.EXPECT().Capabilities(gomock.Any(), orgID).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			guard := mocks.NewMockTenancyGuardInterface(ctrl)
			gate := mocks.NewMockFeatureGateInterface(ctrl)
			tt.setup(guard, gate)

			handler := NewFeatureHandler(gate, NewAccessControl(guard, gate))
			httpSuite := testutils.SetupHTTPTest(withUser(testUserID))
			httpSuite.Router.GET("/api/v1/organizations/:orgId/features", handler.GetCapabilities)

			w := httpSuite.MakeRequest(http.MethodGet, url, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var resp service.CapabilitiesResponse
				testutils.ParseJSONResponse(t, w, &resp)
				assert.Equal(t, models.TierPro, resp.Tier)
			}
		})
	}
}
