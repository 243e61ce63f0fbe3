package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"knowledge-base-backend/internal/database/models"
	apperrors "knowledge-base-backend/internal/errors"
	"knowledge-base-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Capability names a gated product action
type Capability string

const (
	CapabilityDocumentsRead       Capability = "documents.read"
	CapabilityDocumentsDelete     Capability = "documents.delete"
	CapabilityDocumentsUpload     Capability = "documents.upload"
	CapabilityChatManage          Capability = "chat.manage"
	CapabilityChatSend            Capability = "chat.send"
	CapabilityChatScopedRetrieval Capability = "chat.scoped_retrieval"
)

type capabilityRule struct {
	minimumTier       models.SubscriptionTier
	requiresReadiness bool
}

var capabilityRules = map[Capability]capabilityRule{
	CapabilityDocumentsRead:       {minimumTier: models.TierFree},
	CapabilityDocumentsDelete:     {minimumTier: models.TierFree},
	CapabilityDocumentsUpload:     {minimumTier: models.TierPro, requiresReadiness: true},
	CapabilityChatManage:          {minimumTier: models.TierFree},
	CapabilityChatSend:            {minimumTier: models.TierPro, requiresReadiness: true},
	CapabilityChatScopedRetrieval: {minimumTier: models.TierPremium, requiresReadiness: true},
}

// IsEnabled reports whether a capability is available for a subscription.
// A nil subscription is treated as an active free one.
func IsEnabled(capability Capability, subscription *models.Subscription, ready bool) bool {
	return disabledReason(capability, subscription, ready) == ""
}

func disabledReason(capability Capability, subscription *models.Subscription, ready bool) string {
	rule, ok := capabilityRules[capability]
	if !ok {
		return "unknown capability"
	}

	tier, status := models.TierFree, models.SubscriptionStatusActive
	if subscription != nil {
		tier, status = subscription.Tier, subscription.Status
	}

	if tier.Rank() < rule.minimumTier.Rank() {
		return fmt.Sprintf("requires the %s tier", rule.minimumTier)
	}
	if rule.minimumTier.Rank() > models.TierFree.Rank() && status != models.SubscriptionStatusActive {
		return "subscription is not active"
	}
	if rule.requiresReadiness && !ready {
		return "AI provider is not configured"
	}
	return ""
}

// CapabilitiesResponse describes what an organization can currently do
type CapabilitiesResponse struct {
	OrganizationID uuid.UUID                 `json:"organization_id"`
	Tier           models.SubscriptionTier   `json:"tier"`
	Status         models.SubscriptionStatus `json:"status"`
	Ready          bool                      `json:"ready"`
	Capabilities   map[Capability]bool       `json:"capabilities"`
}

// FeatureGate loads subscription and readiness to evaluate capabilities
type FeatureGate struct {
	subscriptions repository.SubscriptionRepositoryInterface
	settings      repository.AppSettingRepositoryInterface
	fallbackKey   string
}

// NewFeatureGate creates a feature gate. fallbackKey is the AI provider key
// from the environment, used when no key is stored in app settings.
func NewFeatureGate(subscriptions repository.SubscriptionRepositoryInterface, settings repository.AppSettingRepositoryInterface, fallbackKey string) *FeatureGate {
	return &FeatureGate{
		subscriptions: subscriptions,
		settings:      settings,
		fallbackKey:   fallbackKey,
	}
}

// Require returns a CapabilityDisabledError unless the capability is enabled
func (g *FeatureGate) Require(ctx context.Context, orgID uuid.UUID, capability Capability) error {
	subscription, ready, err := g.load(ctx, orgID, capabilityRules[capability].requiresReadiness)
	if err != nil {
		return err
	}
	if reason := disabledReason(capability, subscription, ready); reason != "" {
		return apperrors.NewCapabilityDisabledError(string(capability), reason)
	}
	return nil
}

// Capabilities evaluates every known capability for the organization
func (g *FeatureGate) Capabilities(ctx context.Context, orgID uuid.UUID) (*CapabilitiesResponse, error) {
	subscription, ready, err := g.load(ctx, orgID, true)
	if err != nil {
		return nil, err
	}

	resp := &CapabilitiesResponse{
		OrganizationID: orgID,
		Tier:           subscription.Tier,
		Status:         subscription.Status,
		Ready:          ready,
		Capabilities:   make(map[Capability]bool, len(capabilityRules)),
	}
	for capability := range capabilityRules {
		resp.Capabilities[capability] = IsEnabled(capability, subscription, ready)
	}
	return resp, nil
}

// KnownCapabilities lists every capability in name order
func KnownCapabilities() []Capability {
	names := make([]Capability, 0, len(capabilityRules))
	for capability := range capabilityRules {
		names = append(names, capability)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (g *FeatureGate) load(ctx context.Context, orgID uuid.UUID, needReadiness bool) (*models.Subscription, bool, error) {
	subscription, err := g.subscriptions.GetByOrganizationID(ctx, orgID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("failed to load subscription: %w", err)
		}
		subscription = models.FreeSubscription(orgID)
	}

	if !needReadiness {
		return subscription, false, nil
	}
	ready, err := g.ready(ctx)
	if err != nil {
		return nil, false, err
	}
	return subscription, ready, nil
}

func (g *FeatureGate) ready(ctx context.Context) (bool, error) {
	setting, err := g.settings.Get(ctx, models.SettingAIProviderAPIKey)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("failed to load AI provider setting: %w", err)
		}
		return strings.TrimSpace(g.fallbackKey) != "", nil
	}
	if strings.TrimSpace(setting.Value) != "" {
		return true, nil
	}
	return strings.TrimSpace(g.fallbackKey) != "", nil
}
