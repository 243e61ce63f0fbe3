package models

// MemberRole represents the role of a member in an organization
type MemberRole string

const (
	MemberRoleMember MemberRole = "member"
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleOwner  MemberRole = "owner"
)

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleMember, MemberRoleAdmin, MemberRoleOwner:
		return true
	}
	return false
}

// Rank orders roles member < admin < owner. Unknown roles rank 0.
func (r MemberRole) Rank() int {
	switch r {
	case MemberRoleMember:
		return 1
	case MemberRoleAdmin:
		return 2
	case MemberRoleOwner:
		return 3
	}
	return 0
}

// AtLeast reports whether r satisfies the minimum role
func (r MemberRole) AtLeast(minimum MemberRole) bool {
	return r.Rank() > 0 && r.Rank() >= minimum.Rank()
}

// SubscriptionTier is the billing plan of an organization
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPro     SubscriptionTier = "pro"
	TierPremium SubscriptionTier = "premium"
)

// IsValid checks if the SubscriptionTier is valid
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case TierFree, TierPro, TierPremium:
		return true
	}
	return false
}

// Rank orders tiers free < pro < premium. Unknown tiers rank 0.
func (t SubscriptionTier) Rank() int {
	switch t {
	case TierFree:
		return 1
	case TierPro:
		return 2
	case TierPremium:
		return 3
	}
	return 0
}

// SubscriptionStatus is the billing state of a subscription
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
)

// IsValid checks if the SubscriptionStatus is valid
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusInactive:
		return true
	}
	return false
}

// DocumentStatus is the index sync state of a document
type DocumentStatus string

const (
	DocumentStatusPending DocumentStatus = "pending"
	DocumentStatusSyncing DocumentStatus = "syncing"
	DocumentStatusReady   DocumentStatus = "ready"
	DocumentStatusFailed  DocumentStatus = "failed"
)

// IsValid checks if the DocumentStatus is valid
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusSyncing, DocumentStatusReady, DocumentStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s DocumentStatus) IsTerminal() bool {
	return s == DocumentStatusReady || s == DocumentStatusFailed
}

// CanTransitionTo enforces pending -> syncing -> ready|failed.
// pending -> failed covers uploads that never produced a remote handle.
func (s DocumentStatus) CanTransitionTo(next DocumentStatus) bool {
	switch s {
	case DocumentStatusPending:
		return next == DocumentStatusSyncing || next == DocumentStatusFailed
	case DocumentStatusSyncing:
		return next == DocumentStatusReady || next == DocumentStatusFailed
	}
	return false
}

// MessageRole identifies the author of a chat message
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// IsValid checks if the MessageRole is valid
func (r MessageRole) IsValid() bool {
	switch r {
	case MessageRoleUser, MessageRoleAssistant:
		return true
	}
	return false
}
