package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found.
// Cross-tenant lookups return it too, so callers cannot discover other organizations.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError is returned when the caller has no identity or no membership
// in the target organization.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError is returned when the caller's role is below the required one.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// CapabilityDisabledError is returned when the subscription tier or an external
// dependency blocks an action the caller is otherwise allowed to perform.
type CapabilityDisabledError struct {
	Capability string
	Reason     string
}

func (e *CapabilityDisabledError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("capability %s is disabled: %s", e.Capability, e.Reason)
	}
	return fmt.Sprintf("capability %s is disabled", e.Capability)
}

// RemoteUnavailableError wraps a transient failure of an external service.
type RemoteUnavailableError struct {
	Service string
	Err     error
}

func (e *RemoteUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s unavailable", e.Service)
}

func (e *RemoteUnavailableError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "membership"}
	ErrDocumentNotFound     = &NotFoundError{Entity: "document"}
	ErrChatSessionNotFound  = &NotFoundError{Entity: "chat session"}
	ErrSubscriptionNotFound = &NotFoundError{Entity: "subscription"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrMembershipExists   = &AlreadyExistsError{Entity: "membership", Context: "for this user in the organization"}
)

// Authentication and authorization errors
var (
	ErrMissingIdentity       = &AuthenticationError{Message: "authentication required"}
	ErrNotOrganizationMember = &AuthenticationError{Message: "not a member of this organization"}
	ErrInsufficientRole      = &AuthorizationError{Message: "insufficient role for this operation"}
	ErrOwnerRoleRequired     = &AuthorizationError{Message: "only an owner can grant the owner role"}
)

// Index sync errors
var (
	ErrSyncInProgress      = errors.New("document sync already in progress")
	ErrDocumentNotPending  = errors.New("document is not pending; re-upload to sync again")
	ErrSyncEngineStopped   = errors.New("index sync engine is shut down")
	ErrInvalidStatusChange = errors.New("invalid document status transition")
)

// Configuration Errors
var (
	ErrIndexProviderNotConfigured = &ConfigurationError{Message: "index provider is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsCapabilityDisabled checks if an error is a CapabilityDisabledError
func IsCapabilityDisabled(err error) bool {
	var capErr *CapabilityDisabledError
	return errors.As(err, &capErr)
}

// IsRemoteUnavailable checks if an error is a RemoteUnavailableError
func IsRemoteUnavailable(err error) bool {
	var remoteErr *RemoteUnavailableError
	return errors.As(err, &remoteErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewCapabilityDisabledError creates a new CapabilityDisabledError
func NewCapabilityDisabledError(capability, reason string) error {
	return &CapabilityDisabledError{Capability: capability, Reason: reason}
}

// NewRemoteUnavailableError creates a new RemoteUnavailableError
func NewRemoteUnavailableError(service string, err error) error {
	return &RemoteUnavailableError{Service: service, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
