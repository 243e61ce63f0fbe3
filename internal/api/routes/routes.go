package routes

import (
	"fmt"

	"knowledge-base-backend/internal/api/handlers"
	"knowledge-base-backend/internal/api/middleware"
	"knowledge-base-backend/internal/auth"
	"knowledge-base-backend/internal/blob"
	"knowledge-base-backend/internal/config"
	"knowledge-base-backend/internal/repository"
	"knowledge-base-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Dependencies are the long-lived components built by the caller, which also
// owns their shutdown
type Dependencies struct {
	SyncEngine  service.IndexSyncEngineInterface
	Blobs       blob.Store
	AuthService *auth.AuthService
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	if deps.SyncEngine == nil {
		return nil, fmt.Errorf("index sync engine is required")
	}
	if deps.Blobs == nil {
		deps.Blobs = blob.NopStore{}
	}

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	appSettingRepo := repository.NewAppSettingRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	chatSessionRepo := repository.NewChatSessionRepository(db)
	chatMessageRepo := repository.NewChatMessageRepository(db)

	// Initialize services
	tenancyGuard := service.NewTenancyGuard(membershipRepo)
	featureGate := service.NewFeatureGate(subscriptionRepo, appSettingRepo, cfg.AIProviderAPIKey)
	organizationService := service.NewOrganizationService(organizationRepo, membershipRepo, validator)
	documentService := service.NewDocumentService(documentRepo, deps.SyncEngine, deps.Blobs, validator, cfg.MaxUploadBytes)
	chatService := service.NewChatService(chatSessionRepo, chatMessageRepo, deps.SyncEngine, validator)

	authService := deps.AuthService
	if authService == nil {
		var err error
		authService, err = auth.NewAuthService(cfg.JWTSecret, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize auth service: %w", err)
		}
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	access := handlers.NewAccessControl(tenancyGuard, featureGate)
	healthHandler := handlers.NewHealthHandler(db, deps.SyncEngine)
	organizationHandler := handlers.NewOrganizationHandler(organizationService, access)
	featureHandler := handlers.NewFeatureHandler(featureGate, access)
	documentHandler := handlers.NewDocumentHandler(documentService, access, cfg.MaxUploadBytes)
	chatHandler := handlers.NewChatHandler(chatService, access)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.POST("/:orgId/members", organizationHandler.AddMember)
			organizations.GET("/:orgId/features", featureHandler.GetCapabilities)
		}

		documents := v1.Group("/organizations/:orgId/documents")
		{
			documents.GET("", documentHandler.ListDocuments)
			documents.POST("", documentHandler.UploadDocument)
			documents.POST("/json", documentHandler.CreateDocument)
			documents.GET("/:id", documentHandler.GetDocument)
			documents.DELETE("/:id", documentHandler.DeleteDocument)
		}

		sessions := v1.Group("/organizations/:orgId/chat/sessions")
		{
			sessions.GET("", chatHandler.ListSessions)
			sessions.POST("", chatHandler.CreateSession)
			sessions.GET("/:id", chatHandler.GetSession)
			sessions.PATCH("/:id", chatHandler.RenameSession)
			sessions.DELETE("/:id", chatHandler.DeleteSession)
			sessions.POST("/:id/messages", chatHandler.SendMessage)
		}
	}

	return router, nil
}
