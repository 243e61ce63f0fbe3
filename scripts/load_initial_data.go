package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"knowledge-base-backend/internal/auth"
	"knowledge-base-backend/internal/config"
	"knowledge-base-backend/internal/database"
	"knowledge-base-backend/internal/database/models"
	"knowledge-base-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name         string           `yaml:"name"`
	DisplayName  string           `yaml:"display_name"`
	Subscription SubscriptionData `yaml:"subscription"`
}

type SubscriptionData struct {
	Tier   string `yaml:"tier"`
	Status string `yaml:"status"`
	// days from now; zero means no period end
	PeriodDays int `yaml:"period_days,omitempty"`
}

type MembershipData struct {
	UserID           string `yaml:"user_id"`
	OrganizationName string `yaml:"organization_name"`
	Role             string `yaml:"role"`
}

type SettingData struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// File structures for YAML parsing
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type MembershipsFile struct {
	Memberships []MembershipData `yaml:"memberships"`
}

type SettingsFile struct {
	Settings []SettingData `yaml:"settings"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	users, err := loadDataFromYAMLFiles(context.Background(), db, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if cfg.IsDevelopment() {
		printDevTokens(cfg, users)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadDataFromYAMLFiles seeds organizations, their subscriptions, memberships and
// app settings. It is idempotent and returns the seeded user IDs.
func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, dataDir string) ([]string, error) {
	var orgFiles []OrganizationsFile
	if err := loadYAMLFiles(dataDir, "organizations", &orgFiles); err != nil {
		return nil, fmt.Errorf("failed to load organizations: %w", err)
	}
	var membershipFiles []MembershipsFile
	if err := loadYAMLFiles(dataDir, "memberships", &membershipFiles); err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	var settingFiles []SettingsFile
	if err := loadYAMLFiles(dataDir, "settings", &settingFiles); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	orgRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	settingRepo := repository.NewAppSettingRepository(db)

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated, orgTotal := 0, 0
	for _, file := range orgFiles {
		for _, orgData := range file.Organizations {
			orgTotal++
			org, created, err := createOrganization(ctx, db, orgRepo, orgData)
			if err != nil {
				return nil, fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
			}
			orgMap[orgData.Name] = org
			if created {
				orgCreated++
			}

			subscription, err := subscriptionFor(org, orgData.Subscription)
			if err != nil {
				return nil, fmt.Errorf("organization %s: %w", orgData.Name, err)
			}
			if err := subscriptionRepo.Upsert(ctx, subscription); err != nil {
				return nil, fmt.Errorf("failed to write subscription for %s: %w", orgData.Name, err)
			}
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, orgTotal)

	// Create memberships
	var users []string
	seen := make(map[string]bool)
	membershipCreated, membershipTotal := 0, 0
	for _, file := range membershipFiles {
		for _, membershipData := range file.Memberships {
			membershipTotal++
			created, err := createMembership(ctx, membershipRepo, membershipData, orgMap)
			if err != nil {
				return nil, fmt.Errorf("failed to create membership %s/%s: %w", membershipData.OrganizationName, membershipData.UserID, err)
			}
			if created {
				membershipCreated++
			}
			if !seen[membershipData.UserID] {
				seen[membershipData.UserID] = true
				users = append(users, membershipData.UserID)
			}
		}
	}
	log.Printf("📋 Memberships: %d created, %d total", membershipCreated, membershipTotal)

	// Write settings; values may reference the environment as ${NAME}
	settingCount := 0
	for _, file := range settingFiles {
		for _, setting := range file.Settings {
			value := os.ExpandEnv(setting.Value)
			if strings.TrimSpace(value) == "" {
				log.Printf("⚠️  Skipping setting %s: empty value", setting.Key)
				continue
			}
			if err := settingRepo.Set(ctx, setting.Key, value); err != nil {
				return nil, fmt.Errorf("failed to write setting %s: %w", setting.Key, err)
			}
			settingCount++
		}
	}
	log.Printf("📋 Settings: %d written", settingCount)

	return users, nil
}

// loadYAMLFiles appends one parsed file per .yaml path containing kind
func loadYAMLFiles[T any](dataDir, kind string, out *[]T) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var file T
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			*out = append(*out, file)
		}
		return nil
	})
}

func createOrganization(ctx context.Context, db *gorm.DB, repo *repository.OrganizationRepository, orgData OrganizationData) (*models.Organization, bool, error) {
	org, err := repo.GetByName(ctx, orgData.Name)
	if err == nil {
		return org, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query organization: %w", err)
	}

	org = &models.Organization{
		Name:        orgData.Name,
		DisplayName: orgData.DisplayName,
	}
	if err := db.WithContext(ctx).Create(org).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create organization: %w", err)
	}
	return org, true, nil
}

func subscriptionFor(org *models.Organization, data SubscriptionData) (*models.Subscription, error) {
	subscription := models.FreeSubscription(org.ID)
	if data.Tier != "" {
		subscription.Tier = models.SubscriptionTier(data.Tier)
	}
	if data.Status != "" {
		subscription.Status = models.SubscriptionStatus(data.Status)
	}
	if !subscription.Tier.IsValid() {
		return nil, fmt.Errorf("invalid subscription tier %q", data.Tier)
	}
	if !subscription.Status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status %q", data.Status)
	}
	if data.PeriodDays > 0 {
		end := time.Now().AddDate(0, 0, data.PeriodDays)
		subscription.CurrentPeriodEnd = &end
	}
	return subscription, nil
}

func createMembership(ctx context.Context, repo *repository.MembershipRepository, data MembershipData, orgMap map[string]*models.Organization) (bool, error) {
	org, ok := orgMap[data.OrganizationName]
	if !ok {
		return false, fmt.Errorf("unknown organization %q", data.OrganizationName)
	}
	role := models.MemberRole(data.Role)
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role %q", data.Role)
	}

	_, err := repo.GetByUserAndOrganization(ctx, data.UserID, org.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query membership: %w", err)
	}

	membership := &models.Membership{
		UserID:         data.UserID,
		OrganizationID: org.ID,
		Role:           role,
	}
	if err := repo.Create(ctx, membership); err != nil {
		return false, err
	}
	return true, nil
}

// printDevTokens issues bearer tokens for seeded users so the API can be tried locally
func printDevTokens(cfg *config.Config, users []string) {
	authService, err := auth.NewAuthService(cfg.JWTSecret, 24*time.Hour)
	if err != nil {
		log.Printf("⚠️  Cannot issue dev tokens: %v", err)
		return
	}
	for _, userID := range users {
		token, err := authService.GenerateJWT(userID)
		if err != nil {
			log.Printf("⚠️  Cannot issue token for %s: %v", userID, err)
			continue
		}
		log.Printf("🔑 %s: %s", userID, token)
	}
}
