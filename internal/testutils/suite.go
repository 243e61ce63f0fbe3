package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"knowledge-base-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "kb"
	pgPassword = "kb-test"
	pgDatabase = "knowledge_base_test"
)

// one Postgres container serves every suite of a test binary
var (
	containerOnce sync.Once
	containerErr  error
	pool          *dockertest.Pool
	postgres      *dockertest.Resource
	sharedDB      *gorm.DB
	tableNames    []string
)

// BaseTestSuite gives repository suites a migrated database that is emptied
// between tests
type BaseTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

// SetupTestSuite starts the shared container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	containerOnce.Do(func() { containerErr = startPostgres() })
	if containerErr != nil {
		t.Fatalf("postgres test container: %v", containerErr)
	}
	return &BaseTestSuite{DB: sharedDB}
}

// CleanupSharedContainer removes the container; call it from TestMain
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if pool != nil && postgres != nil {
		if err := pool.Purge(postgres); err != nil {
			log.Printf("could not purge postgres container %s: %v", postgres.Container.Name, err)
		}
		postgres = nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every table the service migrates
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(tableNames) == 0 {
		return
	}
	quoted := make([]string, len(tableNames))
	for i, name := range tableNames {
		quoted[i] = `"` + name + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		log.Printf("could not truncate test tables: %v", err)
	}
}

func startPostgres() error {
	var err error
	pool, err = dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	postgres, err = pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("start postgres: %w", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, postgres.GetPort("5432/tcp"), pgDatabase)

	// the server restarts once during init; ping until it accepts connections
	if err := pool.Retry(func() error {
		conn, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer conn.Close()
		return conn.Ping()
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	sharedDB, err = database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("migrate test database: %w", err)
	}

	tableNames, err = migratedTables(sharedDB)
	return err
}

func migratedTables(db *gorm.DB) ([]string, error) {
	var names []string
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("resolve table of %T: %w", model, err)
		}
		names = append(names, stmt.Schema.Table)
	}
	return names, nil
}
