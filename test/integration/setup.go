package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/Benjamin-Solano/U-vote/internal/adapters/handler/http"
	pgrepo "github.com/Benjamin-Solano/U-vote/internal/adapters/repository/postgres"
	"github.com/Benjamin-Solano/U-vote/internal/core/services"
)

const testJWTSecret = "test-secret"

type testApp struct {
	Container testcontainers.Container
	DB        *sql.DB
	Server    *httptest.Server
	Client    *http.Client
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()

	container, connStr, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	require.NoError(t, applyMigrations(db))

	pollRepo := pgrepo.NewPollRepository(db)
	optionRepo := pgrepo.NewOptionRepository(db)
	voteRepo := pgrepo.NewVoteRepository(db)
	resultRepo := pgrepo.NewResultRepository(db)

	h := handler.NewHandler(
		[]byte(testJWTSecret),
		handler.NewPollHandler(services.NewPollService(pollRepo)),
		handler.NewOptionHandler(services.NewOptionService(optionRepo, pollRepo)),
		handler.NewVoteHandler(services.NewVoteService(pollRepo, optionRepo, voteRepo)),
		handler.NewResultHandler(services.NewResultService(pollRepo, resultRepo)),
	)

	server := httptest.NewServer(h)

	return &testApp{
		Container: container,
		DB:        db,
		Server:    server,
		Client:    server.Client(),
	}
}

func (a *testApp) Teardown(t *testing.T) {
	t.Helper()
	a.Server.Close()
	_ = a.DB.Close()
	require.NoError(t, a.Container.Terminate(context.Background()))
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// newUserToken mints an access token the way the external identity
// service would: HS256, user id in the subject claim.
func newUserToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": fmt.Sprintf("user-%s@example.com", userID),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return userID, signedToken
}
