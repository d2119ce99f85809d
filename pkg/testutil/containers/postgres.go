//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"ainadeul/internal/platform/database"
	"ainadeul/migrations"
	id "ainadeul/pkg/domain"
)

// appTables lists every migrated table, children before parents.
var appTables = []string{
	"visits",
	"saved_places",
	"children",
	"profiles",
	"events",
	"event_organizers",
	"place_blog_mentions",
	"place_age_suitability",
	"place_filter_scores",
	"place_amenities",
	"place_details",
	"places",
	"users",
}

type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

// NewPostgresContainer starts Postgres and applies the embedded migrations the
// way the server does at boot.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("ainadeul_test"),
		postgres.WithUsername("ainadeul"),
		postgres.WithPassword("ainadeul_test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}

	fail := func(step string, err error) {
		_ = container.Terminate(ctx)
		t.Fatalf("%s: %v", step, err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fail("postgres dsn", err)
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		fail("open postgres", err)
	}
	if err := database.Migrate(ctx, db, migrations.FS, nil); err != nil {
		_ = db.Close()
		fail("migrate", err)
	}

	return &PostgresContainer{Container: container, DSN: dsn, DB: db}
}

// TruncateModuleTables empties every application table in one statement.
func (p *PostgresContainer) TruncateModuleTables(ctx context.Context) error {
	if _, err := p.DB.ExecContext(ctx, "TRUNCATE TABLE "+strings.Join(appTables, ", ")+" CASCADE"); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	return nil
}

// CreateTestUser inserts a user with a throwaway email.
func (p *PostgresContainer) CreateTestUser(ctx context.Context, t testing.TB) id.UserID {
	t.Helper()
	userID := id.UserID(uuid.New())
	_, err := p.DB.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, 'not-a-real-hash')`,
		uuid.UUID(userID), "test-"+uuid.NewString()+"@example.com",
	)
	if err != nil {
		t.Fatalf("CreateTestUser: %v", err)
	}
	return userID
}

// CreateTestPlace inserts a bare active indoor place in 유성구.
func (p *PostgresContainer) CreateTestPlace(ctx context.Context, t testing.TB, name string) id.PlaceID {
	t.Helper()
	placeID := id.PlaceID(uuid.New())
	_, err := p.DB.ExecContext(ctx, `
		INSERT INTO places (id, name, category, region, address, lat, lng, is_indoor)
		VALUES ($1, $2, '도서관', '유성구', '대전 유성구', 36.3621, 127.3563, TRUE)
	`, uuid.UUID(placeID), name)
	if err != nil {
		t.Fatalf("CreateTestPlace: %v", err)
	}
	return placeID
}
