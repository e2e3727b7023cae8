package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// testDB opens the database named by DATABASE_URL, applies migrations and
// truncates the tables so each test starts clean. Tests are skipped when
// no database is configured.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set, skipping database integration test")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, db.Ping())
	require.NoError(t, RunMigrations(db))

	_, err = db.Exec(`TRUNCATE tasks, users CASCADE`)
	require.NoError(t, err)

	return db
}

// createTestUser inserts a user and returns it. bcrypt.MinCost keeps the
// hashing cheap in tests.
func createTestUser(t *testing.T, db *sql.DB, email string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(email, "correct-horse-battery")
	require.NoError(t, err)

	users := NewPostgresUserStore(db, bcrypt.MinCost, nil)
	require.NoError(t, users.Create(context.Background(), user))
	return user
}
