package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing. An orders row
// with zero order_items is a legal state; nothing requires an order to
// have items.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url VARCHAR(512) NOT NULL DEFAULT '',
			day_of_week SMALLINT NOT NULL CHECK (day_of_week BETWEEN 1 AND 6),
			category VARCHAR(50) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS settings (
			id SERIAL PRIMARY KEY,
			opens_at SMALLINT NOT NULL,
			closes_at SMALLINT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			registration VARCHAR(4) NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id),
			item_id VARCHAR(50) NOT NULL
		);
	`

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// CleanupDB truncates all tables between test cases.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	_, err := pool.Exec(ctx, `
		TRUNCATE order_items, orders, menu_items, settings
	`)
	if err != nil {
		t.Fatalf("failed to clean up database: %v", err)
	}
}

// SeedMenu inserts a small weekly menu covering all three categories.
func SeedMenu(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	_, err := pool.Exec(ctx, `
		INSERT INTO menu_items (id, name, description, image_url, day_of_week, category) VALUES
			('m3', 'Moqueca', 'Fish stew', '/img/moqueca.jpg', 3, 'main'),
			('m1', 'Feijoada', 'Black bean stew', '/img/feijoada.jpg', 1, 'main'),
			('m2', 'Strogonoff', 'Creamy beef', '/img/strogonoff.jpg', 2, 'main'),
			('s1', 'Salada Verde', 'Green salad', '/img/salada.jpg', 1, 'salad'),
			('o1', 'Pudim', 'Caramel flan', '/img/pudim.jpg', 1, 'optional'),
			('o2', 'Brigadeiro', 'Chocolate sweet', '/img/brigadeiro.jpg', 2, 'optional')
	`)
	if err != nil {
		t.Fatalf("failed to seed menu items: %v", err)
	}
}

// SeedOpeningWindow inserts an opening window row.
func SeedOpeningWindow(t *testing.T, pool *pgxpool.Pool, opensAt, closesAt int) {
	t.Helper()

	ctx := context.Background()
	_, err := pool.Exec(ctx, `
		INSERT INTO settings (opens_at, closes_at) VALUES ($1, $2)
	`, opensAt, closesAt)
	if err != nil {
		t.Fatalf("failed to seed opening window: %v", err)
	}
}
