package store

import (
	"context"
	"testing"
	"time"

	"github.com/mpilhlt/bookreviews-api/internal/database"
	"github.com/mpilhlt/bookreviews-api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name      string
		opts      models.ListOptions
		wantQuery string
		wantArgs  []any
		wantErr   error
	}{
		{
			name:      "No options",
			opts:      models.ListOptions{},
			wantQuery: "SELECT id, created_time, book, rating, notes FROM reviews ORDER BY created_time, id",
		},
		{
			name:      "Rating descending with limit",
			opts:      models.ListOptions{Sort: []string{"-Rating"}, MaxRecords: 3},
			wantQuery: "SELECT id, created_time, book, rating, notes FROM reviews ORDER BY rating DESC NULLS LAST, created_time, id LIMIT $1",
			wantArgs:  []any{3},
		},
		{
			name:      "Two keys",
			opts:      models.ListOptions{Sort: []string{"Rating", "Book"}},
			wantQuery: "SELECT id, created_time, book, rating, notes FROM reviews ORDER BY rating ASC NULLS FIRST, book ASC NULLS FIRST, created_time, id",
		},
		{
			name:    "Unknown field",
			opts:    models.ListOptions{Sort: []string{"rating; DROP TABLE reviews"}},
			wantErr: ErrUnknownSortField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListQuery(tt.opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

// getTestDatabase spins up a new Postgres container, runs the migrations
// and returns a connection pool. The returned closure terminates the container.
func getTestDatabase(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()
	options := &models.Options{DBName: "testdb", DBUser: "test", DBPassword: "test"}

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(options.DBName),
		postgres.WithUsername(options.DBUser),
		postgres.WithPassword(options.DBPassword),
		testcontainers.WithWaitStrategy(
			// Postgres restarts itself once after the first startup.
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(120*time.Second),
			wait.ForListeningPort("5432/tcp").WithStartupTimeout(120*time.Second),
		),
	)
	if err != nil {
		t.Skipf("Unable to start postgres container (is Docker available?): %v", err)
	}
	teardown := func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Error terminating container: %v", err)
		}
	}

	options.DBHost, err = container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	options.DBPort = port.Int()

	pool, err := database.InitDB(ctx, options)
	if err != nil {
		teardown()
		t.Fatalf("Unable to initialize database: %v", err)
	}
	return pool, func() {
		pool.Close()
		teardown()
	}
}

func TestPostgresTable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container based test in short mode")
	}
	pool, teardown := getTestDatabase(t)
	defer teardown()

	ctx := context.Background()
	table := NewPostgresTable(pool)

	created, err := table.Create(ctx, map[string]any{"Book": "Dune", "Rating": 8.0, "Notes": "spice"})
	require.NoError(t, err)
	assert.Regexp(t, `^rec[0-9a-f]{14}$`, created.ID)
	assert.Equal(t, map[string]any{"Book": "Dune", "Rating": 8.0, "Notes": "spice"}, created.Fields)

	for _, fields := range []map[string]any{
		{"Book": "Emma", "Rating": 3.0},
		{"Book": "Ulysses", "Rating": 9.5},
	} {
		_, err := table.Create(ctx, fields)
		require.NoError(t, err)
	}

	all, err := table.All(ctx, models.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune", "Emma", "Ulysses"}, bookOrder(all))
	assert.NotContains(t, all[1].Fields, "Notes")

	desc, err := table.All(ctx, models.ListOptions{Sort: []string{"-Rating"}, MaxRecords: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ulysses", "Dune"}, bookOrder(desc))

	asc, err := table.All(ctx, models.ListOptions{Sort: []string{"Rating"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Emma", "Dune", "Ulysses"}, bookOrder(asc))

	// the rating check constraint backs up the API validation
	_, err = table.Create(ctx, map[string]any{"Book": "Bad", "Rating": 11.0})
	assert.Error(t, err)
}
