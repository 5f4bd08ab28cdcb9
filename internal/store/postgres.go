package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpilhlt/bookreviews-api/internal/models"
)

// reviewColumns maps record field names to columns of the reviews table.
var reviewColumns = map[string]string{
	models.FieldBook:   "book",
	models.FieldRating: "rating",
	models.FieldNotes:  "notes",
}

// PostgresTable stores reviews in the reviews table of a PostgreSQL database.
type PostgresTable struct {
	pool *pgxpool.Pool
}

// NewPostgresTable returns a table using the given connection pool. The
// schema must have been migrated (see database.InitDB).
func NewPostgresTable(pool *pgxpool.Pool) *PostgresTable {
	return &PostgresTable{pool: pool}
}

func (p *PostgresTable) Create(ctx context.Context, fields map[string]any) (models.Record, error) {
	book, rating, notes, err := reviewFromFields(fields)
	if err != nil {
		return models.Record{}, err
	}

	row := p.pool.QueryRow(ctx,
		`INSERT INTO reviews (id, book, rating, notes)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_time, book, rating, notes`,
		newRecordID(), book, rating, pgtype.Text{String: deref(notes), Valid: notes != nil})
	record, err := scanReview(row)
	if err != nil {
		return models.Record{}, fmt.Errorf("postgres: unable to insert review: %w", err)
	}
	return record, nil
}

func (p *PostgresTable) All(ctx context.Context, opts models.ListOptions) ([]models.Record, error) {
	query, args, err := buildListQuery(opts)
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: unable to list reviews: %w", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Record, error) {
		return scanReview(row)
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: unable to read reviews: %w", err)
	}
	return records, nil
}

// buildListQuery returns the SELECT statement for the given options. Sort
// fields are only accepted from reviewColumns.
func buildListQuery(opts models.ListOptions) (string, []any, error) {
	var b strings.Builder
	b.WriteString("SELECT id, created_time, book, rating, notes FROM reviews ORDER BY ")
	for _, k := range parseSort(opts.Sort) {
		column, ok := reviewColumns[k.field]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", ErrUnknownSortField, k.field)
		}
		direction := "ASC NULLS FIRST"
		if k.desc {
			direction = "DESC NULLS LAST"
		}
		fmt.Fprintf(&b, "%s %s, ", column, direction)
	}
	b.WriteString("created_time, id")

	var args []any
	if opts.MaxRecords > 0 {
		b.WriteString(" LIMIT $1")
		args = append(args, opts.MaxRecords)
	}
	return b.String(), args, nil
}

func scanReview(row pgx.Row) (models.Record, error) {
	var (
		id      string
		created time.Time
		book    string
		rating  float64
		notes   pgtype.Text
	)
	if err := row.Scan(&id, &created, &book, &rating, &notes); err != nil {
		return models.Record{}, err
	}
	var n *string
	if notes.Valid {
		n = &notes.String
	}
	return models.Record{
		ID:          id,
		CreatedTime: formatCreatedTime(created),
		Fields:      fieldsFromReview(book, rating, n),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
