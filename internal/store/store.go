// Package store provides the table stores that book reviews are kept in.
//
// All backends implement ReviewTable and return records in the same shape
// ({id, createdTime, fields}), so that handlers can pass them on unchanged.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mpilhlt/bookreviews-api/internal/database"
	"github.com/mpilhlt/bookreviews-api/internal/models"
)

// Available backends
const (
	BackendAirtable = "airtable"
	BackendPostgres = "postgres"
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

// createdTimeLayout is the timestamp format used for createdTime.
const createdTimeLayout = "2006-01-02T15:04:05.000Z"

// ReviewTable is a table of review records.
type ReviewTable interface {
	// Create stores a new record with the given fields and returns it.
	Create(ctx context.Context, fields map[string]any) (models.Record, error)
	// All returns all records, sorted and limited according to opts.
	All(ctx context.Context, opts models.ListOptions) ([]models.Record, error)
}

// Open connects to the backend selected in the options. The returned
// function releases the backend's resources and must be called on shutdown.
func Open(ctx context.Context, options *models.Options) (ReviewTable, func(), error) {
	switch options.Store {
	case BackendAirtable:
		if options.AirtableToken == "" || options.AirtableBase == "" {
			return nil, nil, fmt.Errorf("%w: airtable token and base are required", ErrNotConfigured)
		}
		fmt.Printf("    Using Airtable table %q in base %s\n", options.AirtableTable, options.AirtableBase)
		return NewAirtableTable(options.AirtableToken, options.AirtableBase, options.AirtableTable), func() {}, nil

	case BackendPostgres:
		pool, err := database.InitDB(ctx, options)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresTable(pool), func() {
			fmt.Printf("    Active connections before shutdown: %d\n", pool.Stat().TotalConns())
			pool.Close()
			fmt.Println("    Database pool successfully closed.")
		}, nil

	case BackendDynamoDB:
		client, err := NewDynamoDBClient(ctx, options)
		if err != nil {
			return nil, nil, err
		}
		fmt.Printf("    Using DynamoDB table %q in region %s\n", options.DynamoTable, options.AWSRegion)
		return NewDynamoDBTable(client, options.DynamoTable), func() {}, nil

	case BackendMemory:
		fmt.Print("    Using in-memory review table (records are lost on shutdown)\n")
		return NewMemoryTable(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, options.Store)
}

// newRecordID returns an identifier in the style of Airtable record IDs.
func newRecordID() string {
	return "rec" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
}

func formatCreatedTime(t time.Time) string {
	return t.UTC().Format(createdTimeLayout)
}

// reviewFromFields extracts the review columns from a fields map, for
// backends that store reviews in typed columns.
func reviewFromFields(fields map[string]any) (book string, rating float64, notes *string, err error) {
	book, ok := fields[models.FieldBook].(string)
	if !ok {
		return "", 0, nil, fmt.Errorf("%w: %s must be a string", ErrInvalidFields, models.FieldBook)
	}
	rating, ok = fields[models.FieldRating].(float64)
	if !ok {
		return "", 0, nil, fmt.Errorf("%w: %s must be a number", ErrInvalidFields, models.FieldRating)
	}
	if v, present := fields[models.FieldNotes]; present {
		s, ok := v.(string)
		if !ok {
			return "", 0, nil, fmt.Errorf("%w: %s must be a string", ErrInvalidFields, models.FieldNotes)
		}
		notes = &s
	}
	return book, rating, notes, nil
}

// fieldsFromReview is the inverse of reviewFromFields.
func fieldsFromReview(book string, rating float64, notes *string) map[string]any {
	fields := map[string]any{
		models.FieldBook:   book,
		models.FieldRating: rating,
	}
	if notes != nil {
		fields[models.FieldNotes] = *notes
	}
	return fields
}
