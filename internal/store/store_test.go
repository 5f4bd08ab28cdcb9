package store

import (
	"context"
	"testing"

	"github.com/mpilhlt/bookreviews-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	table, closeTable, err := Open(ctx, &models.Options{Store: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryTable{}, table)
	closeTable()

	table, _, err = Open(ctx, &models.Options{Store: BackendAirtable, AirtableToken: "pat123", AirtableBase: "appXYZ", AirtableTable: "Book Reviews"})
	require.NoError(t, err)
	assert.IsType(t, &AirtableTable{}, table)

	_, _, err = Open(ctx, &models.Options{Store: BackendAirtable})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, _, err = Open(ctx, &models.Options{Store: "spreadsheet"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestReviewFromFields(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]any
		wantBook  string
		wantNotes *string
		wantErr   bool
	}{
		{name: "Without notes", fields: map[string]any{"Book": "Dune", "Rating": 7.0}, wantBook: "Dune"},
		{name: "With notes", fields: map[string]any{"Book": "Dune", "Rating": 7.0, "Notes": "ok"}, wantBook: "Dune", wantNotes: ptr("ok")},
		{name: "Missing book", fields: map[string]any{"Rating": 7.0}, wantErr: true},
		{name: "Integer rating", fields: map[string]any{"Book": "Dune", "Rating": 7}, wantErr: true},
		{name: "Notes not a string", fields: map[string]any{"Book": "Dune", "Rating": 7.0, "Notes": 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, _, notes, err := reviewFromFields(tt.fields)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFields)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBook, book)
			assert.Equal(t, tt.wantNotes, notes)
			assert.Equal(t, tt.fields, fieldsFromReview(book, tt.fields["Rating"].(float64), notes))
		})
	}
}

func ptr[T any](v T) *T { return &v }
