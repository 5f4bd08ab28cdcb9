package handlers

import (
	"testing"

	"github.com/mpilhlt/bookreviews-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateReview(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        models.Review
		wantErr     error
	}{
		{
			name:        "Valid review",
			contentType: "application/json",
			body:        `{"book": " Dune ", "rating": 8.5, "notes": " Great "}`,
			want:        models.Review{Book: "Dune", Rating: 8.5, Notes: "Great"},
		},
		{
			name:        "Content type with charset",
			contentType: "application/json; charset=utf-8",
			body:        `{"book": "Dune", "rating": 3}`,
			want:        models.Review{Book: "Dune", Rating: 3},
		},
		{
			name:        "Missing content type",
			contentType: "",
			body:        `{"book": "Dune", "rating": 3}`,
			wantErr:     ErrBodyNotJSON,
		},
		{
			name:        "Null body counts as empty object",
			contentType: "application/json",
			body:        `null`,
			wantErr:     ErrBookInvalid,
		},
		{
			name:        "Array body",
			contentType: "application/json",
			body:        `[{"book": "Dune", "rating": 3}]`,
			wantErr:     ErrBodyMalformed,
		},
		{
			name:        "Empty body",
			contentType: "application/json",
			body:        ``,
			wantErr:     ErrBodyMalformed,
		},
		{
			name:        "Book not a string",
			contentType: "application/json",
			body:        `{"book": 12, "rating": 3}`,
			wantErr:     ErrBookInvalid,
		},
		{
			name:        "Rating missing",
			contentType: "application/json",
			body:        `{"book": "Dune"}`,
			wantErr:     ErrRatingInvalid,
		},
		{
			name:        "Rating boolean",
			contentType: "application/json",
			body:        `{"book": "Dune", "rating": true}`,
			wantErr:     ErrRatingInvalid,
		},
		{
			name:        "Rating just below range",
			contentType: "application/json",
			body:        `{"book": "Dune", "rating": 0.99}`,
			wantErr:     ErrRatingInvalid,
		},
		{
			name:        "Rating just above range",
			contentType: "application/json",
			body:        `{"book": "Dune", "rating": 10.01}`,
			wantErr:     ErrRatingInvalid,
		},
		{
			name:        "Notes checked after rating",
			contentType: "application/json",
			body:        `{"book": "Dune", "rating": 0, "notes": 1}`,
			wantErr:     ErrRatingInvalid,
		},
		{
			name:        "Notes not a string",
			contentType: "application/json",
			body:        `{"book": "Dune", "rating": 2, "notes": ["a"]}`,
			wantErr:     ErrNotesInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateReview(tt.contentType, []byte(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReviewFields(t *testing.T) {
	review := models.Review{Book: "Dune", Rating: 7}
	assert.Equal(t, map[string]any{"Book": "Dune", "Rating": 7.0}, review.Fields())

	review.Notes = "Great"
	assert.Equal(t, map[string]any{"Book": "Dune", "Rating": 7.0, "Notes": "Great"}, review.Fields())
}

func TestValidateListOptions(t *testing.T) {
	set := func(v string) models.OptionalParam[string] {
		return models.OptionalParam[string]{Value: v, IsSet: true}
	}
	unset := models.OptionalParam[string]{}

	tests := []struct {
		name       string
		sort       models.OptionalParam[string]
		maxRecords models.OptionalParam[string]
		want       models.ListOptions
		wantErr    error
	}{
		{name: "Nothing set", sort: unset, maxRecords: unset, want: models.ListOptions{}},
		{name: "Ascending", sort: set("asc"), maxRecords: unset, want: models.ListOptions{Sort: []string{"Rating"}}},
		{name: "Descending", sort: set("desc"), maxRecords: unset, want: models.ListOptions{Sort: []string{"-Rating"}}},
		{name: "Limit", sort: unset, maxRecords: set("3"), want: models.ListOptions{MaxRecords: 3}},
		{name: "Sort is case sensitive", sort: set("DESC"), maxRecords: unset, wantErr: ErrSortInvalid},
		{name: "Unknown sort", sort: set("sideways"), maxRecords: unset, wantErr: ErrSortInvalid},
		{name: "Zero limit", sort: unset, maxRecords: set("0"), wantErr: ErrMaxRecordsInvalid},
		{name: "Negative limit", sort: set("asc"), maxRecords: set("-1"), wantErr: ErrMaxRecordsInvalid},
		{name: "Fractional limit", sort: unset, maxRecords: set("2.5"), wantErr: ErrMaxRecordsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateListOptions(tt.sort, tt.maxRecords)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
