package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"strconv"
	"strings"

	"github.com/mpilhlt/bookreviews-api/internal/models"
)

// Validation errors. The messages are returned to the client as is.
var (
	ErrBodyNotJSON       = errors.New("Request body must be JSON")
	ErrBodyMalformed     = errors.New("Request body must be a valid JSON object")
	ErrBookInvalid       = errors.New("'book' is required and must be a string")
	ErrRatingInvalid     = errors.New("'rating' must be a number between 1 and 10")
	ErrNotesInvalid      = errors.New("'notes' must be a string if provided")
	ErrSortInvalid       = errors.New("sort must be 'asc', 'desc', or omitted")
	ErrMaxRecordsInvalid = errors.New("max_records must be a positive integer")
)

// Rating bounds (inclusive)
const (
	MinRating = 1
	MaxRating = 10
)

// ValidateReview checks a review request body and returns the cleaned-up
// review. The checks run in order: JSON body, book, rating, notes.
// Ratings must be JSON numbers; numeric strings and booleans are rejected.
func ValidateReview(contentType string, body []byte) (models.Review, error) {
	if !isJSONContentType(contentType) {
		return models.Review{}, ErrBodyNotJSON
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return models.Review{}, ErrBodyMalformed
	}
	data := map[string]any{}
	if decoded != nil {
		obj, ok := decoded.(map[string]any)
		if !ok {
			return models.Review{}, ErrBodyMalformed
		}
		data = obj
	}

	book, ok := data["book"].(string)
	book = strings.TrimSpace(book)
	if !ok || book == "" {
		return models.Review{}, ErrBookInvalid
	}

	rating, ok := data["rating"].(float64)
	if !ok || rating < MinRating || rating > MaxRating {
		return models.Review{}, ErrRatingInvalid
	}

	notes := ""
	if v, present := data["notes"]; present && v != nil {
		s, ok := v.(string)
		if !ok {
			return models.Review{}, ErrNotesInvalid
		}
		notes = strings.TrimSpace(s)
	}

	return models.Review{Book: book, Rating: rating, Notes: notes}, nil
}

// ValidateListOptions turns the sort and max_records query parameters
// into options for the table store. Absent parameters leave the options empty.
func ValidateListOptions(sort, maxRecords models.OptionalParam[string]) (models.ListOptions, error) {
	opts := models.ListOptions{}

	if sort.IsSet {
		switch sort.Value {
		case "asc":
			opts.Sort = []string{models.FieldRating}
		case "desc":
			opts.Sort = []string{"-" + models.FieldRating}
		default:
			return models.ListOptions{}, ErrSortInvalid
		}
	}

	if maxRecords.IsSet {
		n, err := strconv.Atoi(strings.TrimSpace(maxRecords.Value))
		if err != nil || n <= 0 {
			return models.ListOptions{}, ErrMaxRecordsInvalid
		}
		opts.MaxRecords = n
	}

	return opts, nil
}

// isJSONContentType reports whether the media type is application/json or
// a +json type.
func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
