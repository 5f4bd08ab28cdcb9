package models

import "github.com/danielgtaylor/huma/v2"

// Field names used for review records in the table store.
const (
	FieldBook   = "Book"
	FieldRating = "Rating"
	FieldNotes  = "Notes"
)

// Review is the validated form of a review submitted by a client.
type Review struct {
	Book   string  `json:"book" minLength:"1" example:"Dune" doc:"The name of the book"`
	Rating float64 `json:"rating" minimum:"1" maximum:"10" example:"8.5" doc:"Rating of the book (1-10)"`
	Notes  string  `json:"notes,omitempty" example:"Slow start, great ending." doc:"Optional notes about the book"`
}

// Fields returns the record fields to be stored for the review. The Notes
// field is only present if the notes are not blank.
func (r Review) Fields() map[string]any {
	fields := map[string]any{
		FieldBook:   r.Book,
		FieldRating: r.Rating,
	}
	if r.Notes != "" {
		fields[FieldNotes] = r.Notes
	}
	return fields
}

// Record is a record as returned by the table store.
type Record struct {
	ID          string         `json:"id" example:"recA1b2C3d4E5f6G7" doc:"Record identifier assigned by the store"`
	CreatedTime string         `json:"createdTime" example:"2025-01-01T12:00:00.000Z" doc:"Creation time of the record"`
	Fields      map[string]any `json:"fields" doc:"Stored fields (Book, Rating and, if given, Notes)"`
}

// ListOptions are the options forwarded to the table store when listing
// records. A field name in Sort prefixed with "-" sorts descending. A
// MaxRecords value of 0 means no limit.
type ListOptions struct {
	Sort       []string
	MaxRecords int
}

// Request and Response structs for the book reviews API

// Post review
// Path: "/post-review"

type PostReviewRequest struct {
	ContentType string `header:"Content-Type" doc:"Must be application/json"`
	RawBody     []byte
}

type PostReviewResponse struct {
	Body struct {
		Created bool   `json:"created" doc:"Whether the review was created"`
		Record  Record `json:"record" doc:"The stored record"`
	}
}

// Get all reviews
// Path: "/all-reviews"

type GetReviewsRequest struct {
	Sort       OptionalParam[string] `query:"sort" example:"desc" doc:"Sort by Rating ascending (asc) or descending (desc)"`
	MaxRecords OptionalParam[string] `query:"max_records" example:"10" doc:"Maximum number of records to return (positive integer)"`
}

// Resolve records parameters that were sent with an empty value, so that
// e.g. `?sort=` is rejected instead of being treated as omitted.
func (r *GetReviewsRequest) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	q := u.Query()
	r.Sort.MarkPresent(q, "sort")
	r.MaxRecords.MarkPresent(q, "max_records")
	return nil
}

type GetReviewsResponse struct {
	Body struct {
		Reviews []Record `json:"reviews" doc:"List of review records"`
	}
}
