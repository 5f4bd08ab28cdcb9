package handlers

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	"github.com/mpilhlt/bookreviews-api/internal/models"
	"github.com/mpilhlt/bookreviews-api/internal/store"

	"github.com/danielgtaylor/huma/v2"
)

// postReviewFunc validates a review and creates a record for it
func postReviewFunc(ctx context.Context, input *models.PostReviewRequest) (*models.PostReviewResponse, error) {
	review, err := ValidateReview(input.ContentType, input.RawBody)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	// Get the review table from the context
	table, err := GetReviewTable(ctx)
	if err != nil {
		return nil, err
	}

	record, err := table.Create(ctx, review.Fields())
	if err != nil {
		fmt.Printf("        Unable to create review for %q: %v\n", review.Book, err)
		return nil, huma.Error500InternalServerError("failed to create review", err)
	}

	// Build the response
	response := &models.PostReviewResponse{}
	response.Body.Created = true
	response.Body.Record = record
	return response, nil
}

// getReviewsFunc lists the reviews, sorted and limited by the table store
func getReviewsFunc(ctx context.Context, input *models.GetReviewsRequest) (*models.GetReviewsResponse, error) {
	opts, err := ValidateListOptions(input.Sort, input.MaxRecords)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	// Get the review table from the context
	table, err := GetReviewTable(ctx)
	if err != nil {
		return nil, err
	}

	records, err := table.All(ctx, opts)
	if err != nil {
		fmt.Printf("        Unable to list reviews: %v\n", err)
		return nil, huma.Error500InternalServerError("failed to list reviews", err)
	}
	if records == nil {
		records = []models.Record{}
	}

	// Build the response
	response := &models.GetReviewsResponse{}
	response.Body.Reviews = records
	return response, nil
}

// RegisterReviewsRoutes registers the book review routes with the API
func RegisterReviewsRoutes(table store.ReviewTable, api huma.API) error {
	reviewSchema := api.OpenAPI().Components.Schemas.Schema(reflect.TypeOf(models.Review{}), true, "Review")

	postReviewOp := huma.Operation{
		OperationID:   "postReview",
		Method:        http.MethodPost,
		Path:          "/post-review",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create a new book review record",
		Description:   "Creates a new book review record in the database. Inputs must be provided in the request body as JSON.",

		// The schema is for documentation only. ValidateReview checks the
		// raw body so that every invalid review is answered with a 400.
		SkipValidateBody: true,
		RequestBody: &huma.RequestBody{
			Description: "The review to store",
			Content: map[string]*huma.MediaType{
				"application/json": {Schema: reviewSchema},
			},
		},
		Errors: []int{http.StatusBadRequest, http.StatusInternalServerError},
		Tags:   []string{"Book Reviews"},
	}
	getReviewsOp := huma.Operation{
		OperationID: "getAllReviews",
		Method:      http.MethodGet,
		Path:        "/all-reviews",
		Summary:     "Retrieve a list of book reviews",
		Description: "Optionally sorted by Rating (sort=asc|desc) and limited to max_records records.",
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
		Tags:        []string{"Book Reviews"},
	}

	// Register the routes with middleware
	huma.Register(api, postReviewOp, addTableToContext(table, postReviewFunc))
	huma.Register(api, getReviewsOp, addTableToContext(table, getReviewsFunc))
	return nil
}
