package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/mpilhlt/bookreviews-api/internal/models"
	"github.com/mpilhlt/bookreviews-api/internal/textproc"

	"github.com/danielgtaylor/huma/v2"
)

// getUppercaseFunc returns the text in upper case
func getUppercaseFunc(ctx context.Context, input *models.UppercaseRequest) (*models.UppercaseResponse, error) {
	if !input.Text.IsSet {
		return nil, huma.Error400BadRequest("'text' is required")
	}

	response := &models.UppercaseResponse{}
	response.Body.Text = textproc.Uppercase(input.Text.Value)
	return response, nil
}

// getProcessTextFunc applies the capitalization and duplication rules to the text
func getProcessTextFunc(ctx context.Context, input *models.ProcessTextRequest) (*models.ProcessTextResponse, error) {
	if !input.Text.IsSet {
		return nil, huma.Error400BadRequest("'text' is required")
	}

	// A factor that is not an integer falls back to the default
	duplicationFactor := textproc.DefaultDuplicationFactor
	if input.DuplicationFactor.IsSet {
		if n, err := strconv.Atoi(strings.TrimSpace(input.DuplicationFactor.Value)); err == nil {
			duplicationFactor = n
		}
	}

	result, err := textproc.Process(input.Text.Value, duplicationFactor, input.Capitalization)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	response := &models.ProcessTextResponse{}
	response.Body.Result = result
	return response, nil
}

// RegisterTextRoutes registers the text processing routes with the API
func RegisterTextRoutes(api huma.API) error {
	getUppercaseOp := huma.Operation{
		OperationID: "getUppercase",
		Method:      http.MethodGet,
		Path:        "/uppercase",
		Summary:     "Convert text to uppercase",
		Errors:      []int{http.StatusBadRequest},
		Tags:        []string{"Text Processing"},
	}
	getProcessTextOp := huma.Operation{
		OperationID: "getProcessText",
		Method:      http.MethodGet,
		Path:        "/process-text",
		Summary:     "Process text based on duplication and capitalization rules",
		Description: "Applies the capitalization rule (UPPER or LOWER) and repeats the text on new lines.",
		Errors:      []int{http.StatusBadRequest},
		Tags:        []string{"Text Processing"},
	}

	huma.Register(api, getUppercaseOp, getUppercaseFunc)
	huma.Register(api, getProcessTextOp, getProcessTextFunc)
	return nil
}
