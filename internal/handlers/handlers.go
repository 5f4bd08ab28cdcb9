package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mpilhlt/bookreviews-api/internal/store"

	huma "github.com/danielgtaylor/huma/v2"
)

type contextKey string

// Context keys
const (
	TableKey = contextKey("reviewTable")
)

// Error responses
var (
	ErrTableNotFound = errors.New("review table not found in context")
)

// AddRoutes adds all the routes to the API
func AddRoutes(table store.ReviewTable, api huma.API) error {
	err := RegisterTextRoutes(api)
	if err != nil {
		fmt.Printf("    Unable to register Text routes: %v\n", err)
		return err
	}
	err = RegisterReviewsRoutes(table, api)
	if err != nil {
		fmt.Printf("    Unable to register Reviews routes: %v\n", err)
		return err
	}
	return nil
}

// Middleware to add the review table to the context
func addTableToContext[I any, O any](table store.ReviewTable, next func(context.Context, *I) (*O, error)) func(context.Context, *I) (*O, error) {
	return func(ctx context.Context, input *I) (*O, error) {
		if table == nil {
			return nil, huma.Error500InternalServerError("provided review table is nil")
		}
		ctx = context.WithValue(ctx, TableKey, table)
		return next(ctx, input)
	}
}

// Get the review table from the context
// (exported helper function so that blackbox testing can access it)
func GetReviewTable(ctx context.Context) (store.ReviewTable, error) {
	table, ok := ctx.Value(TableKey).(store.ReviewTable)
	if !ok || table == nil {
		return nil, huma.NewError(http.StatusInternalServerError, ErrTableNotFound.Error())
	}
	return table, nil
}

// RequestLogger returns a middleware printing one line per request if debug is enabled.
func RequestLogger(debug bool) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if debug {
			u := ctx.URL()
			fmt.Printf("        %s %s\n", ctx.Method(), u.RequestURI())
		}
		next(ctx)
	}
}
