package models

import "github.com/danielgtaylor/huma/v2"

// Request and Response structs for the text processing API

// Uppercase text
// Path: "/uppercase"

type UppercaseRequest struct {
	Text OptionalParam[string] `query:"text" example:"Hello World" doc:"The text to be converted to uppercase"`
}

func (r *UppercaseRequest) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	r.Text.MarkPresent(u.Query(), "text")
	return nil
}

type UppercaseResponse struct {
	Body struct {
		Text string `json:"text" doc:"The text in uppercase"`
	}
}

// Process text
// Path: "/process-text"

type ProcessTextRequest struct {
	Text              OptionalParam[string] `query:"text" example:"Hello World" doc:"The text to be processed"`
	DuplicationFactor OptionalParam[string] `query:"duplication_factor" example:"3" doc:"Number of times to repeat the text on new lines (integer, default 1, values below 1 count as 1)"`
	Capitalization    string                `query:"capitalization" example:"UPPER" doc:"Capitalization rule to apply to the text (UPPER or LOWER, anything else leaves the text unchanged)"`
}

func (r *ProcessTextRequest) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	q := u.Query()
	r.Text.MarkPresent(q, "text")
	r.DuplicationFactor.MarkPresent(q, "duplication_factor")
	return nil
}

type ProcessTextResponse struct {
	Body struct {
		Result string `json:"result" doc:"The processed text"`
	}
}
